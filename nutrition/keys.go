package nutrition

// Key identifies a nutrient tracked per 100g of food.
type Key string

const (
	Calories      Key = "calories"
	Protein       Key = "protein"
	Carbs         Key = "carbs"
	Fiber         Key = "fiber"
	Sugars        Key = "sugars"
	Fats          Key = "fats"
	SaturatedFats Key = "saturated_fats"

	VitaminA   Key = "vitamin_a"
	VitaminB1  Key = "vitamin_b1"
	VitaminB2  Key = "vitamin_b2"
	VitaminB3  Key = "vitamin_b3"
	VitaminB6  Key = "vitamin_b6"
	VitaminB7  Key = "vitamin_b7"
	VitaminB9  Key = "vitamin_b9"
	VitaminB12 Key = "vitamin_b12"
	VitaminC   Key = "vitamin_c"
	VitaminD   Key = "vitamin_d"
	VitaminE   Key = "vitamin_e"
	VitaminK   Key = "vitamin_k"

	Calcium    Key = "calcium"
	Iron       Key = "iron"
	Magnesium  Key = "magnesium"
	Phosphorus Key = "phosphorus"
	Potassium  Key = "potassium"
	Sodium     Key = "sodium"
	Zinc       Key = "zinc"
	Selenium   Key = "selenium"
	Copper     Key = "copper"
	Manganese  Key = "manganese"
)

// keys is the canonical reporting order: macros first, then vitamins,
// then minerals. Aggregation iterates this slice so totals accumulate
// in the same order on every run.
var keys = []Key{
	Calories, Protein, Carbs, Fiber, Sugars, Fats, SaturatedFats,
	VitaminA, VitaminB1, VitaminB2, VitaminB3, VitaminB6, VitaminB7,
	VitaminB9, VitaminB12, VitaminC, VitaminD, VitaminE, VitaminK,
	Calcium, Iron, Magnesium, Phosphorus, Potassium, Sodium, Zinc,
	Selenium, Copper, Manganese,
}

// Keys returns the full nutrient key set in canonical order.
func Keys() []Key {
	out := make([]Key, len(keys))
	copy(out, keys)
	return out
}
