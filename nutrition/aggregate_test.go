package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateScalesPer100g(t *testing.T) {
	chicken := Profile{
		Calories: 165,
		Protein:  31,
		Carbs:    0,
		Fats:     3.6,
	}

	got := Aggregate([]PortionInput{{Profile: chicken, Grams: 200}})

	assert.InDelta(t, 330, got[Calories], 1e-9)
	assert.InDelta(t, 62, got[Protein], 1e-9)
	assert.InDelta(t, 0, got[Carbs], 1e-9)
	assert.InDelta(t, 7.2, got[Fats], 1e-9)
}

func TestAggregateSinglePortionMatchesScale(t *testing.T) {
	p := Profile{Calories: 52, Carbs: 14, Fiber: 2.4, Sugars: 10.4}
	grams := 130.0

	got := Aggregate([]PortionInput{{Profile: p, Grams: grams}})
	want := p.Scale(grams / 100.0)

	require.Len(t, got, len(want))
	for k, v := range want {
		assert.InDelta(t, v, got[k], 1e-9, "key %s", k)
	}
	// keys absent in the input stay absent in the output
	_, ok := got[Protein]
	assert.False(t, ok)
}

func TestAggregateEmptyInput(t *testing.T) {
	got := Aggregate(nil)
	assert.Empty(t, got)

	got = Aggregate([]PortionInput{})
	assert.Empty(t, got)
}

func TestAggregateSkipsAbsentKeys(t *testing.T) {
	// calories known, protein unknown: protein must not show up as 0
	pizza := Profile{Calories: 266}
	got := Aggregate([]PortionInput{{Profile: pizza, Grams: 150}})

	assert.InDelta(t, 399, got[Calories], 1e-9)
	_, ok := got[Protein]
	assert.False(t, ok, "absent protein must not be emitted as zero")
}

func TestAggregateMixedCoverage(t *testing.T) {
	// one portion knows protein, the other doesn't; the total is the
	// contribution of the portion that knows it
	a := Profile{Calories: 100, Protein: 10}
	b := Profile{Calories: 200}

	got := Aggregate([]PortionInput{
		{Profile: a, Grams: 100},
		{Profile: b, Grams: 50},
	})

	assert.InDelta(t, 200, got[Calories], 1e-9)
	assert.InDelta(t, 10, got[Protein], 1e-9)
}

func TestFold(t *testing.T) {
	breakfast := Profile{Calories: 300, Protein: 12}
	lunch := Profile{Calories: 650, Fats: 20}

	got := Fold([]Profile{breakfast, lunch})

	assert.InDelta(t, 950, got[Calories], 1e-9)
	assert.InDelta(t, 12, got[Protein], 1e-9)
	assert.InDelta(t, 20, got[Fats], 1e-9)
	_, ok := got[Carbs]
	assert.False(t, ok)
}

func TestFoldEmpty(t *testing.T) {
	assert.Empty(t, Fold(nil))
}

func TestScalePreservesAbsence(t *testing.T) {
	p := Profile{Calories: 165, Protein: 31}
	scaled := p.Scale(2)

	assert.InDelta(t, 330, scaled[Calories], 1e-9)
	assert.InDelta(t, 62, scaled[Protein], 1e-9)
	assert.Len(t, scaled, 2)
}
