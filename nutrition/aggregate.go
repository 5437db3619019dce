package nutrition

// PortionInput pairs a food's per-100g profile with the consumed
// quantity in grams. Portions whose food could not be resolved simply
// never become a PortionInput; they contribute nothing.
type PortionInput struct {
	Profile Profile
	Grams   float64
}

// Aggregate sums nutrition across portions. Each portion's profile is
// scaled by grams/100 and added per key. A key absent from a portion's
// profile is skipped for that portion rather than counted as zero, so
// partial data degrades the total silently instead of blocking it. Keys
// absent from every portion are absent from the result.
func Aggregate(portions []PortionInput) Profile {
	totals := Profile{}
	for _, p := range portions {
		ratio := p.Grams / 100.0
		for _, k := range keys {
			if v, ok := p.Profile[k]; ok {
				totals[k] += v * ratio
			}
		}
	}
	return totals
}

// Fold sums already-aggregated profiles key-wise, e.g. per-meal totals
// into a daily total. Same sparsity rule as Aggregate: a key missing
// from one profile does not zero it out for the others, and keys
// missing everywhere stay missing.
func Fold(profiles []Profile) Profile {
	totals := Profile{}
	for _, p := range profiles {
		for _, k := range keys {
			if v, ok := p[k]; ok {
				totals[k] += v
			}
		}
	}
	return totals
}
