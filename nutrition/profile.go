package nutrition

// Profile is a sparse per-100g nutrient record. A missing key means the
// value is unknown, which is not the same thing as zero: unknown values
// are skipped during aggregation and omitted from API output.
type Profile map[Key]float64

// Scale returns a new profile with every present value multiplied by
// ratio. Absent keys stay absent.
func (p Profile) Scale(ratio float64) Profile {
	out := make(Profile, len(p))
	for _, k := range keys {
		if v, ok := p[k]; ok {
			out[k] = v * ratio
		}
	}
	return out
}

// Get reports the value for a key and whether it is present.
func (p Profile) Get(k Key) (float64, bool) {
	v, ok := p[k]
	return v, ok
}

// ValueOrZero returns the value for a key, treating absent as zero.
// Only for fold-style totals where the caller has decided that absence
// contributes nothing; display paths should use Get instead.
func (p Profile) ValueOrZero(k Key) float64 {
	return p[k]
}
