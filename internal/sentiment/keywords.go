package sentiment

// Keywords holds the stem tables driving the keyword classification
// path. Stems are stored post-normalization (lowercase, accent-stripped)
// and matched by substring against the stemmed tokens of the input.
type Keywords struct {
	Positive []string
	Negative []string

	// Superlative and Severe intensify the calibrated score when present.
	Superlative []string
	Severe      []string

	// Trigger sets for conditional recommendations.
	Fatigue  []string
	Stress   []string
	Overload []string
}

// DefaultKeywords returns the built-in Portuguese stem tables.
func DefaultKeywords() Keywords {
	return Keywords{
		Positive: []string{
			"bom", "otim", "excelent", "feliz", "satisfeit", "energiz",
			"motiv", "produtiv", "bem", "melhor", "perfeit", "realiz",
			"anim", "content", "maravilh",
		},
		Negative: []string{
			"ruim", "pessim", "cans", "estress", "sobrecarg",
			"exaust", "frustr", "ansios", "preocup", "mal",
			"dificil", "problem", "burnout", "esgot", "desanim",
			"deprim", "terrivel",
		},
		Superlative: []string{"excelent", "otim", "perfeit"},
		Severe:      []string{"pessim", "esgot", "burnout"},
		Fatigue:     []string{"cans", "exaust"},
		Stress:      []string{"estress", "ansios"},
		Overload:    []string{"sobrecarg", "muita"},
	}
}
