// internal/engine/recommend/config.go
package recommend

import "time"

// Config holds the composite-score policy. The stated weights are a default
// policy, all overridable by the caller; the ranker never reads implicit
// environment state.
type Config struct {
	// Flat bonus for schemes in the user's priority categories.
	PriorityCategoryBonus float64

	// Maximum benefit bonus, reached at BenefitReferenceAmount of annual
	// financial benefit. Non-financial benefits weigh half.
	BenefitBonusMax        float64
	BenefitReferenceAmount float64

	// Bonus for schemes whose deadline falls inside the horizon.
	UrgencyBonus        float64
	DeadlineHorizonDays int

	// Priority tier thresholds on the composite score.
	HighPriorityThreshold   float64
	MediumPriorityThreshold float64

	// View count at which a scheme is called popular in its category.
	PopularViewThreshold int

	// Result list cap applied when preferences do not set one.
	DefaultMaxRecommendations int

	// Bounded parallelism for per-scheme evaluation.
	Workers int

	// RefreshAfter is the fixed cache horizon stamped on results. Caching
	// itself is the caller's concern.
	RefreshAfter time.Duration

	AlgorithmVersion string
}

func LoadConfig() *Config {
	return &Config{
		PriorityCategoryBonus:     10,
		BenefitBonusMax:           10,
		BenefitReferenceAmount:    100000,
		UrgencyBonus:              5,
		DeadlineHorizonDays:       30,
		HighPriorityThreshold:     80,
		MediumPriorityThreshold:   50,
		PopularViewThreshold:      10000,
		DefaultMaxRecommendations: 10,
		Workers:                   4,
		RefreshAfter:              24 * time.Hour,
		AlgorithmVersion:          "1.0.0",
	}
}
