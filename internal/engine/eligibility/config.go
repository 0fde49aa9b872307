// internal/engine/eligibility/config.go
package eligibility

// Config holds the evaluator's suggestion policy. All policy is explicit;
// the evaluator never reads environment state.
type Config struct {
	// SuggestFutureEligibility emits an "eligible in N years" suggestion
	// when the user is below a scheme's minimum age.
	SuggestFutureEligibility bool

	// MaxSuggestions caps the suggestions list. 0 means no cap.
	MaxSuggestions int
}

func LoadConfig() *Config {
	return &Config{
		SuggestFutureEligibility: true,
		MaxSuggestions:           5,
	}
}
