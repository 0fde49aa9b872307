// internal/engine/eligibility/evaluator.go
package eligibility

import (
	"time"

	"scheme-recommender/internal/common/errors"
	"scheme-recommender/internal/common/logger"
	"scheme-recommender/internal/common/metrics"
	"scheme-recommender/internal/models"
)

const TaskType = "evaluate-eligibility"

// AttributeResolver looks up user attributes not otherwise modeled, for
// resolving a scheme's additional criteria. An unresolvable key counts as
// unmatched, never as an error.
type AttributeResolver func(key string) (interface{}, bool)

// Evaluator decides whether a profile satisfies a scheme's eligibility
// criteria. It is a pure function of its inputs plus the injected reference
// time; identical inputs produce identical results.
type Evaluator struct {
	config   *Config
	resolver AttributeResolver
	logger   logger.Logger
}

func New(config *Config, resolver AttributeResolver, log logger.Logger) *Evaluator {
	if config == nil {
		config = LoadConfig()
	}
	return &Evaluator{
		config:   config,
		resolver: resolver,
		logger:   log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

// Evaluate checks the profile against every dimension present on the
// eligibility record and combines them per the record's match type.
// A record missing a required dimension yields a data-integrity error.
func (e *Evaluator) Evaluate(profile *models.UserProfile, elig *models.SchemeEligibility, now time.Time) (*models.EligibilityCheckResult, error) {
	if err := models.ValidateEligibility(elig); err != nil {
		return nil, errors.NewDataIntegrityError(elig.SchemeID, err)
	}

	dims := e.checkDimensions(profile, elig, now)

	matched := make([]string, 0, len(dims))
	unmatched := make([]string, 0)
	reasons := make([]string, 0, len(dims))
	var suggestions []string

	for _, d := range dims {
		reasons = append(reasons, d.reason)
		if d.matched {
			matched = append(matched, d.name)
			continue
		}
		unmatched = append(unmatched, d.name)
		if d.suggestion != "" {
			suggestions = append(suggestions, d.suggestion)
		}
	}

	var eligible bool
	var confidence int
	switch elig.MatchType {
	case models.MatchAny:
		eligible = len(matched) > 0
		if eligible {
			confidence = 100
		}
	default: // ALL
		eligible = len(unmatched) == 0
		confidence = 100 * len(matched) / len(dims)
	}

	if eligible {
		// Suggestions only accompany an ineligible verdict.
		suggestions = nil
		metrics.EvaluationsTotal.WithLabelValues("eligible").Inc()
	} else {
		metrics.EvaluationsTotal.WithLabelValues("ineligible").Inc()
	}

	if e.config.MaxSuggestions > 0 && len(suggestions) > e.config.MaxSuggestions {
		suggestions = suggestions[:e.config.MaxSuggestions]
	}

	e.logger.Debug("eligibility evaluated", map[string]interface{}{
		"userId":     profile.ID,
		"schemeId":   elig.SchemeID,
		"eligible":   eligible,
		"confidence": confidence,
		"unmatched":  unmatched,
	})

	return &models.EligibilityCheckResult{
		IsEligible:        eligible,
		ConfidenceScore:   confidence,
		MatchedCriteria:   matched,
		UnmatchedCriteria: unmatched,
		Reasons:           reasons,
		Suggestions:       suggestions,
	}, nil
}
