// internal/engine/recommend/ranker.go
package recommend

import (
	"sync"
	"time"

	"scheme-recommender/internal/common/errors"
	"scheme-recommender/internal/common/logger"
	"scheme-recommender/internal/common/metrics"
	"scheme-recommender/internal/engine/eligibility"
	"scheme-recommender/internal/models"
)

const TaskType = "rank-recommendations"

// Ranker turns a scheme catalog into a personalized, scored and sorted
// recommendation list. It holds no mutable state between calls.
type Ranker struct {
	config     *Config
	evaluator  *eligibility.Evaluator
	errHandler *errors.Handler
	logger     logger.Logger
}

func New(config *Config, evaluator *eligibility.Evaluator, log logger.Logger) *Ranker {
	if config == nil {
		config = LoadConfig()
	}
	return &Ranker{
		config:     config,
		evaluator:  evaluator,
		errHandler: errors.NewHandler(log),
		logger:     log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

// evalOutcome pairs a candidate scheme with its evaluation. Outcomes are
// merged by candidate index so evaluation order never affects the result;
// the sort step is the single point where ordering is decided.
type evalOutcome struct {
	scheme *models.GovernmentScheme
	result *models.EligibilityCheckResult
	err    error
}

// Rank evaluates every rankable scheme for the profile and assembles the
// recommendation result. An empty catalog yields an empty result, not an
// error; malformed scheme records are skipped and counted.
func (r *Ranker) Rank(profile *models.UserProfile, schemes []models.GovernmentScheme, prefs models.RecommendationPreferences, now time.Time) *models.RecommendationResult {
	start := time.Now()
	prefs = r.normalizePreferences(prefs)

	excluded := toSet(prefs.ExcludedCategories)
	applied := make(map[string]bool, len(prefs.AppliedSchemeIDs))
	for _, id := range prefs.AppliedSchemeIDs {
		applied[id] = true
	}

	candidates := make([]*models.GovernmentScheme, 0, len(schemes))
	for i := range schemes {
		s := &schemes[i]
		switch {
		case s.Status != models.SchemeActive:
			metrics.SchemesSkipped.WithLabelValues("inactive").Inc()
		case excluded[s.Category]:
			metrics.SchemesSkipped.WithLabelValues("excluded_category").Inc()
		case applied[s.ID]:
			// Already applied: excluded entirely, not penalized.
			metrics.SchemesSkipped.WithLabelValues("already_applied").Inc()
		default:
			candidates = append(candidates, s)
		}
	}

	outcomes := r.evaluateAll(profile, candidates, now)

	saved := make(map[string]bool, len(prefs.SavedSchemeIDs))
	for _, id := range prefs.SavedSchemeIDs {
		saved[id] = true
	}

	var (
		recommendations []models.SchemeRecommendation
		eligibleSchemes []scoredScheme
		almostEligible  []models.AlmostEligibleScheme
		tips            []string
		totalEligible   int
		skipped         int
	)

	for _, o := range outcomes {
		if o.err != nil {
			if r.errHandler.HandleSchemeError(o.scheme.ID, o.err) {
				metrics.SchemesSkipped.WithLabelValues("data_integrity").Inc()
				skipped++
				continue
			}
			// Not a per-scheme problem; still skip rather than abort the
			// pass, but record it loudly.
			metrics.SchemesSkipped.WithLabelValues("internal_error").Inc()
			skipped++
			continue
		}

		res := o.result
		score, reasons := r.compositeScore(o.scheme, res, prefs, now)

		if res.IsEligible {
			totalEligible++
			eligibleSchemes = append(eligibleSchemes, scoredScheme{scheme: o.scheme, score: score})
		}

		if isAlmostEligible(res) {
			if prefs.IncludeAlmostEligible {
				almostEligible = append(almostEligible, models.AlmostEligibleScheme{
					Scheme:          o.scheme.Summary(),
					MissingCriteria: res.UnmatchedCriteria,
					HowToQualify:    res.Suggestions,
				})
				tips = appendUnique(tips, res.Suggestions)
			}
			// Almost-eligible schemes live only in the insight list.
			continue
		}

		if res.ConfidenceScore < prefs.MinEligibilityScore {
			metrics.SchemesSkipped.WithLabelValues("below_min_score").Inc()
			continue
		}

		recommendations = append(recommendations, models.SchemeRecommendation{
			Scheme:           o.scheme.Summary(),
			Score:            score,
			Eligibility:      *res,
			Reasons:          reasons,
			Priority:         r.priorityTier(score),
			Saved:            saved[o.scheme.ID],
			EstimatedBenefit: o.scheme.MaxBenefitAmount(),
			NextSteps:        nextSteps(o.scheme),
		})
	}

	sortRecommendations(recommendations, prefs.SortBy)
	if len(recommendations) > prefs.MaxRecommendations {
		recommendations = recommendations[:prefs.MaxRecommendations]
	}

	result := &models.RecommendationResult{
		UserID:               profile.ID,
		Recommendations:      recommendations,
		TotalEligibleSchemes: totalEligible,
		CategoryBreakdown:    buildCategoryBreakdown(eligibleSchemes),
		Insights: models.RecommendationInsights{
			MissingProfileInfo: missingProfileInfo(profile),
			EligibilityTips:    tips,
			AlmostEligible:     almostEligible,
			ExpiringSoon:       buildExpiringSoon(eligibleSchemes, now, r.config.DeadlineHorizonDays),
		},
		Metadata: models.RecommendationMetadata{
			GeneratedAt:         now,
			AlgorithmVersion:    r.config.AlgorithmVersion,
			ProfileCompleteness: profile.ProfileCompleteness,
			ProcessingTimeMs:    time.Since(start).Milliseconds(),
			SkippedSchemes:      skipped,
		},
		Stale:        false,
		RefreshAfter: now.Add(r.config.RefreshAfter),
	}

	metrics.RankingDuration.Observe(time.Since(start).Seconds())
	metrics.RecommendationsReturned.Observe(float64(len(recommendations)))

	r.logger.Info("ranking completed", map[string]interface{}{
		"userId":       profile.ID,
		"inputSchemes": len(schemes),
		"eligible":     totalEligible,
		"returned":     len(recommendations),
		"skipped":      skipped,
		"durationMs":   time.Since(start).Milliseconds(),
	})

	return result
}

// evaluateAll runs the evaluator over candidates on a bounded worker pool.
// Per-scheme evaluations are independent; outcomes land at their candidate
// index so the merge is commutative.
func (r *Ranker) evaluateAll(profile *models.UserProfile, candidates []*models.GovernmentScheme, now time.Time) []evalOutcome {
	outcomes := make([]evalOutcome, len(candidates))
	if len(candidates) == 0 {
		return outcomes
	}

	// A zero or negative worker count would leave nobody to drain the jobs
	// channel; degrade to sequential instead.
	workers := r.config.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(candidates) {
		workers = len(candidates)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				s := candidates[i]
				res, err := r.evaluator.Evaluate(profile, &s.Eligibility, now)
				outcomes[i] = evalOutcome{scheme: s, result: res, err: err}
			}
		}()
	}
	for i := range candidates {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return outcomes
}

func (r *Ranker) normalizePreferences(prefs models.RecommendationPreferences) models.RecommendationPreferences {
	if prefs.MaxRecommendations <= 0 {
		prefs.MaxRecommendations = r.config.DefaultMaxRecommendations
	}
	if prefs.MinEligibilityScore < 0 {
		prefs.MinEligibilityScore = 0
	}
	if prefs.MinEligibilityScore > 100 {
		prefs.MinEligibilityScore = 100
	}
	if prefs.SortBy == "" {
		prefs.SortBy = models.SortByScore
	}
	return prefs
}

func (r *Ranker) priorityTier(score float64) models.PriorityTier {
	switch {
	case score >= r.config.HighPriorityThreshold:
		return models.PriorityHigh
	case score >= r.config.MediumPriorityThreshold:
		return models.PriorityMedium
	default:
		return models.PriorityLow
	}
}

// isAlmostEligible reports whether the profile misses the scheme by exactly
// one criterion that is closable by user action. Suggestions are emitted
// only for closable gaps, so their presence is the closability signal.
func isAlmostEligible(res *models.EligibilityCheckResult) bool {
	return !res.IsEligible && len(res.UnmatchedCriteria) == 1 && len(res.Suggestions) > 0
}

func nextSteps(s *models.GovernmentScheme) []string {
	var steps []string
	for _, d := range s.RequiredDocuments {
		if d.Mandatory {
			steps = append(steps, "Prepare document: "+d.Name)
		}
	}
	return steps
}

func toSet(categories []models.SchemeCategory) map[models.SchemeCategory]bool {
	set := make(map[models.SchemeCategory]bool, len(categories))
	for _, c := range categories {
		set[c] = true
	}
	return set
}

func appendUnique(dst []string, src []string) []string {
	for _, s := range src {
		seen := false
		for _, d := range dst {
			if d == s {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, s)
		}
	}
	return dst
}
