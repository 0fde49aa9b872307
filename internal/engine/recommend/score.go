// internal/engine/recommend/score.go
package recommend

import (
	"fmt"
	"time"

	"scheme-recommender/internal/models"
)

// scoredScheme keeps a scheme together with its composite score for the
// aggregate insight builders.
type scoredScheme struct {
	scheme *models.GovernmentScheme
	score  float64
}

// compositeScore combines eligibility confidence with preference, benefit
// and urgency bonuses. Bonuses are small relative to the confidence base so
// they sharpen the ordering without drowning out the eligibility signal.
func (r *Ranker) compositeScore(s *models.GovernmentScheme, res *models.EligibilityCheckResult, prefs models.RecommendationPreferences, now time.Time) (float64, []models.RecommendationReason) {
	score := float64(res.ConfidenceScore)
	var reasons []models.RecommendationReason

	if res.IsEligible && res.ConfidenceScore == 100 {
		reasons = append(reasons, models.RecommendationReason{
			Type:            models.ReasonPerfectMatch,
			Score:           100,
			MatchedCriteria: res.MatchedCriteria,
			Description:     "You meet every eligibility criterion for this scheme.",
		})
	} else if res.ConfidenceScore >= int(r.config.HighPriorityThreshold) {
		reasons = append(reasons, models.RecommendationReason{
			Type:            models.ReasonHighEligibility,
			Score:           float64(res.ConfidenceScore),
			MatchedCriteria: res.MatchedCriteria,
			Description:     fmt.Sprintf("You match %d of the scheme's eligibility criteria.", len(res.MatchedCriteria)),
		})
	}

	for _, c := range prefs.PriorityCategories {
		if c == s.Category {
			score += r.config.PriorityCategoryBonus
			reasons = append(reasons, models.RecommendationReason{
				Type:        models.ReasonUserPreference,
				Category:    s.Category,
				Description: fmt.Sprintf("Matches your interest in %s schemes.", s.Category),
			})
			break
		}
	}

	if bonus, amount := r.benefitBonus(s); bonus > 0 {
		score += bonus
		if amount > 0 {
			reasons = append(reasons, models.RecommendationReason{
				Type:          models.ReasonHighBenefit,
				BenefitAmount: amount,
				Description:   fmt.Sprintf("Offers a financial benefit of up to %.0f.", amount),
			})
		}
	}

	if days, ok := s.Deadline.DaysRemaining(now); ok && days >= 0 && days <= r.config.DeadlineHorizonDays {
		score += r.config.UrgencyBonus
		reasons = append(reasons, models.RecommendationReason{
			Type:          models.ReasonExpiringSoon,
			DaysRemaining: days,
			Description:   fmt.Sprintf("Applications close in %d day(s).", days),
		})
	}

	if s.ViewCount >= r.config.PopularViewThreshold {
		reasons = append(reasons, models.RecommendationReason{
			Type:        models.ReasonPopularInCategory,
			Category:    s.Category,
			Description: fmt.Sprintf("A widely viewed scheme in the %s category.", s.Category),
		})
	}

	return score, reasons
}

// benefitBonus scales with the largest financial benefit relative to the
// reference amount. Schemes with only non-financial benefits earn half the
// maximum.
func (r *Ranker) benefitBonus(s *models.GovernmentScheme) (float64, float64) {
	amount := s.MaxBenefitAmount()
	if amount > 0 {
		bonus := amount / r.config.BenefitReferenceAmount * r.config.BenefitBonusMax
		if bonus > r.config.BenefitBonusMax {
			bonus = r.config.BenefitBonusMax
		}
		return bonus, amount
	}
	if len(s.Benefits) > 0 {
		return r.config.BenefitBonusMax / 2, 0
	}
	return 0, 0
}
