// internal/engine/recommend/insights.go
package recommend

import (
	"sort"
	"time"

	"scheme-recommender/internal/models"
)

// buildCategoryBreakdown aggregates all eligible schemes, not just the
// truncated recommendation list, so the counts describe the user's full
// opportunity surface. The top scheme per category is the highest scored.
func buildCategoryBreakdown(eligible []scoredScheme) []models.CategoryCount {
	counts := make(map[models.SchemeCategory]*models.CategoryCount)
	best := make(map[models.SchemeCategory]float64)

	for _, e := range eligible {
		cat := e.scheme.Category
		entry, ok := counts[cat]
		if !ok {
			entry = &models.CategoryCount{Category: cat}
			counts[cat] = entry
		}
		entry.Count++
		if entry.TopScheme == nil || e.score > best[cat] ||
			(e.score == best[cat] && e.scheme.ID < entry.TopScheme.ID) {
			summary := e.scheme.Summary()
			entry.TopScheme = &summary
			best[cat] = e.score
		}
	}

	breakdown := make([]models.CategoryCount, 0, len(counts))
	for _, entry := range counts {
		breakdown = append(breakdown, *entry)
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Count != breakdown[j].Count {
			return breakdown[i].Count > breakdown[j].Count
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown
}

// buildExpiringSoon lists eligible schemes whose dated deadline falls within
// the horizon, nearest first.
func buildExpiringSoon(eligible []scoredScheme, now time.Time, horizonDays int) []models.ExpiringScheme {
	var expiring []models.ExpiringScheme
	for _, e := range eligible {
		days, ok := e.scheme.Deadline.DaysRemaining(now)
		if !ok || days < 0 || days > horizonDays {
			continue
		}
		expiring = append(expiring, models.ExpiringScheme{
			Scheme:        e.scheme.Summary(),
			DaysRemaining: days,
		})
	}
	sort.Slice(expiring, func(i, j int) bool {
		if expiring[i].DaysRemaining != expiring[j].DaysRemaining {
			return expiring[i].DaysRemaining < expiring[j].DaysRemaining
		}
		return expiring[i].Scheme.ID < expiring[j].Scheme.ID
	})
	return expiring
}

// missingProfileInfo names the profile sections whose absence degrades
// eligibility checks to unmatched.
func missingProfileInfo(profile *models.UserProfile) []string {
	var missing []string
	if profile.DateOfBirth.IsZero() {
		missing = append(missing, "dateOfBirth")
	}
	if profile.Household == nil {
		missing = append(missing, "household")
	}
	if profile.Gender == "" {
		missing = append(missing, "gender")
	}
	if profile.SocialCategory == "" {
		missing = append(missing, "socialCategory")
	}
	if profile.Address.State == "" {
		missing = append(missing, "address.state")
	}
	if profile.Employment.Status == "" {
		missing = append(missing, "employment.status")
	}
	if profile.Education.Level == "" {
		missing = append(missing, "education.level")
	}
	if profile.MaritalStatus == "" {
		missing = append(missing, "maritalStatus")
	}
	return missing
}
