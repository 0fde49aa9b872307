// internal/engine/recommend/sort.go
package recommend

import (
	"sort"

	"scheme-recommender/internal/models"
)

// sortRecommendations orders the list by the requested key. Ties fall
// through a fixed chain (score, deadline, benefit, scheme ID) so the final
// order is total and reproducible across runs.
func sortRecommendations(recs []models.SchemeRecommendation, by models.SortField) {
	sort.SliceStable(recs, func(i, j int) bool {
		a, b := &recs[i], &recs[j]
		if c := comparePrimary(a, b, by); c != 0 {
			return c < 0
		}
		if c := compareScore(a, b); c != 0 {
			return c < 0
		}
		if c := compareDeadline(a, b); c != 0 {
			return c < 0
		}
		if c := compareBenefit(a, b); c != 0 {
			return c < 0
		}
		return a.Scheme.ID < b.Scheme.ID
	})
}

func comparePrimary(a, b *models.SchemeRecommendation, by models.SortField) int {
	switch by {
	case models.SortByBenefitAmount:
		return compareBenefit(a, b)
	case models.SortByDeadline:
		return compareDeadline(a, b)
	case models.SortByPopularity:
		return descInt(a.Scheme.ViewCount, b.Scheme.ViewCount)
	default:
		return compareScore(a, b)
	}
}

func compareScore(a, b *models.SchemeRecommendation) int {
	switch {
	case a.Score > b.Score:
		return -1
	case a.Score < b.Score:
		return 1
	}
	return 0
}

func compareBenefit(a, b *models.SchemeRecommendation) int {
	switch {
	case a.EstimatedBenefit > b.EstimatedBenefit:
		return -1
	case a.EstimatedBenefit < b.EstimatedBenefit:
		return 1
	}
	return 0
}

// compareDeadline sorts nearer dated deadlines first; schemes without a
// dated deadline sort after any that have one.
func compareDeadline(a, b *models.SchemeRecommendation) int {
	da, oka := deadlineDate(a)
	db, okb := deadlineDate(b)
	switch {
	case oka && okb:
		if da < db {
			return -1
		}
		if da > db {
			return 1
		}
		return 0
	case oka:
		return -1
	case okb:
		return 1
	}
	return 0
}

func deadlineDate(r *models.SchemeRecommendation) (t int64, ok bool) {
	d := r.Scheme.Deadline
	if !d.HasDeadline || d.Date == nil {
		return 0, false
	}
	return d.Date.Unix(), true
}

func descInt(a, b int) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	}
	return 0
}
