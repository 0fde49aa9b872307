package models

import "time"

// ReasonType tags a recommendation reason variant.
type ReasonType string

const (
	ReasonHighEligibility   ReasonType = "HIGH_ELIGIBILITY"
	ReasonPerfectMatch      ReasonType = "PERFECT_MATCH"
	ReasonPopularInCategory ReasonType = "POPULAR_IN_CATEGORY"
	ReasonExpiringSoon      ReasonType = "EXPIRING_SOON"
	ReasonHighBenefit       ReasonType = "HIGH_BENEFIT"
	ReasonUserPreference    ReasonType = "USER_PREFERENCE"
	ReasonTrending          ReasonType = "TRENDING"
)

// RecommendationReason is a typed reason with variant-specific payload
// fields; only the fields relevant to Type are set.
type RecommendationReason struct {
	Type            ReasonType     `json:"type"`
	Score           float64        `json:"score,omitempty"`
	MatchedCriteria []string       `json:"matchedCriteria,omitempty"`
	Category        SchemeCategory `json:"category,omitempty"`
	DaysRemaining   int            `json:"daysRemaining,omitempty"`
	BenefitAmount   float64        `json:"benefitAmount,omitempty"`
	Description     string         `json:"description"`
}

// PriorityTier buckets recommendations by composite score.
type PriorityTier string

const (
	PriorityHigh   PriorityTier = "HIGH"
	PriorityMedium PriorityTier = "MEDIUM"
	PriorityLow    PriorityTier = "LOW"
)

// SortField selects the primary ranking key.
type SortField string

const (
	SortByScore         SortField = "SCORE"
	SortByBenefitAmount SortField = "BENEFIT_AMOUNT"
	SortByDeadline      SortField = "DEADLINE"
	SortByPopularity    SortField = "POPULARITY"
)

// SchemeRecommendation is one ranked scheme with its eligibility verdict.
type SchemeRecommendation struct {
	Scheme           SchemeSummary          `json:"scheme"`
	Score            float64                `json:"score"`
	Eligibility      EligibilityCheckResult `json:"eligibility"`
	Reasons          []RecommendationReason `json:"reasons"`
	Priority         PriorityTier           `json:"priority"`
	AlreadyApplied   bool                   `json:"alreadyApplied"`
	Saved            bool                   `json:"saved"`
	EstimatedBenefit float64                `json:"estimatedBenefit,omitempty"`
	NextSteps        []string               `json:"nextSteps,omitempty"`
}

// CategoryCount is one entry of the category breakdown.
type CategoryCount struct {
	Category  SchemeCategory `json:"category"`
	Count     int            `json:"count"`
	TopScheme *SchemeSummary `json:"topScheme,omitempty"`
}

// AlmostEligibleScheme is a scheme the user misses by exactly one closable
// criterion.
type AlmostEligibleScheme struct {
	Scheme          SchemeSummary `json:"scheme"`
	MissingCriteria []string      `json:"missingCriteria"`
	HowToQualify    []string      `json:"howToQualify,omitempty"`
}

// ExpiringScheme is an eligible scheme whose deadline is inside the horizon.
type ExpiringScheme struct {
	Scheme        SchemeSummary `json:"scheme"`
	DaysRemaining int           `json:"daysRemaining"`
}

// RecommendationInsights carries aggregate guidance alongside the ranking.
type RecommendationInsights struct {
	MissingProfileInfo []string               `json:"missingProfileInfo,omitempty"`
	EligibilityTips    []string               `json:"eligibilityTips,omitempty"`
	AlmostEligible     []AlmostEligibleScheme `json:"almostEligible,omitempty"`
	ExpiringSoon       []ExpiringScheme       `json:"expiringSoon,omitempty"`
}

// RecommendationMetadata stamps provenance on a result.
type RecommendationMetadata struct {
	GeneratedAt           time.Time `json:"generatedAt"`
	AlgorithmVersion      string    `json:"algorithmVersion"`
	ProfileCompleteness   int       `json:"profileCompleteness"`
	IncludesAISuggestions bool      `json:"includesAISuggestions"`
	ProcessingTimeMs      int64     `json:"processingTimeMs"`
	SkippedSchemes        int       `json:"skippedSchemes"`
}

// RecommendationResult is the ranker's full output. Recommendations are
// sorted by the requested key with the documented tie-break chain.
type RecommendationResult struct {
	UserID               string                 `json:"userId"`
	Recommendations      []SchemeRecommendation `json:"recommendations"`
	TotalEligibleSchemes int                    `json:"totalEligibleSchemes"`
	CategoryBreakdown    []CategoryCount        `json:"categoryBreakdown"`
	Metadata             RecommendationMetadata `json:"metadata"`
	Insights             RecommendationInsights `json:"insights"`
	Stale                bool                   `json:"stale"`
	RefreshAfter         time.Time              `json:"refreshAfter"`
}

// RecommendationPreferences customizes a ranking pass. AppliedSchemeIDs
// identifies schemes the user has already applied to; those are excluded
// entirely, not merely penalized.
type RecommendationPreferences struct {
	PriorityCategories    []SchemeCategory `json:"priorityCategories,omitempty"`
	ExcludedCategories    []SchemeCategory `json:"excludedCategories,omitempty"`
	IncludeAlmostEligible bool             `json:"includeAlmostEligible"`
	MinEligibilityScore   int              `json:"minEligibilityScore"`
	MaxRecommendations    int              `json:"maxRecommendations"`
	SortBy                SortField        `json:"sortBy,omitempty"`
	AppliedSchemeIDs      []string         `json:"appliedSchemeIds,omitempty"`
	SavedSchemeIDs        []string         `json:"savedSchemeIds,omitempty"`
}
