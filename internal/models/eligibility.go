package models

import (
	"encoding/json"
	"time"
)

// AgeRangeType tags the age range variant.
type AgeRangeType string

const (
	AgeRangeChild         AgeRangeType = "CHILD"
	AgeRangeYoungAdult    AgeRangeType = "YOUNG_ADULT"
	AgeRangeAdult         AgeRangeType = "ADULT"
	AgeRangeSeniorCitizen AgeRangeType = "SENIOR_CITIZEN"
	AgeRangeSpecific      AgeRangeType = "SPECIFIC_AGE"
	AgeRangeNoLimit       AgeRangeType = "NO_AGE_LIMIT"
)

// AgeRange is a tagged age eligibility variant. Canonical variants carry
// fixed boundaries; SPECIFIC_AGE carries its own. MaxAge 0 means no upper
// bound.
type AgeRange struct {
	Type        AgeRangeType `json:"type"`
	MinAge      int          `json:"minAge,omitempty"`
	MaxAge      int          `json:"maxAge,omitempty"`
	Description string       `json:"description,omitempty"`
}

// Bounds returns the effective (min, max) for the variant. max < 0 means
// open-ended.
func (r AgeRange) Bounds() (int, int) {
	switch r.Type {
	case AgeRangeChild:
		return 0, 17
	case AgeRangeYoungAdult:
		return 18, 35
	case AgeRangeAdult:
		return 36, 59
	case AgeRangeSeniorCitizen:
		min := r.MinAge
		if min == 0 {
			min = 60
		}
		return min, -1
	case AgeRangeSpecific:
		max := r.MaxAge
		if max == 0 {
			max = -1
		}
		return r.MinAge, max
	default: // NO_AGE_LIMIT
		return 0, -1
	}
}

// Contains reports whether age satisfies the range.
func (r AgeRange) Contains(age int) bool {
	if r.Type == AgeRangeNoLimit {
		return true
	}
	min, max := r.Bounds()
	if age < min {
		return false
	}
	return max < 0 || age <= max
}

// IsZero reports whether the range was never set. Distinct from
// NO_AGE_LIMIT, which is an explicit sentinel.
func (r AgeRange) IsZero() bool { return r.Type == "" }

// NoAgeLimit is the explicit "all ages" sentinel.
func NoAgeLimit() AgeRange {
	return AgeRange{Type: AgeRangeNoLimit, Description: "All ages eligible"}
}

// SpecificAgeRange builds a bounded SPECIFIC_AGE variant.
func SpecificAgeRange(min, max int, description string) AgeRange {
	return AgeRange{Type: AgeRangeSpecific, MinAge: min, MaxAge: max, Description: description}
}

// IncomeBandType tags the income band variant.
type IncomeBandType string

const (
	IncomeBelowPovertyLine IncomeBandType = "BELOW_POVERTY_LINE"
	IncomeLow              IncomeBandType = "LOW_INCOME"
	IncomeLowerMiddle      IncomeBandType = "LOWER_MIDDLE_INCOME"
	IncomeMiddle           IncomeBandType = "MIDDLE_INCOME"
	IncomeUpperMiddle      IncomeBandType = "UPPER_MIDDLE_INCOME"
	IncomeHigh             IncomeBandType = "HIGH_INCOME"
	IncomeVeryHigh         IncomeBandType = "VERY_HIGH_INCOME"
	IncomeNoLimit          IncomeBandType = "NO_INCOME_LIMIT"
)

// incomeBandRank orders bands from lowest to highest. The ordering is part
// of the BPL matching contract: BPL < LOW < LOWER_MIDDLE < MIDDLE <
// UPPER_MIDDLE < HIGH < VERY_HIGH.
var incomeBandRank = map[IncomeBandType]int{
	IncomeBelowPovertyLine: 0,
	IncomeLow:              1,
	IncomeLowerMiddle:      2,
	IncomeMiddle:           3,
	IncomeUpperMiddle:      4,
	IncomeHigh:             5,
	IncomeVeryHigh:         6,
}

// Rank returns the band's position in the ordering, or -1 for sentinels.
func (t IncomeBandType) Rank() int {
	if r, ok := incomeBandRank[t]; ok {
		return r
	}
	return -1
}

// IncomeBand is a tagged annual household income band. MaxIncome 0 means no
// upper bound.
type IncomeBand struct {
	Type        IncomeBandType `json:"type"`
	MinIncome   float64        `json:"minIncome,omitempty"`
	MaxIncome   float64        `json:"maxIncome,omitempty"`
	Description string         `json:"description,omitempty"`
}

// Bounds returns the effective (min, max) annual income for the band.
// max < 0 means open-ended.
func (b IncomeBand) Bounds() (float64, float64) {
	switch b.Type {
	case IncomeBelowPovertyLine:
		return 0, 0
	case IncomeLow:
		return 0, 100000
	case IncomeLowerMiddle:
		return 100001, 300000
	case IncomeMiddle:
		return 300001, 600000
	case IncomeUpperMiddle:
		return 600001, 1000000
	case IncomeHigh:
		return 1000001, 2000000
	case IncomeVeryHigh:
		return 2000001, -1
	default: // NO_INCOME_LIMIT
		return 0, -1
	}
}

// IsZero reports whether the band was never set.
func (b IncomeBand) IsZero() bool { return b.Type == "" }

// NoIncomeLimit is the explicit "no income restriction" sentinel.
func NoIncomeLimit() IncomeBand {
	return IncomeBand{Type: IncomeNoLimit, Description: "No income restriction"}
}

// DeriveIncomeBand maps an annual household income to its band. The BPL flag
// wins over the numeric boundaries.
func DeriveIncomeBand(annualIncome float64, isBPL bool) IncomeBand {
	if isBPL {
		return IncomeBand{Type: IncomeBelowPovertyLine}
	}
	switch {
	case annualIncome <= 100000:
		return IncomeBand{Type: IncomeLow, MinIncome: 0, MaxIncome: 100000}
	case annualIncome <= 300000:
		return IncomeBand{Type: IncomeLowerMiddle, MinIncome: 100001, MaxIncome: 300000}
	case annualIncome <= 600000:
		return IncomeBand{Type: IncomeMiddle, MinIncome: 300001, MaxIncome: 600000}
	case annualIncome <= 1000000:
		return IncomeBand{Type: IncomeUpperMiddle, MinIncome: 600001, MaxIncome: 1000000}
	case annualIncome <= 2000000:
		return IncomeBand{Type: IncomeHigh, MinIncome: 1000001, MaxIncome: 2000000}
	default:
		return IncomeBand{Type: IncomeVeryHigh, MinIncome: 2000001}
	}
}

// DisabilityType tags the disability status variant.
type DisabilityType string

const (
	DisabilityNone     DisabilityType = "NO_DISABILITY"
	DisabilityMild     DisabilityType = "MILD_DISABILITY"
	DisabilityModerate DisabilityType = "MODERATE_DISABILITY"
	DisabilitySevere   DisabilityType = "SEVERE_DISABILITY"
	DisabilityAny      DisabilityType = "ANY_DISABILITY"
)

// DisabilityStatus is a tagged certified-disability percentage band.
// MaxPercent 0 means any percentage at or above MinPercent.
type DisabilityStatus struct {
	Type        DisabilityType `json:"type"`
	MinPercent  int            `json:"minPercent,omitempty"`
	MaxPercent  int            `json:"maxPercent,omitempty"`
	Description string         `json:"description,omitempty"`
}

// Bounds returns the effective percentage band. max < 0 means open-ended.
func (d DisabilityStatus) Bounds() (int, int) {
	switch d.Type {
	case DisabilityMild:
		return 40, 49
	case DisabilityModerate:
		return 50, 74
	case DisabilitySevere:
		return 75, 100
	case DisabilityAny:
		min := d.MinPercent
		if min == 0 {
			min = 40
		}
		return min, -1
	default: // NO_DISABILITY
		return 0, 0
	}
}

// Matches reports whether a certified disability percentage falls inside the
// band.
func (d DisabilityStatus) Matches(percent int) bool {
	if d.Type == DisabilityNone {
		return percent == 0
	}
	min, max := d.Bounds()
	if percent < min {
		return false
	}
	return max < 0 || percent <= max
}

// ResidenceType of an address. RESIDENCE_ANY on a scheme means no
// restriction.
type ResidenceType string

const (
	ResidenceRural     ResidenceType = "RURAL"
	ResidenceUrban     ResidenceType = "URBAN"
	ResidenceSemiUrban ResidenceType = "SEMI_URBAN"
	ResidenceAny       ResidenceType = "ANY"
)

// MatchType governs how eligibility dimensions combine.
type MatchType string

const (
	MatchAll MatchType = "ALL" // conjunction: every dimension must match
	MatchAny MatchType = "ANY" // disjunction: at least one dimension must match
)

// OneOrMany accepts either a scalar or an array in JSON, matching how scheme
// records declare single-value and multi-value restrictions.
type OneOrMany[T ~string] []T

func (m *OneOrMany[T]) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '[' {
		var many []T
		if err := json.Unmarshal(data, &many); err != nil {
			return err
		}
		*m = many
		return nil
	}
	var one T
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*m = OneOrMany[T]{one}
	return nil
}

// Contains reports membership. An empty list is "no restriction" and is not
// consulted by the evaluator.
func (m OneOrMany[T]) Contains(v T) bool {
	for _, e := range m {
		if e == v {
			return true
		}
	}
	return false
}

// AdditionalCriterion is an opaque scheme-specific requirement resolved
// against caller-supplied user attributes.
type AdditionalCriterion struct {
	Key         string      `json:"key"`
	Value       interface{} `json:"value"`
	Description string      `json:"description"`
}

// SchemeEligibility is a scheme's full criteria record. AgeRange,
// IncomeBand and ResidenceType are always present (possibly as sentinels);
// every other dimension is optional and an absent dimension always matches.
type SchemeEligibility struct {
	ID       string `json:"id"`
	SchemeID string `json:"schemeId"`

	AgeRange      AgeRange      `json:"ageRange"`
	IncomeBand    IncomeBand    `json:"incomeBand"`
	ResidenceType ResidenceType `json:"residenceType"`

	Genders            OneOrMany[Gender]           `json:"gender,omitempty"`
	SocialCategories   OneOrMany[SocialCategory]   `json:"socialCategory,omitempty"`
	States             OneOrMany[IndianState]      `json:"states,omitempty"`
	EmploymentStatuses OneOrMany[EmploymentStatus] `json:"employmentStatus,omitempty"`
	EducationLevels    OneOrMany[EducationLevel]   `json:"educationLevel,omitempty"`
	MaritalStatuses    OneOrMany[MaritalStatus]    `json:"maritalStatus,omitempty"`

	Disability         *DisabilityStatus     `json:"disabilityStatus,omitempty"`
	AdditionalCriteria []AdditionalCriterion `json:"additionalCriteria,omitempty"`

	MatchType   MatchType `json:"matchType"`
	Description string    `json:"description,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// EligibilityCheckResult is the evaluator's structured verdict.
// MatchedCriteria and UnmatchedCriteria together cover every dimension
// present on the eligibility record.
type EligibilityCheckResult struct {
	IsEligible        bool     `json:"isEligible"`
	ConfidenceScore   int      `json:"confidenceScore"`
	MatchedCriteria   []string `json:"matchedCriteria"`
	UnmatchedCriteria []string `json:"unmatchedCriteria"`
	Reasons           []string `json:"reasons"`
	Suggestions       []string `json:"suggestions,omitempty"`
}
