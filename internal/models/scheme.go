package models

import (
	"math"
	"time"
)

// BenefitType distinguishes cash transfers from subsidies and services.
type BenefitType string

const (
	BenefitFinancial BenefitType = "FINANCIAL"
	BenefitSubsidy   BenefitType = "SUBSIDY"
	BenefitService   BenefitType = "SERVICE"
	BenefitInKind    BenefitType = "IN_KIND"
)

// SchemeBenefit describes one benefit a scheme provides.
type SchemeBenefit struct {
	Type           BenefitType `json:"type"`
	Description    string      `json:"description"`
	Amount         float64     `json:"amount,omitempty"`     // INR, for financial benefits
	Percentage     float64     `json:"percentage,omitempty"` // for subsidy benefits
	Frequency      string      `json:"frequency,omitempty"`  // ONE_TIME, MONTHLY, QUARTERLY, YEARLY
	DurationMonths int         `json:"durationMonths,omitempty"`
}

// RequiredDocument is one document a scheme application needs.
type RequiredDocument struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Mandatory   bool   `json:"mandatory"`
	Description string `json:"description,omitempty"`
}

// ApplicationDeadline describes a scheme's application window.
type ApplicationDeadline struct {
	HasDeadline bool       `json:"hasDeadline"`
	Date        *time.Time `json:"date,omitempty"`
	IsOpen      bool       `json:"isOpen"`
	OpensOn     *time.Time `json:"opensOn,omitempty"`
	Description string     `json:"description,omitempty"`
}

// DaysRemaining returns whole days until the deadline at the reference
// time, negative once the deadline has passed. ok is false when there is no
// dated deadline. Flooring keeps a deadline later today at 0 while an
// already-passed one goes to -1, never rounding a lapsed deadline up to 0.
func (d ApplicationDeadline) DaysRemaining(now time.Time) (int, bool) {
	if !d.HasDeadline || d.Date == nil {
		return 0, false
	}
	remaining := int(math.Floor(d.Date.Sub(now).Hours() / 24))
	return remaining, true
}

// GovernmentScheme is a catalog record: a program with eligibility criteria
// and benefits. Supplied by the scheme catalog; the engine never mutates it.
type GovernmentScheme struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	ShortDescription string         `json:"shortDescription,omitempty"`
	Description      string         `json:"description,omitempty"`
	Category         SchemeCategory `json:"category"`
	SubCategory      string         `json:"subCategory,omitempty"`
	ManagedBy        string         `json:"managedBy,omitempty"`
	Level            SchemeLevel    `json:"level,omitempty"`

	ApplicableStates []IndianState `json:"applicableStates,omitempty"`

	Eligibility       SchemeEligibility   `json:"eligibility"`
	Benefits          []SchemeBenefit     `json:"benefits,omitempty"`
	RequiredDocuments []RequiredDocument  `json:"requiredDocuments,omitempty"`
	Deadline          ApplicationDeadline `json:"deadline"`

	Tags             []string     `json:"tags,omitempty"`
	ViewCount        int          `json:"viewCount,omitempty"`
	ApplicationCount int          `json:"applicationCount,omitempty"`
	Status           SchemeStatus `json:"status"`
	Featured         bool         `json:"featured,omitempty"`

	LaunchedOn *time.Time `json:"launchedOn,omitempty"`
	CreatedAt  time.Time  `json:"createdAt,omitempty"`
	UpdatedAt  time.Time  `json:"updatedAt,omitempty"`
}

// MaxBenefitAmount returns the largest financial benefit amount the scheme
// offers, or 0 when it has none.
func (s *GovernmentScheme) MaxBenefitAmount() float64 {
	var max float64
	for _, b := range s.Benefits {
		if b.Amount > max {
			max = b.Amount
		}
	}
	return max
}

// Summary reduces the scheme to its listing shape.
func (s *GovernmentScheme) Summary() SchemeSummary {
	return SchemeSummary{
		ID:               s.ID,
		Name:             s.Name,
		ShortDescription: s.ShortDescription,
		Category:         s.Category,
		ManagedBy:        s.ManagedBy,
		Level:            s.Level,
		Deadline:         s.Deadline,
		Tags:             s.Tags,
		Featured:         s.Featured,
		Status:           s.Status,
		ViewCount:        s.ViewCount,
		MaxBenefit:       s.MaxBenefitAmount(),
	}
}

// SchemeSummary is the lightweight scheme shape used in results.
type SchemeSummary struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	ShortDescription string              `json:"shortDescription,omitempty"`
	Category         SchemeCategory      `json:"category"`
	ManagedBy        string              `json:"managedBy,omitempty"`
	Level            SchemeLevel         `json:"level,omitempty"`
	Deadline         ApplicationDeadline `json:"deadline"`
	Tags             []string            `json:"tags,omitempty"`
	Featured         bool                `json:"featured,omitempty"`
	Status           SchemeStatus        `json:"status"`
	ViewCount        int                 `json:"viewCount,omitempty"`
	MaxBenefit       float64             `json:"maxBenefit,omitempty"`
}
