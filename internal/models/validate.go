package models

import (
	"errors"
	"strings"
)

// Common validation errors.
var (
	ErrEmptyProfileID     = errors.New("profile id cannot be empty")
	ErrMissingDateOfBirth = errors.New("profile date of birth is required")
	ErrNegativeIncome     = errors.New("annual income cannot be negative")
	ErrInvalidDisability  = errors.New("disability percentage must be between 0 and 100")
	ErrUnknownEmployment  = errors.New("employment status is not a known value")
	ErrMissingAgeRange    = errors.New("eligibility age range is required")
	ErrMissingIncomeBand  = errors.New("eligibility income band is required")
	ErrMissingResidence   = errors.New("eligibility residence type is required")
	ErrInvalidMatchType   = errors.New("eligibility match type must be ALL or ANY")
)

// ValidateProfile checks a profile snapshot for facts the engine cannot
// degrade around. Optional facts (household, disability) are allowed to be
// absent.
func ValidateProfile(p *UserProfile) error {
	if strings.TrimSpace(p.ID) == "" {
		return ErrEmptyProfileID
	}
	if p.DateOfBirth.IsZero() {
		return ErrMissingDateOfBirth
	}
	if p.Household != nil && p.Household.AnnualIncome < 0 {
		return ErrNegativeIncome
	}
	if p.Disability != nil && (p.Disability.Percentage < 0 || p.Disability.Percentage > 100) {
		return ErrInvalidDisability
	}
	if p.Employment.Status != "" && !p.Employment.Status.IsValid() {
		return ErrUnknownEmployment
	}
	return nil
}

// ValidateEligibility checks the required dimensions of an eligibility
// record. A missing required dimension is a data-integrity problem, not a
// degradable gap.
func ValidateEligibility(e *SchemeEligibility) error {
	if e.AgeRange.IsZero() {
		return ErrMissingAgeRange
	}
	if e.IncomeBand.IsZero() {
		return ErrMissingIncomeBand
	}
	if e.ResidenceType == "" {
		return ErrMissingResidence
	}
	if e.MatchType != MatchAll && e.MatchType != MatchAny {
		return ErrInvalidMatchType
	}
	return nil
}
