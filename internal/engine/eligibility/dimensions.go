// internal/engine/eligibility/dimensions.go
package eligibility

import (
	"fmt"
	"time"

	"scheme-recommender/internal/models"
)

// Dimension labels used in matched/unmatched criteria lists.
const (
	DimAgeRange       = "ageRange"
	DimIncomeBand     = "incomeBand"
	DimResidenceType  = "residenceType"
	DimGender         = "gender"
	DimSocialCategory = "socialCategory"
	DimState          = "state"
	DimEmployment     = "employmentStatus"
	DimEducation      = "educationLevel"
	DimMaritalStatus  = "maritalStatus"
	DimDisability     = "disability"
	dimAdditional     = "additional:"
)

// dimension is one independently evaluated criterion. suggestion is set
// only when the gap is closable by user action.
type dimension struct {
	name       string
	matched    bool
	reason     string
	suggestion string
}

// checkDimensions evaluates every dimension present on the record, in a
// fixed order so identical inputs yield identical results.
func (e *Evaluator) checkDimensions(profile *models.UserProfile, elig *models.SchemeEligibility, now time.Time) []dimension {
	dims := []dimension{
		e.checkAge(profile, elig.AgeRange, now),
		e.checkIncome(profile, elig.IncomeBand),
		checkResidence(profile, elig.ResidenceType),
	}

	if len(elig.Genders) > 0 {
		dims = append(dims, checkMembership(DimGender, "gender", profile.Gender, elig.Genders))
	}
	if len(elig.SocialCategories) > 0 {
		dims = append(dims, checkMembership(DimSocialCategory, "social category", profile.SocialCategory, elig.SocialCategories))
	}
	if len(elig.States) > 0 {
		dims = append(dims, checkMembership(DimState, "state", profile.Address.State, elig.States))
	}
	if len(elig.EmploymentStatuses) > 0 {
		dims = append(dims, checkMembership(DimEmployment, "employment status", profile.Employment.Status, elig.EmploymentStatuses))
	}
	if len(elig.EducationLevels) > 0 {
		dims = append(dims, checkMembership(DimEducation, "education level", profile.Education.Level, elig.EducationLevels))
	}
	if len(elig.MaritalStatuses) > 0 {
		dims = append(dims, checkMembership(DimMaritalStatus, "marital status", profile.MaritalStatus, elig.MaritalStatuses))
	}
	if elig.Disability != nil {
		dims = append(dims, checkDisability(profile, *elig.Disability))
	}
	for _, c := range elig.AdditionalCriteria {
		dims = append(dims, e.checkAdditional(c))
	}

	return dims
}

func (e *Evaluator) checkAge(profile *models.UserProfile, r models.AgeRange, now time.Time) dimension {
	if r.Type == models.AgeRangeNoLimit {
		return dimension{name: DimAgeRange, matched: true, reason: "No age restriction applies."}
	}
	if profile.DateOfBirth.IsZero() {
		return dimension{
			name:       DimAgeRange,
			reason:     "Date of birth is missing from the profile, so the age requirement cannot be confirmed.",
			suggestion: "Add your date of birth to your profile.",
		}
	}

	age := profile.AgeAt(now)
	min, max := r.Bounds()

	if r.Contains(age) {
		return dimension{
			name:    DimAgeRange,
			matched: true,
			reason:  fmt.Sprintf("Age %d satisfies the scheme's age requirement.", age),
		}
	}

	d := dimension{name: DimAgeRange}
	if age < min {
		d.reason = fmt.Sprintf("Age %d is below the minimum age of %d.", age, min)
		if e.config.SuggestFutureEligibility {
			years := min - age
			d.suggestion = fmt.Sprintf("You will meet the minimum age of %d in %d year(s).", min, years)
		}
	} else {
		d.reason = fmt.Sprintf("Age %d is above the maximum age of %d.", age, max)
	}
	return d
}

func (e *Evaluator) checkIncome(profile *models.UserProfile, band models.IncomeBand) dimension {
	if band.Type == models.IncomeNoLimit {
		return dimension{name: DimIncomeBand, matched: true, reason: "No income restriction applies."}
	}

	userBand, ok := profile.CurrentIncomeBand()
	if !ok {
		return dimension{
			name:       DimIncomeBand,
			reason:     "Household income is missing from the profile, so the income requirement cannot be confirmed.",
			suggestion: "Add your household income details to your profile.",
		}
	}

	// BELOW_POVERTY_LINE matches only a band at or below BPL in the
	// explicit ordering.
	if band.Type == models.IncomeBelowPovertyLine {
		if userBand.Type.Rank() <= models.IncomeBelowPovertyLine.Rank() {
			return dimension{
				name:    DimIncomeBand,
				matched: true,
				reason:  "Household is classified Below Poverty Line as the scheme requires.",
			}
		}
		return dimension{
			name:   DimIncomeBand,
			reason: "The scheme is restricted to Below Poverty Line households.",
		}
	}

	income := profile.Household.AnnualIncome
	min, max := band.Bounds()
	if income >= min && (max < 0 || income <= max) {
		return dimension{
			name:    DimIncomeBand,
			matched: true,
			reason:  fmt.Sprintf("Annual household income of %.0f falls within the required band.", income),
		}
	}

	d := dimension{name: DimIncomeBand}
	if max < 0 {
		d.reason = fmt.Sprintf("Annual household income of %.0f is below the required minimum of %.0f.", income, min)
	} else {
		d.reason = fmt.Sprintf("Annual household income of %.0f is outside the required band of %.0f to %.0f.", income, min, max)
		if income > max {
			d.suggestion = fmt.Sprintf("The scheme requires annual household income at or below %.0f.", max)
		}
	}
	return d
}

func checkResidence(profile *models.UserProfile, required models.ResidenceType) dimension {
	if required == models.ResidenceAny {
		return dimension{name: DimResidenceType, matched: true, reason: "Open to all residence types."}
	}
	if profile.Address.ResidenceType == required {
		return dimension{
			name:    DimResidenceType,
			matched: true,
			reason:  fmt.Sprintf("Residence type %s matches the scheme's requirement.", required),
		}
	}
	return dimension{
		name:   DimResidenceType,
		reason: fmt.Sprintf("The scheme is restricted to %s residents.", required),
	}
}

// checkMembership handles the unset / single value / set-of-values pattern
// shared by the categorical dimensions. Callers only invoke it when the
// restriction is present.
func checkMembership[T ~string](name, label string, value T, allowed models.OneOrMany[T]) dimension {
	if value == "" {
		return dimension{
			name:   name,
			reason: fmt.Sprintf("The profile does not declare a %s, so this requirement cannot be confirmed.", label),
		}
	}
	if allowed.Contains(value) {
		return dimension{
			name:    name,
			matched: true,
			reason:  fmt.Sprintf("The declared %s meets the scheme's requirement.", label),
		}
	}
	return dimension{
		name:   name,
		reason: fmt.Sprintf("The scheme restricts eligibility by %s and the profile does not qualify.", label),
	}
}

func checkDisability(profile *models.UserProfile, required models.DisabilityStatus) dimension {
	if profile.Disability == nil {
		// No declared disability is percentage 0, which satisfies a
		// NO_DISABILITY restriction.
		if required.Type == models.DisabilityNone {
			return dimension{
				name:    DimDisability,
				matched: true,
				reason:  "The scheme is restricted to persons without a certified disability.",
			}
		}
		return dimension{
			name:       DimDisability,
			reason:     "The scheme requires a certified disability and the profile declares none.",
			suggestion: "Obtain a disability certificate from a competent authority and add it to your profile.",
		}
	}

	info := profile.Disability
	if required.Matches(info.Percentage) {
		return dimension{
			name:    DimDisability,
			matched: true,
			reason:  fmt.Sprintf("Certified disability of %d%% satisfies the scheme's requirement.", info.Percentage),
		}
	}

	d := dimension{
		name:   DimDisability,
		reason: fmt.Sprintf("Certified disability of %d%% does not fall within the scheme's required band.", info.Percentage),
	}
	if info.CertificateNumber == "" {
		d.suggestion = "Obtain a disability certificate from a competent authority and add it to your profile."
	}
	return d
}

// checkAdditional resolves an opaque scheme-specific criterion against the
// caller-supplied attribute lookup. An unresolvable key is unmatched.
func (e *Evaluator) checkAdditional(c models.AdditionalCriterion) dimension {
	name := dimAdditional + c.Key
	if e.resolver == nil {
		return dimension{
			name:   name,
			reason: fmt.Sprintf("Requirement %q could not be verified from the profile.", c.Description),
		}
	}
	value, ok := e.resolver(c.Key)
	if !ok {
		return dimension{
			name:   name,
			reason: fmt.Sprintf("Requirement %q could not be verified from the profile.", c.Description),
		}
	}
	if fmt.Sprintf("%v", value) == fmt.Sprintf("%v", c.Value) {
		return dimension{
			name:    name,
			matched: true,
			reason:  fmt.Sprintf("Requirement %q is met.", c.Description),
		}
	}
	return dimension{
		name:   name,
		reason: fmt.Sprintf("Requirement %q is not met.", c.Description),
	}
}
