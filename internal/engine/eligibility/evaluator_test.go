// internal/engine/eligibility/evaluator_test.go
package eligibility

import (
	"testing"
	"time"

	"scheme-recommender/internal/common/errors"
	"scheme-recommender/internal/common/logger"
	"scheme-recommender/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func createTestEvaluator(t *testing.T) *Evaluator {
	return New(nil, nil, logger.NewTestLogger(t))
}

func createTestProfile(age int, annualIncome float64) *models.UserProfile {
	return &models.UserProfile{
		ID:             "user-123",
		FullName:       "Asha Kumari",
		DateOfBirth:    testNow.AddDate(-age, 0, -30),
		Gender:         models.GenderFemale,
		SocialCategory: models.SocialCategoryOBC,
		MaritalStatus:  models.MaritalSingle,
		Address: models.Address{
			City:          "Patna",
			State:         models.StateBihar,
			ResidenceType: models.ResidenceRural,
		},
		Household: &models.HouseholdInfo{
			FamilySize:   4,
			AnnualIncome: annualIncome,
		},
		Education:  models.EducationInfo{Level: models.EducationSecondary},
		Employment: models.EmploymentInfo{Status: models.EmploymentUnemployed},
	}
}

func createTestEligibility() *models.SchemeEligibility {
	return &models.SchemeEligibility{
		SchemeID:      "scheme-001",
		AgeRange:      models.SpecificAgeRange(18, 40, "Working age"),
		IncomeBand:    models.IncomeBand{Type: models.IncomeLow},
		ResidenceType: models.ResidenceAny,
		MatchType:     models.MatchAll,
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestEvaluator_Evaluate_AllMatch(t *testing.T) {
	evaluator := createTestEvaluator(t)
	profile := createTestProfile(30, 80000)
	elig := createTestEligibility()

	result, err := evaluator.Evaluate(profile, elig, testNow)
	require.NoError(t, err)

	assert.True(t, result.IsEligible)
	assert.Equal(t, 100, result.ConfidenceScore)
	assert.ElementsMatch(t, []string{DimAgeRange, DimIncomeBand, DimResidenceType}, result.MatchedCriteria)
	assert.Empty(t, result.UnmatchedCriteria)
	assert.Nil(t, result.Suggestions)
	assert.Len(t, result.Reasons, 3)
}

func TestEvaluator_Evaluate_UnderageWithFutureSuggestion(t *testing.T) {
	evaluator := createTestEvaluator(t)
	profile := createTestProfile(16, 80000)
	elig := createTestEligibility()

	result, err := evaluator.Evaluate(profile, elig, testNow)
	require.NoError(t, err)

	assert.False(t, result.IsEligible)
	assert.Equal(t, []string{DimAgeRange}, result.UnmatchedCriteria)
	// 2 of 3 present dimensions matched.
	assert.Equal(t, 66, result.ConfidenceScore)
	require.Len(t, result.Suggestions, 1)
	assert.Contains(t, result.Suggestions[0], "minimum age of 18")
	assert.Contains(t, result.Suggestions[0], "2 year(s)")
}

func TestEvaluator_Evaluate_OverMaxAgeNoSuggestion(t *testing.T) {
	evaluator := createTestEvaluator(t)
	profile := createTestProfile(55, 80000)
	elig := createTestEligibility()

	result, err := evaluator.Evaluate(profile, elig, testNow)
	require.NoError(t, err)

	assert.False(t, result.IsEligible)
	assert.Equal(t, []string{DimAgeRange}, result.UnmatchedCriteria)
	// Being too old is not a closable gap.
	assert.Empty(t, result.Suggestions)
}

func TestEvaluator_Evaluate_IncomeAboveBand(t *testing.T) {
	evaluator := createTestEvaluator(t)
	profile := createTestProfile(30, 250000)
	elig := createTestEligibility()

	result, err := evaluator.Evaluate(profile, elig, testNow)
	require.NoError(t, err)

	assert.False(t, result.IsEligible)
	assert.Equal(t, []string{DimIncomeBand}, result.UnmatchedCriteria)
	require.Len(t, result.Suggestions, 1)
	assert.Contains(t, result.Suggestions[0], "100000")
}

func TestEvaluator_Evaluate_BPLRestriction(t *testing.T) {
	evaluator := createTestEvaluator(t)
	elig := createTestEligibility()
	elig.IncomeBand = models.IncomeBand{Type: models.IncomeBelowPovertyLine}

	bplProfile := createTestProfile(30, 40000)
	bplProfile.Household.IsBPL = true

	result, err := evaluator.Evaluate(bplProfile, elig, testNow)
	require.NoError(t, err)
	assert.True(t, result.IsEligible)

	aplProfile := createTestProfile(30, 40000)
	result, err = evaluator.Evaluate(aplProfile, elig, testNow)
	require.NoError(t, err)
	assert.False(t, result.IsEligible)
	assert.Equal(t, []string{DimIncomeBand}, result.UnmatchedCriteria)
}

func TestEvaluator_Evaluate_MatchAnySemantics(t *testing.T) {
	evaluator := createTestEvaluator(t)
	elig := createTestEligibility()
	elig.MatchType = models.MatchAny

	tests := []struct {
		name           string
		profile        *models.UserProfile
		wantEligible   bool
		wantConfidence int
	}{
		{
			name:           "one dimension matches",
			profile:        createTestProfile(55, 80000), // age fails, income and residence match
			wantEligible:   true,
			wantConfidence: 100,
		},
		{
			name:           "all dimensions match",
			profile:        createTestProfile(30, 80000),
			wantEligible:   true,
			wantConfidence: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := evaluator.Evaluate(tt.profile, elig, testNow)
			require.NoError(t, err)
			assert.Equal(t, tt.wantEligible, result.IsEligible)
			assert.Equal(t, tt.wantConfidence, result.ConfidenceScore)
		})
	}
}

func TestEvaluator_Evaluate_MatchAnyNothingMatches(t *testing.T) {
	evaluator := createTestEvaluator(t)
	elig := &models.SchemeEligibility{
		SchemeID:      "scheme-002",
		AgeRange:      models.SpecificAgeRange(60, 0, "Seniors only"),
		IncomeBand:    models.IncomeBand{Type: models.IncomeBelowPovertyLine},
		ResidenceType: models.ResidenceUrban,
		MatchType:     models.MatchAny,
	}
	profile := createTestProfile(30, 500000)

	result, err := evaluator.Evaluate(profile, elig, testNow)
	require.NoError(t, err)

	assert.False(t, result.IsEligible)
	assert.Equal(t, 0, result.ConfidenceScore)
	assert.Empty(t, result.MatchedCriteria)
}

// ==========================
// Degraded Profile Tests
// ==========================

func TestEvaluator_Evaluate_MissingDateOfBirth(t *testing.T) {
	evaluator := createTestEvaluator(t)
	profile := createTestProfile(30, 80000)
	profile.DateOfBirth = time.Time{}
	elig := createTestEligibility()

	result, err := evaluator.Evaluate(profile, elig, testNow)
	require.NoError(t, err)

	assert.False(t, result.IsEligible)
	assert.Contains(t, result.UnmatchedCriteria, DimAgeRange)
	require.NotEmpty(t, result.Suggestions)
	assert.Contains(t, result.Suggestions[0], "date of birth")
}

func TestEvaluator_Evaluate_MissingHousehold(t *testing.T) {
	evaluator := createTestEvaluator(t)
	profile := createTestProfile(30, 0)
	profile.Household = nil
	elig := createTestEligibility()

	result, err := evaluator.Evaluate(profile, elig, testNow)
	require.NoError(t, err)

	assert.False(t, result.IsEligible)
	assert.Contains(t, result.UnmatchedCriteria, DimIncomeBand)
	require.NotEmpty(t, result.Suggestions)
	assert.Contains(t, result.Suggestions[0], "household income")
}

func TestEvaluator_Evaluate_MissingGenderIsUnmatched(t *testing.T) {
	evaluator := createTestEvaluator(t)
	profile := createTestProfile(30, 80000)
	profile.Gender = ""
	elig := createTestEligibility()
	elig.Genders = models.OneOrMany[models.Gender]{models.GenderFemale}

	result, err := evaluator.Evaluate(profile, elig, testNow)
	require.NoError(t, err)

	assert.False(t, result.IsEligible)
	assert.Contains(t, result.UnmatchedCriteria, DimGender)
}

// ==========================
// Optional Dimension Tests
// ==========================

func TestEvaluator_Evaluate_OptionalDimensions(t *testing.T) {
	evaluator := createTestEvaluator(t)
	elig := createTestEligibility()
	elig.Genders = models.OneOrMany[models.Gender]{models.GenderFemale}
	elig.States = models.OneOrMany[models.IndianState]{models.StateBihar, models.StateJharkhand}
	elig.EmploymentStatuses = models.OneOrMany[models.EmploymentStatus]{models.EmploymentUnemployed}

	profile := createTestProfile(30, 80000)
	result, err := evaluator.Evaluate(profile, elig, testNow)
	require.NoError(t, err)

	assert.True(t, result.IsEligible)
	assert.Equal(t, 100, result.ConfidenceScore)
	assert.Len(t, result.MatchedCriteria, 6)
}

func TestEvaluator_Evaluate_DisabilityRequirement(t *testing.T) {
	evaluator := createTestEvaluator(t)
	elig := createTestEligibility()
	elig.Disability = &models.DisabilityStatus{Type: models.DisabilityAny}

	tests := []struct {
		name           string
		disability     *models.DisabilityInfo
		wantEligible   bool
		wantSuggestion bool
	}{
		{
			name:           "no disability declared",
			disability:     nil,
			wantEligible:   false,
			wantSuggestion: true,
		},
		{
			name:         "certified 60 percent",
			disability:   &models.DisabilityInfo{Percentage: 60, CertificateNumber: "CERT-1"},
			wantEligible: true,
		},
		{
			name:           "below 40 percent threshold without certificate",
			disability:     &models.DisabilityInfo{Percentage: 20},
			wantEligible:   false,
			wantSuggestion: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := createTestProfile(30, 80000)
			profile.Disability = tt.disability

			result, err := evaluator.Evaluate(profile, elig, testNow)
			require.NoError(t, err)

			assert.Equal(t, tt.wantEligible, result.IsEligible)
			if tt.wantSuggestion {
				assert.NotEmpty(t, result.Suggestions)
			}
		})
	}
}

func TestEvaluator_Evaluate_NoDisabilityRestriction(t *testing.T) {
	evaluator := createTestEvaluator(t)
	elig := createTestEligibility()
	elig.Disability = &models.DisabilityStatus{Type: models.DisabilityNone}

	// An absent disability record means percentage 0, which satisfies the
	// restriction.
	undeclared := createTestProfile(30, 80000)
	result, err := evaluator.Evaluate(undeclared, elig, testNow)
	require.NoError(t, err)
	assert.True(t, result.IsEligible)
	assert.Contains(t, result.MatchedCriteria, DimDisability)

	certified := createTestProfile(30, 80000)
	certified.Disability = &models.DisabilityInfo{Percentage: 60, CertificateNumber: "CERT-1"}
	result, err = evaluator.Evaluate(certified, elig, testNow)
	require.NoError(t, err)
	assert.False(t, result.IsEligible)
	assert.Contains(t, result.UnmatchedCriteria, DimDisability)
}

func TestEvaluator_Evaluate_AdditionalCriteria(t *testing.T) {
	resolver := func(key string) (interface{}, bool) {
		if key == "hasKisanCreditCard" {
			return true, true
		}
		return nil, false
	}
	evaluator := New(nil, resolver, logger.NewNoOpLogger())
	elig := createTestEligibility()
	elig.AdditionalCriteria = []models.AdditionalCriterion{
		{Key: "hasKisanCreditCard", Value: true, Description: "Holds a Kisan Credit Card"},
	}

	result, err := evaluator.Evaluate(createTestProfile(30, 80000), elig, testNow)
	require.NoError(t, err)
	assert.True(t, result.IsEligible)

	// An unresolvable key degrades to unmatched, never to an error.
	elig.AdditionalCriteria = append(elig.AdditionalCriteria,
		models.AdditionalCriterion{Key: "unknownFact", Value: "yes", Description: "Unknown fact"})
	result, err = evaluator.Evaluate(createTestProfile(30, 80000), elig, testNow)
	require.NoError(t, err)
	assert.False(t, result.IsEligible)
	assert.Contains(t, result.UnmatchedCriteria, "additional:unknownFact")
}

// ==========================
// Confidence Score Tests
// ==========================

func TestEvaluator_Evaluate_ConfidenceNonDecreasingUnderRelaxation(t *testing.T) {
	evaluator := createTestEvaluator(t)
	profile := createTestProfile(30, 80000)

	elig := &models.SchemeEligibility{
		SchemeID:      "scheme-003",
		AgeRange:      models.SpecificAgeRange(40, 60, "Middle age"),
		IncomeBand:    models.IncomeBand{Type: models.IncomeBelowPovertyLine},
		ResidenceType: models.ResidenceUrban,
		Genders:       models.OneOrMany[models.Gender]{models.GenderFemale},
		MatchType:     models.MatchAll,
	}

	// Replacing a restriction with its no-restriction sentinel keeps the
	// dimension present and matched, so confidence must never drop.
	relaxations := []struct {
		name  string
		apply func(*models.SchemeEligibility)
	}{
		{"residence open to all", func(e *models.SchemeEligibility) { e.ResidenceType = models.ResidenceAny }},
		{"no income limit", func(e *models.SchemeEligibility) { e.IncomeBand = models.NoIncomeLimit() }},
		{"no age limit", func(e *models.SchemeEligibility) { e.AgeRange = models.NoAgeLimit() }},
	}

	result, err := evaluator.Evaluate(profile, elig, testNow)
	require.NoError(t, err)
	require.GreaterOrEqual(t, result.ConfidenceScore, 0)
	require.LessOrEqual(t, result.ConfidenceScore, 100)
	previous := result.ConfidenceScore

	for _, step := range relaxations {
		step.apply(elig)
		result, err = evaluator.Evaluate(profile, elig, testNow)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.ConfidenceScore, previous, step.name)
		assert.LessOrEqual(t, result.ConfidenceScore, 100, step.name)
		previous = result.ConfidenceScore
	}

	// Every restriction relaxed away leaves a fully matched record.
	assert.True(t, result.IsEligible)
	assert.Equal(t, 100, result.ConfidenceScore)
}

// ==========================
// Error Handling Tests
// ==========================

func TestEvaluator_Evaluate_DataIntegrityErrors(t *testing.T) {
	evaluator := createTestEvaluator(t)
	profile := createTestProfile(30, 80000)

	tests := []struct {
		name   string
		mutate func(*models.SchemeEligibility)
	}{
		{"missing age range", func(e *models.SchemeEligibility) { e.AgeRange = models.AgeRange{} }},
		{"missing income band", func(e *models.SchemeEligibility) { e.IncomeBand = models.IncomeBand{} }},
		{"missing residence type", func(e *models.SchemeEligibility) { e.ResidenceType = "" }},
		{"missing match type", func(e *models.SchemeEligibility) { e.MatchType = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elig := createTestEligibility()
			tt.mutate(elig)

			result, err := evaluator.Evaluate(profile, elig, testNow)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsDataIntegrity(err))
		})
	}
}

// ==========================
// Determinism Tests
// ==========================

func TestEvaluator_Evaluate_Deterministic(t *testing.T) {
	evaluator := createTestEvaluator(t)
	profile := createTestProfile(16, 250000)
	elig := createTestEligibility()
	elig.Genders = models.OneOrMany[models.Gender]{models.GenderMale}

	first, err := evaluator.Evaluate(profile, elig, testNow)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := evaluator.Evaluate(profile, elig, testNow)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
