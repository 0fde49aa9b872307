// internal/models/eligibility_test.go
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveIncomeBand(t *testing.T) {
	tests := []struct {
		name         string
		annualIncome float64
		isBPL        bool
		want         IncomeBandType
	}{
		{"bpl flag wins over income", 500000, true, IncomeBelowPovertyLine},
		{"zero income is low", 0, false, IncomeLow},
		{"low band upper boundary", 100000, false, IncomeLow},
		{"lower middle lower boundary", 100001, false, IncomeLowerMiddle},
		{"lower middle upper boundary", 300000, false, IncomeLowerMiddle},
		{"middle band", 450000, false, IncomeMiddle},
		{"upper middle band", 800000, false, IncomeUpperMiddle},
		{"high band upper boundary", 2000000, false, IncomeHigh},
		{"very high band", 2000001, false, IncomeVeryHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			band := DeriveIncomeBand(tt.annualIncome, tt.isBPL)
			assert.Equal(t, tt.want, band.Type)
		})
	}
}

func TestIncomeBandType_Rank(t *testing.T) {
	ordered := []IncomeBandType{
		IncomeBelowPovertyLine, IncomeLow, IncomeLowerMiddle, IncomeMiddle,
		IncomeUpperMiddle, IncomeHigh, IncomeVeryHigh,
	}
	for i := 1; i < len(ordered); i++ {
		assert.Greater(t, ordered[i].Rank(), ordered[i-1].Rank())
	}
	assert.Equal(t, -1, IncomeNoLimit.Rank())
}

func TestAgeRange_Contains(t *testing.T) {
	tests := []struct {
		name string
		r    AgeRange
		age  int
		want bool
	}{
		{"no limit accepts anyone", NoAgeLimit(), 99, true},
		{"child upper bound", AgeRange{Type: AgeRangeChild}, 17, true},
		{"child excludes adult", AgeRange{Type: AgeRangeChild}, 18, false},
		{"young adult range", AgeRange{Type: AgeRangeYoungAdult}, 35, true},
		{"senior citizen open ended", AgeRange{Type: AgeRangeSeniorCitizen}, 95, true},
		{"senior citizen lower bound", AgeRange{Type: AgeRangeSeniorCitizen}, 59, false},
		{"specific range inside", SpecificAgeRange(18, 40, ""), 30, true},
		{"specific range below", SpecificAgeRange(18, 40, ""), 17, false},
		{"specific range above", SpecificAgeRange(18, 40, ""), 41, false},
		{"specific with no upper bound", SpecificAgeRange(21, 0, ""), 85, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.Contains(tt.age))
		})
	}
}

func TestDisabilityStatus_Matches(t *testing.T) {
	tests := []struct {
		name    string
		status  DisabilityStatus
		percent int
		want    bool
	}{
		{"any disability at threshold", DisabilityStatus{Type: DisabilityAny}, 40, true},
		{"any disability below threshold", DisabilityStatus{Type: DisabilityAny}, 39, false},
		{"mild band", DisabilityStatus{Type: DisabilityMild}, 45, true},
		{"mild excludes moderate", DisabilityStatus{Type: DisabilityMild}, 50, false},
		{"severe band", DisabilityStatus{Type: DisabilitySevere}, 80, true},
		{"none requires zero", DisabilityStatus{Type: DisabilityNone}, 0, true},
		{"none rejects nonzero", DisabilityStatus{Type: DisabilityNone}, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Matches(tt.percent))
		})
	}
}

func TestOneOrMany_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		data string
		want OneOrMany[Gender]
	}{
		{"scalar value", `"FEMALE"`, OneOrMany[Gender]{GenderFemale}},
		{"array value", `["MALE","FEMALE"]`, OneOrMany[Gender]{GenderMale, GenderFemale}},
		{"empty array", `[]`, OneOrMany[Gender]{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got OneOrMany[Gender]
			require.NoError(t, json.Unmarshal([]byte(tt.data), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSchemeEligibility_UnmarshalScalarRestrictions(t *testing.T) {
	raw := `{
		"schemeId": "scheme-001",
		"ageRange": {"type": "NO_AGE_LIMIT"},
		"incomeBand": {"type": "LOW_INCOME"},
		"residenceType": "RURAL",
		"gender": "FEMALE",
		"states": ["BIHAR", "JHARKHAND"],
		"matchType": "ALL"
	}`

	var elig SchemeEligibility
	require.NoError(t, json.Unmarshal([]byte(raw), &elig))

	assert.Equal(t, OneOrMany[Gender]{GenderFemale}, elig.Genders)
	assert.Len(t, elig.States, 2)
	assert.True(t, elig.Genders.Contains(GenderFemale))
	assert.False(t, elig.Genders.Contains(GenderMale))
}
