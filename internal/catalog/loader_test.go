// internal/catalog/loader_test.go
package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"scheme-recommender/internal/common/errors"
	"scheme-recommender/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validCatalog = `[
  {
    "id": "scheme-001",
    "name": "Rural Education Grant",
    "category": "EDUCATION",
    "status": "ACTIVE",
    "eligibility": {
      "ageRange": {"type": "SPECIFIC_AGE", "minAge": 18, "maxAge": 35},
      "incomeBand": {"type": "LOW_INCOME"},
      "residenceType": "RURAL",
      "matchType": "ALL"
    }
  },
  {
    "name": "Unnamed ID Scheme",
    "category": "HEALTHCARE",
    "status": "ACTIVE",
    "eligibility": {
      "ageRange": {"type": "NO_AGE_LIMIT"},
      "incomeBand": {"type": "NO_INCOME_LIMIT"},
      "residenceType": "ANY",
      "matchType": "ALL"
    }
  }
]`

const validProfile = `{
  "id": "user-123",
  "fullName": "Asha Kumari",
  "dateOfBirth": "1995-03-01T00:00:00Z",
  "gender": "FEMALE",
  "address": {
    "city": "Patna",
    "state": "BIHAR",
    "residenceType": "RURAL"
  },
  "household": {
    "familySize": 4,
    "annualIncome": 80000
  }
}`

// ==========================
// Catalog Loading Tests
// ==========================

func TestLoader_LoadCatalog(t *testing.T) {
	loader := NewLoader(logger.NewTestLogger(t))
	path := writeTempFile(t, "schemes.json", validCatalog)

	schemes, err := loader.LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, schemes, 2)

	assert.Equal(t, "scheme-001", schemes[0].ID)
	assert.Equal(t, "scheme-001", schemes[0].Eligibility.SchemeID)

	// A record without an ID gets one assigned.
	assert.NotEmpty(t, schemes[1].ID)
	assert.Equal(t, schemes[1].ID, schemes[1].Eligibility.SchemeID)
}

func TestLoader_LoadCatalog_DropsInvalidRecords(t *testing.T) {
	loader := NewLoader(logger.NewTestLogger(t))
	catalog := `[
	  {"name": "No eligibility at all", "category": "EDUCATION", "status": "ACTIVE"},
	  {
	    "id": "scheme-ok",
	    "name": "Valid Scheme",
	    "category": "EDUCATION",
	    "status": "ACTIVE",
	    "eligibility": {
	      "ageRange": {"type": "NO_AGE_LIMIT"},
	      "incomeBand": {"type": "NO_INCOME_LIMIT"},
	      "residenceType": "ANY",
	      "matchType": "ALL"
	    }
	  }
	]`
	path := writeTempFile(t, "schemes.json", catalog)

	schemes, err := loader.LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, schemes, 1)
	assert.Equal(t, "scheme-ok", schemes[0].ID)
}

func TestLoader_LoadCatalog_Errors(t *testing.T) {
	loader := NewLoader(logger.NewNoOpLogger())

	_, err := loader.LoadCatalog("does-not-exist.json")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeCatalogReadFailed, errors.CodeOf(err))

	path := writeTempFile(t, "schemes.json", `{"not": "an array"}`)
	_, err = loader.LoadCatalog(path)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeCatalogValidationFailed, errors.CodeOf(err))
}

// ==========================
// Profile Loading Tests
// ==========================

func TestLoader_LoadProfile(t *testing.T) {
	loader := NewLoader(logger.NewTestLogger(t))
	path := writeTempFile(t, "profile.json", validProfile)

	profile, err := loader.LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "user-123", profile.ID)
	assert.Equal(t, 80000.0, profile.Household.AnnualIncome)
}

func TestLoader_LoadProfile_Errors(t *testing.T) {
	loader := NewLoader(logger.NewNoOpLogger())

	_, err := loader.LoadProfile("missing.json")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeProfileReadFailed, errors.CodeOf(err))

	path := writeTempFile(t, "profile.json", `{"fullName": "No ID"}`)
	_, err = loader.LoadProfile(path)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeProfileValidationFailed, errors.CodeOf(err))
}

// ==========================
// Preferences Loading Tests
// ==========================

func TestLoader_LoadPreferences(t *testing.T) {
	loader := NewLoader(logger.NewNoOpLogger())

	prefs, err := loader.LoadPreferences("")
	require.NoError(t, err)
	assert.Zero(t, prefs.MaxRecommendations)

	path := writeTempFile(t, "prefs.json", `{"maxRecommendations": 5, "sortBy": "DEADLINE"}`)
	prefs, err = loader.LoadPreferences(path)
	require.NoError(t, err)
	assert.Equal(t, 5, prefs.MaxRecommendations)
}
