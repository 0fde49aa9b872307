// internal/catalog/loader.go
package catalog

import (
	"encoding/json"
	"os"

	"github.com/google/uuid"

	"scheme-recommender/internal/common/errors"
	"scheme-recommender/internal/common/logger"
	"scheme-recommender/internal/models"
)

// Loader reads scheme catalogs and user profiles from JSON files. Each
// record is schema-checked before decoding; a malformed scheme record is
// dropped and logged rather than failing the whole catalog.
type Loader struct {
	logger logger.Logger
}

func NewLoader(log logger.Logger) *Loader {
	return &Loader{logger: log.WithFields(map[string]interface{}{"component": "catalog"})}
}

// LoadCatalog reads a JSON array of scheme records. Records without an ID
// get one assigned so downstream identity-based rules (applied, saved,
// tie-breaks) always have a key to work with.
func (l *Loader) LoadCatalog(path string) ([]models.GovernmentScheme, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewCatalogReadFailedError(path, err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, errors.NewCatalogValidationFailedError("catalog is not a JSON array: " + err.Error())
	}

	schemes := make([]models.GovernmentScheme, 0, len(records))
	for i, rec := range records {
		if err := validateAgainst(schemeSchema, rec); err != nil {
			l.logger.Warn("dropping invalid scheme record", map[string]interface{}{
				"path":  path,
				"index": i,
				"error": err.Error(),
			})
			continue
		}
		var s models.GovernmentScheme
		if err := json.Unmarshal(rec, &s); err != nil {
			l.logger.Warn("dropping undecodable scheme record", map[string]interface{}{
				"path":  path,
				"index": i,
				"error": err.Error(),
			})
			continue
		}
		if s.ID == "" {
			s.ID = uuid.New().String()
		}
		s.Eligibility.SchemeID = s.ID
		schemes = append(schemes, s)
	}

	l.logger.Info("catalog loaded", map[string]interface{}{
		"path":    path,
		"total":   len(records),
		"loaded":  len(schemes),
		"dropped": len(records) - len(schemes),
	})
	return schemes, nil
}

// LoadProfile reads a single user profile. Unlike catalog records, an
// invalid profile is a hard error; there is nothing sensible to rank
// without one.
func (l *Loader) LoadProfile(path string) (*models.UserProfile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewProfileReadFailedError(path, err)
	}
	if err := validateAgainst(profileSchema, raw); err != nil {
		return nil, errors.NewProfileValidationFailedError(err)
	}

	var profile models.UserProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, errors.NewProfileValidationFailedError(err)
	}
	if err := models.ValidateProfile(&profile); err != nil {
		return nil, errors.NewProfileValidationFailedError(err)
	}
	if profile.ProfileCompleteness == 0 {
		profile.ProfileCompleteness = profile.ComputeCompleteness()
	}
	return &profile, nil
}

// LoadApplications reads the user's past scheme applications. A missing
// file means no applications, not an error.
func (l *Loader) LoadApplications(path string) ([]models.SchemeApplication, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.NewProfileReadFailedError(path, err)
	}
	var applications []models.SchemeApplication
	if err := json.Unmarshal(raw, &applications); err != nil {
		return nil, errors.NewProfileValidationFailedError(err)
	}
	return applications, nil
}

// LoadPreferences reads optional ranking preferences. A missing file yields
// zero-value preferences, which the ranker normalizes to defaults.
func (l *Loader) LoadPreferences(path string) (models.RecommendationPreferences, error) {
	var prefs models.RecommendationPreferences
	if path == "" {
		return prefs, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return prefs, nil
		}
		return prefs, errors.NewPreferencesInvalidError(path + ": " + err.Error())
	}
	if err := json.Unmarshal(raw, &prefs); err != nil {
		return prefs, errors.NewPreferencesInvalidError(path + ": " + err.Error())
	}
	return prefs, nil
}
