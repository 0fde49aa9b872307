// internal/catalog/schema.go
package catalog

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// schemeSchema constrains the shape of catalog records before they are
// decoded. Eligibility must carry the required dimensions; everything else
// is optional so partial catalogs still load.
const schemeSchema = `{
  "type": "object",
  "required": ["name", "category", "eligibility", "status"],
  "properties": {
    "id": {"type": "string"},
    "name": {"type": "string", "minLength": 1},
    "category": {"type": "string", "minLength": 1},
    "status": {"type": "string", "enum": ["ACTIVE", "INACTIVE", "EXPIRED", "COMING_SOON"]},
    "eligibility": {
      "type": "object",
      "required": ["ageRange", "incomeBand", "residenceType", "matchType"],
      "properties": {
        "ageRange": {
          "type": "object",
          "required": ["type"],
          "properties": {"type": {"type": "string"}}
        },
        "incomeBand": {
          "type": "object",
          "required": ["type"],
          "properties": {"type": {"type": "string"}}
        },
        "residenceType": {"type": "string", "enum": ["RURAL", "URBAN", "SEMI_URBAN", "ANY"]},
        "matchType": {"type": "string", "enum": ["ALL", "ANY"]}
      }
    },
    "benefits": {"type": "array"},
    "viewCount": {"type": "integer", "minimum": 0}
  }
}`

const profileSchema = `{
  "type": "object",
  "required": ["id", "dateOfBirth", "address"],
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "dateOfBirth": {"type": "string"},
    "address": {
      "type": "object",
      "required": ["state", "residenceType"],
      "properties": {
        "state": {"type": "string"},
        "residenceType": {"type": "string"}
      }
    },
    "household": {
      "type": "object",
      "properties": {
        "annualIncome": {"type": "number", "minimum": 0}
      }
    }
  }
}`

func validateAgainst(schema string, document []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(document),
	)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("document invalid: %s", strings.Join(errs, "; "))
	}
	return nil
}
