// internal/models/application.go
package models

import "time"

// SchemeApplication tracks a user's application to a scheme. The engine
// only reads these to mark schemes as already applied; their lifecycle is
// owned by the application store.
type SchemeApplication struct {
	ID          string                 `json:"id"`
	UserID      string                 `json:"userId"`
	SchemeID    string                 `json:"schemeId"`
	FormData    map[string]interface{} `json:"formData,omitempty"`
	Status      ApplicationStatus      `json:"status"`
	SubmittedAt *time.Time             `json:"submittedAt,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

// AppliedSchemeIDs extracts the scheme IDs from a set of applications,
// ignoring withdrawn ones.
func AppliedSchemeIDs(applications []SchemeApplication) []string {
	ids := make([]string, 0, len(applications))
	for _, a := range applications {
		if a.Status == ApplicationWithdrawn {
			continue
		}
		ids = append(ids, a.SchemeID)
	}
	return ids
}
