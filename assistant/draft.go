package assistant

import (
	"fmt"
	"strings"
)

// Draft is an in-progress, unsaved post assembled from chat extraction,
// pending user confirmation and edits.
type Draft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	ContactInfo string   `json:"contactInfo"`
	Tags        []string `json:"tags"`
	Type        string   `json:"type"`
}

// EmptyDraft is the safe fallback when extraction produces nothing usable:
// all fields blank, type still set correctly from the intent so the user can
// fill the rest in manually.
func EmptyDraft(intent Intent) Draft {
	return Draft{Tags: []string{}, Type: intent.PostType()}
}

// Validate enforces the submission gate: title, description, location and
// contact info must all be non-empty after trimming. Tags are optional.
func (d Draft) Validate() error {
	var missing []string
	if strings.TrimSpace(d.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(d.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(d.Location) == "" {
		missing = append(missing, "location")
	}
	if strings.TrimSpace(d.ContactInfo) == "" {
		missing = append(missing, "contactInfo")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}
