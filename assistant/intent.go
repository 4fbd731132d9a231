package assistant

import (
	"fmt"

	"sanad/models"
)

// Intent is the user's declared conversational goal, picked from the four
// fixed buttons in the chat view.
type Intent string

const (
	IntentNeedHelp  Intent = "need_help"
	IntentOfferHelp Intent = "offer_help"
	IntentSearch    Intent = "search"
	IntentSettings  Intent = "settings"
)

func ParseIntent(s string) (Intent, error) {
	switch Intent(s) {
	case IntentNeedHelp, IntentOfferHelp, IntentSearch, IntentSettings:
		return Intent(s), nil
	}
	return "", fmt.Errorf("unknown intent %q", s)
}

// CanCreatePost reports whether this intent may enter the extraction stage.
func (i Intent) CanCreatePost() bool {
	return i == IntentNeedHelp || i == IntentOfferHelp
}

// PostType maps a post-creating intent to its post type. The model's own
// opinion of the type is never trusted; this mapping wins.
func (i Intent) PostType() string {
	if i == IntentOfferHelp {
		return models.TypeHelpOffered
	}
	return models.TypeHelpNeeded
}
