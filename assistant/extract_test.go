package assistant

import (
	"strings"
	"testing"

	"sanad/models"
)

func TestParseDraftFromCleanJSON(t *testing.T) {
	raw := `{"title":"Moving help","description":"Need help moving furniture","location":"Riyadh","contactInfo":"0555123456","tags":["moving","furniture"],"type":"helpOffered"}`

	draft, ok := ParseDraft(raw, IntentNeedHelp)
	if !ok {
		t.Fatal("expected successful extraction")
	}
	if draft.Title != "Moving help" {
		t.Errorf("title = %q", draft.Title)
	}
	if draft.Location != "Riyadh" {
		t.Errorf("location = %q", draft.Location)
	}
	if len(draft.Tags) != 2 {
		t.Errorf("tags = %v", draft.Tags)
	}
	// Model said helpOffered; the intent wins
	if draft.Type != models.TypeHelpNeeded {
		t.Errorf("type = %q, want %q", draft.Type, models.TypeHelpNeeded)
	}
}

func TestParseDraftWithSurroundingText(t *testing.T) {
	raw := "Here is the post you asked for:\n```json\n" +
		`{"title":"T","description":"D","location":"L","contactInfo":"C","tags":[]}` +
		"\n```\nLet me know if you need changes."

	draft, ok := ParseDraft(raw, IntentOfferHelp)
	if !ok {
		t.Fatal("expected successful extraction")
	}
	if draft.Title != "T" || draft.Description != "D" {
		t.Errorf("unexpected draft: %+v", draft)
	}
	if draft.Type != models.TypeHelpOffered {
		t.Errorf("type = %q", draft.Type)
	}
}

func TestParseDraftBracesInsideStrings(t *testing.T) {
	raw := `{"title":"a {weird} title","description":"has } and { inside","location":"x","contactInfo":"y","tags":["z"]}`

	draft, ok := ParseDraft(raw, IntentNeedHelp)
	if !ok {
		t.Fatal("expected successful extraction")
	}
	if draft.Title != "a {weird} title" {
		t.Errorf("title = %q", draft.Title)
	}
}

func TestParseDraftNoJSONFallsBack(t *testing.T) {
	for _, raw := range []string{
		"Sorry, I cannot help with that.",
		"",
		"{ truncated and never closed",
		"]]][[",
	} {
		draft, ok := ParseDraft(raw, IntentNeedHelp)
		if ok {
			t.Errorf("ParseDraft(%q) reported success", raw)
		}
		if draft.Type != models.TypeHelpNeeded {
			t.Errorf("fallback type = %q", draft.Type)
		}
		if draft.Title != "" || draft.Description != "" || draft.Location != "" || draft.ContactInfo != "" {
			t.Errorf("fallback draft not empty: %+v", draft)
		}
		if draft.Tags == nil || len(draft.Tags) != 0 {
			t.Errorf("fallback tags = %v", draft.Tags)
		}
	}
}

func TestExtractionScenarioRiyadh(t *testing.T) {
	conv := &Conversation{
		Intent:   IntentNeedHelp,
		Language: "en",
		Messages: []Message{
			{Role: RoleUser, Content: "I need help moving furniture"},
			{Role: RoleAssistant, Content: "Where are you located and how can helpers reach you?"},
			{Role: RoleUser, Content: "I'm in Riyadh, call 0555123456"},
		},
	}

	prompt := BuildExtractionPrompt(conv)
	if !strings.Contains(prompt, "I'm in Riyadh, call 0555123456") {
		t.Error("extraction prompt missing transcript content")
	}
	if !strings.Contains(prompt, `"helpNeeded"`) {
		t.Error("extraction prompt missing mapped type")
	}

	// What a well-behaved model would return for that prompt
	mock := &MockClient{Responses: []string{
		`{"title":"Help moving furniture","description":"User needs help moving furniture.","location":"Riyadh","contactInfo":"0555123456","tags":["moving"],"type":"achievement"}`,
	}}
	raw, err := mock.Complete(t.Context(), prompt)
	if err != nil {
		t.Fatal(err)
	}

	draft, ok := ParseDraft(raw, conv.Intent)
	if !ok {
		t.Fatal("expected successful extraction")
	}
	if draft.Type != models.TypeHelpNeeded {
		t.Errorf("type = %q, want helpNeeded", draft.Type)
	}
	if !strings.Contains(draft.Location, "Riyadh") {
		t.Errorf("location = %q, want to contain Riyadh", draft.Location)
	}
	if !strings.Contains(draft.ContactInfo, "0555123456") {
		t.Errorf("contactInfo = %q, want to contain 0555123456", draft.ContactInfo)
	}
}
