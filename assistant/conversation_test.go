package assistant

import (
	"strings"
	"testing"
)

func TestTranscriptSkipsSystemMessages(t *testing.T) {
	conv := &Conversation{}
	conv.Append(RoleSystem, "internal note")
	conv.Append(RoleAssistant, WelcomeMessage)
	conv.Append(RoleUser, "I need a plumber")

	got := conv.Transcript()
	want := "Assistant: " + WelcomeMessage + "\n\nUser: I need a plumber"
	if got != want {
		t.Errorf("Transcript() = %q, want %q", got, want)
	}
	if strings.Contains(got, "internal note") {
		t.Error("system message leaked into transcript")
	}
}

func TestTranscriptEmpty(t *testing.T) {
	conv := &Conversation{}
	if got := conv.Transcript(); got != "" {
		t.Errorf("empty conversation transcript = %q, want empty string", got)
	}
}

func TestLanguageSamplePicksLastNonBlankUserMessage(t *testing.T) {
	conv := &Conversation{}
	conv.Append(RoleUser, "first")
	conv.Append(RoleAssistant, "reply")
	conv.Append(RoleUser, "   ")
	if got := conv.LanguageSample(); got != "first" {
		t.Errorf("LanguageSample() = %q, want %q", got, "first")
	}
}

func TestLanguageSampleFallsBackToWelcome(t *testing.T) {
	conv := &Conversation{}
	conv.Append(RoleAssistant, "hi there")
	if got := conv.LanguageSample(); got != WelcomeMessage {
		t.Errorf("LanguageSample() = %q, want welcome message", got)
	}
}

func TestParseIntent(t *testing.T) {
	cases := map[string]struct {
		intent  Intent
		wantErr bool
	}{
		"need_help":  {IntentNeedHelp, false},
		"offer_help": {IntentOfferHelp, false},
		"search":     {IntentSearch, false},
		"settings":   {IntentSettings, false},
		"":           {"", true},
		"buy_stuff":  {"", true},
	}
	for in, want := range cases {
		got, err := ParseIntent(in)
		if (err != nil) != want.wantErr || got != want.intent {
			t.Errorf("ParseIntent(%q) = (%q, %v), want (%q, wantErr=%v)", in, got, err, want.intent, want.wantErr)
		}
	}
}

func TestIntentPostTypeMapping(t *testing.T) {
	if !IntentNeedHelp.CanCreatePost() || !IntentOfferHelp.CanCreatePost() {
		t.Error("help intents must allow post creation")
	}
	if IntentSearch.CanCreatePost() || IntentSettings.CanCreatePost() {
		t.Error("search and settings intents must not allow post creation")
	}
	if got := IntentNeedHelp.PostType(); got != "helpNeeded" {
		t.Errorf("IntentNeedHelp.PostType() = %q", got)
	}
	if got := IntentOfferHelp.PostType(); got != "helpOffered" {
		t.Errorf("IntentOfferHelp.PostType() = %q", got)
	}
}
