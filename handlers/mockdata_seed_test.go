package handlers

import (
	"strings"
	"testing"

	"sanad/models"
)

func TestMockPostsAreWellFormed(t *testing.T) {
	for i, p := range mockPosts {
		if !models.ValidPostType(p.Type) {
			t.Errorf("post %d has invalid type %q", i, p.Type)
		}
		for _, field := range []struct{ name, val string }{
			{"title", p.Title},
			{"description", p.Description},
			{"location", p.Location},
			{"contactInfo", p.ContactInfo},
			{"username", p.Username},
		} {
			if strings.TrimSpace(field.val) == "" {
				t.Errorf("post %d missing %s", i, field.name)
			}
		}
		if strings.Contains(p.Title, mockDataTag) {
			t.Errorf("post %d carries the import tag in its title; tagging happens at import time", i)
		}
	}
}

func TestMockAchievementsReferenceValidOriginals(t *testing.T) {
	for i, p := range mockPosts {
		if p.Type != models.TypeAchievement {
			if p.OriginalIndex >= 0 {
				t.Errorf("non-achievement post %d has original index %d", i, p.OriginalIndex)
			}
			continue
		}
		if p.OriginalIndex < 0 || p.OriginalIndex >= len(mockPosts) {
			t.Errorf("achievement post %d original index %d out of range", i, p.OriginalIndex)
			continue
		}
		orig := mockPosts[p.OriginalIndex]
		if orig.Type == models.TypeAchievement {
			t.Errorf("achievement post %d references another achievement", i)
		}
		if !p.IsCompleted {
			t.Errorf("achievement post %d must be marked completed", i)
		}
	}
}

func TestMockRepliesReferenceExistingPosts(t *testing.T) {
	for i, r := range mockReplies {
		if r.PostIndex < 0 || r.PostIndex >= len(mockPosts) {
			t.Errorf("reply %d post index %d out of range", i, r.PostIndex)
		}
		if strings.TrimSpace(r.Text) == "" || strings.TrimSpace(r.Username) == "" {
			t.Errorf("reply %d missing text or username", i)
		}
	}
}
