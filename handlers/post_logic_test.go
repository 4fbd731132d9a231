package handlers

import (
	"reflect"
	"testing"

	"sanad/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFilterPostsByLocationSubstring(t *testing.T) {
	posts := []models.Post{
		{Title: "a", Location: "Riyadh, Al Olaya"},
		{Title: "b", Location: "Jeddah"},
		{Title: "c", Location: "riyadh"},
	}
	got := filterPosts(posts, "RIYADH", nil)
	if len(got) != 2 || got[0].Title != "a" || got[1].Title != "c" {
		t.Errorf("location filter returned wrong posts: %+v", got)
	}
}

func TestFilterPostsByTagsAnyOf(t *testing.T) {
	posts := []models.Post{
		{Title: "a", Tags: []string{"plumbing", "urgent"}},
		{Title: "b", Tags: []string{"tutoring"}},
		{Title: "c", Tags: nil},
	}
	got := filterPosts(posts, "", []string{"urgent", "tutoring"})
	if len(got) != 2 || got[0].Title != "a" || got[1].Title != "b" {
		t.Errorf("tag filter returned wrong posts: %+v", got)
	}
}

func TestFilterPostsCombined(t *testing.T) {
	posts := []models.Post{
		{Title: "a", Location: "Riyadh", Tags: []string{"plumbing"}},
		{Title: "b", Location: "Riyadh", Tags: []string{"tutoring"}},
		{Title: "c", Location: "Jeddah", Tags: []string{"plumbing"}},
	}
	got := filterPosts(posts, "riyadh", []string{"plumbing"})
	if len(got) != 1 || got[0].Title != "a" {
		t.Errorf("combined filter returned wrong posts: %+v", got)
	}
}

func TestFilterPostsNoFiltersReturnsAll(t *testing.T) {
	posts := []models.Post{{Title: "a"}, {Title: "b"}}
	got := filterPosts(posts, "", nil)
	if !reflect.DeepEqual(got, posts) {
		t.Errorf("no-op filter changed the list: %+v", got)
	}
}

func TestToggleLikeIsAnInvolution(t *testing.T) {
	start := []string{"u1", "u2"}

	liked := toggleLike(start, "u3")
	if !reflect.DeepEqual(liked, []string{"u1", "u2", "u3"}) {
		t.Errorf("first toggle = %v", liked)
	}
	unliked := toggleLike(liked, "u3")
	if !reflect.DeepEqual(unliked, start) {
		t.Errorf("second toggle = %v, want %v", unliked, start)
	}

	// removal from the middle preserves order of the rest
	mid := toggleLike([]string{"u1", "u2", "u3"}, "u2")
	if !reflect.DeepEqual(mid, []string{"u1", "u3"}) {
		t.Errorf("middle removal = %v", mid)
	}
}

func TestToggleLikeDoesNotMutateInput(t *testing.T) {
	start := []string{"u1"}
	_ = toggleLike(start, "u2")
	_ = toggleLike(start, "u1")
	if !reflect.DeepEqual(start, []string{"u1"}) {
		t.Errorf("input slice mutated: %v", start)
	}
}

func TestIsAuthor(t *testing.T) {
	id := primitive.NewObjectID()
	post := models.Post{UserID: id}
	if !isAuthor(post, id.Hex()) {
		t.Error("author not recognized")
	}
	if isAuthor(post, primitive.NewObjectID().Hex()) {
		t.Error("non-author recognized as author")
	}
}
