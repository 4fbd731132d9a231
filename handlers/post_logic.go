package handlers

import (
	"strings"

	"sanad/models"
)

// List filtering happens in memory after the indexed type query: location is
// a case-insensitive substring match, tags an any-of intersection.
func filterPosts(posts []models.Post, locationFilter string, tagFilters []string) []models.Post {
	out := posts
	if locationFilter != "" {
		needle := strings.ToLower(locationFilter)
		filtered := make([]models.Post, 0, len(out))
		for _, p := range out {
			if strings.Contains(strings.ToLower(p.Location), needle) {
				filtered = append(filtered, p)
			}
		}
		out = filtered
	}
	if len(tagFilters) > 0 {
		filtered := make([]models.Post, 0, len(out))
		for _, p := range out {
			if tagsIntersect(p.Tags, tagFilters) {
				filtered = append(filtered, p)
			}
		}
		out = filtered
	}
	return out
}

func tagsIntersect(tags, wanted []string) bool {
	for _, w := range wanted {
		for _, t := range tags {
			if t == w {
				return true
			}
		}
	}
	return false
}

// toggleLike flips the user's membership in the liked-by set. Applying it
// twice returns the original set.
func toggleLike(likedBy []string, userID string) []string {
	for i, id := range likedBy {
		if id == userID {
			return append(append([]string{}, likedBy[:i]...), likedBy[i+1:]...)
		}
	}
	out := make([]string, 0, len(likedBy)+1)
	out = append(out, likedBy...)
	return append(out, userID)
}

// isAuthor is the single-field authorization check for author-only actions.
func isAuthor(post models.Post, userID string) bool {
	return post.UserID.Hex() == userID
}
