package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"sanad/database"
	"sanad/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ImportMockData seeds the demo dataset under the caller's account. Per-row
// best-effort: a failed insert logs and moves on. Achievement rows get their
// originalPostId patched once the originals exist.
func ImportMockData(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	log.Println("[MockData] starting import")

	insertedIDs := make([]primitive.ObjectID, len(mockPosts))
	inserted := 0

	// First pass: insert every post
	for i, seed := range mockPosts {
		post := models.Post{
			ID:           primitive.NewObjectID(),
			UserID:       userID,
			Username:     seed.Username,
			UserAvatar:   seed.UserAvatar,
			Title:        seed.Title,
			Description:  seed.Description,
			Location:     seed.Location,
			ContactInfo:  seed.ContactInfo,
			Type:         seed.Type,
			Tags:         append(append([]string{}, seed.Tags...), mockDataTag),
			Images:       seed.Images,
			IsCompleted:  seed.IsCompleted,
			LikedByUsers: []string{},
			CreatedAt:    time.Now().Unix() + int64(i), // keep seed order stable under newest-first
		}
		if post.Images == nil {
			post.Images = []string{}
		}

		if _, err := database.Posts.InsertOne(ctx, post); err != nil {
			log.Printf("[MockData] failed to import post %q: %v", seed.Title, err)
			continue
		}
		insertedIDs[i] = post.ID
		inserted++
	}

	// Second pass: wire achievement references to the freshly inserted
	// originals
	for i, seed := range mockPosts {
		if seed.Type != models.TypeAchievement || seed.OriginalIndex < 0 {
			continue
		}
		if insertedIDs[i].IsZero() || insertedIDs[seed.OriginalIndex].IsZero() {
			continue
		}
		_, err := database.Posts.UpdateOne(ctx,
			bson.M{"_id": insertedIDs[i]},
			bson.M{"$set": bson.M{"originalPostId": insertedIDs[seed.OriginalIndex]}})
		if err != nil {
			log.Printf("[MockData] failed to link achievement %q: %v", seed.Title, err)
		}
	}

	// Replies
	repliesInserted := 0
	for _, seed := range mockReplies {
		if seed.PostIndex < 0 || seed.PostIndex >= len(insertedIDs) || insertedIDs[seed.PostIndex].IsZero() {
			continue
		}
		reply := models.Reply{
			ID:         primitive.NewObjectID(),
			PostID:     insertedIDs[seed.PostIndex],
			UserID:     userID,
			Username:   seed.Username,
			UserAvatar: fallbackAvatar,
			Text:       seed.Text,
			CreatedAt:  time.Now().Unix(),
		}
		if _, err := database.Replies.InsertOne(ctx, reply); err != nil {
			log.Printf("[MockData] failed to import reply: %v", err)
			continue
		}
		repliesInserted++
	}

	log.Printf("[MockData] import completed: %d posts, %d replies", inserted, repliesInserted)

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"postsImported":   inserted,
		"repliesImported": repliesInserted,
	})
}

// ClearMockData removes everything the import created. This is the one path
// that cascades: replies of a mock post are deleted before the post itself.
func ClearMockData(c *gin.Context) {
	if _, ok := callerID(c); !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cursor, err := database.Posts.Find(ctx, bson.M{"tags": mockDataTag})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find mock posts"})
		return
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode mock posts"})
		return
	}

	// Replies first, then their posts
	for _, post := range posts {
		if _, err := database.Replies.DeleteMany(ctx, bson.M{"postId": post.ID}); err != nil {
			log.Printf("[MockData] failed to delete replies of %s: %v", post.ID.Hex(), err)
		}
	}
	deleted := 0
	for _, post := range posts {
		if _, err := database.Posts.DeleteOne(ctx, bson.M{"_id": post.ID}); err != nil {
			log.Printf("[MockData] failed to delete post %s: %v", post.ID.Hex(), err)
			continue
		}
		deleted++
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"deletedCount": deleted,
	})
}

// MockDataStatus reports whether demo content is currently loaded.
func MockDataStatus(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := database.Posts.CountDocuments(ctx, bson.M{"tags": mockDataTag})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count mock posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"imported": count > 0,
		"count":    count,
	})
}
