package handlers

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"sanad/database"
	"sanad/models"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// renderMarkdown converts a post description (markdown) to HTML.
func renderMarkdown(md string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// PostPreview returns the post's description rendered to HTML alongside the
// raw markdown, for the detail/preview views.
func PostPreview(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var post models.Post
	err = database.Posts.FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post"})
		return
	}

	html, err := renderMarkdown(post.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render description"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"postId":   post.ID.Hex(),
		"title":    post.Title,
		"markdown": post.Description,
		"html":     html,
	})
}

// DraftPreview renders an unsaved draft description, so the review step can
// show the post as it will appear.
func DraftPreview(c *gin.Context) {
	var req struct {
		Description string `json:"description" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	html, err := renderMarkdown(req.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render description"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"html": html})
}
