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
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateReplyRequest struct {
	Text string `json:"text" binding:"required"`
}

func ListReplies(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.Replies.Find(ctx, bson.M{"postId": postID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch replies"})
		return
	}
	defer cursor.Close(ctx)

	var replies []models.Reply
	if err := cursor.All(ctx, &replies); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode replies"})
		return
	}
	if replies == nil {
		replies = []models.Reply{}
	}
	c.JSON(http.StatusOK, replies)
}

// CreateReply attaches a comment to a post. Replies are immutable; there is
// no edit or delete surface.
func CreateReply(c *gin.Context) {
	var req CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := callerID(c)
	if !ok {
		return
	}

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
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	username, avatar, err := lookupAuthor(ctx, userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	reply := models.Reply{
		ID:         primitive.NewObjectID(),
		PostID:     postID,
		UserID:     userID,
		Username:   username,
		UserAvatar: avatar,
		Text:       req.Text,
		CreatedAt:  time.Now().Unix(),
	}

	if _, err := database.Replies.InsertOne(ctx, reply); err != nil {
		log.Printf("[CreateReply] insert error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reply"})
		return
	}

	if post.UserID != userID {
		SendReplyPush(post.UserID, username, post.Title)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Reply created successfully",
		"replyId": reply.ID.Hex(),
	})
}
