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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CreatePostRequest struct {
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description" binding:"required"`
	Location       string   `json:"location" binding:"required"`
	ContactInfo    string   `json:"contactInfo" binding:"required"`
	Type           string   `json:"type" binding:"required"`
	Tags           []string `json:"tags"`
	Images         []string `json:"images"`
	OriginalPostID string   `json:"originalPostId,omitempty"`
}

// lookupAuthor loads the caller's display fields for denormalization onto
// posts and replies at creation time.
func lookupAuthor(ctx context.Context, userID primitive.ObjectID) (username, avatar string, err error) {
	var user models.User
	err = database.Users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		return "", "", err
	}
	username = user.Name
	if username == "" {
		username = "Anonymous"
	}
	avatar = user.Image
	if avatar == "" {
		avatar = fallbackAvatar
	}
	return username, avatar, nil
}

func CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	insertPost(c, req)
}

// insertPost is the shared creation path for the form handler and the chat
// draft submission.
func insertPost(c *gin.Context, req CreatePostRequest) {
	if !models.ValidPostType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post type"})
		return
	}

	userID, ok := callerID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	username, avatar, err := lookupAuthor(ctx, userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	post := models.Post{
		ID:           primitive.NewObjectID(),
		UserID:       userID,
		Username:     username,
		UserAvatar:   avatar,
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		ContactInfo:  req.ContactInfo,
		Type:         req.Type,
		Tags:         req.Tags,
		Images:       req.Images,
		LikedByUsers: []string{},
		CreatedAt:    time.Now().Unix(),
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if post.Images == nil {
		post.Images = []string{}
	}

	// Achievements always reference the original help post and are created
	// completed.
	if req.Type == models.TypeAchievement {
		originalID, err := primitive.ObjectIDFromHex(req.OriginalPostID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Achievement posts require originalPostId"})
			return
		}

		var original models.Post
		err = database.Posts.FindOne(ctx, bson.M{"_id": originalID}).Decode(&original)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Original post not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		if original.Type == models.TypeAchievement {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Original post must not be an achievement"})
			return
		}

		post.OriginalPostID = &originalID
		post.IsCompleted = true
	}

	if _, err := database.Posts.InsertOne(ctx, post); err != nil {
		log.Printf("[CreatePost] insert error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Post created successfully",
		"postId":  post.ID.Hex(),
	})
}

// ListPosts returns posts of one type, newest first. Help posts that were
// marked completed are excluded; completed ones live in the achievements
// view instead. Location/tag filtering happens in memory after the indexed
// query.
func ListPosts(c *gin.Context) {
	postType := c.Query("type")
	if !models.ValidPostType(postType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post type"})
		return
	}

	filter := bson.M{"type": postType}
	if postType == models.TypeHelpNeeded || postType == models.TypeHelpOffered {
		filter["isCompleted"] = false
	}

	listFiltered(c, filter)
}

// ListCompleted returns help posts marked fulfilled, for the achievements
// section.
func ListCompleted(c *gin.Context) {
	filter := bson.M{
		"type":        bson.M{"$in": []string{models.TypeHelpNeeded, models.TypeHelpOffered}},
		"isCompleted": true,
	}
	listFiltered(c, filter)
}

func listFiltered(c *gin.Context, filter bson.M) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := database.Posts.Find(ctx, filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode posts"})
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}

	posts = filterPosts(posts, c.Query("location"), c.QueryArray("tag"))
	c.JSON(http.StatusOK, posts)
}

// ListAllPosts feeds the filter-suggestion UI. Capped at 1000 documents.
func ListAllPosts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.Posts.Find(ctx, bson.M{}, options.Find().SetLimit(1000))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode posts"})
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}
	c.JSON(http.StatusOK, posts)
}

func ListMyPosts(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := database.Posts.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode posts"})
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}
	c.JSON(http.StatusOK, posts)
}

// GetPost returns the post, or 200 with a null body for a stale id so
// clients can null-check instead of special-casing errors.
func GetPost(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusOK, nil)
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

	c.JSON(http.StatusOK, post)
}

// DeletePost is author-only. Replies are intentionally not cascaded here;
// the bulk mock-data clear is the only path that removes them.
func DeletePost(c *gin.Context) {
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

	if !isAuthor(post, userID.Hex()) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this post"})
		return
	}

	if _, err := database.Posts.DeleteOne(ctx, bson.M{"_id": postID}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ToggleLike flips the caller's membership in the post's liked-by set. Plain
// read-then-patch; concurrent toggles are last-write-wins.
func ToggleLike(c *gin.Context) {
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

	liked := toggleLike(post.LikedByUsers, userID.Hex())
	_, err = database.Posts.UpdateOne(ctx, bson.M{"_id": postID},
		bson.M{"$set": bson.M{"likedByUsers": liked}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	nowLiked := len(liked) > len(post.LikedByUsers)
	if nowLiked && post.UserID != userID {
		SendLikePush(post.UserID, post.Title)
	}

	c.JSON(http.StatusOK, gin.H{
		"liked":     nowLiked,
		"likeCount": len(liked),
	})
}

// MarkCompleted sets the completion flag. Any authenticated caller may do
// this; completion is community-confirmed, not author-only.
func MarkCompleted(c *gin.Context) {
	if _, ok := callerID(c); !ok {
		return
	}

	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.Posts.UpdateOne(ctx, bson.M{"_id": postID},
		bson.M{"$set": bson.M{"isCompleted": true}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post marked as completed"})
}
