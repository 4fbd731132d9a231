package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"sanad/database"
	"sanad/models"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UpdateProfileRequest is the tagged set of recognized settings. Pointer
// fields distinguish "absent" from "set to zero"; unknown JSON keys are
// rejected outright instead of silently dropped.
type UpdateProfileRequest struct {
	Name                 *string `json:"name"`
	Bio                  *string `json:"bio"`
	Location             *string `json:"location"`
	Language             *string `json:"language"`
	Theme                *string `json:"theme"`
	NotificationsEnabled *bool   `json:"notificationsEnabled"`
	ProfileVisible       *bool   `json:"profileVisible"`
}

func GetMyProfile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err := database.Users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	if err != nil {
		log.Printf("[GetMyProfile] database error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}

	if user.Image == "" {
		user.Image = fallbackAvatar
	}

	c.JSON(http.StatusOK, user)
}

// GetUser returns a public profile. When the user has opted out of profile
// visibility, bio and location are withheld from other callers.
func GetUser(c *gin.Context) {
	targetID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err = database.Users.FindOne(ctx, bson.M{"_id": targetID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusOK, gin.H{
			"id":     c.Param("id"),
			"name":   "Unknown User",
			"avatar": fallbackAvatar,
			"bio":    "",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}

	resp := gin.H{
		"id":     user.ID.Hex(),
		"name":   user.Name,
		"avatar": user.Image,
	}
	if resp["avatar"] == "" {
		resp["avatar"] = fallbackAvatar
	}

	isSelf := c.GetString("userId") == user.ID.Hex()
	if user.Preferences.ProfileVisible || isSelf {
		resp["bio"] = user.Bio
		resp["location"] = user.Location
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateProfile applies only the fields present in the request. A name
// change cascades to the denormalized username on the user's posts and
// replies as a batch update; the response reports how many rows each batch
// touched (best-effort, no rollback).
func UpdateProfile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile update: " + err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var user models.User
	err := database.Users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Bio != nil {
		set["bio"] = *req.Bio
	}
	if req.Location != nil {
		set["location"] = *req.Location
	}
	if req.Language != nil {
		set["preferences.language"] = *req.Language
	}
	if req.Theme != nil {
		set["preferences.theme"] = *req.Theme
	}
	if req.NotificationsEnabled != nil {
		set["preferences.notificationsEnabled"] = *req.NotificationsEnabled
	}
	if req.ProfileVisible != nil {
		set["preferences.profileVisible"] = *req.ProfileVisible
	}

	if len(set) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No changes to update"})
		return
	}

	if _, err := database.Users.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": set}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	resp := gin.H{"message": "Profile updated successfully"}

	if req.Name != nil && *req.Name != user.Name {
		postsUpdated, repliesUpdated, cascadeErr := cascadeUsername(ctx, userID.Hex(), *req.Name)
		resp["cascade"] = gin.H{
			"postsUpdated":   postsUpdated,
			"repliesUpdated": repliesUpdated,
		}
		if cascadeErr != nil {
			// Best-effort: profile change already stuck, report the gap
			log.Printf("[UpdateProfile] username cascade incomplete for %s: %v", userID.Hex(), cascadeErr)
			resp["cascade"].(gin.H)["error"] = "Username propagation incomplete"
		}
	}

	c.JSON(http.StatusOK, resp)
}

// cascadeUsername rewrites the denormalized username on the user's existing
// posts and replies. Both batches run even when the first fails.
func cascadeUsername(ctx context.Context, userIDHex, name string) (postsUpdated, repliesUpdated int64, err error) {
	userID, idErr := primitive.ObjectIDFromHex(userIDHex)
	if idErr != nil {
		return 0, 0, idErr
	}

	update := bson.M{"$set": bson.M{"username": name}}

	postsRes, postsErr := database.Posts.UpdateMany(ctx, bson.M{"userId": userID}, update)
	if postsRes != nil {
		postsUpdated = postsRes.ModifiedCount
	}

	repliesRes, repliesErr := database.Replies.UpdateMany(ctx, bson.M{"userId": userID}, update)
	if repliesRes != nil {
		repliesUpdated = repliesRes.ModifiedCount
	}

	if postsErr != nil {
		return postsUpdated, repliesUpdated, postsErr
	}
	return postsUpdated, repliesUpdated, repliesErr
}

// UploadAvatar stores the profile picture in Cloudinary and saves the
// returned URL on the user document.
func UploadAvatar(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	avatarFile, _, err := c.Request.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No avatar file provided"})
		return
	}
	defer avatarFile.Close()

	cld, err := cloudinary.NewFromURL(os.Getenv("CLOUDINARY_URL"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cloudinary configuration error"})
		return
	}

	uploadResult, err := cld.Upload.Upload(ctx, avatarFile, uploader.UploadParams{
		Folder:         "sanad/avatars",
		PublicID:       userID.Hex(),
		Transformation: "c_limit,w_400,h_400,q_auto",
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload avatar"})
		return
	}

	_, err = database.Users.UpdateOne(ctx, bson.M{"_id": userID},
		bson.M{"$set": bson.M{"image": uploadResult.SecureURL}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save avatar"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": uploadResult.SecureURL})
}
