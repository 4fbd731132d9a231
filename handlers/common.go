package handlers

import (
	"net/http"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Common constants and variables shared across all handler files
const fallbackAvatar = "https://eu.ui-avatars.com/api/?name=John+Doe&size=250"

var vapidPrivateKey string

// PushSubscription stores a browser push subscription per user.
type PushSubscription struct {
	ID     primitive.ObjectID   `bson:"_id,omitempty"`
	UserID primitive.ObjectID   `bson:"userId"`
	Sub    webpush.Subscription `bson:"sub"`
}

// SetVAPIDPrivateKey sets the VAPID private key
func SetVAPIDPrivateKey(key string) {
	vapidPrivateKey = key
}

// callerID reads the authenticated user's id set by the JWT middleware.
// Writes a 401 and returns false when it is missing or malformed.
func callerID(c *gin.Context) (primitive.ObjectID, bool) {
	userIDStr := c.GetString("userId")
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID"})
		return primitive.NilObjectID, false
	}
	return userID, true
}
