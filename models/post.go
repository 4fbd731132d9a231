package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Post types. Achievements always reference the original help post they
// celebrate and are created already completed.
const (
	TypeHelpNeeded  = "helpNeeded"
	TypeHelpOffered = "helpOffered"
	TypeAchievement = "achievement"
)

func ValidPostType(t string) bool {
	return t == TypeHelpNeeded || t == TypeHelpOffered || t == TypeAchievement
}

type Post struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID  `bson:"userId" json:"userId"`
	Username       string              `bson:"username" json:"username"`   // denormalized at creation
	UserAvatar     string              `bson:"userAvatar" json:"userAvatar"`
	Title          string              `bson:"title" json:"title"`
	Description    string              `bson:"description" json:"description"` // markdown
	Location       string              `bson:"location" json:"location"`
	ContactInfo    string              `bson:"contactInfo" json:"contactInfo"`
	Type           string              `bson:"type" json:"type"`
	Tags           []string            `bson:"tags" json:"tags"`
	Images         []string            `bson:"images" json:"images"`
	OriginalPostID *primitive.ObjectID `bson:"originalPostId,omitempty" json:"originalPostId,omitempty"`
	IsCompleted    bool                `bson:"isCompleted" json:"isCompleted"`
	LikedByUsers   []string            `bson:"likedByUsers" json:"likedByUsers"`
	CreatedAt      int64               `bson:"createdAt" json:"createdAt"`
}
