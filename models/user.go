package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Preferences is the per-user settings bag. Only recognized keys exist here;
// the profile handler rejects anything else.
type Preferences struct {
	Language             string `bson:"language,omitempty" json:"language,omitempty"`
	Theme                string `bson:"theme,omitempty" json:"theme,omitempty"` // light, dark, system
	NotificationsEnabled bool   `bson:"notificationsEnabled" json:"notificationsEnabled"`
	ProfileVisible       bool   `bson:"profileVisible" json:"profileVisible"`
}

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email,omitempty" json:"email,omitempty"`
	PasswordHash *string            `bson:"passwordHash,omitempty" json:"-"`
	AuthProvider string             `bson:"authProvider" json:"authProvider"` // password, anonymous
	IsAnonymous  bool               `bson:"isAnonymous" json:"isAnonymous"`
	Name         string             `bson:"name" json:"name"`
	Image        string             `bson:"image" json:"image"`
	Bio          string             `bson:"bio" json:"bio"`
	Location     string             `bson:"location" json:"location"`
	Preferences  Preferences        `bson:"preferences" json:"preferences"`
	CreatedAt    int64              `bson:"createdAt" json:"createdAt"`
	LastSeen     int64              `bson:"lastSeen" json:"lastSeen"`
}
