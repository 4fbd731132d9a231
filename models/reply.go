package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Reply is immutable once created. The only delete path is the mock-data
// clear, which removes replies before their posts.
type Reply struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostID     primitive.ObjectID `bson:"postId" json:"postId"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	Username   string             `bson:"username" json:"username"`
	UserAvatar string             `bson:"userAvatar" json:"userAvatar"`
	Text       string             `bson:"text" json:"text"`
	CreatedAt  int64              `bson:"createdAt" json:"createdAt"`
}
