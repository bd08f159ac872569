package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Comment belongs to exactly one video.
type Comment struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	CreatedAt int64         `json:"createdAt" bson:"created_at"`
	UpdatedAt int64         `json:"-" bson:"updated_at"`

	Video   bson.ObjectID `json:"video" bson:"video"`
	Owner   bson.ObjectID `json:"owner" bson:"owner"`
	Content string        `json:"content" bson:"content"`
}

// CommentPage is one page of a video's comment thread.
type CommentPage struct {
	Comments   []Comment `json:"comments"`
	Page       int64     `json:"page"`
	Limit      int64     `json:"limit"`
	TotalCount int64     `json:"totalCount"`
}
