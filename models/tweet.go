package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Tweet is a short text post on a channel's community tab.
type Tweet struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	CreatedAt int64         `json:"createdAt" bson:"created_at"`
	UpdatedAt int64         `json:"-" bson:"updated_at"`

	Owner   bson.ObjectID `json:"owner" bson:"owner"`
	Content string        `json:"content" bson:"content"`
}
