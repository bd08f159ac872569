package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Playlist is an ordered set of video references owned by one user.
type Playlist struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	CreatedAt int64         `json:"createdAt" bson:"created_at"`
	UpdatedAt int64         `json:"-" bson:"updated_at"`

	Owner       bson.ObjectID   `json:"owner" bson:"owner"`
	Name        string          `json:"name" bson:"name"`
	Description string          `json:"description" bson:"description"`
	Videos      []bson.ObjectID `json:"videos" bson:"videos"`
}
