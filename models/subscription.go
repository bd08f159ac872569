package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Subscription records one user (subscriber) following one channel.
type Subscription struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	CreatedAt int64         `json:"createdAt" bson:"created_at"`

	Subscriber bson.ObjectID `json:"subscriber" bson:"subscriber"`
	Channel    bson.ObjectID `json:"channel" bson:"channel"`
}
