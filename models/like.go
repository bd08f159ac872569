package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// LikeKind names what a like points at.
type LikeKind string

const (
	LikeVideo   LikeKind = "video"
	LikeComment LikeKind = "comment"
	LikeTweet   LikeKind = "tweet"
)

// Like records one user liking one target. The (kind, target, liked_by)
// triple is unique: toggling deletes or inserts the document.
type Like struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	CreatedAt int64         `json:"createdAt" bson:"created_at"`

	Kind    LikeKind      `json:"kind" bson:"kind"`
	Target  bson.ObjectID `json:"target" bson:"target"`
	LikedBy bson.ObjectID `json:"likedBy" bson:"liked_by"`
}
