package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Video is a published (or draft) upload. VideoFile and Thumbnail hold
// media store URLs, not raw bytes.
type Video struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	CreatedAt int64         `json:"createdAt" bson:"created_at"`
	UpdatedAt int64         `json:"-" bson:"updated_at"`

	Owner       bson.ObjectID `json:"owner" bson:"owner"`
	Title       string        `json:"title" bson:"title"`
	Description string        `json:"description" bson:"description"`
	VideoFile   string        `json:"videoFile" bson:"video_file"`
	Thumbnail   string        `json:"thumbnail" bson:"thumbnail"`
	Duration    float64       `json:"duration" bson:"duration"`
	Views       int64         `json:"views" bson:"views"`
	IsPublished bool          `json:"isPublished" bson:"is_published"`
}

// HistoryEntry is a watch-history video joined with its owner's public
// fields.
type HistoryEntry struct {
	Video `bson:",inline"`

	OwnerDetails struct {
		Username string `json:"username" bson:"username"`
		FullName string `json:"fullname" bson:"fullname"`
		Avatar   string `json:"avatar" bson:"avatar"`
	} `json:"ownerDetails" bson:"owner_details"`
}

// VideoPage is one page of a video listing.
type VideoPage struct {
	Videos     []Video `json:"videos"`
	Page       int64   `json:"page"`
	Limit      int64   `json:"limit"`
	TotalCount int64   `json:"totalCount"`
}
