package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is the account document. Password and RefreshToken are never
// serialized into a response.
type User struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	CreatedAt int64         `json:"-" bson:"created_at"`
	UpdatedAt int64         `json:"-" bson:"updated_at"`

	Username   string `json:"username" bson:"username"`
	Email      string `json:"email" bson:"email"`
	FullName   string `json:"fullname" bson:"fullname"`
	Avatar     string `json:"avatar" bson:"avatar"`
	CoverImage string `json:"coverImage,omitempty" bson:"cover_image,omitempty"`

	WatchHistory []bson.ObjectID `json:"-" bson:"watch_history,omitempty"`

	Password     string `json:"-" bson:"password,omitempty"`
	RefreshToken string `json:"-" bson:"refresh_token,omitempty"`
}

// ChannelProfile is the aggregated public view of a channel: the user
// document joined against the subscriptions collection.
type ChannelProfile struct {
	ID              bson.ObjectID `json:"id" bson:"_id"`
	Username        string        `json:"username" bson:"username"`
	Email           string        `json:"email" bson:"email"`
	FullName        string        `json:"fullname" bson:"fullname"`
	Avatar          string        `json:"avatar" bson:"avatar"`
	CoverImage      string        `json:"coverImage,omitempty" bson:"cover_image,omitempty"`
	SubscriberCount int64         `json:"subscriberCount" bson:"subscriber_count"`
	SubscribedTo    int64         `json:"channelsSubscribedToCount" bson:"subscribed_to_count"`
	IsSubscribed    bool          `json:"isSubscribed" bson:"is_subscribed"`
}
