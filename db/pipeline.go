package db

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// channelProfilePipeline joins a user document against the
// subscriptions collection to produce subscriber counts and the
// viewer's subscription flag. The counts read the "subscribers" join
// output; the field name is pinned by a regression test.
func channelProfilePipeline(username string, viewer bson.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "username", Value: username}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: SUBSCRIPTION_COLL},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "channel"},
			{Key: "as", Value: "subscribers"},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: SUBSCRIPTION_COLL},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "subscriber"},
			{Key: "as", Value: "subscribed_to"},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "subscriber_count", Value: bson.D{{Key: "$size", Value: "$subscribers"}}},
			{Key: "subscribed_to_count", Value: bson.D{{Key: "$size", Value: "$subscribed_to"}}},
			{Key: "is_subscribed", Value: bson.D{{Key: "$in", Value: bson.A{viewer, "$subscribers.subscriber"}}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "username", Value: 1},
			{Key: "email", Value: 1},
			{Key: "fullname", Value: 1},
			{Key: "avatar", Value: 1},
			{Key: "cover_image", Value: 1},
			{Key: "subscriber_count", Value: 1},
			{Key: "subscribed_to_count", Value: 1},
			{Key: "is_subscribed", Value: 1},
		}}},
	}
}

// watchHistoryPipeline expands a user's watch history entries into the
// referenced video documents joined with their owners' public fields.
func watchHistoryPipeline(userID bson.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: userID}}}},
		{{Key: "$unwind", Value: "$watch_history"}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: VIDEO_COLL},
			{Key: "localField", Value: "watch_history"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "video"},
		}}},
		{{Key: "$unwind", Value: "$video"}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: USER_COLL},
			{Key: "localField", Value: "video.owner"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "owner"},
		}}},
		{{Key: "$unwind", Value: "$owner"}},
		{{Key: "$replaceRoot", Value: bson.D{
			{Key: "newRoot", Value: bson.D{{Key: "$mergeObjects", Value: bson.A{
				"$video",
				bson.D{{Key: "owner_details", Value: bson.D{
					{Key: "username", Value: "$owner.username"},
					{Key: "fullname", Value: "$owner.fullname"},
					{Key: "avatar", Value: "$owner.avatar"},
				}}},
			}}}},
		}}},
	}
}

// channelStatsPipeline totals a channel's videos, views and received
// likes in one pass over the videos collection. Subscribers are counted
// separately.
func channelStatsPipeline(owner bson.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "owner", Value: owner}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: LIKE_COLL},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "target"},
			{Key: "as", Value: "likes"},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total_videos", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "total_views", Value: bson.D{{Key: "$sum", Value: "$views"}}},
			{Key: "total_likes", Value: bson.D{{Key: "$sum", Value: bson.D{{Key: "$size", Value: "$likes"}}}}},
		}}},
	}
}
