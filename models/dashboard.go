package models

// ChannelStats aggregates a channel's totals for the dashboard.
type ChannelStats struct {
	TotalVideos      int64 `json:"totalVideos" bson:"total_videos"`
	TotalViews       int64 `json:"totalViews" bson:"total_views"`
	TotalSubscribers int64 `json:"totalSubscribers" bson:"total_subscribers"`
	TotalLikes       int64 `json:"totalLikes" bson:"total_likes"`
}
