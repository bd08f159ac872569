package forms

// PublishVideoForm contains the text fields of the multipart video
// upload. The video file and thumbnail are read separately.
type PublishVideoForm struct {
	Title       string  `form:"title" json:"title" binding:"required,min=1,max=200"`
	Description string  `form:"description" json:"description" binding:"required,min=1,max=5000"`
	Duration    float64 `form:"duration" json:"duration" binding:"omitempty,gte=0"`
}

// UpdateVideoForm contains the mutable video text fields. Both are
// optional; an empty form is rejected by the handler.
type UpdateVideoForm struct {
	Title       string `form:"title" json:"title" binding:"omitempty,min=1,max=200"`
	Description string `form:"description" json:"description" binding:"omitempty,min=1,max=5000"`
}

// ListVideosQuery is the query string of the video listing endpoint.
// The range tags deliberately omit omitempty: an explicit page=0 must
// fail validation rather than reach the store as a negative skip.
type ListVideosQuery struct {
	Page     int64  `form:"page,default=1" binding:"gte=1"`
	Limit    int64  `form:"limit,default=10" binding:"gte=1,lte=100"`
	Query    string `form:"query"`
	SortBy   string `form:"sortBy,default=created_at" binding:"oneof=created_at title duration views"`
	SortType string `form:"sortType,default=desc" binding:"oneof=asc desc"`
	UserID   string `form:"userId" binding:"omitempty,objectid"`
}
