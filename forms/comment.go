package forms

// CommentForm carries the comment text for create and update.
type CommentForm struct {
	Content string `form:"content" json:"content" binding:"required,min=1,max=2000"`
}

// ListCommentsQuery is the query string of the comment listing
// endpoint.
type ListCommentsQuery struct {
	Page  int64 `form:"page,default=1" binding:"gte=1"`
	Limit int64 `form:"limit,default=10" binding:"gte=1,lte=100"`
}
