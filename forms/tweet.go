package forms

// TweetForm carries the tweet text for create and update.
type TweetForm struct {
	Content string `form:"content" json:"content" binding:"required,min=1,max=500"`
}
