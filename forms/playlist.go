package forms

// PlaylistForm carries the playlist fields for create and update.
type PlaylistForm struct {
	Name        string `form:"name" json:"name" binding:"required,min=1,max=100"`
	Description string `form:"description" json:"description" binding:"omitempty,max=1000"`
}
