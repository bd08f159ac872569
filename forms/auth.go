package forms

// RefreshForm carries the refresh token when the client sends it in the
// request body instead of the cookie.
type RefreshForm struct {
	RefreshToken string `form:"refreshToken" json:"refreshToken"`
}
