package models

// TokenPair is the access/refresh token pair returned to clients on
// login and on every successful rotation.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
