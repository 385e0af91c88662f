package domain

// TokenPair is the access and refresh token issued by a successful
// login or refresh. ExpiresIn is the access token lifetime in seconds.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}
