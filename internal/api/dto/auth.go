package dto

// TokenResponse carries a (possibly reissued) session token.
type TokenResponse struct {
	Token string `json:"token"`
}
