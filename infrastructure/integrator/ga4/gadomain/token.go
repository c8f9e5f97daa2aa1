package gadomain

// TokenResponse é a resposta do endpoint OAuth ao trocar a asserção JWT
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
