package models

import "time"

// TokenTypeBearer is the only token type issued by the server.
const TokenTypeBearer = "bearer"

// Token is a freshly minted access token together with the data the
// transport layer needs to hand it to a client.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// Subject is the username the token was issued for.
	Subject string `json:"-"`

	// ExpiresAt is the absolute expiry of the token.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// TokenResponse is the body returned by POST /login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// NewTokenResponse wraps a signed token into a bearer [TokenResponse].
func NewTokenResponse(token Token) TokenResponse {
	return TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   TokenTypeBearer,
	}
}
