package interfaces

import "time"

// TokenClaims is the decoded content of an issued access token.
type TokenClaims struct {
	TokenID   string
	UserID    string
	Email     string
	Role      string
	ExpiresAt time.Time
}

// ITokenService issues and verifies signed access tokens. Parse must reject
// expired or tampered tokens; revocation is layered on top through
// ISessionStore using the TokenID.
type ITokenService interface {
	Issue(userID, email, role string) (string, TokenClaims, error)
	Parse(token string) (TokenClaims, error)
}
