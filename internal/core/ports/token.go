package ports

import "github.com/quetzart/directory-api/internal/core/domain"

// SessionClaims is the decoded content of a session token.
type SessionClaims struct {
	UserID int64
	Role   domain.Role
}

// TokenIssuer mints and validates session tokens.
type TokenIssuer interface {
	Issue(userID int64, role domain.Role) (string, error)
	// Decode returns domain.ErrInvalidToken for any bad, expired or malformed token.
	Decode(token string) (*SessionClaims, error)
}
