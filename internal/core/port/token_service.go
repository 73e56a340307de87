package port

import "github.com/google/uuid"

// Identity is the authenticated caller resolved from a token issued by the
// external auth provider.
type Identity struct {
	UserID uuid.UUID
	Role   string
}

// RoleAdmin marks users allowed to manage listings.
const RoleAdmin = "admin"

// TokenServicePort validates access tokens issued by the auth provider.
type TokenServicePort interface {
	Validate(tokenString string) (*Identity, error)
}
