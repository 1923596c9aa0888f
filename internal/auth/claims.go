package auth

import "github.com/golang-jwt/jwt/v5"

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims are the only supported JWT claims shape for this service.
// Multi-store invariant: StoreID must be present for all non-admin activity;
// it scopes every ops-API read and write to one store.
type Claims struct {
	jwt.RegisteredClaims

	UserID    string    `json:"user_id"`
	StoreID   string    `json:"store_id"`
	Role      string    `json:"role"`
	TokenType TokenType `json:"token_type"`
}
