package types

import "github.com/golang-jwt/jwt/v5"

// Claims identifies the acting user of a request.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}
