package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the payload of the bearer token issued at login. Subject
// holds the user's hex object id.
type SessionClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}
