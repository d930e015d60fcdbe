package model

import "github.com/golang-jwt/jwt/v5"

const AccessTokenType = "access"

// AccessClaims carries the username in the standard subject claim.
type AccessClaims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}
