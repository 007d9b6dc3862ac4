package models

import "github.com/golang-jwt/jwt/v5"

// PrincipalClaims is the JWT payload accepted by the principal-resolution
// middleware as an alternative to the profile_id header.
type PrincipalClaims struct {
	jwt.RegisteredClaims
	ProfileID uint `json:"profile_id"`
}
