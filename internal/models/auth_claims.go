package models

import "github.com/golang-jwt/jwt/v5"

type JwtCustomClaims struct {
	Username string  `json:"username"`
	Role     string  `json:"role"`
	KurirID  *string `json:"kurir_id,omitempty"`
	jwt.RegisteredClaims
}
