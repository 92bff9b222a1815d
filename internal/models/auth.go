package models

import "github.com/golang-jwt/jwt/v5"

// LoginRequest is the credentials payload for staff logins.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest creates a staff account.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"`
	Address  string `json:"address"`
	Contact  string `json:"contact"`
}

// LoginResponse mirrors the legacy login body plus an access token.
type LoginResponse struct {
	Success  bool          `json:"success"`
	Token    string        `json:"token,omitempty"`
	User     *StaffAccount `json:"user"`
	UserType string        `json:"userType"`
}

// JWTClaims carries identity inside access tokens.
type JWTClaims struct {
	UserID   string `json:"uid"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
