package models

import "go.mongodb.org/mongo-driver/bson"

// RegisterRequest is the payload for email/password registration. The profile
// fields ride along flat so a single request completes both halves of
// registration (provider account + stored profile).
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	UserProfile
}

// Validate checks the registration payload
func (r RegisterRequest) Validate() error {
	return validate.Struct(r)
}

// LoginRequest is the payload for email/password login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Validate checks the login payload
func (r LoginRequest) Validate() error {
	return validate.Struct(r)
}

// AuthResponse is returned by the registration and login endpoints
type AuthResponse struct {
	UID     string `json:"uid"`
	Email   string `json:"email,omitempty"`
	IDToken string `json:"idToken,omitempty"`
	Profile bson.M `json:"profile,omitempty"`
}
