// Package dto defines Data Transfer Objects for authentication.
package dto

// LoginRequest represents the JSON request body for the login endpoint.
//
// @Description Request to authenticate the operator account
// @Example {"email": "ops@example.com", "password": "password123"}
type LoginRequest struct {
	// Email is the operator's email address.
	Email string `json:"email" binding:"required,email" example:"ops@example.com"`
	// Password is the operator's password.
	Password string `json:"password" binding:"required,min=6" example:"password123"`
} // @name LoginRequest

// LoginResponse represents the JSON response body for the login endpoint.
//
// @Description Successful authentication response with a JWT access token
type LoginResponse struct {
	// Token is the JWT access token for the admin endpoints.
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in" example:"900"`
} // @name LoginResponse

// Claims represents the JWT claims attached to an authenticated request.
type Claims struct {
	Email string `json:"email"`
}

// Validate performs custom validation on the login request.
func (r *LoginRequest) Validate() error {
	if r.Email == "" {
		return &ValidationError{
			Field:   "email",
			Message: "email is required",
		}
	}
	if len(r.Password) < 6 {
		return &ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		}
	}
	return nil
}
