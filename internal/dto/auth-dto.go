package dto

import "github.com/RationSeva/ration_service/internal/domain"

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Role     string `json:"role"` // user | admin, defaults to user
}

type UserLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GoogleSessionRequest struct {
	SessionID string `json:"session_id"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`

	// only set for google-session exchanges
	SessionToken string `json:"session_token,omitempty"`
}

// TokenClaims is what the middleware attaches to the request after
// validating the bearer token.
type TokenClaims struct {
	UserID string  `json:"user_id"`
	Email  string  `json:"email"`
	Role   string  `json:"role"`
	Expiry float64 `json:"expiry"`
}
