package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone" json:"phone"`
	PasswordHash string    `bson:"password" json:"-"`
	Role         string    `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// Session links an OAuth session token to a user. Written on every
// google-session exchange; nothing in the service reads it back.
type Session struct {
	SessionToken string    `bson:"session_token" json:"session_token"`
	UserID       string    `bson:"user_id" json:"user_id"`
	ExpiresAt    time.Time `bson:"expires_at" json:"expires_at"`
}
