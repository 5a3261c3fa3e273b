package model

import "time"

// User is a registered account. DerivedKey and Salt are the hex-encoded
// PBKDF2 output and its per-credential salt; the plaintext password is
// never stored.
type User struct {
	ID         int64
	Email      string
	Username   string
	DerivedKey string
	Salt       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

// AuthUser is the identity resolved from an access token.
type AuthUser struct {
	ID int64
}

// UserResponse is the client-facing view of a user. Credential fields are
// deliberately absent.
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}
