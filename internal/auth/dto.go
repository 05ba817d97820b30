package auth

import (
	"github.com/oohdesk/oohdesk-backend/internal/users"
)

// LoginInput carries the submitted credentials.
type LoginInput struct {
	Username string
	Password string
}

// LoginResult is returned on successful authentication. User never contains
// the password hash.
type LoginResult struct {
	Token string        `json:"token"`
	User  users.UserDTO `json:"user"`
}
