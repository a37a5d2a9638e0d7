package model

import "context"

// UserStore defines persistence operations for users.
type UserStore interface {
	AddUser(ctx context.Context, username string) (User, error)
	GetUserIDByToken(ctx context.Context, token string) (string, error)
}

// User represents a registered user and its bearer token.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Token string `json:"token"`
}
