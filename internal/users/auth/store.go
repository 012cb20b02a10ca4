package auth

import "context"

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {
	FindByID(context context.Context, id string) (*User, error)
	FindByEmail(context context.Context, email string) (*User, error)
	FindByUsername(context context.Context, username string) (*User, error)
	Create(context context.Context, user *User) error
	UpdatePassword(context context.Context, userID, newHash string) error
	// TouchLastLogin stamps the account's lastloginat on a successful login.
	TouchLastLogin(context context.Context, userID string) error
	SoftDelete(context context.Context, id string) error
}

// SessionRepository defines the data access contract for refresh-token sessions.
type SessionRepository interface {
	Create(context context.Context, session *Session) error
	// FindByTokenHash returns the matching session only while it is
	// unrevoked and unexpired.
	FindByTokenHash(context context.Context, tokenHash string) (*Session, error)
	Revoke(context context.Context, sessionID string) error
	RevokeAll(context context.Context, userID string) error
	RevokeOthers(context context.Context, userID, currentSessionID string) error
	DeleteExpired(context context.Context) error
}
