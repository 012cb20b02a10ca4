package auth_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/dberr"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/sec"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/users/auth"
)

type fakeUserRepo struct {
	users map[string]*auth.User // keyed by ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*auth.User)}
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*auth.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeUserRepo) Create(_ context.Context, user *auth.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, userID, newHash string) error {
	user, ok := f.users[userID]
	if !ok {
		return dberr.ErrNotFound
	}
	user.PasswordHash = newHash
	return nil
}

func (f *fakeUserRepo) TouchLastLogin(_ context.Context, userID string) error {
	now := time.Now()
	if user, ok := f.users[userID]; ok {
		user.LastLoginAt = &now
	}
	return nil
}

func (f *fakeUserRepo) SoftDelete(_ context.Context, id string) error {
	delete(f.users, id)
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]*auth.Session // keyed by token hash
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*auth.Session)}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *auth.Session) error {
	f.sessions[session.TokenHash] = session
	return nil
}

func (f *fakeSessionRepo) FindByTokenHash(_ context.Context, tokenHash string) (*auth.Session, error) {
	session, ok := f.sessions[tokenHash]
	if !ok || session.IsRevoked || session.ExpiresAt.Before(time.Now()) {
		return nil, dberr.ErrNotFound
	}
	return session, nil
}

func (f *fakeSessionRepo) Revoke(_ context.Context, sessionID string) error {
	for _, session := range f.sessions {
		if session.ID == sessionID {
			session.IsRevoked = true
		}
	}
	return nil
}

func (f *fakeSessionRepo) RevokeAll(_ context.Context, userID string) error {
	for _, session := range f.sessions {
		if session.UserID == userID {
			session.IsRevoked = true
		}
	}
	return nil
}

func (f *fakeSessionRepo) RevokeOthers(_ context.Context, userID, currentSessionID string) error {
	for _, session := range f.sessions {
		if session.UserID == userID && session.ID != currentSessionID {
			session.IsRevoked = true
		}
	}
	return nil
}

func (f *fakeSessionRepo) DeleteExpired(_ context.Context) error { return nil }

type staticTokenProvider struct{}

func (staticTokenProvider) GenerateAccessToken(_, _, _ string, _ time.Duration) (string, error) {
	return "signed.jwt.token", nil
}

func newAuthService(users *fakeUserRepo, sessions *fakeSessionRepo) *auth.Service {
	return auth.NewService(users, sessions, staticTokenProvider{}, slog.Default())
}

/*
TestService_Register verifies enrollment: the password is stored hashed
and duplicate identities are rejected with a conflict.
*/
func TestService_Register(t *testing.T) {
	users := newFakeUserRepo()
	service := newAuthService(users, newFakeSessionRepo())

	created, err := service.Register(context.Background(), auth.RegisterInput{
		Username: "balint",
		Email:    "balint@example.com",
		Password: "nagyon-titkos-1",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "nagyon-titkos-1", created.PasswordHash)
	assert.Equal(t, sec.RoleMember, created.Role)
	assert.True(t, created.IsActive)

	_, err = service.Register(context.Background(), auth.RegisterInput{
		Username: "masik", Email: "balint@example.com", Password: "valami-jelszo",
	})
	require.Error(t, err, "duplicate email must conflict")

	_, err = service.Register(context.Background(), auth.RegisterInput{
		Username: "balint", Email: "uj@example.com", Password: "valami-jelszo",
	})
	require.Error(t, err, "duplicate username must conflict")
}

/*
TestService_Login verifies credential checking and session issuance,
including the vague rejection of bad passwords.
*/
func TestService_Login(t *testing.T) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	service := newAuthService(users, sessions)

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Username: "balint", Email: "balint@example.com", Password: "nagyon-titkos-1",
	})
	require.NoError(t, err)

	session, err := service.Login(context.Background(), auth.LoginInput{
		Login: "balint@example.com", Password: "nagyon-titkos-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)

	// Username login works too
	_, err = service.Login(context.Background(), auth.LoginInput{
		Login: "balint", Password: "nagyon-titkos-1",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), auth.LoginInput{
		Login: "balint@example.com", Password: "rossz-jelszo",
	})
	require.Error(t, err)
}

/*
TestService_RefreshSession verifies token rotation: the old refresh token
dies when a new pair is issued.
*/
func TestService_RefreshSession(t *testing.T) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	service := newAuthService(users, sessions)

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Username: "balint", Email: "balint@example.com", Password: "nagyon-titkos-1",
	})
	require.NoError(t, err)

	login, err := service.Login(context.Background(), auth.LoginInput{
		Login: "balint", Password: "nagyon-titkos-1",
	})
	require.NoError(t, err)

	rotated, err := service.RefreshSession(context.Background(), login.RefreshToken, "ua", "ip")
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, rotated.RefreshToken)

	// Replaying the consumed token must fail.
	_, err = service.RefreshSession(context.Background(), login.RefreshToken, "ua", "ip")
	require.Error(t, err)
}

/*
TestService_Logout verifies idempotency: revoking an unknown token is a
quiet success.
*/
func TestService_Logout(t *testing.T) {
	service := newAuthService(newFakeUserRepo(), newFakeSessionRepo())

	require.NoError(t, service.Logout(context.Background(), "sosem-letezett"))
}
