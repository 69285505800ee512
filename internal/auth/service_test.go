package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/coursedesk/coursedesk/internal/auth"
)

type stubRepo struct {
	user *auth.User
	err  error
}

func (s *stubRepo) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.user == nil || s.user.EmailAddress != email {
		return nil, auth.ErrUserNotFound
	}
	return s.user, nil
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthenticateSuccess(t *testing.T) {
	repo := &stubRepo{user: &auth.User{
		ID:           7,
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: "joe@smith.com",
		PasswordHash: hashPassword(t, "joepassword"),
	}}
	service := auth.NewService(repo)

	user, err := service.Authenticate(context.Background(), "joe@smith.com", "joepassword")
	require.NoError(t, err)
	require.Equal(t, int64(7), user.ID)
	require.Equal(t, "joe@smith.com", user.EmailAddress)
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	service := auth.NewService(&stubRepo{})

	_, err := service.Authenticate(context.Background(), "ghost@example.com", "whatever")
	require.ErrorIs(t, err, auth.ErrUnknownUser)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	repo := &stubRepo{user: &auth.User{
		EmailAddress: "joe@smith.com",
		PasswordHash: hashPassword(t, "joepassword"),
	}}
	service := auth.NewService(repo)

	_, err := service.Authenticate(context.Background(), "joe@smith.com", "wrongpass")
	require.ErrorIs(t, err, auth.ErrInvalidPassword)
}

func TestAuthenticateStoreFault(t *testing.T) {
	fault := errors.New("connection refused")
	service := auth.NewService(&stubRepo{err: fault})

	_, err := service.Authenticate(context.Background(), "joe@smith.com", "joepassword")
	require.ErrorIs(t, err, fault)
	require.NotErrorIs(t, err, auth.ErrUnknownUser)
}
