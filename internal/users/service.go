package users

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/coursedesk/coursedesk/internal/shared"
)

// Service handles user business logic.
type Service struct {
	repo Repository
}

// NewService builds a Service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a new account. The email must not already be registered;
// uniqueness is checked by a lookup before insert, matching the storage
// schema which carries no unique constraint.
func (s *Service) Register(ctx context.Context, req CreateUserRequest) (int64, error) {
	_, err := s.repo.FindByEmail(ctx, req.EmailAddress)
	switch {
	case err == nil:
		return 0, shared.NewError(http.StatusConflict, fmt.Sprintf("User with email %s already exists!", req.EmailAddress))
	case !errors.Is(err, ErrNotFound):
		return 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		EmailAddress: req.EmailAddress,
		PasswordHash: string(hash),
	})
	if err != nil {
		return 0, shared.WrapError(http.StatusBadRequest, "Could not create user", err)
	}
	return id, nil
}
