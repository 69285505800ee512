package courses

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/coursedesk/coursedesk/internal/shared"
)

// ErrNotOwner indicates the acting user does not own the course.
var ErrNotOwner = errors.New("courses: not owner")

// Service handles course business logic. Mutations always check existence
// before ownership so an unknown id surfaces as 404, never 403.
type Service struct {
	repo Repository
}

// NewService builds a Service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all courses joined with their owners.
func (s *Service) List(ctx context.Context) ([]CourseWithOwner, error) {
	return s.repo.List(ctx)
}

// Get returns a single course joined with its owner.
func (s *Service) Get(ctx context.Context, id int64) (*CourseWithOwner, error) {
	course, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, notFound(id)
		}
		return nil, err
	}
	return course, nil
}

// Create stores a new course owned by ownerID.
func (s *Service) Create(ctx context.Context, ownerID int64, req CourseRequest) (int64, error) {
	id, err := s.repo.Create(ctx, Course{
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
		UserID:          ownerID,
	})
	if err != nil {
		return 0, shared.WrapError(http.StatusBadRequest, "Could not create course", err)
	}
	return id, nil
}

// Update overwrites a course's fields. Only the owner may update; ownership
// is re-asserted from the acting identity.
func (s *Service) Update(ctx context.Context, ownerID, id int64, req CourseRequest) error {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(id)
		}
		return err
	}
	if existing.UserID != ownerID {
		return ErrNotOwner
	}

	err = s.repo.Update(ctx, Course{
		ID:              id,
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
		UserID:          ownerID,
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(id)
		}
		return shared.WrapError(http.StatusBadRequest, "Could not update course", err)
	}
	return nil
}

// Delete removes a course. Only the owner may delete.
func (s *Service) Delete(ctx context.Context, ownerID, id int64) error {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(id)
		}
		return err
	}
	if existing.UserID != ownerID {
		return ErrNotOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(id)
		}
		return err
	}
	return nil
}

func notFound(id int64) *shared.Error {
	return shared.NewError(http.StatusNotFound, fmt.Sprintf("No course found with the id %d", id))
}
