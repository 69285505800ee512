package courses_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coursedesk/coursedesk/internal/courses"
	"github.com/coursedesk/coursedesk/internal/shared"
)

type stubRepo struct {
	records map[int64]*courses.CourseWithOwner
	nextID  int64
	created []courses.Course
	updated []courses.Course
	deleted []int64

	listErr   error
	getErr    error
	createErr error
	updateErr error
	deleteErr error
}

func (s *stubRepo) List(ctx context.Context) ([]courses.CourseWithOwner, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]courses.CourseWithOwner, 0, len(s.records))
	for _, c := range s.records {
		out = append(out, *c)
	}
	return out, nil
}

func (s *stubRepo) Get(ctx context.Context, id int64) (*courses.CourseWithOwner, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	c, ok := s.records[id]
	if !ok {
		return nil, courses.ErrNotFound
	}
	return c, nil
}

func (s *stubRepo) Create(ctx context.Context, c courses.Course) (int64, error) {
	if s.createErr != nil {
		return 0, s.createErr
	}
	s.nextID++
	c.ID = s.nextID
	s.created = append(s.created, c)
	return s.nextID, nil
}

func (s *stubRepo) Update(ctx context.Context, c courses.Course) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updated = append(s.updated, c)
	return nil
}

func (s *stubRepo) Delete(ctx context.Context, id int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func ownedCourse(id, ownerID int64) *courses.CourseWithOwner {
	return &courses.CourseWithOwner{
		Course: courses.Course{
			ID:          id,
			Title:       "Build a Basic Bookcase",
			Description: "Woodworking from scratch.",
			UserID:      ownerID,
		},
		Owner: courses.Owner{ID: ownerID, FirstName: "Joe", LastName: "Smith", EmailAddress: "joe@smith.com"},
	}
}

func courseRequest() courses.CourseRequest {
	return courses.CourseRequest{
		Title:       "Learn How to Program",
		Description: "Write code like a pro.",
	}
}

func TestGetNotFound(t *testing.T) {
	service := courses.NewService(&stubRepo{})

	_, err := service.Get(context.Background(), 999999)
	var appErr *shared.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, http.StatusNotFound, appErr.Status)
	require.Contains(t, appErr.Message, "999999")
}

func TestCreateAssignsOwner(t *testing.T) {
	repo := &stubRepo{}
	service := courses.NewService(repo)

	id, err := service.Create(context.Background(), 42, courseRequest())
	require.NoError(t, err)
	require.Equal(t, int64(1), id)
	require.Len(t, repo.created, 1)
	require.Equal(t, int64(42), repo.created[0].UserID)
}

func TestCreateStoreFault(t *testing.T) {
	repo := &stubRepo{createErr: errors.New("insert failed")}
	service := courses.NewService(repo)

	_, err := service.Create(context.Background(), 42, courseRequest())
	var appErr *shared.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestUpdateNotFound(t *testing.T) {
	repo := &stubRepo{}
	service := courses.NewService(repo)

	err := service.Update(context.Background(), 1, 999999, courseRequest())
	var appErr *shared.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, http.StatusNotFound, appErr.Status)
	require.Contains(t, appErr.Message, "999999")
	require.Empty(t, repo.updated)
}

func TestUpdateNotOwner(t *testing.T) {
	repo := &stubRepo{records: map[int64]*courses.CourseWithOwner{1: ownedCourse(1, 1)}}
	service := courses.NewService(repo)

	err := service.Update(context.Background(), 2, 1, courseRequest())
	require.ErrorIs(t, err, courses.ErrNotOwner)
	require.Empty(t, repo.updated)
}

func TestUpdateByOwner(t *testing.T) {
	repo := &stubRepo{records: map[int64]*courses.CourseWithOwner{1: ownedCourse(1, 1)}}
	service := courses.NewService(repo)

	err := service.Update(context.Background(), 1, 1, courseRequest())
	require.NoError(t, err)
	require.Len(t, repo.updated, 1)
	require.Equal(t, "Learn How to Program", repo.updated[0].Title)
	require.Equal(t, int64(1), repo.updated[0].UserID)
}

func TestDeleteNotOwner(t *testing.T) {
	repo := &stubRepo{records: map[int64]*courses.CourseWithOwner{1: ownedCourse(1, 1)}}
	service := courses.NewService(repo)

	err := service.Delete(context.Background(), 2, 1)
	require.ErrorIs(t, err, courses.ErrNotOwner)
	require.Empty(t, repo.deleted)
}

func TestDeleteByOwner(t *testing.T) {
	repo := &stubRepo{records: map[int64]*courses.CourseWithOwner{1: ownedCourse(1, 1)}}
	service := courses.NewService(repo)

	err := service.Delete(context.Background(), 1, 1)
	require.NoError(t, err)
	require.Equal(t, []int64{1}, repo.deleted)
}

func TestDeleteStoreFault(t *testing.T) {
	fault := errors.New("delete failed")
	repo := &stubRepo{
		records:   map[int64]*courses.CourseWithOwner{1: ownedCourse(1, 1)},
		deleteErr: fault,
	}
	service := courses.NewService(repo)

	err := service.Delete(context.Background(), 1, 1)
	require.ErrorIs(t, err, fault)
	var appErr *shared.Error
	require.False(t, errors.As(err, &appErr))
}
