package courses

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/coursedesk/coursedesk/internal/auth"
	"github.com/coursedesk/coursedesk/internal/platform/httpx"
	"github.com/coursedesk/coursedesk/internal/shared"
)

// Handler wires HTTP endpoints for courses. Reads are public; mutations
// require authentication.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	auth     auth.Middleware
	validate *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, authmw auth.Middleware) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		auth:     authmw,
		validate: validator.New(),
	}
}

// MountRoutes registers course routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/courses", h.List)
	r.Get("/courses/{id}", h.Get)
	r.Group(func(r chi.Router) {
		r.Use(h.auth.RequireUser)
		r.Post("/courses", h.Create)
		r.Put("/courses/{id}", h.Update)
		r.Delete("/courses/{id}", h.Delete)
	})
}

// List returns all courses, each joined with its owning user.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list courses failed", "error", err)
		httpx.Error(w, err)
		return
	}

	resp := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		resp = append(resp, toCourseResponse(c))
	}
	httpx.JSON(w, http.StatusOK, resp)
}

// Get returns the course for the provided id.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := courseID(r)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	course, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toCourseResponse(*course))
}

// Create stores a new course owned by the authenticated user and sets the
// Location header to the new course's URI.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	req, err := h.decodeCourse(r)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	id, err := h.service.Create(r.Context(), user.ID, req)
	if err != nil {
		h.logger.Error("create course failed", "error", err, "userID", user.ID)
		httpx.Error(w, err)
		return
	}

	httpx.Created(w, fmt.Sprintf("/api/courses/%d", id))
}

// Update overwrites an existing course owned by the authenticated user.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	id, err := courseID(r)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	req, err := h.decodeCourse(r)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	if err := h.service.Update(r.Context(), user.ID, id, req); err != nil {
		if errors.Is(err, ErrNotOwner) {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		h.logger.Error("update course failed", "error", err, "id", id)
		httpx.Error(w, err)
		return
	}
	httpx.NoContent(w)
}

// Delete removes a course owned by the authenticated user.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	id, err := courseID(r)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), user.ID, id); err != nil {
		if errors.Is(err, ErrNotOwner) {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		h.logger.Error("delete course failed", "error", err, "id", id)
		httpx.Error(w, err)
		return
	}
	httpx.NoContent(w)
}

func (h *Handler) decodeCourse(r *http.Request) (CourseRequest, error) {
	var req CourseRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return req, shared.NewError(http.StatusBadRequest, "Invalid input")
	}
	if err := h.validate.Struct(req); err != nil {
		return req, shared.NewError(http.StatusBadRequest, "Invalid input")
	}
	return req, nil
}

func courseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, shared.NewError(http.StatusBadRequest, "Invalid course id")
	}
	return id, nil
}
