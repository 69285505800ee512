package users

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/coursedesk/coursedesk/internal/auth"
	"github.com/coursedesk/coursedesk/internal/platform/httpx"
	"github.com/coursedesk/coursedesk/internal/shared"
)

// Handler wires HTTP endpoints for user accounts.
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

// MountRoutes registers user routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/users", h.Register)
	r.Group(func(r chi.Router) {
		r.Use(h.auth.RequireUser)
		r.Get("/users", h.CurrentUser)
	})
}

// Register creates a user, sets the Location header to "/", and returns no content.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, shared.NewError(http.StatusBadRequest, "Invalid input"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Error(w, shared.NewError(http.StatusBadRequest, "Invalid input"))
		return
	}

	if _, err := h.service.Register(r.Context(), req); err != nil {
		h.logger.Error("register user failed", "error", err, "email", req.EmailAddress)
		httpx.Error(w, err)
		return
	}

	httpx.Created(w, "/")
}

// CurrentUser returns the authenticated identity's public projection.
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	httpx.JSON(w, http.StatusOK, UserResponse{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		EmailAddress: user.EmailAddress,
	})
}
