package httpx

import (
	"errors"
	"net/http"

	"github.com/coursedesk/coursedesk/internal/shared"
)

// ErrorResponse is the JSON body produced for every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Error translates an error into the JSON error body. A *shared.Error keeps
// its own status; anything else surfaces as 500.
func Error(w http.ResponseWriter, err error) {
	var appErr *shared.Error
	if errors.As(err, &appErr) {
		detail := ""
		if appErr.Err != nil {
			detail = appErr.Err.Error()
		}
		JSON(w, appErr.Status, ErrorResponse{Message: appErr.Message, Error: detail})
		return
	}
	JSON(w, http.StatusInternalServerError, ErrorResponse{
		Message: http.StatusText(http.StatusInternalServerError),
		Error:   err.Error(),
	})
}
