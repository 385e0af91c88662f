package http

import (
	"errors"
	"net/http"

	"github.com/taskhive/taskhive/internal/service"
	"github.com/taskhive/taskhive/pkg/hivesdk"
	"github.com/taskhive/taskhive/pkg/slogx"
)

// writeServiceError maps a service error onto the wire. The error kind
// decides the status code; the specific error supplies the description.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := &hivesdk.APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        hivesdk.ErrorCodeServerError,
		Description: "internal server error",
	}

	switch {
	case errors.Is(err, service.ErrNotFound):
		apiErr.StatusCode = http.StatusNotFound
		apiErr.Code = hivesdk.ErrorCodeNotFound
		apiErr.Description = err.Error()
	case errors.Is(err, service.ErrUnauthorized):
		apiErr.StatusCode = http.StatusUnauthorized
		apiErr.Code = hivesdk.ErrorCodeUnauthorized
		apiErr.Description = err.Error()
	case errors.Is(err, service.ErrValidation):
		apiErr.StatusCode = http.StatusBadRequest
		apiErr.Code = hivesdk.ErrorCodeInvalidRequest
		apiErr.Description = err.Error()
	case errors.Is(err, service.ErrConflict):
		apiErr.StatusCode = http.StatusConflict
		apiErr.Code = hivesdk.ErrorCodeConflict
		apiErr.Description = err.Error()
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
	}

	apiErr.WriteError(w)
}

func writeBadRequest(w http.ResponseWriter, description string) {
	(&hivesdk.APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        hivesdk.ErrorCodeInvalidRequest,
		Description: description,
	}).WriteError(w)
}

func writeUnauthenticated(w http.ResponseWriter) {
	(&hivesdk.APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        hivesdk.ErrorCodeUnauthorized,
		Description: "Authentication required",
	}).WriteError(w)
}
