package handler

import (
	"errors"
	"net/http"

	"github.com/tiagorb/enrollment-console/internal/record"
	"github.com/tiagorb/enrollment-console/internal/response"
	"github.com/tiagorb/enrollment-console/internal/service"
)

// writeServiceError maps the engine's error taxonomy onto HTTP statuses.
// Everything here is a recoverable, user-facing condition; the fallback
// message covers whatever is left.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var validation *service.ValidationError
	var remote *record.RemoteError

	switch {
	case errors.As(err, &validation):
		response.BadRequest(w, "Validation failed", validation.Fields)
	case errors.Is(err, service.ErrIneligibleAge):
		response.BadRequest(w, "Student must be at least 5 years old", nil)
	case errors.Is(err, service.ErrClassFull):
		response.Conflict(w, "Class is at full capacity")
	case errors.Is(err, service.ErrStudentNotFound),
		errors.Is(err, service.ErrClassNotFound):
		response.NotFound(w, err.Error())
	case errors.As(err, &remote):
		response.BadGateway(w, remote.Error())
	default:
		response.InternalError(w, fallback)
	}
}
