package handler

import (
	"errors"
	"log/slog"

	"github.com/forgo/chrono/api/internal/model"
	"github.com/forgo/chrono/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
//
// Two mappings carry the original wire contract rather than usual REST
// practice: a taken username maps to 401, and a wrong password on login
// maps to 412.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Account Errors =====
	case errors.Is(err, service.ErrUsernameTaken):
		return model.NewUnauthorizedError(err.Error())
	case errors.Is(err, service.ErrPasswordMismatch):
		return model.NewPreconditionFailedError(err.Error())
	case errors.Is(err, service.ErrUsernameRequired):
		return model.NewValidationError([]model.FieldError{
			{Field: "username", Message: err.Error()},
		})

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrAccountNotFound):
		return model.NewNotFoundError("account")
	case errors.Is(err, service.ErrUserNotFound):
		return model.NewNotFoundError("user")
	case errors.Is(err, service.ErrPlannerNotFound):
		return model.NewNotFoundError("planner")
	case errors.Is(err, service.ErrEventNotFound):
		return model.NewNotFoundError("event")

	// ===== Default → 500 =====
	default:
		slog.Error("unhandled service error", "error", err)
		return model.NewInternalError("")
	}
}
