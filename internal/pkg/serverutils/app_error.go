package serverutils

import "github.com/gofiber/fiber/v2"

// AppError is the structural error surface of the API: bad input, unknown
// session, not-ready report. Upstream LLM failures never become AppErrors;
// they are absorbed by the gateway.
type AppError struct {
	HTTPCode int
	Status   string // "error" or "pending"
	Message  string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewInvalidInput(message string) *AppError {
	return &AppError{HTTPCode: fiber.StatusBadRequest, Status: "error", Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{HTTPCode: fiber.StatusNotFound, Status: "error", Message: message}
}

// NewNotReady marks a report requested before the session reached a terminal
// state. Surfaced as a 400 "pending" body, not a failure.
func NewNotReady(message string) *AppError {
	return &AppError{HTTPCode: fiber.StatusBadRequest, Status: "pending", Message: message}
}
