package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hirelink/hirelink-api/internal/database/sqlbuilder"
)

var (
	ErrUserNotFound      = errors.New("no user exists with that username")
	ErrUserExists        = errors.New("there is already a user with that username")
	ErrDatabaseOperation = errors.New("database operation failed")
)

const (
	CodeUserNotFound     = "USER_NOT_FOUND"
	CodeDuplicateKey     = "DUPLICATE_KEY"
	CodeEmptyUpdate      = "EMPTY_UPDATE"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeDatabaseError    = "DATABASE_ERROR"
	CodeInternalError    = "INTERNAL_ERROR"
)

type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// HandleServiceError maps service failures to HTTP status codes and the
// JSON error envelope.
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrUserNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{Code: CodeUserNotFound, Message: ErrUserNotFound.Error()})
	case errors.Is(err, ErrUserExists):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Code: CodeDuplicateKey, Message: ErrUserExists.Error()})
	case errors.Is(err, sqlbuilder.ErrEmptyUpdate):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Code: CodeEmptyUpdate, Message: "No fields to update"})
	case errors.Is(err, ErrDatabaseOperation):
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{Code: CodeDatabaseError, Message: "Database operation failed", Details: err.Error()})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Code: CodeInternalError, Message: "An unexpected error occurred", Details: err.Error()})
	}
}

// HandleValidationError reports a structural validation failure with its
// violation messages.
func HandleValidationError(c *fiber.Ctx, messages ...string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Code:    CodeValidationFailed,
		Message: "Validation failed",
		Details: messages,
	})
}

func HandleInvalidRequestError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Code:    CodeInvalidRequest,
		Message: message,
		Details: message,
	})
}
