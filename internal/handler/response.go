package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"cylindertrack/internal/domain"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// MessageResponse acknowledges a mutation.
type MessageResponse struct {
	Message string `json:"message"`
}

// RespondError sends an error body with the given status code.
func RespondError(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorResponse{Message: msg})
}

// RespondMessage sends a 200 acknowledgement.
func RespondMessage(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, MessageResponse{Message: msg})
}

// RespondBindError renders a request binding failure as 422. Validation
// failures list each offending field by its JSON name.
func RespondBindError(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make(map[string]string, len(ve))
		for _, fe := range ve {
			fields[fieldPath(fe)] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Message: "validation failed",
			Errors:  fields,
		})
		return
	}

	msg := "invalid request body"
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		msg = "request body is required"
	case errors.As(err, &syntaxErr):
		msg = "request body is not valid JSON"
	case errors.As(err, &typeErr):
		msg = "field " + typeErr.Field + " must be of type " + typeErr.Type.String()
	}
	RespondError(c, http.StatusUnprocessableEntity, msg)
}

// MapDomainError translates domain errors to HTTP status codes and messages.
func MapDomainError(err error) (status int, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Resource not found"
	case errors.Is(err, domain.ErrNoDeliveries):
		return http.StatusNotFound, "No deliveries found for this date"
	case errors.Is(err, domain.ErrInvalidPrice):
		return http.StatusUnprocessableEntity, "cylinder_price must be greater than zero"
	case errors.Is(err, domain.ErrEmptyName):
		return http.StatusUnprocessableEntity, "name must not be empty"
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, "validation failed"
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return http.StatusUnprocessableEntity, "format must be one of: csv, xlsx"
	case errors.Is(err, domain.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, "Export sharing is not configured"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusBadGateway, "Export upload failed"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		zap.L().Error("request failed",
			zap.Any("request_id", requestID),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}
	_ = c.Error(err)
	RespondError(c, status, msg)
}

// handleLookupError is HandleError with a resource-specific not-found message.
func handleLookupError(c *gin.Context, err error, notFound string) {
	if errors.Is(err, domain.ErrNotFound) {
		RespondError(c, http.StatusNotFound, notFound)
		return
	}
	HandleError(c, err)
}
