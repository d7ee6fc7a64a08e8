package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/invoicedesk/internal/currency"
	"github.com/smallbiznis/invoicedesk/internal/invoice/codec"
	"github.com/smallbiznis/invoicedesk/internal/invoice/mutate"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return "validation error"
}

func newValidationError(field, code, message string) ValidationError {
	return ValidationError{Field: field, Code: code, Message: message}
}

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	var vErr ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, errorPayload{
			Type:    "invalid_request",
			Message: vErr.Message,
		}
	}

	switch {
	case errors.Is(err, mutate.ErrUnknownSection),
		errors.Is(err, mutate.ErrUnknownField):
		return http.StatusBadRequest, errorPayload{
			Type:    "invalid_field",
			Message: err.Error(),
		}
	case errors.Is(err, codec.ErrMalformedDocument):
		return http.StatusBadRequest, errorPayload{
			Type:    "malformed_document",
			Message: err.Error(),
		}
	case errors.Is(err, currency.ErrNotFound):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: err.Error(),
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal error",
		}
	}
}
