package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sentsplit/internal/domain"
	"sentsplit/internal/logger"
)

// APIResponse is the envelope for error responses. Successful split
// responses are the bare SentenceBatch.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrDecode):
		return http.StatusBadRequest, "DECODE_ERROR", "uploaded file is not valid UTF-8 text"
	case errors.Is(err, domain.ErrNoDocuments):
		return http.StatusBadRequest, "MISSING_FILE", "at least one file is required"
	case errors.Is(err, domain.ErrTooManyFiles):
		return http.StatusBadRequest, "TOO_MANY_FILES", "too many files in request"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrMissingModelData):
		return http.StatusServiceUnavailable, "MODEL_UNAVAILABLE", "sentence tokenizer model is unavailable"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	log := logger.FromContext(c.Request.Context())
	if status >= 500 {
		log.Error("request failed", "code", code, "error", err)
	} else {
		log.Info("request rejected", "code", code, "error", err)
	}
	RespondError(c, status, code, msg)
}
