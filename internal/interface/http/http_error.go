package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/faqbot/internal/domain/faq"
	apperrors "github.com/yanqian/faqbot/pkg/errors"
)

// HTTPError captures the metadata required to serialize an error response consistently.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

// fromDomainError maps faq error codes onto transport statuses.
func fromDomainError(err error, fallbackCode string) *HTTPError {
	message := apperrors.MessageOf(err)
	switch apperrors.CodeOf(err) {
	case faq.CodeInvalidInput:
		return NewHTTPError(http.StatusBadRequest, "invalid_request", message, err)
	case faq.CodeConfiguration:
		return NewHTTPError(http.StatusServiceUnavailable, "not_configured", message, err)
	default:
		return NewHTTPError(http.StatusInternalServerError, fallbackCode, message, err)
	}
}

func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    "internal_error",
		Message: "something went wrong",
		Err:     err,
	}
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}
