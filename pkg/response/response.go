package response

import (
	"errors"
	"net/http"
	"sync/atomic"

	"sekor-bkc/pkg/apperror"
	"sekor-bkc/pkg/logger"
	"sekor-bkc/pkg/pagination"

	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key holding the correlation id.
const RequestIDKey = "request_id"

const (
	CodeBadRequest       = "BAD_REQUEST"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeNotFound         = "RESOURCE_NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeTooManyRequests  = "TOO_MANY_REQUESTS"
	CodeInternal         = "INTERNAL_SERVER_ERROR"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
)

var exposeErrorChain atomic.Bool

// ExposeErrorChain toggles the stack field on error bodies. Off in production.
func ExposeErrorChain(enabled bool) {
	exposeErrorChain.Store(enabled)
}

type Envelope struct {
	Data       interface{}      `json:"data"`
	Message    string           `json:"message,omitempty"`
	Meta       interface{}      `json:"meta,omitempty"`
	Pagination *pagination.Meta `json:"pagination,omitempty"`
}

type ErrorBody struct {
	Code      string                `json:"code"`
	Message   string                `json:"message"`
	Details   []apperror.FieldIssue `json:"details,omitempty"`
	RequestID string                `json:"request_id,omitempty"`
	Stack     string                `json:"stack,omitempty"`
}

type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Data: data})
}

func OKWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Data: data, Message: message})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Data: data})
}

func CreatedWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Data: data, Message: message})
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Paginated writes a list envelope and the matching Link header.
func Paginated(c *gin.Context, data interface{}, meta pagination.Meta) {
	if link := pagination.LinkHeader(RequestURL(c), meta); link != "" {
		c.Header("Link", link)
	}
	c.JSON(http.StatusOK, Envelope{Data: data, Pagination: &meta})
}

// Error maps err to its status and writes the error envelope.
func Error(c *gin.Context, err error) {
	status, code := classify(err)

	body := ErrorBody{
		Code:      code,
		Message:   "Internal server error",
		RequestID: c.GetString(RequestIDKey),
	}

	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		body.Message = appErr.Message
		body.Details = appErr.Details
	}

	if status >= http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).Error("request failed: %v", err)
	}
	if exposeErrorChain.Load() && err != nil {
		body.Stack = err.Error()
	}

	c.AbortWithStatusJSON(status, ErrorEnvelope{Error: body})
}

// Abort writes an error envelope with an explicit status and code.
func Abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorEnvelope{Error: ErrorBody{
		Code:      code,
		Message:   message,
		RequestID: c.GetString(RequestIDKey),
	}})
}

func classify(err error) (int, string) {
	switch apperror.KindOf(err) {
	case apperror.KindValidation, apperror.KindInvalidState, apperror.KindInvalidOperation:
		return http.StatusBadRequest, CodeBadRequest
	case apperror.KindUnauthorized:
		return http.StatusUnauthorized, CodeUnauthorized
	case apperror.KindForbidden:
		return http.StatusForbidden, CodeForbidden
	case apperror.KindNotFound:
		return http.StatusNotFound, CodeNotFound
	case apperror.KindConflict:
		return http.StatusConflict, CodeConflict
	case apperror.KindTooManyRequests:
		return http.StatusTooManyRequests, CodeTooManyRequests
	case apperror.KindInternal:
		return http.StatusInternalServerError, CodeInternal
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

// RequestURL rebuilds the absolute URL of the current request.
func RequestURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host + c.Request.URL.RequestURI()
}
