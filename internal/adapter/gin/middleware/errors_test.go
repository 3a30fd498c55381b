package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"estate-service/pkg/apperr"
)

type failureEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func serveWithError(t *testing.T, err error) (*httptest.ResponseRecorder, failureEnvelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(ErrorHandler(zaptest.NewLogger(t)))
	r.GET("/probe", func(c *gin.Context) {
		_ = c.Error(err)
		c.Abort()
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

	var envelope failureEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func TestErrorHandler_MapsEveryKind(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name:    "missing token",
			err:     apperr.MissingToken(),
			status:  http.StatusForbidden,
			code:    "missing_token",
			message: "Token needed to access resources",
		},
		{
			name:    "invalid token",
			err:     apperr.InvalidToken(),
			status:  http.StatusNotFound,
			code:    "invalid_token",
			message: "Invalid token",
		},
		{
			name:    "forbidden",
			err:     apperr.Forbidden(""),
			status:  http.StatusForbidden,
			code:    "forbidden",
			message: "You are not permitted to perform this action",
		},
		{
			name:    "malformed id",
			err:     apperr.MalformedID(),
			status:  http.StatusPreconditionFailed,
			code:    "malformed_id",
			message: "Invalid Id supplied",
		},
		{
			name:    "validation",
			err:     apperr.Validation(`"Email" must be a valid email`),
			status:  http.StatusPreconditionFailed,
			code:    "validation_error",
			message: `"Email" must be a valid email`,
		},
		{
			name:    "not found",
			err:     apperr.NotFound("Property"),
			status:  http.StatusNotFound,
			code:    "not_found",
			message: "Property not found",
		},
		{
			name:    "conflict",
			err:     apperr.Conflict("Email already registered"),
			status:  http.StatusPreconditionFailed,
			code:    "conflict",
			message: "Email already registered",
		},
		{
			name:    "write failure",
			err:     apperr.WriteFailure("Unable to create property", errors.New("disk full")),
			status:  http.StatusBadRequest,
			code:    "write_failure",
			message: "Unable to create property",
		},
		{
			name:    "unexpected typed error",
			err:     apperr.Unexpected(errors.New("connection refused")),
			status:  http.StatusInternalServerError,
			code:    "internal_error",
			message: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, envelope := serveWithError(t, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.False(t, envelope.Success)
			assert.Equal(t, tt.code, envelope.Error)
			assert.Equal(t, tt.message, envelope.Message)
		})
	}
}

func TestErrorHandler_UntypedErrorBecomes500(t *testing.T) {
	w, envelope := serveWithError(t, errors.New("pq: connection reset by peer"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal_error", envelope.Error)
	// The internal cause never reaches the client.
	assert.Equal(t, "Internal server error", envelope.Message)
	assert.NotContains(t, envelope.Message, "pq:")
}

func TestErrorHandler_WrappedTypedErrorKeepsKind(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", apperr.NotFound("User"))

	w, envelope := serveWithError(t, wrapped)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", envelope.Error)
}

func TestErrorHandler_DoesNotOverrideWrittenResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(ErrorHandler(zaptest.NewLogger(t)))
	r.GET("/probe", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
		_ = c.Error(errors.New("late failure"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestErrorHandler_NoErrorsNoResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(ErrorHandler(zaptest.NewLogger(t)))
	r.GET("/probe", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecovery_PanicBecomes500Envelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Recovery(zaptest.NewLogger(t)))
	r.GET("/probe", func(c *gin.Context) {
		panic("nil map write")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var envelope failureEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "internal_error", envelope.Error)
	assert.Equal(t, "Internal server error", envelope.Message)
	assert.NotContains(t, envelope.Message, "nil map write")
}
