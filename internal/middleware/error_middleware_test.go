package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsphere/skillsphere/internal/pkg/apperrors"
)

func handleErrorStatus(t *testing.T, err error) (int, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, err)
	return recorder.Code, recorder.Body.String()
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
	}{
		{apperrors.ErrCourseNotFound, http.StatusNotFound},
		{apperrors.ErrUserNotFound, http.StatusNotFound},
		{apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{errors.New("database exploded"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		status, _ := handleErrorStatus(t, tc.err)
		assert.Equal(t, tc.wantStatus, status, "error %v", tc.err)
	}
}

func TestHandleAPIErrorWrappedErrorsStillMatch(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), apperrors.ErrCourseNotFound)
	status, _ := handleErrorStatus(t, wrapped)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHandleAPIErrorValidationCarriesFieldErrors(t *testing.T) {
	verr := apperrors.NewValidationError().
		Add("email", "email format is invalid").
		Add("password", "password must be at least 6 characters long")

	status, body := handleErrorStatus(t, verr)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "Validation failed")
	assert.Contains(t, body, "email format is invalid")
	assert.Contains(t, body, `"field":"password"`)
}

func TestHandleAPIErrorLoginMessageDoesNotRevealCause(t *testing.T) {
	status, body := handleErrorStatus(t, apperrors.ErrInvalidCredentials)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Contains(t, body, "Invalid email or password")
}
