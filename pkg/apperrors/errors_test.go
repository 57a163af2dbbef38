package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_PreservesCause(t *testing.T) {
	cause := errors.New("row not found")
	err := Wrap(cause, CodeNotFound, "application", "Application not found", http.StatusNotFound)

	assert.ErrorIs(t, err, cause)

	var appErr *AppError
	require.ErrorAs(t, error(err), &appErr)
	assert.Equal(t, CodeNotFound, appErr.Code)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
}

func TestMarshalJSON_HidesInternals(t *testing.T) {
	err := Wrap(errors.New("pq: duplicate key"), CodeAlreadyExists, "application", "Already applied", http.StatusBadRequest)

	data, jsonErr := json.Marshal(err)
	require.NoError(t, jsonErr)

	assert.Contains(t, string(data), "ALREADY_EXISTS")
	assert.NotContains(t, string(data), "pq: duplicate key")
	assert.NotContains(t, string(data), "HTTPCode")
}

func TestValidationError_CarriesDetails(t *testing.T) {
	err := ValidationError(map[string]string{"email": "Must be a valid email address"})

	assert.Equal(t, CodeValidationFailed, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode)

	data, jsonErr := json.Marshal(err)
	require.NoError(t, jsonErr)
	assert.Contains(t, string(data), "Must be a valid email address")
}

func TestDomainErrors_StatusMapping(t *testing.T) {
	cases := []struct {
		err      *AppError
		httpCode int
		code     ErrorCode
	}{
		{ErrResumeRequired, http.StatusBadRequest, CodeResumeRequired},
		{ErrAlreadyApplied, http.StatusBadRequest, CodeAlreadyExists},
		{ErrInvalidApplicationStatus, http.StatusBadRequest, CodeInvalidStatus},
		{ErrAlreadySaved, http.StatusBadRequest, CodeAlreadyExists},
		{ErrInsufficientPermissions, http.StatusForbidden, CodeForbidden},
		{ErrInvalidCredentials, http.StatusUnauthorized, CodeInvalidCredentials},
		{ErrEmailAlreadyExists, http.StatusConflict, CodeAlreadyExists},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.httpCode, tc.err.HTTPCode, "%s", tc.err.Message)
		assert.Equal(t, tc.code, tc.err.Code, "%s", tc.err.Message)
	}
}
