package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		kind    ErrorKind
		message string
	}{
		{"email registered", ErrEmailRegistered, http.StatusConflict, KindConflict, "User already exists"},
		{"wrapped credentials", fmt.Errorf("login: %w", ErrInvalidCredentials), http.StatusUnauthorized, KindUnauthorized, "Invalid credentials"},
		{"forbidden", ErrPermissionDenied, http.StatusForbidden, KindForbidden, "Forbidden"},
		{"pagination", ErrInvalidPagination, http.StatusBadRequest, KindValidation, ErrInvalidPagination.Error()},
		{"password length", ErrPasswordTooLong, http.StatusBadRequest, KindValidation, "Password must be at most 72 bytes"},
		{"user id", ErrInvalidUserID, http.StatusBadRequest, KindValidation, ErrInvalidUserID.Error()},
		{"binding", &ValidationError{Err: errors.New("Key: 'SignupRequest.Email' failed")}, http.StatusBadRequest, KindValidation, "Missing fields"},
		{"duplicate key", gorm.ErrDuplicatedKey, http.StatusConflict, KindConflict, "Resource already exists"},
		{"foreign key", gorm.ErrForeignKeyViolated, http.StatusBadRequest, KindValidation, "Referenced resource does not exist"},
		{"unknown", errors.New("dial tcp 10.0.0.1:3306: connection refused"), http.StatusInternalServerError, KindInternal, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, kind, message := Classify(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.message, message)
		})
	}
}

func TestClassify_InternalDetailsNotExposed(t *testing.T) {
	_, _, message := Classify(errors.New("Error 1146: Table 'dsa_platform.users' doesn't exist"))
	assert.NotContains(t, message, "users")
}
