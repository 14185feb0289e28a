package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorStatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  *ApiErr
		code int
	}{
		{"not found", NewNotFoundError("project not found"), http.StatusNotFound},
		{"forbidden", NewForbiddenError("not the owner"), http.StatusForbidden},
		{"bad request", NewBadRequestError("bad input"), http.StatusBadRequest},
		{"unauthorized", NewUnauthorizedError("no token"), http.StatusUnauthorized},
		{"internal", NewInternalError("boom"), http.StatusInternalServerError},
		{"conflict", NewConflictError("taken"), http.StatusConflict},
		{"already exists", NewAlreadyExists("interest"), http.StatusConflict},
		{"entity not found", NewNotFound("project"), http.StatusNotFound},
		{"missing field", NewMissingRequiredFieldError("title"), http.StatusBadRequest},
		{"invalid field", NewInvalidFieldError("teamSize", "must be positive"), http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, tc.err.StatusCode)
		})
	}
}

func TestSentinelCheckers(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFound("project")))
	assert.True(t, IsNotFound(NewNotFoundError("project not found")))
	assert.True(t, IsForbidden(NewForbiddenError("nope")))
	assert.True(t, IsConflict(NewConflictError("taken")))
	assert.True(t, IsAlreadyExists(NewAlreadyExists("interest")))
	assert.True(t, IsMissingRequiredFieldError(NewMissingRequiredFieldError("title")))
	assert.True(t, IsInvalidFieldError(NewInvalidFieldError("teamSize", "bad")))

	assert.False(t, IsNotFound(NewForbiddenError("nope")))
	assert.False(t, IsAlreadyExists(errors.New("plain error")))
}

func TestMissingRequiredFieldNamesField(t *testing.T) {
	err := NewMissingRequiredFieldError("techStack")
	assert.Equal(t, "techStack", err.Field)
	assert.Contains(t, err.Details, "techStack")
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	var apiErr *ApiErr
	wrapped := errors.Join(errors.New("outer"), NewNotFound("project"))
	assert.True(t, errors.As(wrapped, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestNewDatabaseErrorMapping(t *testing.T) {
	cases := []struct {
		name  string
		cause error
		code  int
	}{
		{"duplicate key", errors.New(`duplicate key value violates unique constraint "idx_interest_user_project"`), http.StatusConflict},
		{"gorm duplicated key", errors.New("duplicated key not allowed"), http.StatusConflict},
		{"foreign key", errors.New(`insert violates foreign key constraint "fk_projects_creator"`), http.StatusBadRequest},
		{"not found", errors.New("record not found"), http.StatusNotFound},
		{"connection", errors.New("connection refused"), http.StatusServiceUnavailable},
		{"generic", errors.New("syntax error"), http.StatusInternalServerError},
		{"nil cause", nil, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := NewDatabaseError("create", "project", tc.cause)
			assert.Equal(t, tc.code, err.StatusCode)
		})
	}
}

func TestErrorIncludesDetails(t *testing.T) {
	err := NewDatabaseError("create", "project", errors.New("syntax error"))
	assert.Contains(t, err.Error(), "Failed to create project")
}
