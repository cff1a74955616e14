package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/studenthub/internal/db"
	"github.com/jonathan/studenthub/internal/resume"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "email already exists",
			err:  &ErrEmailAlreadyExists{Email: "a@b.com"},
			want: http.StatusConflict,
		},
		{
			name: "invalid credentials",
			err:  &ErrInvalidCredentials{},
			want: http.StatusUnauthorized,
		},
		{
			name: "password mismatch",
			err:  &ErrPasswordMismatch{},
			want: http.StatusUnauthorized,
		},
		{
			name: "user not found",
			err:  &ErrUserNotFound{UserID: uuid.New()},
			want: http.StatusNotFound,
		},
		{
			name: "resource not found",
			err:  &ErrNotFound{Resource: "skill"},
			want: http.StatusNotFound,
		},
		{
			name: "validation error",
			err:  &ErrValidation{Field: "email", Message: "required"},
			want: http.StatusBadRequest,
		},
		{
			name: "duplicate row",
			err:  db.ErrDuplicate,
			want: http.StatusConflict,
		},
		{
			name: "wrapped duplicate row",
			err:  fmt.Errorf("skill %q already exists: %w", "python", db.ErrDuplicate),
			want: http.StatusConflict,
		},
		{
			name: "resume validation error",
			err:  &resume.ValidationError{Message: "resume text is too short or empty"},
			want: http.StatusBadRequest,
		},
		{
			name: "unknown error",
			err:  errors.New("boom"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Contains(t, (&ErrEmailAlreadyExists{Email: "a@b.com"}).Error(), "a@b.com")
	assert.Equal(t, "invalid email or password", (&ErrInvalidCredentials{}).Error())
	assert.Equal(t, "current password is incorrect", (&ErrPasswordMismatch{}).Error())
	assert.Equal(t, "skill not found", (&ErrNotFound{Resource: "skill"}).Error())
}
