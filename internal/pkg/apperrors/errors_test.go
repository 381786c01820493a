package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomError(t *testing.T) {
	t.Run("carries the contextual message", func(t *testing.T) {
		err := NewCustomError(ErrStudentNotFound, "student 42 not found")

		assert.Equal(t, "student 42 not found", err.Error())
		assert.ErrorIs(t, err, ErrStudentNotFound)
	})

	t.Run("falls back to the sentinel message", func(t *testing.T) {
		err := NewCustomError(ErrCourseNotFound, "")
		assert.Equal(t, "course not found", err.Error())
	})

	t.Run("matches through wrapping", func(t *testing.T) {
		err := fmt.Errorf("enroll failed: %w", NewCustomError(ErrAlreadyEnrolled, "student 1 is already enrolled in course 2"))
		assert.ErrorIs(t, err, ErrAlreadyEnrolled)
	})
}

func TestConstructors(t *testing.T) {
	assert.ErrorIs(t, NewResourceNotFoundError("gone"), ErrResourceNotFound)
	assert.ErrorIs(t, NewConflictError("duplicate"), ErrConflict)
	assert.Equal(t, "duplicate", NewConflictError("duplicate").Error())
}

func TestIs(t *testing.T) {
	err := NewCustomError(ErrEmailAlreadyExists, "email taken")

	assert.True(t, Is(err, ErrStudentIDAlreadyExists, ErrEmailAlreadyExists))
	assert.True(t, Is(err, ErrEmailAlreadyExists))
	assert.False(t, Is(err, ErrStudentNotFound, ErrCourseNotFound))
	assert.False(t, Is(errors.New("other"), ErrEmailAlreadyExists))
}
