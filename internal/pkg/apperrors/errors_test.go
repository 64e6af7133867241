package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNotFoundError_MatchesBothSentinels(t *testing.T) {
	err := NewNotFoundError(ErrCourseNotFound, "course 999 not found")

	assert.True(t, errors.Is(err, ErrCourseNotFound))
	assert.True(t, errors.Is(err, ErrResourceNotFound))
	assert.False(t, errors.Is(err, ErrStudentNotFound))
	assert.Equal(t, "course 999 not found", err.Error())
}

func TestNotFoundError_SurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("listing students: %w", NewNotFoundError(ErrCourseNotFound, "missing"))

	var custom *CustomError
	assert.True(t, errors.As(err, &custom))
	assert.True(t, Is(err, ErrStudentNotFound, ErrCourseNotFound))
}

func TestCustomError_Fallbacks(t *testing.T) {
	assert.Equal(t, "bad request", (&CustomError{Err: ErrBadRequest}).Error())
	assert.Equal(t, "unknown error", (&CustomError{}).Error())

	err := NewNotFoundError(ErrEnrollmentNotFound, "").WithDetails(map[string]interface{}{"studentId": 1})
	assert.Equal(t, "enrollment not found\nresource not found", err.Error())
	assert.Equal(t, 1, err.Details["studentId"])
}
