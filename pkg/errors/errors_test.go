package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_WrappingAndIs(t *testing.T) {
	underlying := errors.New("connection refused")
	err := DatabaseError("upsert commits", underlying)

	assert.ErrorIs(t, err, underlying)
	assert.Contains(t, err.Error(), "database upsert commits failed")
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus())
}

func TestUserNotFound(t *testing.T) {
	err := UserNotFound("alen")

	assert.True(t, IsUserNotFound(err))
	assert.True(t, IsNotFound(err))
	assert.False(t, IsBadRequest(err))
	assert.Contains(t, err.Error(), "alen")
}

func TestValidationError(t *testing.T) {
	err := ValidationError("date", "date must be formatted YYYY-MM-DD")

	assert.True(t, IsBadRequest(err))
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus())
	assert.Equal(t, "date", err.Details["field"])
}

func TestIsBadRequest_WrappedSentinel(t *testing.T) {
	err := Wrap(ErrInvalidDate, "parsing query")

	assert.True(t, IsBadRequest(err))
	assert.False(t, IsNotFound(err))
}

func TestWrap_NilPassthrough(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
}
