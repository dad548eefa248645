package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrBadRequest, http.StatusBadRequest},
		{ErrInvalidInput, http.StatusBadRequest},
		{ErrConflict, http.StatusConflict},
		{ErrRateLimitExceeded, http.StatusTooManyRequests},
		{errors.New("boom"), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", ErrNotFound), http.StatusNotFound},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, MapErrorToStatus(c.err), c.err.Error())
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	err := New(http.StatusTooManyRequests, "coba lagi nanti", ErrRateLimitExceeded)

	assert.True(t, errors.Is(err, ErrRateLimitExceeded))
	assert.Equal(t, http.StatusTooManyRequests, MapErrorToStatus(err))
	assert.Equal(t, ErrRateLimitExceeded.Error(), err.Error())

	noWrap := New(http.StatusBadRequest, "pesan", nil)
	assert.Equal(t, "pesan", noWrap.Error())
}
