package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "NOT_FOUND: attraction 7 not found", NewNotFoundError("attraction 7 not found").Error())

	wrapped := NewInternalError("store failure", fmt.Errorf("boom"))
	assert.Equal(t, "INTERNAL: store failure: boom", wrapped.Error())
	assert.EqualError(t, wrapped.Unwrap(), "boom")
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("missing")))
	assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", NewNotFoundError("missing"))))
	assert.False(t, IsNotFound(NewValidationError("bad")))
	assert.False(t, IsNotFound(fmt.Errorf("plain")))
	assert.False(t, IsNotFound(nil))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NewNotFoundError("x"), http.StatusNotFound},
		{"validation", NewValidationError("x"), http.StatusBadRequest},
		{"external", NewExternalError("x", nil), http.StatusBadGateway},
		{"internal", NewInternalError("x", nil), http.StatusInternalServerError},
		{"wrapped validation", fmt.Errorf("ctx: %w", NewValidationError("x")), http.StatusBadRequest},
		{"plain error", fmt.Errorf("x"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
