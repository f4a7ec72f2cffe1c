package common

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorUnwraps(t *testing.T) {
	err := NewAppError("NOT_FOUND", "nota não encontrada", ErrNotFound)

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "NOT_FOUND")
	assert.Contains(t, err.Error(), "nota não encontrada")
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: ErrNotFound, want: http.StatusNotFound},
		{name: "wrapped not found", err: NewAppError("NOT_FOUND", "x", ErrNotFound), want: http.StatusNotFound},
		{name: "invalid input", err: InvalidInputError("x"), want: http.StatusBadRequest},
		{name: "validation", err: ErrValidation, want: http.StatusBadRequest},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestInternalError(t *testing.T) {
	cause := errors.New("disk full")
	err := InternalError("salvar nota", cause)
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "INTERNAL")

	// Without a cause the sentinel takes its place.
	assert.True(t, errors.Is(InternalError("salvar nota", nil), ErrInternal))
}

func TestInvalidInputErrorf(t *testing.T) {
	err := InvalidInputErrorf("extensão %q não suportada", "txt")
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Contains(t, err.Error(), `extensão "txt" não suportada`)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, WrapError(nil, "ignored"))

	err := WrapError(ErrDatabase, "salvar lote")
	assert.True(t, errors.Is(err, ErrDatabase))
	assert.Contains(t, err.Error(), "salvar lote")
}
