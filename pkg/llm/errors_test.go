package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyErrorAuth(t *testing.T) {
	err := ClassifyError(errors.New("status code 401: unauthorized"))
	assert.Equal(t, ErrorTypeAuth, err.Type)
	assert.False(t, err.Retryable)
	assert.Equal(t, 401, err.StatusCode)
}

func TestClassifyErrorTimeout(t *testing.T) {
	err := ClassifyError(errors.New("context deadline exceeded"))
	assert.Equal(t, ErrorTypeEndpoint, err.Type)
	assert.True(t, err.Retryable)
}

func TestClassifyErrorRateLimit(t *testing.T) {
	err := ClassifyError(errors.New("429 rate limit exceeded"))
	assert.True(t, err.Retryable)
	assert.Equal(t, 429, err.StatusCode)
}

func TestClassifyErrorPassesThroughExisting(t *testing.T) {
	orig := NewError(ErrorTypeResponse, "no choices in response", false, nil)
	wrapped := fmt.Errorf("classify: %w", orig)
	assert.Same(t, orig, ClassifyError(wrapped))
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewError(ErrorTypeUnknown, "llm error", false, cause)
	assert.ErrorIs(t, err, cause)
}
