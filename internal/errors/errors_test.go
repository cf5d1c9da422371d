package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	codes := []string{
		ErrConfig,
		ErrAnimation,
		ErrSequence,
		ErrData,
		ErrRender,
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Invalid configuration in .medstock.yaml",
			suggestion: "Check your configuration file syntax",
		},
		{
			name:       "animation error",
			code:       ErrAnimation,
			message:    "Animation needs at least one step",
			suggestion: "Set animation.steps to 1 or more",
		},
		{
			name:       "sequence error",
			code:       ErrSequence,
			message:    "Step ids must increase",
			suggestion: "Order steps by id",
		},
		{
			name:       "data error",
			code:       ErrData,
			message:    "Seed file is empty",
			suggestion: "Point data.seed_file at a YAML seed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestError_Format(t *testing.T) {
	cause := fmt.Errorf("open seed.yaml: no such file")
	err := WrapWithCode(cause, ErrData, "Failed to read seed data", "Check data.seed_file")

	out := err.Error()
	assert.True(t, strings.HasPrefix(out, "✗ Failed to read seed data\n"))
	assert.Contains(t, out, "open seed.yaml: no such file")
	assert.Contains(t, out, "Check data.seed_file")

	// Cause comes before the suggestion
	assert.Less(t, strings.Index(out, "open seed.yaml"), strings.Index(out, "Check data.seed_file"))
}

func TestError_NoCauseNoSuggestion(t *testing.T) {
	err := New(ErrRender, "render failed", "")
	assert.Equal(t, "✗ render failed\n", err.Error())
}

func TestWrap_DefaultsToRenderCode(t *testing.T) {
	err := Wrap(fmt.Errorf("boom"), "terminal went away")
	assert.Equal(t, ErrRender, err.Code)
	assert.Empty(t, err.Suggestion)
}

func TestUnwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := WrapWithCode(sentinel, ErrConfig, "wrapped", "")

	assert.True(t, errors.Is(err, sentinel))
	assert.Equal(t, sentinel, errors.Unwrap(err))
}

func TestIsCode(t *testing.T) {
	err := New(ErrSequence, "bad steps", "")
	wrapped := fmt.Errorf("building wizard: %w", err)

	assert.True(t, IsCode(err, ErrSequence))
	assert.True(t, IsCode(wrapped, ErrSequence))
	assert.False(t, IsCode(wrapped, ErrConfig))
	assert.False(t, IsCode(nil, ErrSequence))
	assert.False(t, IsCode(errors.New("plain"), ErrSequence))
}
