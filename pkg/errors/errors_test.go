package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksumErrorWrapping(t *testing.T) {
	base := NewChecksumError(ErrorMismatch, "verify", "a.bin", ErrChecksumMismatch)
	wrapped := fmt.Errorf("run: %w", base)

	assert.True(t, errors.Is(wrapped, ErrChecksumMismatch))

	ce := AsChecksumError(wrapped)
	require.NotNil(t, ce)
	assert.Equal(t, "a.bin", ce.Path)
	assert.Equal(t, ErrorMismatch, ce.Category)
	assert.False(t, ce.IsRetryAble())
	assert.Contains(t, ce.Error(), "[mismatch] verify a.bin")
	assert.False(t, ce.Timestamp.IsZero())
}

func TestChecksumErrorRetry(t *testing.T) {
	tests := []struct {
		category ErrorCategory
		retry    bool
		name     string
	}{
		{ErrorStorage, true, "storage"},
		{ErrorDecode, false, "decode"},
		{ErrorMismatch, false, "mismatch"},
		{ErrorManifest, false, "manifest"},
		{ErrorCanceled, true, "canceled"},
		{ErrorCategory(99), false, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewChecksumError(tt.category, "op", "", errors.New("boom"))
			assert.Equal(t, tt.retry, e.IsRetryAble())
			assert.Equal(t, tt.name, tt.category.String())
			assert.Equal(t, "["+tt.name+"] op: boom", e.Error())
		})
	}
}

func TestValidationError(t *testing.T) {
	err := fmt.Errorf("load: %w", NewValidationError("buffer_size", 3, errors.New("must be a power of two")))

	assert.True(t, IsValidationError(err))
	ve := AsValidationError(err)
	require.NotNil(t, ve)
	assert.Equal(t, "buffer_size", ve.Field)
	assert.Equal(t, 3, ve.Value)
	assert.Equal(t, "invalid buffer_size (3): must be a power of two", ve.Error())

	assert.False(t, IsValidationError(errors.New("plain")))
	assert.Nil(t, AsValidationError(errors.New("plain")))
	assert.Nil(t, AsChecksumError(errors.New("plain")))
}
