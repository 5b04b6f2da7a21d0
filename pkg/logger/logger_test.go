package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewWithLevel(t *testing.T) {
	log, err := NewWithLevel("crcsum", "debug")
	require.NoError(t, err)
	assert.True(t, log.Desugar().Core().Enabled(zapcore.DebugLevel))

	log, err = NewWithLevel("crcsum", "warn")
	require.NoError(t, err)
	assert.False(t, log.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Desugar().Core().Enabled(zapcore.ErrorLevel))
}

func TestNewWithLevelRejectsUnknown(t *testing.T) {
	_, err := NewWithLevel("crcsum", "chatty")
	assert.Error(t, err)
}

func TestNewNeverNil(t *testing.T) {
	assert.NotNil(t, New("crcsum"))
	assert.NotNil(t, NewNop())
}
