package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewAcceptsKnownLevels(t *testing.T) {
	log, err := New("fogon", "debug")
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zap.DebugLevel))

	log, err = New("fogon", "")
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zap.DebugLevel))
}

func TestNewRejectsBogusLevel(t *testing.T) {
	_, err := New("fogon", "chatty")
	assert.Error(t, err)
}
