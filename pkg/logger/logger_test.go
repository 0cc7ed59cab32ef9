package logger

import (
	"testing"
	"time"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

func TestLogger_NewLogger(t *testing.T) {
	t.Run("debug", func(t *testing.T) {
		log := NewLogger("debug", "test-debug")
		assert.NotNil(t, log)
		assert.True(t, log.IsEnabledFor(logging.DEBUG))
	})

	t.Run("warning hides info", func(t *testing.T) {
		log := NewLogger("WARNING", "test-warning")
		assert.True(t, log.IsEnabledFor(logging.WARNING))
		assert.False(t, log.IsEnabledFor(logging.INFO))
	})

	t.Run("invalid log level", func(t *testing.T) {
		log := NewLogger("INVALID", "test-invalid")
		assert.True(t, log.IsEnabledFor(logging.INFO))
		assert.False(t, log.IsEnabledFor(logging.DEBUG))
	})
}

func TestLogger_ParseTime(t *testing.T) {
	hours, minutes, seconds := ParseTime(3661 * time.Second)
	assert.Equal(t, uint32(1), hours)
	assert.Equal(t, uint32(1), minutes)
	assert.Equal(t, uint32(1), seconds)
}
