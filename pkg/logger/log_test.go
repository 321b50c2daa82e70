package logger_test

import (
	"testing"

	"github.com/hbomb79/Reel/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func Test_ParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected logger.LogStatus
	}{
		{"verbose", logger.VERBOSE},
		{"DEBUG", logger.DEBUG},
		{" info ", logger.INFO},
		{"", logger.INFO},
		{"success", logger.SUCCESS},
		{"warn", logger.WARNING},
		{"Warning", logger.WARNING},
		{"error", logger.ERROR},
		{"fatal", logger.FATAL},
	}

	for _, tt := range tests {
		level, err := logger.ParseLevel(tt.name)
		assert.NoError(t, err, tt.name)
		assert.Equal(t, tt.expected, level, tt.name)
	}

	_, err := logger.ParseLevel("loud")
	assert.Error(t, err)
}

func Test_LevelOrdering(t *testing.T) {
	t.Parallel()

	assert.Less(t, logger.VERBOSE.Level(), logger.DEBUG.Level())
	assert.Less(t, logger.DEBUG.Level(), logger.INFO.Level())
	assert.Less(t, logger.WARNING.Level(), logger.ERROR.Level())
	assert.Less(t, logger.ERROR.Level(), logger.FATAL.Level())
}
