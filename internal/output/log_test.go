package output

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogging(t *testing.T) {
	t.Run("defaults to info level", func(t *testing.T) {
		SetupLogging(LogConfig{})

		assert.Equal(t, log.InfoLevel, logger.GetLevel())
	})

	t.Run("verbose enables debug level", func(t *testing.T) {
		SetupLogging(LogConfig{Verbose: true})

		assert.Equal(t, log.DebugLevel, logger.GetLevel())
	})

	t.Run("verbose overrides disabled timestamps", func(t *testing.T) {
		SetupLogging(LogConfig{Verbose: true, Timestamps: BoolPtr(false)})

		assert.Equal(t, log.DebugLevel, logger.GetLevel())
	})
}

func TestBoolPtr(t *testing.T) {
	assert.True(t, *BoolPtr(true))
	assert.False(t, *BoolPtr(false))
}

func TestTemplateLogger(t *testing.T) {
	SetupLogging(LogConfig{Verbose: true})

	tmplLog := TemplateLogger("cluster-security")

	assert.NotNil(t, tmplLog)
	assert.Equal(t, "cluster-security", tmplLog.GetPrefix())
	assert.Equal(t, log.DebugLevel, tmplLog.GetLevel())
}
