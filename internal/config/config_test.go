package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "node", cfg.Sandbox.Engine)
	assert.Equal(t, "node", cfg.Sandbox.NodeBin)
	assert.Equal(t, 30*time.Second, cfg.Sandbox.Timeout)

	assert.Equal(t, "pyjs-translate", cfg.Translator.Command)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)
}

func TestLoadOrDefault(t *testing.T) {
	cfg := LoadOrDefault()

	assert.NotNil(t, cfg)
	assert.Equal(t, "node", cfg.Sandbox.Engine)
}

func TestLoadFromEnvironment(t *testing.T) {
	os.Setenv("PYJS_ENGINE", "goja")
	os.Setenv("PYJS_EVAL_TIMEOUT", "5s")
	os.Setenv("PYJS_TRANSLATOR", "/opt/bin/translate")
	defer func() {
		os.Unsetenv("PYJS_ENGINE")
		os.Unsetenv("PYJS_EVAL_TIMEOUT")
		os.Unsetenv("PYJS_TRANSLATOR")
	}()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "goja", cfg.Sandbox.Engine)
	assert.Equal(t, 5*time.Second, cfg.Sandbox.Timeout)
	assert.Equal(t, "/opt/bin/translate", cfg.Translator.Command)
}
