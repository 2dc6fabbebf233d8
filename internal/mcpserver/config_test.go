package mcpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// clearNEXTCASEEnv clears all NEXTCASE_* env vars to isolate tests from the ambient environment.
func clearNEXTCASEEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"NEXTCASE_ALLOW_FILE_EDITS", "NEXTCASE_MAX_FILE_SIZE"} {
		t.Setenv(key, "")
	}
}

// withConfig swaps the active configuration for the duration of the test.
func withConfig(t *testing.T, c serverConfig) {
	t.Helper()
	old := cfg
	cfg = &c
	t.Cleanup(func() { cfg = old })
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearNEXTCASEEnv(t)

	c := loadConfig()

	assert.True(t, c.AllowFileEdits)
	assert.Equal(t, int64(10*1024*1024), c.MaxFileSize)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearNEXTCASEEnv(t)
	t.Setenv("NEXTCASE_ALLOW_FILE_EDITS", "false")
	t.Setenv("NEXTCASE_MAX_FILE_SIZE", "4096")

	c := loadConfig()

	assert.False(t, c.AllowFileEdits)
	assert.Equal(t, int64(4096), c.MaxFileSize)
}

func TestLoadConfig_InvalidFallsBack(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non-bool edits flag", key: "NEXTCASE_ALLOW_FILE_EDITS", value: "sometimes"},
		{name: "non-numeric size", key: "NEXTCASE_MAX_FILE_SIZE", value: "big"},
		{name: "zero size", key: "NEXTCASE_MAX_FILE_SIZE", value: "0"},
		{name: "negative size", key: "NEXTCASE_MAX_FILE_SIZE", value: "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearNEXTCASEEnv(t)
			t.Setenv(tt.key, tt.value)

			c := loadConfig()
			assert.True(t, c.AllowFileEdits)
			assert.Equal(t, int64(10*1024*1024), c.MaxFileSize)
		})
	}
}

func TestEnvBool(t *testing.T) {
	t.Setenv("NEXTCASE_TEST_BOOL", "1")
	assert.True(t, envBool("NEXTCASE_TEST_BOOL", false))

	t.Setenv("NEXTCASE_TEST_BOOL", "")
	assert.True(t, envBool("NEXTCASE_TEST_BOOL", true))
}
