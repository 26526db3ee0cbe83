package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wargame.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Edge)
	assert.Equal(t, 2, cfg.Soldiers)
	assert.Equal(t, "time=%t, round=%r)> ", cfg.Prompt)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfigFile(t, "edge: 10\nsoldiers: 4\nprompt: \"%r> \"\n")

	cfg, err := LoadConfig(RunOptions{ConfigPath: path})
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Edge)
	assert.Equal(t, 4, cfg.Soldiers)
	assert.Equal(t, "%r> ", cfg.Prompt)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(RunOptions{ConfigPath: filepath.Join(t.TempDir(), "absent.yaml")})
	assert.Error(t, err)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "edge: 10\n")
	t.Setenv("WARGAME_EDGE", "12")

	cfg, err := LoadConfig(RunOptions{ConfigPath: path})
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Edge)
}

func TestLoadConfig_FlagsOverrideEverything(t *testing.T) {
	path := writeConfigFile(t, "edge: 10\nsoldiers: 4\n")
	t.Setenv("WARGAME_EDGE", "12")
	t.Setenv("WARGAME_PROMPT", "env> ")

	edge := 15
	prompt := "flag> "
	cfg, err := LoadConfig(RunOptions{
		ConfigPath: path,
		Edge:       &edge,
		Prompt:     &prompt,
	})
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.Edge)
	assert.Equal(t, 4, cfg.Soldiers)
	assert.Equal(t, "flag> ", cfg.Prompt)
}

func TestLoadConfig_NoValidationHere(t *testing.T) {
	// Out-of-bounds values survive loading; game.New rejects them so
	// the CLI can report one consistent startup error.
	edge := 99
	cfg, err := LoadConfig(RunOptions{Edge: &edge})
	require.NoError(t, err)
	assert.Equal(t, 99, cfg.Edge)
}
