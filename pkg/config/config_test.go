package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bastiangx/spellophone/pkg/keypad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, 2, c.Engine.MinWordLength)
	assert.Equal(t, 3, c.Engine.MinDigits)
	assert.Equal(t, 10, c.Engine.MaxDigits)
	assert.True(t, c.Dict.UseDefault)
	assert.Len(t, c.Dict.DefaultPaths, 3)
	assert.Equal(t, 10, c.MaxWordLength())

	keys, err := c.KeypadMap()
	require.NoError(t, err)
	assert.Equal(t, keypad.Default(), keys)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[engine]
min_word_length = 3
max_digits = 12

[dict]
use_default = false
files = ["a.txt"]
max_word_length = 7

[keypad]
1 = "qz"

[output]
show_scores = true
limit = 5
`)
	c, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 3, c.Engine.MinWordLength)
	assert.Equal(t, 3, c.Engine.MinDigits, "unset keys keep defaults")
	assert.Equal(t, 12, c.Engine.MaxDigits)
	assert.False(t, c.Dict.UseDefault)
	assert.Equal(t, []string{"a.txt"}, c.Dict.Files)
	assert.Equal(t, 7, c.MaxWordLength())
	assert.True(t, c.Output.ShowScores)
	assert.Equal(t, 5, c.Output.Limit)

	keys, err := c.KeypadMap()
	require.NoError(t, err)
	assert.Equal(t, "QZ", keys.Letters('1'))
	assert.Equal(t, "ABC", keys.Letters('2'))
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	// min_digits has the wrong type, so the strict decode fails.
	path := writeConfig(t, `
[engine]
min_word_length = 4
min_digits = "three"

[output]
lowest_first = true
`)
	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Engine.MinWordLength)
	assert.Equal(t, 3, c.Engine.MinDigits)
	assert.True(t, c.Output.LowestFirst)
}

func TestLoadConfigGarbage(t *testing.T) {
	c, err := LoadConfig(writeConfig(t, "[engine\nthis is not toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
}

func TestKeypadMapRejectsBadKeys(t *testing.T) {
	c := DefaultConfig()
	c.Keypad["12"] = "AB"
	_, err := c.KeypadMap()
	assert.ErrorIs(t, err, keypad.ErrInvalidDigit)

	c = DefaultConfig()
	c.Keypad["5"] = "J K"
	_, err = c.KeypadMap()
	assert.ErrorIs(t, err, keypad.ErrInvalidLetters)
}

func TestInitConfigCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	c, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
	assert.FileExists(t, path)

	reloaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, c, reloaded)
}

func TestLoadConfigWithPriorityCustom(t *testing.T) {
	path := writeConfig(t, "[output]\nshow_stats = true\n")

	c, used, err := LoadConfigWithPriority(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.True(t, c.Output.ShowStats)
}

func TestLoadConfigWithPriorityFallsBack(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	c, used, err := LoadConfigWithPriority(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
	assert.Equal(t, "config.toml", filepath.Base(used))
}

func TestGetActiveConfigPath(t *testing.T) {
	assert.True(t, filepath.IsAbs(GetActiveConfigPath("config.toml")))
}
