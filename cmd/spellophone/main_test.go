package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/bastiangx/spellophone/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDictionaries(t *testing.T) {
	dir := t.TempDir()
	fromConfig := filepath.Join(dir, "config.txt")
	fromFlag := filepath.Join(dir, "flag.txt")
	require.NoError(t, os.WriteFile(fromConfig, []byte("cat\ncats\nverylongwordindeed\n"), 0644))
	require.NoError(t, os.WriteFile(fromFlag, []byte("at\nCAT\n"), 0644))

	cfg := config.DefaultConfig()
	cfg.Dict.UseDefault = false
	cfg.Dict.Files = []string{fromConfig}

	loader, err := loadDictionaries(cfg, []string{fromFlag})
	require.NoError(t, err)
	assert.Equal(t, []string{"CAT", "CATS", "AT"}, loader.Words())
	assert.Equal(t, 1, loader.Stats().Duplicates)
}

func TestLoadDictionariesMissingDefault(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Dict.DefaultPaths = []string{filepath.Join(t.TempDir(), "none")}

	loader, err := loadDictionaries(cfg, nil)
	require.NoError(t, err, "a missing system list only warns")
	assert.Empty(t, loader.Words())
}

func TestLoadDictionariesBadFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Dict.UseDefault = false

	_, err := loadDictionaries(cfg, []string{filepath.Join(t.TempDir(), "missing.txt")})
	assert.Error(t, err)
}

func TestFlagValues(t *testing.T) {
	var files fileList
	require.NoError(t, files.Set("a.txt"))
	require.NoError(t, files.Set("b.mpk"))
	assert.Equal(t, "a.txt,b.mpk", files.String())

	overrides := map[byte]string{}
	k := &keyFlag{digit: '7', overrides: overrides}
	require.NoError(t, k.Set("PRS"))
	assert.Equal(t, map[byte]string{'7': "PRS"}, overrides)
}

func TestParseArgsFlagsAfterNumbers(t *testing.T) {
	newFlags := func() (*flag.FlagSet, *bool, map[byte]string) {
		fs := flag.NewFlagSet("spellophone", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		scores := fs.Bool("s", false, "")
		overrides := map[byte]string{}
		fs.Var(&keyFlag{digit: '7', overrides: overrides}, "7", "")
		return fs, scores, overrides
	}

	fs, scores, overrides := newFlags()
	args, err := parseArgs(fs, []string{"2287", "-s", "555-1234", "-7=PRS"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2287", "555-1234"}, args)
	assert.True(t, *scores)
	assert.Equal(t, map[byte]string{'7': "PRS"}, overrides)

	fs, scores, _ = newFlags()
	args, err = parseArgs(fs, []string{"-s", "2287", "--", "-s", "228"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2287", "-s", "228"}, args)
	assert.True(t, *scores)

	fs, _, _ = newFlags()
	args, err = parseArgs(fs, nil)
	require.NoError(t, err)
	assert.Empty(t, args)

	fs, _, _ = newFlags()
	_, err = parseArgs(fs, []string{"2287", "-bogus"})
	assert.Error(t, err)
}
