/*
Package config manages the TOML config for spellophone.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bastiangx/spellophone/internal/utils"
	"github.com/bastiangx/spellophone/pkg/keypad"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Engine EngineConfig      `toml:"engine"`
	Dict   DictConfig        `toml:"dict"`
	Keypad map[string]string `toml:"keypad"`
	Output OutputConfig      `toml:"output"`
	Server ServerConfig      `toml:"server"`
}

// EngineConfig has the decomposition limits.
type EngineConfig struct {
	MinWordLength int `toml:"min_word_length"`
	MinDigits     int `toml:"min_digits"`
	MaxDigits     int `toml:"max_digits"`
	MaxNodes      int `toml:"max_nodes"`
}

// DictConfig holds dictionary options. A MaxWordLength of zero means words
// up to the longest number allowed.
type DictConfig struct {
	UseDefault    bool     `toml:"use_default"`
	Files         []string `toml:"files"`
	DefaultPaths  []string `toml:"default_paths"`
	MaxWordLength int      `toml:"max_word_length"`
}

// OutputConfig holds how results are printed.
type OutputConfig struct {
	ShowScores  bool `toml:"show_scores"`
	LowestFirst bool `toml:"lowest_first"`
	ShowStats   bool `toml:"show_stats"`
	Limit       int  `toml:"limit"`
}

// ServerConfig holds -ipc mode options.
type ServerConfig struct {
	CacheSize int `toml:"cache_size"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/spellophone
// 2. current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", "spellophone")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from -config flag
// 2. Default path: ~/.config/spellophone/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			MinWordLength: 2,
			MinDigits:     3,
			MaxDigits:     10,
			MaxNodes:      0,
		},
		Dict: DictConfig{
			UseDefault: true,
			Files:      []string{},
			DefaultPaths: []string{
				"/etc/dictionaries-common/words",
				"/usr/share/dict/words",
				"/usr/dict/words",
			},
			MaxWordLength: 0,
		},
		Keypad: map[string]string{},
		Output: OutputConfig{
			ShowScores:  false,
			LowestFirst: false,
			ShowStats:   false,
			Limit:       0,
		},
		Server: ServerConfig{
			CacheSize: 256,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file. A file that does not parse as a whole
// still contributes the sections and keys that can be read.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "engine"); ok {
		extractEngineConfig(section, &config.Engine)
	}
	if section, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(section, &config.Dict)
	}
	if section, ok := utils.ExtractSection(tempConfig, "keypad"); ok {
		for digit := range section {
			if letters, ok := utils.ExtractString(section, digit); ok {
				config.Keypad[digit] = letters
			}
		}
	}
	if section, ok := utils.ExtractSection(tempConfig, "output"); ok {
		extractOutputConfig(section, &config.Output)
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		if val, ok := utils.ExtractInt64(section, "cache_size"); ok {
			config.Server.CacheSize = val
		}
	}
	return config, nil
}

func extractEngineConfig(data map[string]any, engine *EngineConfig) {
	if val, ok := utils.ExtractInt64(data, "min_word_length"); ok {
		engine.MinWordLength = val
	}
	if val, ok := utils.ExtractInt64(data, "min_digits"); ok {
		engine.MinDigits = val
	}
	if val, ok := utils.ExtractInt64(data, "max_digits"); ok {
		engine.MaxDigits = val
	}
	if val, ok := utils.ExtractInt64(data, "max_nodes"); ok {
		engine.MaxNodes = val
	}
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractBool(data, "use_default"); ok {
		dict.UseDefault = val
	}
	if val, ok := utils.ExtractStringSlice(data, "files"); ok {
		dict.Files = val
	}
	if val, ok := utils.ExtractStringSlice(data, "default_paths"); ok {
		dict.DefaultPaths = val
	}
	if val, ok := utils.ExtractInt64(data, "max_word_length"); ok {
		dict.MaxWordLength = val
	}
}

func extractOutputConfig(data map[string]any, output *OutputConfig) {
	if val, ok := utils.ExtractBool(data, "show_scores"); ok {
		output.ShowScores = val
	}
	if val, ok := utils.ExtractBool(data, "lowest_first"); ok {
		output.LowestFirst = val
	}
	if val, ok := utils.ExtractBool(data, "show_stats"); ok {
		output.ShowStats = val
	}
	if val, ok := utils.ExtractInt64(data, "limit"); ok {
		output.Limit = val
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// KeypadMap applies the [keypad] overrides to the default keypad. Keys must
// be single digits.
func (c *Config) KeypadMap() (keypad.Map, error) {
	overrides, err := keypad.ParseOverrides(c.Keypad)
	if err != nil {
		return keypad.Map{}, fmt.Errorf("[keypad]: %w", err)
	}
	return keypad.New(overrides)
}

// MaxWordLength returns the longest word worth loading.
func (c *Config) MaxWordLength() int {
	if c.Dict.MaxWordLength > 0 {
		return c.Dict.MaxWordLength
	}
	return c.Engine.MaxDigits
}
