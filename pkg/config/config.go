/*
Package config manages TOML config for wordvocab services.
*/
package config

import (
	"path/filepath"

	"github.com/bastiangx/wordvocab/internal/utils"
	"github.com/charmbracelet/log"
)

// Backend names accepted in DictConfig.Backend
const (
	BackendRWay     = "rway"
	BackendPatricia = "patricia"
)

// Config holds the entire config structure
type Config struct {
	Server ServerConfig `toml:"server"`
	Dict   DictConfig   `toml:"dict"`
	CLI    CliConfig    `toml:"cli"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	MaxLimit     int  `toml:"max_limit"`
	MinPrefix    int  `toml:"min_prefix"`
	MaxPrefix    int  `toml:"max_prefix"`
	DefaultK     int  `toml:"default_k"`
	EnableFilter bool `toml:"enable_filter"`
}

// DictConfig holds word list options.
type DictConfig struct {
	WordList string `toml:"word_list"`
	Backend  string `toml:"backend"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit    int  `toml:"default_limit"`
	DefaultK        int  `toml:"default_k"`
	DefaultMinLen   int  `toml:"default_min_len"`
	DefaultMaxLen   int  `toml:"default_max_len"`
	DefaultNoFilter bool `toml:"default_no_filter"`
}

// GetConfigDir returns the platform config dir, or the executable dir when
// the former cannot be written to.
func GetConfigDir() (string, error) {
	dir := utils.ConfigDir()
	if utils.CheckDirStatus(dir).Writable {
		return dir, nil
	}
	log.Warnf("Config directory %s is not writable, falling back to the executable dir", dir)
	return utils.GetExecutableDir()
}

// GetDefaultConfigPath returns <config dir>/config.toml
func GetDefaultConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadConfigWithPriority tries the -config path, then the default path, then builtin defaults.
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if utils.FileExists(customConfigPath) {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s", customConfigPath)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		return DefaultConfig(), "", nil
	}
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			MaxLimit:     64,
			MinPrefix:    1,
			MaxPrefix:    60,
			DefaultK:     3,
			EnableFilter: true,
		},
		Dict: DictConfig{
			WordList: "words.txt",
			Backend:  BackendRWay,
		},
		CLI: CliConfig{
			DefaultLimit:    24,
			DefaultK:        3,
			DefaultMinLen:   1,
			DefaultMaxLen:   24,
			DefaultNoFilter: false,
		},
	}
}

// InitConfig loads config from file, writing the defaults there first if missing
func InitConfig(configPath string) (*Config, error) {
	if err := utils.EnsureDir(filepath.Dir(configPath)); err != nil {
		log.Warnf("Failed to create config directory for %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v", configPath, err)
		} else {
			log.Debugf("Created default config file at: %s", configPath)
		}
		return config, nil
	}
	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. Keys that are missing, mistyped or out of
// range keep their defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		config = tryPartialParse(configPath)
	}
	config.sanitize()
	return config, nil
}

// tryPartialParse keeps whatever sections still decode and defaults the rest
func tryPartialParse(configPath string) *Config {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config
	}

	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	if dictSection, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(dictSection, &config.Dict)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	return config
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		server.MaxLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "min_prefix"); ok {
		server.MinPrefix = val
	}
	if val, ok := utils.ExtractInt64(data, "max_prefix"); ok {
		server.MaxPrefix = val
	}
	if val, ok := utils.ExtractInt64(data, "default_k"); ok {
		server.DefaultK = val
	}
	if val, ok := utils.ExtractBool(data, "enable_filter"); ok {
		server.EnableFilter = val
	}
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "word_list"); ok {
		dict.WordList = val
	}
	if val, ok := utils.ExtractString(data, "backend"); ok {
		dict.Backend = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "default_k"); ok {
		cli.DefaultK = val
	}
	if val, ok := utils.ExtractInt64(data, "default_min_len"); ok {
		cli.DefaultMinLen = val
	}
	if val, ok := utils.ExtractInt64(data, "default_max_len"); ok {
		cli.DefaultMaxLen = val
	}
	if val, ok := utils.ExtractBool(data, "default_no_filter"); ok {
		cli.DefaultNoFilter = val
	}
}

// GetActiveConfigPath returns the absolute path of the loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		return "built-in defaults"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
