/*
Package config manages TOML config for wordfix.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/wordfix/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Engine EngineConfig `toml:"engine"`
	Store  StoreConfig  `toml:"store"`
	Server ServerConfig `toml:"server"`
}

// EngineConfig has autocorrect behaviour options.
type EngineConfig struct {
	Autocorrect    bool   `toml:"autocorrect"`
	Autocapitalize bool   `toml:"autocapitalize"`
	MinWordLength  int    `toml:"min_word_length"`
	BoundaryChars  string `toml:"boundary_chars"`
}

// StoreConfig selects where rules and exclusions are persisted.
type StoreConfig struct {
	Backend string `toml:"backend"` // file, memory, postgres
	Path    string `toml:"path"`
	DSN     string `toml:"dsn"`
}

// ServerConfig holds HTTP transport options. Timeouts are in seconds.
type ServerConfig struct {
	HTTPAddr     string `toml:"http_addr"`
	ReadTimeout  int    `toml:"read_timeout"`
	WriteTimeout int    `toml:"write_timeout"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/wordfix
// 2. ~/Library/Application Support/wordfix (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", "wordfix")
	if utils.WritableDir(primaryPath) {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "wordfix")
	if utils.WritableDir(macOSPath) {
		return macOSPath, nil
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

// DefaultStorePath returns where the file store lives when [store].path is unset:
// rules.toml next to the active config file.
func DefaultStorePath(configPath string) string {
	if configPath != "" {
		return filepath.Join(filepath.Dir(configPath), "rules.toml")
	}
	if dir, err := GetConfigDir(); err == nil {
		return filepath.Join(dir, "rules.toml")
	}
	return filepath.Join(os.TempDir(), "wordfix-rules.toml")
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/wordfix/config.toml
// 3. Builtin defaults
//
// Environment overrides are applied last in every case.
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				config.applyEnvOverrides()
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		config := DefaultConfig()
		config.applyEnvOverrides()
		return config, "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		config = DefaultConfig()
		defaultPath = ""
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	config.applyEnvOverrides()
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			Autocorrect:    true,
			Autocapitalize: true,
			MinWordLength:  2,
			BoundaryChars:  " .,!?;:",
		},
		Store: StoreConfig{
			Backend: "file",
		},
		Server: ServerConfig{
			HTTPAddr:     "127.0.0.1:7411",
			ReadTimeout:  10,
			WriteTimeout: 10,
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

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse recovers whatever sections still parse
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
	if section, ok := utils.ExtractSection(tempConfig, "store"); ok {
		extractStoreConfig(section, &config.Store)
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	return config, nil
}

func extractEngineConfig(data map[string]any, engine *EngineConfig) {
	if val, ok := utils.Extract[bool](data, "autocorrect"); ok {
		engine.Autocorrect = val
	}
	if val, ok := utils.Extract[bool](data, "autocapitalize"); ok {
		engine.Autocapitalize = val
	}
	if val, ok := utils.ExtractInt(data, "min_word_length"); ok {
		engine.MinWordLength = val
	}
	if val, ok := utils.Extract[string](data, "boundary_chars"); ok {
		engine.BoundaryChars = val
	}
}

func extractStoreConfig(data map[string]any, store *StoreConfig) {
	if val, ok := utils.Extract[string](data, "backend"); ok {
		store.Backend = val
	}
	if val, ok := utils.Extract[string](data, "path"); ok {
		store.Path = val
	}
	if val, ok := utils.Extract[string](data, "dsn"); ok {
		store.DSN = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.Extract[string](data, "http_addr"); ok {
		server.HTTPAddr = val
	}
	if val, ok := utils.ExtractInt(data, "read_timeout"); ok {
		server.ReadTimeout = val
	}
	if val, ok := utils.ExtractInt(data, "write_timeout"); ok {
		server.WriteTimeout = val
	}
}

func (c *Config) applyEnvOverrides() {
	if env := os.Getenv("WORDFIX_STORE_DSN"); env != "" {
		c.Store.DSN = env
		c.Store.Backend = "postgres"
	}
	if env := os.Getenv("WORDFIX_HTTP_ADDR"); env != "" {
		c.Server.HTTPAddr = env
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		return "builtin defaults"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// SetEngine updates the engine toggles and saves to file.
// Nil arguments leave the current value.
func (c *Config) SetEngine(configPath string, autocorrect, autocapitalize *bool) error {
	if autocorrect != nil {
		c.Engine.Autocorrect = *autocorrect
	}
	if autocapitalize != nil {
		c.Engine.Autocapitalize = *autocapitalize
	}
	if configPath == "" {
		return nil
	}
	return SaveConfig(c, configPath)
}
