package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sailsgen/sails-generate-login/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood by the generator.
const (
	KeyTemplatesDir = "templates_dir"
	KeyLogFile      = "log_file"
	KeyLogMaxSizeMB = "log_max_size_mb"
	KeyVerbosity    = "verbosity"
)

// Keys lists every key, each overridable by its branded env var.
var Keys = []string{KeyTemplatesDir, KeyLogFile, KeyLogMaxSizeMB, KeyVerbosity}

// Settings is the typed view of the configuration.
type Settings struct {
	TemplatesDir string `mapstructure:"templates_dir"`
	LogFile      string `mapstructure:"log_file"`
	LogMaxSizeMB int    `mapstructure:"log_max_size_mb"`
	Verbosity    int    `mapstructure:"verbosity"`
}

// Dir returns the path to the config directory (~/.sailsgen/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.sailsgen/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	for _, key := range Keys {
		_ = viper.BindEnv(key, branding.EnvVar(key))
	}

	viper.SetDefault(KeyTemplatesDir, "")
	viper.SetDefault(KeyLogFile, "")
	viper.SetDefault(KeyLogMaxSizeMB, 10)
	viper.SetDefault(KeyVerbosity, 0)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Current returns the loaded settings. Load must have been called first.
func Current() (Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decoding settings: %w", err)
	}
	return s, nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
