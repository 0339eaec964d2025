// Package config loads settings from flags, environment variables, a .env
// file and $HOME/.retail/config.yml, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fivetwenty-io/retail-samples/internal/constants"
	"github.com/fivetwenty-io/retail-samples/pkg/retail"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Setting keys shared by the config file, flags and environment.
const (
	KeyProjectNumber = "project_number"
	KeyBucketName    = "bucket_name"
	KeyEndpoint      = "endpoint"
	KeyOutput        = "output"
	KeyLogLevel      = "log_level"
	KeyTimeout       = "timeout"
	KeyInventoryWait = "inventory_wait"
	KeyConcurrency   = "concurrency"
)

// Settings is the resolved configuration.
type Settings struct {
	ProjectNumber string        `json:"project_number" yaml:"project_number"`
	BucketName    string        `json:"bucket_name"    yaml:"bucket_name"`
	Endpoint      string        `json:"endpoint"       yaml:"endpoint"`
	Output        string        `json:"output"         yaml:"output"`
	LogLevel      string        `json:"log_level"      yaml:"log_level"`
	Timeout       time.Duration `json:"timeout"        yaml:"timeout"`
	InventoryWait time.Duration `json:"inventory_wait" yaml:"inventory_wait"`
	Concurrency   int           `json:"concurrency"    yaml:"concurrency"`
	ConfigFile    string        `json:"config_file"    yaml:"config_file"`
}

// Configure sets defaults and environment bindings on v. PROJECT_NUMBER and
// BUCKET_NAME are read without prefix; every other key uses RETAIL_.
func Configure(v *viper.Viper) error {
	v.SetDefault(KeyEndpoint, constants.DefaultEndpoint)
	v.SetDefault(KeyOutput, constants.FormatText)
	v.SetDefault(KeyLogLevel, constants.DefaultLogLevel)
	v.SetDefault(KeyTimeout, constants.DefaultRequestTimeout)
	v.SetDefault(KeyInventoryWait, constants.DefaultInventoryWait)
	v.SetDefault(KeyConcurrency, constants.DefaultConcurrency)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.AutomaticEnv()

	if err := v.BindEnv(KeyProjectNumber, constants.EnvProjectNumber, constants.EnvPrefix+"_PROJECT_NUMBER"); err != nil {
		return fmt.Errorf("failed to bind %s: %w", KeyProjectNumber, err)
	}

	if err := v.BindEnv(KeyBucketName, constants.EnvBucketName, constants.EnvPrefix+"_BUCKET_NAME"); err != nil {
		return fmt.Errorf("failed to bind %s: %w", KeyBucketName, err)
	}

	return nil
}

// LoadDotEnv loads variables from the given .env files, or ./.env when none
// are given. Missing files are ignored; variables already set win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}

			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	return nil
}

// DefaultConfigDir returns $HOME/.retail.
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}

	return filepath.Join(home, ".retail"), nil
}

// ReadConfigFile reads configFile, or config.yml from the default config
// directory when configFile is empty. Only an explicitly named file must
// exist.
func ReadConfigFile(v *viper.Viper, configFile string) error {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		dir, err := DefaultConfigDir()
		if err != nil {
			return err
		}

		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("failed to read config file: %w", err)
	}

	return nil
}

// Resolve reads the effective settings from v.
func Resolve(v *viper.Viper) (*Settings, error) {
	settings := &Settings{
		ProjectNumber: v.GetString(KeyProjectNumber),
		BucketName:    v.GetString(KeyBucketName),
		Endpoint:      v.GetString(KeyEndpoint),
		Output:        v.GetString(KeyOutput),
		LogLevel:      v.GetString(KeyLogLevel),
		Timeout:       v.GetDuration(KeyTimeout),
		InventoryWait: v.GetDuration(KeyInventoryWait),
		Concurrency:   v.GetInt(KeyConcurrency),
		ConfigFile:    v.ConfigFileUsed(),
	}

	switch settings.Output {
	case constants.FormatText, constants.FormatJSON, constants.FormatYAML, constants.FormatTable:
	default:
		return nil, fmt.Errorf("%w: %s", constants.ErrInvalidOutputFormat, settings.Output)
	}

	if settings.Concurrency < 0 || settings.Concurrency > constants.MaxConcurrency {
		return nil, fmt.Errorf("%w: %d", constants.ErrInvalidConcurrency, settings.Concurrency)
	}

	return settings, nil
}

// Load configures v, loads .env and the config file, and resolves settings.
func Load(v *viper.Viper, configFile string) (*Settings, error) {
	if err := LoadDotEnv(); err != nil {
		return nil, err
	}

	if err := Configure(v); err != nil {
		return nil, err
	}

	if err := ReadConfigFile(v, configFile); err != nil {
		return nil, err
	}

	return Resolve(v)
}

// RetailConfig converts the settings into a client configuration.
func (s *Settings) RetailConfig(logger retail.Logger) *retail.Config {
	return &retail.Config{
		ProjectNumber:  s.ProjectNumber,
		BucketName:     s.BucketName,
		Endpoint:       s.Endpoint,
		RequestTimeout: s.Timeout,
		InventoryWait:  s.InventoryWait,
		Concurrency:    s.Concurrency,
		Logger:         logger,
	}
}

// RequireProject fails when no project number is configured.
func (s *Settings) RequireProject() error {
	if s.ProjectNumber == "" {
		return fmt.Errorf("%w: set %s or --project", constants.ErrProjectNumberRequired, constants.EnvProjectNumber)
	}

	return nil
}

// RequireBucket fails when no bucket name is configured.
func (s *Settings) RequireBucket() error {
	if s.BucketName == "" {
		return fmt.Errorf("%w: set %s or --bucket", constants.ErrBucketNameRequired, constants.EnvBucketName)
	}

	return nil
}
