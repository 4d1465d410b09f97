// This file implements config.yaml loading with Viper and the default file
// written by init.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/cataloger/internal/logging"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix = "CATALOGER"

	cfgKeyCatalog        = "catalog"
	cfgKeyLogLevel       = "log.level"
	cfgKeyLogFormat      = "log.format"
	cfgKeyLogFile        = "log.file"
	cfgKeyLogMaxSize     = "log.max_size"
	cfgKeyLogMaxBackups  = "log.max_backups"
	cfgKeyLogMaxAge      = "log.max_age"
	cfgKeyLogCompress    = "log.compress"
	defaultLogLevel      = "warn"
	defaultLogFormat     = "text"
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
)

// logKeys can be overridden by CATALOGER_LOG_* environment variables. The
// catalog key is left out so CATALOGER_CATALOG keeps its place after
// config.yaml in the catalog precedence.
var logKeys = []string{
	cfgKeyLogLevel,
	cfgKeyLogFormat,
	cfgKeyLogFile,
	cfgKeyLogMaxSize,
	cfgKeyLogMaxBackups,
	cfgKeyLogMaxAge,
	cfgKeyLogCompress,
}

// configFile holds the structure written to config.yaml.
type configFile struct {
	Catalog string    `yaml:"catalog,omitempty"`
	Log     logConfig `yaml:"log"`
}

type logConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	File       string `yaml:"file,omitempty"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Compress   bool   `yaml:"compress"`
}

func defaultConfigFile(catalog string) configFile {
	return configFile{
		Catalog: catalog,
		Log: logConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			MaxSize:    defaultLogMaxSize,
			MaxBackups: defaultLogMaxBackups,
			MaxAge:     defaultLogMaxAge,
		},
	}
}

// loadConfig reads config.yaml from configDir using Viper. A missing
// directory or file is not an error; defaults apply.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyCatalog, "")
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyLogFormat, defaultLogFormat)
	v.SetDefault(cfgKeyLogFile, "")
	v.SetDefault(cfgKeyLogMaxSize, defaultLogMaxSize)
	v.SetDefault(cfgKeyLogMaxBackups, defaultLogMaxBackups)
	v.SetDefault(cfgKeyLogMaxAge, defaultLogMaxAge)
	v.SetDefault(cfgKeyLogCompress, false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range logKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// logOptions maps the log.* keys onto logging options.
func logOptions(v *viper.Viper, stderr io.Writer) logging.Options {
	return logging.Options{
		Level:      v.GetString(cfgKeyLogLevel),
		Format:     v.GetString(cfgKeyLogFormat),
		File:       v.GetString(cfgKeyLogFile),
		MaxSizeMB:  v.GetInt(cfgKeyLogMaxSize),
		MaxBackups: v.GetInt(cfgKeyLogMaxBackups),
		MaxAgeDays: v.GetInt(cfgKeyLogMaxAge),
		Compress:   v.GetBool(cfgKeyLogCompress),
		Stderr:     stderr,
	}
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. It reports whether a file was written.
func writeConfigIfMissing(path, catalog string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	cfg := defaultConfigFile(catalog)
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}
