package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// RestConfig holds the settings of the REST API server
type RestConfig struct {
	Port   string         `mapstructure:"port" validate:"required,numeric"`
	Mode   string         `mapstructure:"mode" validate:"required,oneof=debug release test"`
	Logger LoggerSettings `mapstructure:"logger"`
	Cipher CipherSettings `mapstructure:"cipher"`
}

// Validate checks the server fields and the nested logger and cipher settings
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.StructPartial(c, "Port", "Mode"); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Cipher.Validate(); err != nil {
		return err
	}

	return nil
}

// InitializeRestConfig reads the REST configuration from a YAML file, lets
// environment variables such as CIPHER_PADDING_MODE override it, and validates the result.
// A missing file is not an error; defaults and environment variables are used instead.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setRestDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg := &RestConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setRestDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("mode", "release")

	logger := DefaultLoggerSettings()
	v.SetDefault("logger.log_level", logger.LogLevel)
	v.SetDefault("logger.log_type", logger.LogType)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 0)
	v.SetDefault("logger.max_backups", 0)
	v.SetDefault("logger.max_age", 0)

	cipher := DefaultCipherSettings()
	v.SetDefault("cipher.padding_mode", cipher.PaddingMode)
	v.SetDefault("cipher.workers", cipher.Workers)
	v.SetDefault("cipher.parallel_threshold", cipher.ParallelThreshold)
}
