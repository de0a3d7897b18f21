package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Levels accepted by LoggerSettings.LogLevel. Critical only lets Fatal and Panic through.
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Sinks accepted by LoggerSettings.LogType.
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Upper bounds of the file sink rotation settings.
const (
	MaxLogFileSizeMB = 100
	MaxLogBackups    = 10
	MaxLogAgeDays    = 365
)

// LoggerSettings configures the process logger. FilePath and the rotation
// fields are only read for the file sink.
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=info debug error warning critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// DefaultLoggerSettings returns console logging at info level.
func DefaultLoggerSettings() *LoggerSettings {
	return &LoggerSettings{
		LogLevel: LogLevelInfo,
		LogType:  LogTypeConsole,
	}
}

// IsFile reports whether logs go to a rotated file.
func (s *LoggerSettings) IsFile() bool {
	return s.LogType == LogTypeFile
}

// Validate checks the level and sink, and the rotation settings when logging to a file
func (s *LoggerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}

	if !s.IsFile() {
		return nil
	}
	return s.validateRotation()
}

func (s *LoggerSettings) validateRotation() error {
	if s.FilePath == "" {
		return fmt.Errorf("file path is required for file logger")
	}

	bounds := []struct {
		name  string
		value int
		max   int
		unit  string
	}{
		{"max size", s.MaxSize, MaxLogFileSizeMB, "MB"},
		{"max backups", s.MaxBackups, MaxLogBackups, "files"},
		{"max age", s.MaxAge, MaxLogAgeDays, "days"},
	}
	for _, b := range bounds {
		if b.value < 1 || b.value > b.max {
			return fmt.Errorf("%s must be between 1 and %d %s, got %d", b.name, b.max, b.unit, b.value)
		}
	}

	return nil
}
