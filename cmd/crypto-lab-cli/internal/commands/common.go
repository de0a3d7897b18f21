package commands

import (
	"fmt"

	"github.com/MGTheTrain/crypto-lab/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/crypto-lab/internal/infrastructure/cryptography/rijndael"
	"github.com/MGTheTrain/crypto-lab/internal/pkg/config"
	"github.com/MGTheTrain/crypto-lab/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// Persistent flags shared by every cipher command.
const (
	PaddingModeFlag = "padding-mode"
	WorkersFlag     = "workers"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// AddCipherFlags registers the engine tuning flags on the root command.
func AddCipherFlags(rootCmd *cobra.Command) {
	defaults := config.DefaultCipherSettings()
	rootCmd.PersistentFlags().String(PaddingModeFlag, defaults.PaddingMode, "PKCS#7 unpadding mode (strict or lenient)")
	rootCmd.PersistentFlags().Int(WorkersFlag, defaults.Workers, "Parallel block workers (0 uses GOMAXPROCS)")
}

// cipherSettingsFromFlags reads the inherited cipher flags of cmd.
func cipherSettingsFromFlags(cmd *cobra.Command) (*config.CipherSettings, error) {
	settings := config.DefaultCipherSettings()

	if flag := cmd.Flags().Lookup(PaddingModeFlag); flag != nil {
		settings.PaddingMode = flag.Value.String()
	}

	if cmd.Flags().Lookup(WorkersFlag) != nil {
		workers, err := cmd.Flags().GetInt(WorkersFlag)
		if err != nil {
			return nil, fmt.Errorf("invalid %s flag: %w", WorkersFlag, err)
		}
		settings.Workers = workers
	}

	return settings, nil
}

// cipherOptions turns the cipher flags into engine options.
func cipherOptions(cmd *cobra.Command) ([]rijndael.Option, error) {
	settings, err := cipherSettingsFromFlags(cmd)
	if err != nil {
		return nil, err
	}
	return cryptography.OptionsFromSettings(settings)
}
