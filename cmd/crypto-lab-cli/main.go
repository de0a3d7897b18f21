// Package main is the entry point for the crypto-lab-cli application.
// It initializes the root command, registers the AES sub-commands
// and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/MGTheTrain/crypto-lab/cmd/crypto-lab-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "crypto-lab-cli",
		Short: "AES-ECB encryption CLI tool",
		Long: `crypto-lab-cli encrypts and decrypts files and text with AES-128/192/256
in ECB mode with PKCS#7 padding. Ciphertext is exchanged as Base64.

ECB leaks repeated plaintext blocks; use it for interoperability and study only.`,
		SilenceUsage: true,
	}

	commands.AddCipherFlags(rootCmd)

	if err := commands.InitAESCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
