package commands

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MGTheTrain/crypto-lab/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-lab/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/crypto-lab/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// AESCommandHandler encapsulates logic for handling AES operations via CLI.
type AESCommandHandler struct {
	logger logger.Logger
}

// NewAESCommandHandler initializes and returns an AESCommandHandler instance with
// a configured logger.
func NewAESCommandHandler() (*AESCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &AESCommandHandler{
		logger: loggerInstance,
	}, nil
}

// processor builds an AES processor from the cipher flags in effect for cmd.
func (commandHandler *AESCommandHandler) processor(cmd *cobra.Command) (crypto.AESProcessor, error) {
	opts, err := cipherOptions(cmd)
	if err != nil {
		return nil, err
	}

	aesProcessor, err := cryptography.NewAESProcessor(commandHandler.logger, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES processor: %w", err)
	}
	return aesProcessor, nil
}

// GenerateAESKeyCmd generates a random AES key and persists it in the selected directory
func (commandHandler *AESCommandHandler) GenerateAESKeyCmd(cmd *cobra.Command, _ []string) error {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		return fmt.Errorf("invalid key-size flag: %w", err)
	}

	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}

	aesProcessor, err := commandHandler.processor(cmd)
	if err != nil {
		return err
	}

	secretKey, err := aesProcessor.GenerateKey(keySize)
	if err != nil {
		return err
	}

	keyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-symmetric-key.bin", uuid.New()))
	if err := os.WriteFile(keyFilePath, secretKey, 0600); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}

	commandHandler.logger.Info("AES key saved to ", keyFilePath)
	fmt.Fprintln(cmd.OutOrStdout(), keyFilePath)
	return nil
}

// EncryptAESCmd encrypts a file and writes the ciphertext as Base64
func (commandHandler *AESCommandHandler) EncryptAESCmd(cmd *cobra.Command, _ []string) error {
	inputFilePath, outputFilePath, keyFilePath, err := fileFlags(cmd)
	if err != nil {
		return err
	}

	plainText, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	key, err := os.ReadFile(filepath.Clean(keyFilePath))
	if err != nil {
		return fmt.Errorf("failed to read key file: %w", err)
	}

	aesProcessor, err := commandHandler.processor(cmd)
	if err != nil {
		return err
	}

	encryptedData, err := aesProcessor.Encrypt(plainText, key)
	if err != nil {
		return err
	}

	encoded := base64.StdEncoding.EncodeToString(encryptedData)
	if err := os.WriteFile(outputFilePath, []byte(encoded), 0600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	commandHandler.logger.Info("Encrypted data saved to ", outputFilePath)
	return nil
}

// DecryptAESCmd decrypts a Base64 ciphertext file
func (commandHandler *AESCommandHandler) DecryptAESCmd(cmd *cobra.Command, _ []string) error {
	inputFilePath, outputFilePath, keyFilePath, err := fileFlags(cmd)
	if err != nil {
		return err
	}

	key, err := os.ReadFile(filepath.Clean(keyFilePath))
	if err != nil {
		return fmt.Errorf("failed to read key file: %w", err)
	}

	encoded, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	encryptedData, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(encoded)))
	if err != nil {
		return &crypto.EncodingError{Err: err}
	}

	aesProcessor, err := commandHandler.processor(cmd)
	if err != nil {
		return err
	}

	decryptedData, err := aesProcessor.Decrypt(encryptedData, key)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputFilePath, decryptedData, 0600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	commandHandler.logger.Info("Decrypted data saved to ", outputFilePath)
	return nil
}

// EncryptAESTextCmd prints the Base64 ciphertext of a text message
func (commandHandler *AESCommandHandler) EncryptAESTextCmd(cmd *cobra.Command, _ []string) error {
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		return fmt.Errorf("invalid message flag: %w", err)
	}
	key, err := textKeyFlag(cmd)
	if err != nil {
		return err
	}

	aesProcessor, err := commandHandler.processor(cmd)
	if err != nil {
		return err
	}

	ciphertext, err := aesProcessor.EncryptText(message, key)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ciphertext)
	return nil
}

// DecryptAESTextCmd prints the message recovered from Base64 ciphertext
func (commandHandler *AESCommandHandler) DecryptAESTextCmd(cmd *cobra.Command, _ []string) error {
	ciphertext, err := cmd.Flags().GetString("ciphertext")
	if err != nil {
		return fmt.Errorf("invalid ciphertext flag: %w", err)
	}
	key, err := textKeyFlag(cmd)
	if err != nil {
		return err
	}

	aesProcessor, err := commandHandler.processor(cmd)
	if err != nil {
		return err
	}

	message, err := aesProcessor.DecryptText(ciphertext, key)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), message)
	return nil
}

// ShowBlocksCmd prints the PKCS#7 padded message one hex block per line
func (commandHandler *AESCommandHandler) ShowBlocksCmd(cmd *cobra.Command, _ []string) error {
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		return fmt.Errorf("invalid message flag: %w", err)
	}

	aesProcessor, err := commandHandler.processor(cmd)
	if err != nil {
		return err
	}

	for i, block := range aesProcessor.PaddedBlocks(message) {
		fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", i, block)
	}
	return nil
}

// textKeyFlag reads --key and checks it against --key-size when one is given.
func textKeyFlag(cmd *cobra.Command) (string, error) {
	key, err := cmd.Flags().GetString("key")
	if err != nil {
		return "", fmt.Errorf("invalid key flag: %w", err)
	}
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		return "", fmt.Errorf("invalid key-size flag: %w", err)
	}
	if err := crypto.CheckKeySize(key, keySize); err != nil {
		return "", err
	}
	return key, nil
}

func fileFlags(cmd *cobra.Command) (input, output, key string, err error) {
	if input, err = cmd.Flags().GetString("input-file"); err != nil {
		return "", "", "", fmt.Errorf("invalid input-file flag: %w", err)
	}
	if output, err = cmd.Flags().GetString("output-file"); err != nil {
		return "", "", "", fmt.Errorf("invalid output-file flag: %w", err)
	}
	if key, err = cmd.Flags().GetString("symmetric-key"); err != nil {
		return "", "", "", fmt.Errorf("invalid symmetric-key flag: %w", err)
	}
	return input, output, key, nil
}

// InitAESCommands registers AES-related commands
func InitAESCommands(rootCmd *cobra.Command) error {
	handler, err := NewAESCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create AES command handler %w", err)
	}

	var generateAESKeyCmd = &cobra.Command{
		Use:   "generate-aes-key",
		Short: "Generate a random AES key file",
		RunE:  handler.GenerateAESKeyCmd,
	}
	generateAESKeyCmd.Flags().IntP("key-size", "", crypto.AESKeySize128, "AES key size in bytes (16, 24 or 32)")
	generateAESKeyCmd.Flags().StringP("key-dir", "", ".", "Directory to store the encryption key")
	rootCmd.AddCommand(generateAESKeyCmd)

	var encryptAESFileCmd = &cobra.Command{
		Use:   "encrypt-aes",
		Short: "Encrypt a file using AES-ECB",
		RunE:  handler.EncryptAESCmd,
	}
	encryptAESFileCmd.Flags().StringP("input-file", "", "", "Path to input file that needs to be encrypted")
	encryptAESFileCmd.Flags().StringP("output-file", "", "", "Path to Base64 encrypted output file")
	encryptAESFileCmd.Flags().StringP("symmetric-key", "", "", "Path to the symmetric key")
	if err := markRequired(encryptAESFileCmd, "input-file", "output-file", "symmetric-key"); err != nil {
		return err
	}
	rootCmd.AddCommand(encryptAESFileCmd)

	var decryptAESFileCmd = &cobra.Command{
		Use:   "decrypt-aes",
		Short: "Decrypt a Base64 file using AES-ECB",
		RunE:  handler.DecryptAESCmd,
	}
	decryptAESFileCmd.Flags().StringP("input-file", "", "", "Input Base64 encrypted file path")
	decryptAESFileCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file")
	decryptAESFileCmd.Flags().StringP("symmetric-key", "", "", "Path to the symmetric key")
	if err := markRequired(decryptAESFileCmd, "input-file", "output-file", "symmetric-key"); err != nil {
		return err
	}
	rootCmd.AddCommand(decryptAESFileCmd)

	var encryptAESTextCmd = &cobra.Command{
		Use:   "encrypt-aes-text",
		Short: "Encrypt a text message and print Base64 ciphertext",
		RunE:  handler.EncryptAESTextCmd,
	}
	encryptAESTextCmd.Flags().StringP("message", "", "", "Message to encrypt")
	encryptAESTextCmd.Flags().StringP("key", "", "", "Text key of 16, 24 or 32 bytes")
	encryptAESTextCmd.Flags().IntP("key-size", "", 0, "Expected key size in bytes (16, 24 or 32); 0 accepts any")
	if err := markRequired(encryptAESTextCmd, "key"); err != nil {
		return err
	}
	rootCmd.AddCommand(encryptAESTextCmd)

	var decryptAESTextCmd = &cobra.Command{
		Use:   "decrypt-aes-text",
		Short: "Decrypt Base64 ciphertext and print the message",
		RunE:  handler.DecryptAESTextCmd,
	}
	decryptAESTextCmd.Flags().StringP("ciphertext", "", "", "Base64 ciphertext")
	decryptAESTextCmd.Flags().StringP("key", "", "", "Text key of 16, 24 or 32 bytes")
	decryptAESTextCmd.Flags().IntP("key-size", "", 0, "Expected key size in bytes (16, 24 or 32); 0 accepts any")
	if err := markRequired(decryptAESTextCmd, "ciphertext", "key"); err != nil {
		return err
	}
	rootCmd.AddCommand(decryptAESTextCmd)

	var showBlocksCmd = &cobra.Command{
		Use:   "show-blocks",
		Short: "Print a message as PKCS#7 padded hex blocks",
		RunE:  handler.ShowBlocksCmd,
	}
	showBlocksCmd.Flags().StringP("message", "", "", "Message to split into blocks")
	rootCmd.AddCommand(showBlocksCmd)

	return nil
}

func markRequired(cmd *cobra.Command, names ...string) error {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			return fmt.Errorf("failed to mark %s flag of %s as required: %w", name, cmd.Name(), err)
		}
	}
	return nil
}
