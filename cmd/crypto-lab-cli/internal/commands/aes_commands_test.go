//go:build unit
// +build unit

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MGTheTrain/crypto-lab/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-lab/internal/pkg/testutil"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRootCmd(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	rootCmd := &cobra.Command{Use: "crypto-lab-cli", SilenceUsage: true, SilenceErrors: true}
	AddCipherFlags(rootCmd)
	require.NoError(t, InitAESCommands(rootCmd))

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	return rootCmd, out
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rootCmd, out := newRootCmd(t)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestEncryptAESTextCmd(t *testing.T) {
	out, err := execute(t, "encrypt-aes-text", "--message", "Hello, World!", "--key", "mysecretkey12345")
	require.NoError(t, err)
	assert.Equal(t, "kwhVHyUe08laf2MC+K3rcw==", out)
}

func TestDecryptAESTextCmd(t *testing.T) {
	out, err := execute(t, "decrypt-aes-text", "--ciphertext", "kwhVHyUe08laf2MC+K3rcw==", "--key", "mysecretkey12345")
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!", out)
}

func TestAESTextCmd_InvalidKey(t *testing.T) {
	_, err := execute(t, "encrypt-aes-text", "--message", "hi", "--key", "short")
	require.Error(t, err)

	var keyErr *crypto.KeyLengthError
	assert.ErrorAs(t, err, &keyErr)
}

func TestAESTextCmd_InvalidPaddingModeFlag(t *testing.T) {
	_, err := execute(t, "--padding-mode", "loose", "encrypt-aes-text", "--message", "hi", "--key", "mysecretkey12345")
	assert.Error(t, err)
}

func TestAESFileCmds_RoundTrip(t *testing.T) {
	plain := []byte(strings.Repeat("file contents spanning several blocks ", 64))
	inputFile := testutil.CreateTestFile(t, "input.txt", plain)
	keyDir := t.TempDir()

	keyFile, err := execute(t, "generate-aes-key", "--key-size", "32", "--key-dir", keyDir)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(keyFile, "-symmetric-key.bin"))

	key, err := os.ReadFile(keyFile)
	require.NoError(t, err)
	assert.Len(t, key, 32)

	encryptedFile := filepath.Join(t.TempDir(), "output.enc")
	_, err = execute(t, "--workers", "4", "encrypt-aes",
		"--input-file", inputFile, "--output-file", encryptedFile, "--symmetric-key", keyFile)
	require.NoError(t, err)

	decryptedFile := filepath.Join(t.TempDir(), "output.txt")
	_, err = execute(t, "decrypt-aes",
		"--input-file", encryptedFile, "--output-file", decryptedFile, "--symmetric-key", keyFile)
	require.NoError(t, err)

	decrypted, err := os.ReadFile(decryptedFile)
	require.NoError(t, err)
	assert.Equal(t, plain, decrypted)
}

func TestDecryptAESCmd_NotBase64(t *testing.T) {
	inputFile := testutil.CreateTestFile(t, "bad.enc", []byte("***"))
	keyFile := testutil.CreateTestFile(t, "key.bin", []byte("mysecretkey12345"))

	_, err := execute(t, "decrypt-aes",
		"--input-file", inputFile, "--output-file", filepath.Join(t.TempDir(), "out"), "--symmetric-key", keyFile)
	require.Error(t, err)

	var encErr *crypto.EncodingError
	assert.ErrorAs(t, err, &encErr)
}

func TestGenerateAESKeyCmd_InvalidSize(t *testing.T) {
	_, err := execute(t, "generate-aes-key", "--key-size", "20", "--key-dir", t.TempDir())
	assert.Error(t, err)
}

func TestAESTextCmd_KeySizeSelection(t *testing.T) {
	out, err := execute(t, "encrypt-aes-text", "--message", "Hello, World!", "--key", "mysecretkey12345", "--key-size", "16")
	require.NoError(t, err)
	assert.Equal(t, "kwhVHyUe08laf2MC+K3rcw==", out)

	_, err = execute(t, "decrypt-aes-text", "--ciphertext", "kwhVHyUe08laf2MC+K3rcw==", "--key", "mysecretkey12345", "--key-size", "32")
	require.Error(t, err)

	var mismatchErr *crypto.KeySizeMismatchError
	require.ErrorAs(t, err, &mismatchErr)
	assert.Equal(t, 32, mismatchErr.Expected)
	assert.Equal(t, 16, mismatchErr.Actual)
}

func TestShowBlocksCmd(t *testing.T) {
	out, err := execute(t, "show-blocks", "--message", "exactly 16 bytes")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "0 65786163746c79203136206279746573", lines[0])
	assert.Equal(t, "1 "+strings.Repeat("10", 16), lines[1])
}

func TestMarkRequired(t *testing.T) {
	cmd := &cobra.Command{Use: "encrypt-aes"}
	cmd.Flags().String("input-file", "", "")

	assert.NoError(t, markRequired(cmd, "input-file"))
	assert.Error(t, markRequired(cmd, "input-file", "no-such-flag"))
}
