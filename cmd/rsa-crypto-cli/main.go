// Package main is the entry point for the rsa-crypto-cli application.
// It initializes the root command, registers the RSA encryption and
// signature sub-commands and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "rsa_crypto_service/cmd/rsa-crypto-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rsa-crypto-cli",
		Short: "RSA cryptographic operations CLI tool",
		Long: `rsa-crypto-cli is a command-line tool for RSA cryptographic operations.
Supports encryption and decryption of files of arbitrary length with block
chunking, plus digest-based signing and verification. Keys are read from
PEM files in PKCS#1, PKCS#8 or X.509 SubjectPublicKeyInfo form.`,
	}

	if err := commands.InitRSACommands(rootCmd); err != nil {
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
