// Package main is the entry point for the rsa-visualizer-cli application.
// It registers the textbook RSA sub-commands and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/Ohad-Ma/RSA-Visualizer/cmd/rsa-visualizer-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rsa-visualizer-cli",
		Short: "Textbook RSA command-line tool",
		Long: `rsa-visualizer-cli runs the textbook RSA engine from the command line.
It generates keypairs from random or supplied primes, encrypts text one byte per block,
decrypts cipher blocks back to text and tests numbers for primality.

Big integers are passed and printed as decimal strings. Results are written to stdout as JSON.
No padding is applied; do not use it to protect real data.`,
		SilenceUsage: true,
	}

	if err := commands.InitRSACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize RSA commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
