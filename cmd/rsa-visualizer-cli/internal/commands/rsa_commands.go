package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ohad-Ma/RSA-Visualizer/internal/app"
	"github.com/Ohad-Ma/RSA-Visualizer/internal/domain/rsa"
	"github.com/Ohad-Ma/RSA-Visualizer/internal/pkg/config"
	"github.com/Ohad-Ma/RSA-Visualizer/internal/pkg/logger"
)

// RSACommandHandler encapsulates logic for handling textbook RSA operations via CLI.
type RSACommandHandler struct {
	rsaService rsa.RSAService
	logger     logger.Logger
}

type encryptOutput struct {
	Cipher []string `json:"cipher"`
}

type decryptOutput struct {
	Message string `json:"message"`
}

// NewRSACommandHandler initializes a new RSACommandHandler backed by the engine settings
func NewRSACommandHandler(settings *config.EngineSettings) (*RSACommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	rsaService, err := app.NewRSAServiceFromSettings(settings, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA service: %w", err)
	}

	return &RSACommandHandler{
		rsaService: rsaService,
		logger:     loggerInstance,
	}, nil
}

// GenerateKeysCmd derives a keypair and prints it
func (commandHandler *RSACommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) error {
	bitsPerPrime, err := cmd.Flags().GetInt("bits-per-prime")
	if err != nil {
		return fmt.Errorf("invalid bits-per-prime flag: %w", err)
	}

	var p, q *string
	if cmd.Flags().Changed("p") {
		value, _ := cmd.Flags().GetString("p")
		p = &value
	}
	if cmd.Flags().Changed("q") {
		value, _ := cmd.Flags().GetString("q")
		q = &value
	}

	view, err := commandHandler.rsaService.GenerateKeypair(cmd.Context(), bitsPerPrime, p, q)
	if err != nil {
		commandHandler.logger.Error("Keypair generation failed: ", err)
		return err
	}

	return writeJSON(cmd.OutOrStdout(), view)
}

// EncryptCmd encrypts a message with a public key and prints the cipher blocks
func (commandHandler *RSACommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		return fmt.Errorf("invalid message flag: %w", err)
	}
	e, err := cmd.Flags().GetString("e")
	if err != nil {
		return fmt.Errorf("invalid e flag: %w", err)
	}
	n, err := cmd.Flags().GetString("n")
	if err != nil {
		return fmt.Errorf("invalid n flag: %w", err)
	}

	cipher, err := commandHandler.rsaService.Encrypt(cmd.Context(), message, e, n)
	if err != nil {
		commandHandler.logger.Error("Encryption failed: ", err)
		return err
	}

	return writeJSON(cmd.OutOrStdout(), encryptOutput{Cipher: cipher})
}

// DecryptCmd decrypts comma separated cipher blocks with a private key and prints the text
func (commandHandler *RSACommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	rawCipher, err := cmd.Flags().GetString("cipher")
	if err != nil {
		return fmt.Errorf("invalid cipher flag: %w", err)
	}
	d, err := cmd.Flags().GetString("d")
	if err != nil {
		return fmt.Errorf("invalid d flag: %w", err)
	}
	n, err := cmd.Flags().GetString("n")
	if err != nil {
		return fmt.Errorf("invalid n flag: %w", err)
	}

	message, err := commandHandler.rsaService.Decrypt(cmd.Context(), splitCipher(rawCipher), d, n)
	if err != nil {
		commandHandler.logger.Error("Decryption failed: ", err)
		return err
	}

	return writeJSON(cmd.OutOrStdout(), decryptOutput{Message: message})
}

// IsPrimeCmd runs the Miller-Rabin test on a decimal number
func (commandHandler *RSACommandHandler) IsPrimeCmd(cmd *cobra.Command, _ []string) error {
	rawN, err := cmd.Flags().GetString("n")
	if err != nil {
		return fmt.Errorf("invalid n flag: %w", err)
	}
	rounds, err := cmd.Flags().GetInt("rounds")
	if err != nil {
		return fmt.Errorf("invalid rounds flag: %w", err)
	}

	result, err := commandHandler.rsaService.IsProbablePrime(cmd.Context(), rawN, rounds)
	if err != nil {
		return err
	}

	return writeJSON(cmd.OutOrStdout(), result)
}

// splitCipher turns "2790, 1,3" into its elements. An empty string means no blocks.
func splitCipher(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// InitRSACommands registers textbook RSA commands
func InitRSACommands(rootCmd *cobra.Command) error {
	settings := config.DefaultEngineSettings()
	rootCmd.PersistentFlags().String("byte-policy", settings.BytePolicy, "Handling of text bytes not below n: strict or drop")

	var handler *RSACommandHandler
	// the handler depends on --byte-policy, so it is built once flags are parsed
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		policy, err := cmd.Flags().GetString("byte-policy")
		if err != nil {
			return fmt.Errorf("invalid byte-policy flag: %w", err)
		}
		settings.BytePolicy = policy

		handler, err = NewRSACommandHandler(&settings)
		if err != nil {
			return fmt.Errorf("failed to create RSA command handler: %w", err)
		}
		return nil
	}

	var generateKeysCmd = &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate a textbook RSA keypair",
		RunE:  func(cmd *cobra.Command, args []string) error { return handler.GenerateKeysCmd(cmd, args) },
	}
	generateKeysCmd.Flags().IntP("bits-per-prime", "", rsa.DefaultBitsPerPrime, "Bit length of each prime")
	generateKeysCmd.Flags().StringP("p", "", "", "Optional first prime (decimal)")
	generateKeysCmd.Flags().StringP("q", "", "", "Optional second prime (decimal)")
	rootCmd.AddCommand(generateKeysCmd)

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt text one byte per block",
		RunE:  func(cmd *cobra.Command, args []string) error { return handler.EncryptCmd(cmd, args) },
	}
	encryptCmd.Flags().StringP("message", "", "", "Text to encrypt")
	encryptCmd.Flags().StringP("e", "", "", "Public exponent (decimal)")
	encryptCmd.Flags().StringP("n", "", "", "Modulus (decimal)")
	_ = encryptCmd.MarkFlagRequired("e")
	_ = encryptCmd.MarkFlagRequired("n")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt cipher blocks into text",
		RunE:  func(cmd *cobra.Command, args []string) error { return handler.DecryptCmd(cmd, args) },
	}
	decryptCmd.Flags().StringP("cipher", "", "", "Comma separated cipher blocks (decimal)")
	decryptCmd.Flags().StringP("d", "", "", "Private exponent (decimal)")
	decryptCmd.Flags().StringP("n", "", "", "Modulus (decimal)")
	_ = decryptCmd.MarkFlagRequired("d")
	_ = decryptCmd.MarkFlagRequired("n")
	rootCmd.AddCommand(decryptCmd)

	var isPrimeCmd = &cobra.Command{
		Use:   "is-prime",
		Short: "Run the Miller-Rabin primality test",
		RunE:  func(cmd *cobra.Command, args []string) error { return handler.IsPrimeCmd(cmd, args) },
	}
	isPrimeCmd.Flags().StringP("n", "", "", "Number to test (decimal)")
	isPrimeCmd.Flags().IntP("rounds", "", 0, "Number of random witnesses, 0 for the engine default")
	_ = isPrimeCmd.MarkFlagRequired("n")
	rootCmd.AddCommand(isPrimeCmd)

	return nil
}
