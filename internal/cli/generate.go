package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wavect/shamir-secret-sharing/pkg/mnemonic"
	"github.com/wavect/shamir-secret-sharing/pkg/secure"
)

// GenerateResult is the JSON document printed by `shamir generate --json`.
type GenerateResult struct {
	Mnemonic   string `json:"mnemonic,omitempty"`
	EntropyHex string `json:"entropy_hex"`
	Bytes      int    `json:"bytes"`
}

func NewGenerateCommand() *cobra.Command {
	var (
		wordCount int
		rawBytes  int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new random secret",
		Long: `Generate a cryptographically secure random secret, either as a BIP39
mnemonic phrase (default) or as raw bytes with --bytes. The output is
suitable as input to 'shamir split'.`,
		Example: `  # Generate a 24-word mnemonic
  shamir generate --words 24

  # Generate 32 random bytes
  shamir generate --bytes 32`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("json")

			var result GenerateResult

			if rawBytes > 0 {
				entropy, err := secure.RandomBytes(rawBytes)
				if err != nil {
					return fmt.Errorf("failed to generate secret: %w", err)
				}
				defer secure.Zero(entropy)

				result = GenerateResult{
					EntropyHex: hex.EncodeToString(entropy),
					Bytes:      rawBytes,
				}
			} else {
				entropyBits, err := mnemonic.EntropyBitsFromWordCount(wordCount)
				if err != nil {
					return fmt.Errorf("invalid word count: %w", err)
				}

				m, err := mnemonic.New(entropyBits)
				if err != nil {
					return fmt.Errorf("failed to generate mnemonic: %w", err)
				}

				entropy, err := m.Entropy()
				if err != nil {
					return fmt.Errorf("failed to extract entropy: %w", err)
				}
				defer secure.Zero(entropy)

				result = GenerateResult{
					Mnemonic:   m.Words(),
					EntropyHex: hex.EncodeToString(entropy),
					Bytes:      len(entropy),
				}
			}

			if outputJSON {
				return json.NewEncoder(os.Stdout).Encode(result)
			}

			bold := color.New(color.Bold)
			if result.Mnemonic != "" {
				bold.Println("Mnemonic:")
				fmt.Printf("  %s\n\n", result.Mnemonic)
			}
			bold.Println("Entropy (hex):")
			fmt.Printf("  %s\n", result.EntropyHex)
			return nil
		},
	}

	cmd.Flags().IntVarP(&wordCount, "words", "w", 24, "Mnemonic word count (12, 15, 18, 21, or 24)")
	cmd.Flags().IntVarP(&rawBytes, "bytes", "b", 0, "Generate raw bytes instead of a mnemonic")

	return cmd
}
