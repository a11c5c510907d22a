package cli

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wavect/shamir-secret-sharing/internal/validation"
	"github.com/wavect/shamir-secret-sharing/pkg/secure"
	"github.com/wavect/shamir-secret-sharing/pkg/shamir"
	"github.com/wavect/shamir-secret-sharing/pkg/storage"
)

// CombineResult is the JSON document printed by `shamir combine --json`.
type CombineResult struct {
	SecretHex    string `json:"secret_hex"`
	SecretBase64 string `json:"secret_base64"`
	SecretText   string `json:"secret_text,omitempty"`
	SharesUsed   int    `json:"shares_used"`
}

func NewCombineCommand() *cobra.Command {
	var (
		inputFile string
		rawOutput bool
	)

	cmd := &cobra.Command{
		Use:   "combine",
		Short: "Reconstruct a secret from shares",
		Long: `Reconstruct a secret from a set of shares. Shares may be pasted one per
line (hex or base64), or loaded from a passphrase-encrypted file written
by 'shamir split --output'.

Combining fewer shares than the original threshold does not fail: it
produces a wrong value. The scheme cannot detect missing or tampered
shares.`,
		Example: `  # Paste shares interactively
  shamir combine

  # Pipe shares, one per line
  printf '%s\n%s\n' "$SHARE1" "$SHARE2" | shamir combine

  # Load shares from an encrypted file
  shamir combine --input shares.enc

  # Emit the raw secret bytes
  shamir combine --raw > secret.bin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("json")

			var shares [][]byte
			var err error
			if inputFile != "" {
				shares, err = loadEncrypted(inputFile)
			} else {
				shares, err = readShares()
			}
			if err != nil {
				return err
			}

			secret, err := shamir.Combine(shares)
			if err != nil {
				return fmt.Errorf("failed to combine shares: %w", err)
			}
			defer secure.Zero(secret)

			if rawOutput {
				_, err := os.Stdout.Write(secret)
				return err
			}

			result := CombineResult{
				SecretHex:    hex.EncodeToString(secret),
				SecretBase64: base64.StdEncoding.EncodeToString(secret),
				SharesUsed:   len(shares),
			}
			if utf8.Valid(secret) && isPrintable(secret) {
				result.SecretText = string(secret)
			}

			if outputJSON {
				return json.NewEncoder(os.Stdout).Encode(result)
			}

			printCombineResult(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Read shares from a passphrase-encrypted file")
	cmd.Flags().BoolVar(&rawOutput, "raw", false, "Write the raw secret bytes to stdout")

	return cmd
}

func readShares() ([][]byte, error) {
	lines, err := readLines("Paste shares one per line (blank line to finish):")
	if err != nil {
		return nil, err
	}

	shares := make([][]byte, len(lines))
	for i, line := range lines {
		share, err := validation.DecodeShare(line)
		if err != nil {
			return nil, fmt.Errorf("share %d: %w", i+1, err)
		}
		shares[i] = share
	}
	return shares, nil
}

func loadEncrypted(path string) ([][]byte, error) {
	passphrase, err := readPassphrase("Passphrase for share file: ")
	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}
	defer secure.Zero(passphrase)

	blob, err := storage.New(path).Load(passphrase)
	if err != nil {
		return nil, fmt.Errorf("failed to load shares: %w", err)
	}
	defer secure.Zero(blob)

	var stored SplitResult
	if err := json.Unmarshal(blob, &stored); err != nil {
		return nil, fmt.Errorf("failed to parse share file: %w", err)
	}

	shares := make([][]byte, 0, len(stored.Shares))
	for i, entry := range stored.Shares {
		share, err := validation.DecodeShare(entry.Hex)
		if err != nil {
			return nil, fmt.Errorf("stored share %d: %w", i+1, err)
		}
		shares = append(shares, share)
	}
	return shares, nil
}

func isPrintable(data []byte) bool {
	for _, b := range data {
		if b < 0x20 && b != '\n' && b != '\t' {
			return false
		}
	}
	return true
}

func printCombineResult(result CombineResult) {
	bold := color.New(color.Bold)

	bold.Printf("Secret reconstructed from %d shares\n\n", result.SharesUsed)
	fmt.Printf("  hex:    %s\n", result.SecretHex)
	fmt.Printf("  base64: %s\n", result.SecretBase64)
	if result.SecretText != "" {
		fmt.Printf("  text:   %s\n", result.SecretText)
	}
}
