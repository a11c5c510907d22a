package cli

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wavect/shamir-secret-sharing/internal/validation"
	"github.com/wavect/shamir-secret-sharing/pkg/mnemonic"
	"github.com/wavect/shamir-secret-sharing/pkg/secure"
	"github.com/wavect/shamir-secret-sharing/pkg/shamir"
	"github.com/wavect/shamir-secret-sharing/pkg/storage"
)

// ShareOutput is one share in both supported encodings. The mnemonic form is
// only present when the share length happens to be valid BIP39 entropy.
type ShareOutput struct {
	Index    int    `json:"index"`
	Hex      string `json:"hex"`
	Base64   string `json:"base64"`
	Mnemonic string `json:"mnemonic,omitempty"`
}

// SplitResult is the JSON document printed by `shamir split --json` and
// stored by --output.
type SplitResult struct {
	Shares    []ShareOutput `json:"shares"`
	Threshold int           `json:"threshold"`
	Parts     int           `json:"parts"`
}

func NewSplitCommand() *cobra.Command {
	var (
		parts      int
		threshold  int
		useStdin   bool
		hexInput   bool
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a secret into multiple shares",
		Long: `Split a secret into multiple shares using Shamir's Secret Sharing over
GF(2^8). Any threshold number of shares reconstructs the secret; fewer
reveal nothing about it.

Each share is the secret length plus one byte (the share's x-coordinate)
and is printed in hex and base64.`,
		Example: `  # Split interactively into 5 shares, any 3 reconstruct
  shamir split --parts 5 --threshold 3

  # Split raw data from stdin
  echo -n "secret data" | shamir split --parts 3 --threshold 2 --stdin

  # Split a hex-encoded key
  echo 6465616462656566 | shamir split --parts 3 --threshold 2 --stdin --hex

  # Write shares to a passphrase-encrypted file
  shamir split --parts 5 --threshold 3 --output shares.enc`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validation.ValidateSplitParams(parts, threshold); err != nil {
				return err
			}

			outputJSON, _ := cmd.Flags().GetBool("json")

			var secret []byte
			var err error
			if useStdin {
				secret, err = readFromStdin()
			} else {
				secret, err = readSecretInteractive()
			}
			if err != nil {
				return fmt.Errorf("failed to read secret: %w", err)
			}
			// Closure so the wipe covers the decoded secret, not the
			// original input buffer only.
			defer func() { secure.Zero(secret) }()

			if hexInput {
				if err := validation.ValidateHex(string(secret)); err != nil {
					return fmt.Errorf("invalid hex secret: %w", err)
				}
				decoded, err := hex.DecodeString(string(secret))
				if err != nil {
					return fmt.Errorf("failed to decode hex secret: %w", err)
				}
				secure.Zero(secret)
				secret = decoded
			}

			shares, err := shamir.Split(secret, parts, threshold)
			if err != nil {
				return fmt.Errorf("failed to split secret: %w", err)
			}

			result := SplitResult{
				Shares:    make([]ShareOutput, len(shares)),
				Threshold: threshold,
				Parts:     parts,
			}
			for i, share := range shares {
				result.Shares[i] = ShareOutput{
					Index:  i + 1,
					Hex:    hex.EncodeToString(share),
					Base64: base64.StdEncoding.EncodeToString(share),
				}
				if m, err := mnemonic.FromEntropy(share); err == nil {
					result.Shares[i].Mnemonic = m.Words()
				}
			}

			if outputFile != "" {
				return saveEncrypted(outputFile, result)
			}
			if outputJSON {
				return json.NewEncoder(os.Stdout).Encode(result)
			}

			printSplitResult(result)
			return nil
		},
	}

	cmd.Flags().IntVarP(&parts, "parts", "n", 3, "Total number of shares to create")
	cmd.Flags().IntVarP(&threshold, "threshold", "t", 2, "Minimum shares needed to reconstruct")
	cmd.Flags().BoolVar(&useStdin, "stdin", false, "Read the secret from stdin")
	cmd.Flags().BoolVar(&hexInput, "hex", false, "Treat the input as hex-encoded bytes")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write shares to a passphrase-encrypted file")

	return cmd
}

func saveEncrypted(path string, result SplitResult) error {
	blob, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal shares: %w", err)
	}
	defer secure.Zero(blob)

	passphrase, err := readPassphrase("Passphrase for share file: ")
	if err != nil {
		return fmt.Errorf("failed to read passphrase: %w", err)
	}
	defer secure.Zero(passphrase)

	if err := storage.New(path).Save(blob, passphrase); err != nil {
		return fmt.Errorf("failed to save shares: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Encrypted share file written to %s\n", path)
	return nil
}

func printSplitResult(result SplitResult) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)

	bold.Printf("Split complete: %d shares, threshold %d\n\n", result.Parts, result.Threshold)
	for _, share := range result.Shares {
		green.Printf("Share %d\n", share.Index)
		fmt.Printf("  hex:    %s\n", share.Hex)
		fmt.Printf("  base64: %s\n", share.Base64)
		if share.Mnemonic != "" {
			fmt.Printf("  words:  %s\n", share.Mnemonic)
		}
		fmt.Println()
	}

	color.Yellow("Distribute shares separately. Any %d reconstruct the secret;", result.Threshold)
	color.Yellow("fewer reveal nothing, but combining too few gives garbage, not an error.")
}
