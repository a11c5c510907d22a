package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wavect/shamir-secret-sharing/pkg/hdkey"
	"github.com/wavect/shamir-secret-sharing/pkg/mnemonic"
	"github.com/wavect/shamir-secret-sharing/pkg/secure"
	"github.com/wavect/shamir-secret-sharing/pkg/shamir"
)

// DeriveResult is the JSON document printed by `shamir derive --json`.
type DeriveResult struct {
	Path              string `json:"path"`
	PublicKey         string `json:"public_key"`
	ExtendedPublicKey string `json:"extended_public_key"`
	ExtendedPrivate   string `json:"extended_private_key,omitempty"`
}

func NewDeriveCommand() *cobra.Command {
	var (
		path        string
		showPrivate bool
	)

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Combine shares and derive an HD wallet key",
		Long: `Combine a share set whose secret is BIP39 entropy, rebuild the mnemonic,
and derive a BIP32 key along the given path. The combined entropy and the
derived seed are wiped from memory before exit.`,
		Example: `  # Derive the default Ethereum key from pasted shares
  shamir derive

  # Derive a Bitcoin key and print the xprv
  shamir derive --path "m/44'/0'/0'/0/0" --show-private`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("json")

			shares, err := readShares()
			if err != nil {
				return err
			}

			entropy, err := shamir.Combine(shares)
			if err != nil {
				return fmt.Errorf("failed to combine shares: %w", err)
			}
			defer secure.Zero(entropy)

			m, err := mnemonic.FromEntropy(entropy)
			if err != nil {
				return fmt.Errorf("combined secret is not valid BIP39 entropy: %w", err)
			}

			passphrase, err := readPassphrase("BIP39 passphrase (empty for none): ")
			if err != nil {
				return fmt.Errorf("failed to read passphrase: %w", err)
			}
			defer secure.Zero(passphrase)

			seed := m.Seed(string(passphrase))
			defer secure.Zero(seed)

			master, err := hdkey.NewMasterKey(seed)
			if err != nil {
				return fmt.Errorf("failed to create master key: %w", err)
			}

			derived, err := master.DerivePath(path)
			if err != nil {
				return fmt.Errorf("failed to derive key: %w", err)
			}

			result := DeriveResult{
				Path:              derived.Path(),
				PublicKey:         derived.PublicKeyHex(),
				ExtendedPublicKey: derived.ExtendedPublicKey(),
			}
			if showPrivate {
				result.ExtendedPrivate = derived.ExtendedPrivateKey()
			}

			if outputJSON {
				return json.NewEncoder(os.Stdout).Encode(result)
			}

			bold := color.New(color.Bold)
			bold.Printf("Derived key at %s\n\n", result.Path)
			fmt.Printf("  public key: %s\n", result.PublicKey)
			fmt.Printf("  xpub:       %s\n", result.ExtendedPublicKey)
			if result.ExtendedPrivate != "" {
				color.Yellow("  xprv:       %s", result.ExtendedPrivate)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "m/44'/60'/0'/0/0", "BIP32 derivation path")
	cmd.Flags().BoolVar(&showPrivate, "show-private", false, "Print the extended private key")

	return cmd
}
