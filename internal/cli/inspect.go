package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wavect/shamir-secret-sharing/pkg/shamir"
)

// InspectResult describes a share set without combining it.
type InspectResult struct {
	Count       int    `json:"count"`
	ShareLength int    `json:"share_length"`
	SecretBytes int    `json:"secret_bytes"`
	XCoords     []int  `json:"x_coordinates"`
	Valid       bool   `json:"valid"`
	Error       string `json:"error,omitempty"`
}

func NewInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Check a share set without reconstructing the secret",
		Long: `Inspect validates the structure of a share set: consistent lengths,
distinct nonzero x-coordinates, counts within range. It never performs
the reconstruction itself, so the secret is not materialized.

Note that structural validity says nothing about having enough shares:
the scheme cannot tell a below-threshold set from a complete one.`,
		Example: `  printf '%s\n%s\n' "$SHARE1" "$SHARE2" | shamir inspect`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("json")

			shares, err := readShares()
			if err != nil {
				return err
			}

			result := InspectResult{
				Count:       len(shares),
				ShareLength: len(shares[0]),
				SecretBytes: len(shares[0]) - 1,
				XCoords:     make([]int, len(shares)),
			}
			for i, share := range shares {
				result.XCoords[i] = int(share[len(share)-1])
			}

			if err := shamir.ValidateShares(shares); err != nil {
				result.Valid = false
				result.Error = err.Error()
			} else {
				result.Valid = true
			}

			if outputJSON {
				return json.NewEncoder(os.Stdout).Encode(result)
			}

			fmt.Printf("Shares:        %d\n", result.Count)
			fmt.Printf("Share length:  %d bytes\n", result.ShareLength)
			fmt.Printf("Secret length: %d bytes\n", result.SecretBytes)
			fmt.Printf("X-coordinates: %v\n", result.XCoords)
			if result.Valid {
				color.Green("Share set is structurally valid")
				return nil
			}
			color.Red("Share set is invalid: %s", result.Error)
			return fmt.Errorf("invalid share set")
		},
	}

	return cmd
}
