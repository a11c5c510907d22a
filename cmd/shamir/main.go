package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/wavect/shamir-secret-sharing/internal/cli"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "shamir",
		Short: "Threshold secret sharing over GF(2^8)",
		Long: `Shamir splits a secret into N shares such that any K of them reconstruct
it exactly, while K-1 or fewer reveal nothing (Shamir's Secret Sharing
over GF(2^8), the AES field).

A share is the secret length plus one byte and carries no framing or
checksum: keep track of which shares belong together, and remember that
combining too few or corrupted shares silently yields a wrong secret.`,
		Version: fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
	}

	rootCmd.AddCommand(
		cli.NewSplitCommand(),
		cli.NewCombineCommand(),
		cli.NewInspectCommand(),
		cli.NewGenerateCommand(),
		cli.NewDeriveCommand(),
	)

	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}
