package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tips-vision/tips-fetch/cmd/tips-fetch/commands"
	"github.com/tips-vision/tips-fetch/pkg/observability/logging"
)

var (
	// Version information (set by build flags)
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

func main() {
	// Initialize logging
	if _, err := logging.InitLoggerFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
	}

	rootCmd := &cobra.Command{
		Use:   "tips-fetch",
		Short: "Download the TIPS tokenizer and checkpoint weights",
		Long: `tips-fetch downloads the released TIPS artifacts: the shared tokenizer
and a vision/text weight pair for each of the six released checkpoints.

Running it with no arguments downloads everything into the current
directory, in a fixed order: tokenizer first, then each checkpoint's
vision weights followed by its text weights.

Common workflows:
  tips-fetch                  # Download the tokenizer and all checkpoints
  tips-fetch list             # Show the released checkpoints
  tips-fetch urls             # Print the download URLs without fetching

For detailed help on any command, use:
  tips-fetch <command> --help`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildDate),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunFetch(cmd.Context())
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("output", "o", "table", "Output format: table, json, yaml")

	// Add subcommands
	rootCmd.AddCommand(commands.NewFetchCmd())
	rootCmd.AddCommand(commands.NewListCmd())
	rootCmd.AddCommand(commands.NewURLsCmd())

	// Execute
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
