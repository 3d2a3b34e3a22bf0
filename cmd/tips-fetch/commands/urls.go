package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tips-vision/tips-fetch/pkg/catalog"
)

// NewURLsCmd creates the urls command
func NewURLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "urls",
		Short: "Print the download URLs in fetch order",
		Long: `Print every artifact URL in the order it would be fetched, without
downloading anything: the tokenizer first, then each checkpoint's vision
weights followed by its text weights.

Examples:
  # Print the full download plan
  tips-fetch urls`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, u := range catalog.DownloadPlan() {
				fmt.Fprintln(cmd.OutOrStdout(), u)
			}
			return nil
		},
	}
}
