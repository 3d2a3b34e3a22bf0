package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tips-vision/tips-fetch/pkg/catalog"
	"github.com/tips-vision/tips-fetch/pkg/cli"
	"github.com/tips-vision/tips-fetch/pkg/fetch"
)

// RunFetch downloads the full fixed artifact set into the working directory.
func RunFetch(ctx context.Context) error {
	plan := catalog.DownloadPlan()
	cli.Info(fmt.Sprintf("Fetching %d artifacts (%d checkpoints + tokenizer)", len(plan), len(catalog.Checkpoints)))

	fetcher := fetch.New()
	if err := fetcher.FetchAll(ctx, plan); err != nil {
		return err
	}

	cli.Success(fmt.Sprintf("Downloaded all %d artifacts", len(plan)))
	return nil
}

// NewFetchCmd creates the fetch command
func NewFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Download the tokenizer and all checkpoint weights",
		Long: `Download the shared tokenizer and the vision/text weight pair for every
released checkpoint into the current directory.

Each file is named by the final path segment of its URL (for example
tokenizer.model, tips_oss_g14_lowres_vision.npz). Existing files are
overwritten. Downloads are strictly sequential; a failed download is
logged and the remaining downloads still run.

Examples:
  # Download everything (same as running tips-fetch with no arguments)
  tips-fetch fetch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunFetch(cmd.Context())
		},
	}
}
