package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tips-vision/tips-fetch/pkg/catalog"
	"github.com/tips-vision/tips-fetch/pkg/cli"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the released checkpoints",
		Long: `List the released checkpoints with their vision encoder configuration.

Examples:
  # List checkpoints as a table
  tips-fetch list

  # List with JSON output
  tips-fetch list --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFormat := cmd.Root().Flag("output").Value.String()

			switch outputFormat {
			case "json":
				return cli.PrintJSON(catalog.Checkpoints)
			case "yaml":
				return cli.PrintYAML(map[string][]catalog.Checkpoint{"checkpoints": catalog.Checkpoints})
			default:
				headers, rows := checkpointTable(catalog.Checkpoints)
				cli.PrintTable(headers, rows)
				return nil
			}
		},
	}
}

// checkpointTable flattens the catalog into table headers and rows.
func checkpointTable(checkpoints []catalog.Checkpoint) ([]string, [][]string) {
	headers := []string{"Name", "Arch", "Embed", "Depth", "Heads", "Resolution", "Distilled"}

	rows := make([][]string, 0, len(checkpoints))
	for _, c := range checkpoints {
		distilled := "no"
		if c.Distilled {
			distilled = "yes"
		}
		rows = append(rows, []string{
			c.Name,
			c.Arch,
			fmt.Sprintf("%d", c.EmbedDim),
			fmt.Sprintf("%d", c.Depth),
			fmt.Sprintf("%d", c.Heads),
			c.Resolution,
			distilled,
		})
	}

	return headers, rows
}
