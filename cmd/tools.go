package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"mcpnum/internal/tools"

	"github.com/spf13/cobra"
)

var toolsOutputFormat string

// toolsCmd lists the numeric tool catalog without starting a server.
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the numeric tools this server exposes",
	Long: `List the numeric tool catalog (name and description) that mcpnum
registers with MCP clients. No server is started; this inspects the
catalog locally.`,
	Args: cobra.NoArgs,
	RunE: runTools,
}

func runTools(cmd *cobra.Command, args []string) error {
	catalog := tools.NewNumericTools().GetNumericTools()

	switch toolsOutputFormat {
	case "json":
		type toolInfo struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		}
		infos := make([]toolInfo, 0, len(catalog))
		for _, tool := range catalog {
			infos = append(infos, toolInfo{Name: tool.Name, Description: tool.Description})
		}
		data, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))

	case "table":
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tDESCRIPTION")
		for _, tool := range catalog {
			fmt.Fprintf(w, "%s\t%s\n", tool.Name, tool.Description)
		}
		return w.Flush()

	default:
		return fmt.Errorf("unsupported output format %q (supported: table, json)", toolsOutputFormat)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(toolsCmd)

	toolsCmd.Flags().StringVarP(&toolsOutputFormat, "output", "o", "table", "Output format (table, json)")
}
