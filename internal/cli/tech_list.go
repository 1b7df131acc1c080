package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/eorx/internal/catalog"
	"github.com/rshade/eorx/internal/report"
)

// NewTechListCmd creates the tech list command.
func NewTechListCmd() *cobra.Command {
	var category, region, output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List EOR technologies",
		Long: fmt.Sprintf(`Lists the EOR technology catalogue, optionally filtered by category and
deployment region. Filters are case-insensitive; "all" or empty matches everything.

Categories: %s`, strings.Join(catalog.Categories(), ", ")),
		Example: `  eorx tech list
  eorx tech list --category Chemical
  eorx tech list --region Canada --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries := catalog.Filter(category, region)

			switch output {
			case "table", "":
				return renderTechTable(cmd, entries)
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			default:
				return fmt.Errorf("%w: %q (want table or json)", report.ErrUnknownFormat, output)
			}
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	cmd.Flags().StringVar(&region, "region", "", "filter by deployment region")
	cmd.Flags().StringVar(&output, "output", "table", "output format: table or json")

	return cmd
}

func renderTechTable(cmd *cobra.Command, entries []catalog.Entry) error {
	if len(entries) == 0 {
		cmd.Println("No technologies match the filters.")
		return nil
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "KEY\tNAME\tCATEGORY\tMODEL\tREGIONS"); err != nil {
		return err
	}
	for _, e := range entries {
		model := "-"
		if e.Modeled() {
			model = "yes"
		} else if e.Technology != nil {
			model = "partial"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			e.Key, e.Name, e.Category, model, strings.Join(e.Regions, ", ")); err != nil {
			return err
		}
	}
	return tw.Flush()
}
