// Crumb list command queries notes with optional filters.
package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/meninoebom/breadcrumbs/pkg/types"
)

var (
	crumbListVisibility string
	crumbListUnitID     int64
)

var crumbListCmd = &cobra.Command{
	Use:   "list",
	Short: "List crumbs",
	Long: `List fetches crumbs in creation order.

Use --visibility to filter by visibility and --unit-id to filter by unit.

Example:
  breadcrumbs crumb list
  breadcrumbs crumb list --visibility published
  breadcrumbs crumb list --unit-id 1
  breadcrumbs crumb list --json`,
	Args: cobra.NoArgs,
	RunE: runCrumbList,
}

func init() {
	crumbListCmd.Flags().StringVar(&crumbListVisibility, "visibility", "", "filter by visibility (draft, published)")
	crumbListCmd.Flags().Int64Var(&crumbListUnitID, "unit-id", 0, "filter by unit id")
}

func runCrumbList(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	filter := types.CrumbFilter{Visibility: types.Visibility(crumbListVisibility)}
	if crumbListUnitID > 0 {
		filter.UnitID = &crumbListUnitID
	}

	crumbs, err := backend.ListCrumbs(cmd.Context(), filter)
	if err != nil {
		return fmt.Errorf("list crumbs: %w", err)
	}

	if flagJSON {
		public := make([]types.CrumbPublic, len(crumbs))
		for i, c := range crumbs {
			public[i] = c.Public()
		}
		return printJSON(public)
	}

	printCrumbTable(crumbs)
	return nil
}

// printCrumbTable prints crumbs in a human-readable table format.
func printCrumbTable(crumbs []*types.Crumb) {
	if len(crumbs) == 0 {
		fmt.Println("No crumbs found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBODY\tVISIBILITY\tUNIT\tTAGS\tCREATED")
	for _, c := range crumbs {
		body := firstLine(c.Body)
		if len(body) > 40 {
			body = body[:37] + "..."
		}

		unitName := "-"
		if c.Unit != nil {
			unitName = c.Unit.Name
		}

		tagNames := make([]string, len(c.Tags))
		for i, t := range c.Tags {
			tagNames[i] = t.Name
		}
		tags := "-"
		if len(tagNames) > 0 {
			tags = strings.Join(tagNames, ",")
		}

		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, body, c.Visibility, unitName, tags, c.CreatedAt.Format("2006-01-02"))
	}
	w.Flush()

	fmt.Printf("Total: %d crumb(s)\n", len(crumbs))
}

// firstLine returns the first line of a markdown body.
func firstLine(body string) string {
	if i := strings.IndexByte(body, '\n'); i >= 0 {
		return body[:i]
	}
	return body
}
