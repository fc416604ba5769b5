// Tag list command shows all tags.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/meninoebom/breadcrumbs/pkg/types"
)

var tagListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tags",
	Long: `List fetches all tags in name order.

Example:
  breadcrumbs tag list
  breadcrumbs tag list --json`,
	Args: cobra.NoArgs,
	RunE: runTagList,
}

func runTagList(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	tags, err := backend.ListTags(cmd.Context())
	if err != nil {
		return fmt.Errorf("list tags: %w", err)
	}

	if flagJSON {
		public := make([]types.TagPublic, len(tags))
		for i, t := range tags {
			public[i] = t.Public()
		}
		return printJSON(public)
	}

	printTagTable(tags)
	return nil
}

// printTagTable prints tags in a human-readable table format.
func printTagTable(tags []*types.Tag) {
	if len(tags) == 0 {
		fmt.Println("No tags found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDISPLAY")
	for _, t := range tags {
		fmt.Fprintf(w, "%d\t%s\t%s\n", t.ID, t.Name, t.DisplayName())
	}
	w.Flush()

	fmt.Printf("Total: %d tag(s)\n", len(tags))
}
