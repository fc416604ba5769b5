// Unit list command shows all writing units.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/meninoebom/breadcrumbs/pkg/types"
)

var unitListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all units",
	Long: `List fetches all writing units in creation order.

Example:
  breadcrumbs unit list
  breadcrumbs unit list --json`,
	Args: cobra.NoArgs,
	RunE: runUnitList,
}

func runUnitList(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	units, err := backend.ListUnits(cmd.Context())
	if err != nil {
		return fmt.Errorf("list units: %w", err)
	}

	if flagJSON {
		public := make([]types.UnitPublic, len(units))
		for i, u := range units {
			public[i] = u.Public()
		}
		return printJSON(public)
	}

	printUnitTable(units)
	return nil
}

// printUnitTable prints units in a human-readable table format.
func printUnitTable(units []*types.Unit) {
	if len(units) == 0 {
		fmt.Println("No units found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCREATED")
	for _, u := range units {
		fmt.Fprintf(w, "%d\t%s\t%s\n", u.ID, u.Name, u.CreatedAt.Format("2006-01-02 15:04"))
	}
	w.Flush()

	fmt.Printf("Total: %d unit(s)\n", len(units))
}
