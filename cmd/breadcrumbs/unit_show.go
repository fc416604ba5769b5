// Unit show command displays a unit and its crumbs.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var unitShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a unit and its crumbs",
	Long: `Show fetches a single unit by id, including the crumbs written in it.

Example:
  breadcrumbs unit show 1
  breadcrumbs unit show 1 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runUnitShow,
}

func runUnitShow(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	unit, err := backend.GetUnit(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("get unit %d: %w", id, err)
	}

	if flagJSON {
		return printJSON(unit.Public())
	}

	fmt.Printf("Unit %d: %s (created %s)\n", unit.ID, unit.Name, unit.CreatedAt.Format("2006-01-02 15:04"))
	if len(unit.Crumbs) == 0 {
		fmt.Println("No crumbs in this unit.")
		return nil
	}
	printCrumbTable(unit.Crumbs)
	return nil
}
