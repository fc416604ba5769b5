// Unit rename command changes a unit's name.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var unitRenameCmd = &cobra.Command{
	Use:   "rename <id> <new-name>",
	Short: "Rename a unit",
	Long: `Rename changes the name of an existing unit.

Example:
  breadcrumbs unit rename 1 "evening-thoughts"`,
	Args: cobra.ExactArgs(2),
	RunE: runUnitRename,
}

func runUnitRename(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	unit, err := backend.RenameUnit(cmd.Context(), id, args[1])
	if err != nil {
		return fmt.Errorf("rename unit %d: %w", id, err)
	}

	if flagJSON {
		return printJSON(unit.Public())
	}
	fmt.Printf("Renamed unit %d to %s\n", unit.ID, unit.Name)
	return nil
}
