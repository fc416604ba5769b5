// Unit add command creates a new writing unit.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meninoebom/breadcrumbs/pkg/types"
)

var unitAddName string

var unitAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new unit",
	Long: `Add creates a new writing unit with the given name.

Example:
  breadcrumbs unit add --name "morning-thoughts"
  breadcrumbs unit add --name "sprint planning" --json`,
	RunE: runUnitAdd,
}

func init() {
	unitAddCmd.Flags().StringVar(&unitAddName, "name", "", "name for the unit (required)")
	_ = unitAddCmd.MarkFlagRequired("name")
}

func runUnitAdd(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	unit, err := backend.CreateUnit(cmd.Context(), types.UnitCreate{Name: unitAddName})
	if err != nil {
		return fmt.Errorf("create unit: %w", err)
	}

	if flagJSON {
		return printJSON(unit.Public())
	}
	fmt.Printf("Created unit %d: %s\n", unit.ID, unit.Name)
	return nil
}
