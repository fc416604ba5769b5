// Unit command group for the breadcrumbs CLI.
package main

import (
	"github.com/spf13/cobra"
)

var unitCmd = &cobra.Command{
	Use:   "unit",
	Short: "Manage writing units",
	Long:  `Unit groups commands for managing writing units (sessions that crumbs belong to).`,
}

func init() {
	unitCmd.AddCommand(unitAddCmd)
	unitCmd.AddCommand(unitListCmd)
	unitCmd.AddCommand(unitShowCmd)
	unitCmd.AddCommand(unitRenameCmd)
}
