// Crumb command group for the breadcrumbs CLI.
package main

import (
	"github.com/spf13/cobra"
)

var crumbCmd = &cobra.Command{
	Use:   "crumb",
	Short: "Manage crumbs",
	Long:  `Crumb groups commands for managing crumbs (markdown notes).`,
}

func init() {
	crumbCmd.AddCommand(crumbAddCmd)
	crumbCmd.AddCommand(crumbGetCmd)
	crumbCmd.AddCommand(crumbListCmd)
	crumbCmd.AddCommand(crumbUpdateCmd)
	crumbCmd.AddCommand(crumbDeleteCmd)
	crumbCmd.AddCommand(crumbTagCmd)
	crumbCmd.AddCommand(crumbUntagCmd)
}
