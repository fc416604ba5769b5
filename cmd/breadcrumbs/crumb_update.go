// Crumb update command edits body or visibility of a note.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meninoebom/breadcrumbs/pkg/types"
)

var (
	crumbUpdateBody       string
	crumbUpdateVisibility string
)

var crumbUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a crumb",
	Long: `Update changes the body and/or visibility of an existing crumb.
Unset flags leave the corresponding field untouched. Every successful
update refreshes the crumb's updated_at timestamp.

Example:
  breadcrumbs crumb update 1 --body "# Revised"
  breadcrumbs crumb update 1 --visibility published`,
	Args: cobra.ExactArgs(1),
	RunE: runCrumbUpdate,
}

func init() {
	crumbUpdateCmd.Flags().StringVar(&crumbUpdateBody, "body", "", "new markdown body")
	crumbUpdateCmd.Flags().StringVar(&crumbUpdateVisibility, "visibility", "", "new visibility (draft or published)")
}

func runCrumbUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	update := types.CrumbUpdate{}
	if cmd.Flags().Changed("body") {
		update.Body = &crumbUpdateBody
	}
	if cmd.Flags().Changed("visibility") {
		vis := types.Visibility(crumbUpdateVisibility)
		update.Visibility = &vis
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	crumb, err := backend.UpdateCrumb(cmd.Context(), id, update)
	if err != nil {
		return fmt.Errorf("update crumb %d: %w", id, err)
	}

	if flagJSON {
		return printJSON(crumb.Public())
	}
	fmt.Printf("Updated crumb %d (%s)\n", crumb.ID, crumb.Visibility)
	return nil
}
