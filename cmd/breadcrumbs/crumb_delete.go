// Crumb delete command removes a note.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var crumbDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a crumb",
	Long: `Delete removes a crumb. Its tag associations are removed with it;
the tags themselves remain.

Example:
  breadcrumbs crumb delete 1`,
	Args: cobra.ExactArgs(1),
	RunE: runCrumbDelete,
}

func runCrumbDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	if err := backend.DeleteCrumb(cmd.Context(), id); err != nil {
		return fmt.Errorf("delete crumb %d: %w", id, err)
	}

	fmt.Printf("Deleted crumb %d\n", id)
	return nil
}
