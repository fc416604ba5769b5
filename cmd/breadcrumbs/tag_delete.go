// Tag delete command removes a tag.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tagDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a tag",
	Long: `Delete removes a tag and its crumb associations. The crumbs themselves
are kept.

Example:
  breadcrumbs tag delete 1`,
	Args: cobra.ExactArgs(1),
	RunE: runTagDelete,
}

func runTagDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	if err := backend.DeleteTag(cmd.Context(), id); err != nil {
		return fmt.Errorf("delete tag %d: %w", id, err)
	}

	fmt.Printf("Deleted tag %d\n", id)
	return nil
}
