// Crumb untag command detaches a tag from a note.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var crumbUntagCmd = &cobra.Command{
	Use:   "untag <id> <tag-id>",
	Short: "Detach a tag from a crumb",
	Long: `Untag removes the association between a crumb and a tag.
The tag itself is kept.

Example:
  breadcrumbs crumb untag 1 3`,
	Args: cobra.ExactArgs(2),
	RunE: runCrumbUntag,
}

func runCrumbUntag(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	tagID, err := parseID(args[1])
	if err != nil {
		return err
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	if err := backend.UntagCrumb(cmd.Context(), id, tagID); err != nil {
		return fmt.Errorf("untag crumb %d: %w", id, err)
	}

	fmt.Printf("Untagged crumb %d from tag %d\n", id, tagID)
	return nil
}
