// Crumb tag command attaches a tag to a note.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var crumbTagCmd = &cobra.Command{
	Use:   "tag <id> <tag-name>",
	Short: "Attach a tag to a crumb",
	Long: `Tag attaches a tag to a crumb, creating the tag if it does not exist.
The name is normalized first; attaching an already-attached tag is a no-op.

Example:
  breadcrumbs crumb tag 1 "Machine Learning"`,
	Args: cobra.ExactArgs(2),
	RunE: runCrumbTag,
}

func runCrumbTag(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	tag, err := backend.TagCrumb(cmd.Context(), id, args[1])
	if err != nil {
		return fmt.Errorf("tag crumb %d: %w", id, err)
	}

	if flagJSON {
		return printJSON(tag.Public())
	}
	fmt.Printf("Tagged crumb %d with %s (tag %d)\n", id, tag.Name, tag.ID)
	return nil
}
