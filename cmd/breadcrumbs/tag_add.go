// Tag add command creates a new tag.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meninoebom/breadcrumbs/pkg/types"
)

var tagAddName string

var tagAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new tag",
	Long: `Add creates a new tag. The name is normalized: lowercased, whitespace
folded to dashes, restricted to [a-z0-9-]. Creating a tag whose normalized
name already exists fails.

Example:
  breadcrumbs tag add --name "Machine Learning"`,
	RunE: runTagAdd,
}

func init() {
	tagAddCmd.Flags().StringVar(&tagAddName, "name", "", "name for the tag (required)")
	_ = tagAddCmd.MarkFlagRequired("name")
}

func runTagAdd(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	tag, err := backend.CreateTag(cmd.Context(), types.TagCreate{Name: tagAddName})
	if err != nil {
		return fmt.Errorf("create tag: %w", err)
	}

	if flagJSON {
		return printJSON(tag.Public())
	}
	fmt.Printf("Created tag %d: %s\n", tag.ID, tag.Name)
	return nil
}
