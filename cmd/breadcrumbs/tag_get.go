// Tag get command displays a tag and its crumbs.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tagGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a tag and its crumbs",
	Long: `Get fetches a single tag by id, including the crumbs it is attached to.

Example:
  breadcrumbs tag get 1
  breadcrumbs tag get 1 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runTagGet,
}

func runTagGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	tag, err := backend.GetTag(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("get tag %d: %w", id, err)
	}

	if flagJSON {
		return printJSON(tag.Public())
	}

	fmt.Printf("Tag %d: %s (%s)\n", tag.ID, tag.Name, tag.DisplayName())
	if len(tag.Crumbs) == 0 {
		fmt.Println("No crumbs with this tag.")
		return nil
	}
	printCrumbTable(tag.Crumbs)
	return nil
}
