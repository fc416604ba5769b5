// Crumb get command displays a single note.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var crumbGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a crumb",
	Long: `Get fetches a single crumb by id, including its unit and tags.

Example:
  breadcrumbs crumb get 1
  breadcrumbs crumb get 1 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runCrumbGet,
}

func runCrumbGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	crumb, err := backend.GetCrumb(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("get crumb %d: %w", id, err)
	}

	if flagJSON {
		return printJSON(crumb.Public())
	}

	fmt.Printf("Crumb %d (%s, created %s)\n", crumb.ID, crumb.Visibility, crumb.CreatedAt.Format("2006-01-02 15:04"))
	if crumb.Unit != nil {
		fmt.Printf("Unit: %s\n", crumb.Unit.Name)
	}
	if len(crumb.Tags) > 0 {
		fmt.Print("Tags:")
		for _, t := range crumb.Tags {
			fmt.Printf(" %s", t.Name)
		}
		fmt.Println()
	}
	fmt.Println()
	fmt.Println(crumb.Body)
	return nil
}
