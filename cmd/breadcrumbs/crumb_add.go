// Crumb add command creates a new markdown note.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meninoebom/breadcrumbs/pkg/types"
)

var (
	crumbAddBody       string
	crumbAddUnit       string
	crumbAddVisibility string
	crumbAddTags       []string
)

var crumbAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new crumb",
	Long: `Add creates a new crumb (markdown note).

The crumb is created with visibility "draft" by default. A unit name may be
given; the unit is created if it does not exist yet. Tags are normalized
(lowercased, whitespace folded to dashes) and deduplicated.

Example:
  breadcrumbs crumb add --body "# Idea"
  breadcrumbs crumb add --body "note" --unit morning-thoughts
  breadcrumbs crumb add --body "note" --tag "Machine Learning" --tag go
  breadcrumbs crumb add --body "note" --visibility published --json`,
	RunE: runCrumbAdd,
}

func init() {
	crumbAddCmd.Flags().StringVar(&crumbAddBody, "body", "", "markdown body for the crumb (required)")
	crumbAddCmd.Flags().StringVar(&crumbAddUnit, "unit", "", "unit name (created if missing)")
	crumbAddCmd.Flags().StringVar(&crumbAddVisibility, "visibility", "", "visibility (draft or published; default: draft)")
	crumbAddCmd.Flags().StringArrayVar(&crumbAddTags, "tag", nil, "tag name (repeatable)")
	_ = crumbAddCmd.MarkFlagRequired("body")
}

func runCrumbAdd(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	create := types.CrumbCreate{
		Body:       crumbAddBody,
		Visibility: types.Visibility(crumbAddVisibility),
	}
	if crumbAddUnit != "" {
		create.UnitName = &crumbAddUnit
	}
	for _, name := range crumbAddTags {
		create.Tags = append(create.Tags, types.TagCreate{Name: name})
	}

	crumb, err := backend.CreateCrumb(cmd.Context(), create)
	if err != nil {
		return fmt.Errorf("create crumb: %w", err)
	}

	if flagJSON {
		return printJSON(crumb.Public())
	}
	fmt.Printf("Created crumb %d (%s)\n", crumb.ID, crumb.Visibility)
	return nil
}
