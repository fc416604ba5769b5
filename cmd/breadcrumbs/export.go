// Export command writes the store contents as JSONL files.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the store as JSONL",
	Long: `Export writes units.jsonl, crumbs.jsonl, and tags.jsonl to the given
directory. Files are written atomically (temp file plus rename), so a
partial export never clobbers a previous one.

Example:
  breadcrumbs export --dir ./backup`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportDir, "dir", "", "output directory (required)")
	_ = exportCmd.MarkFlagRequired("dir")
}

func runExport(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	if err := backend.ExportJSONL(cmd.Context(), exportDir); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	fmt.Println("Exported to", exportDir)
	return nil
}
