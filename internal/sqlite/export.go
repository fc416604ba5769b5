package sqlite

// This file implements JSONL export of the full store, one public-shape
// record per line, written with the temp-file, flush, rename pattern so
// a partial export never replaces a previous one.

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/meninoebom/breadcrumbs/pkg/types"
)

// Export file names, one per entity table.
const (
	UnitsExportFile  = "units.jsonl"
	CrumbsExportFile = "crumbs.jsonl"
	TagsExportFile   = "tags.jsonl"
)

// ExportJSONL writes every unit, crumb, and tag to JSONL files under
// dir, creating it if needed. Crumb records nest their resolved unit and
// tags, matching the public projection.
func (b *Backend) ExportJSONL(ctx context.Context, dir string) error {
	if _, err := b.ready(); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}

	units, err := b.ListUnits(ctx)
	if err != nil {
		return err
	}
	unitRecords := make([]any, 0, len(units))
	for _, u := range units {
		unitRecords = append(unitRecords, u.Public())
	}
	if err := writeJSONL(filepath.Join(dir, UnitsExportFile), unitRecords); err != nil {
		return err
	}

	crumbs, err := b.ListCrumbs(ctx, types.CrumbFilter{})
	if err != nil {
		return err
	}
	crumbRecords := make([]any, 0, len(crumbs))
	for _, c := range crumbs {
		crumbRecords = append(crumbRecords, c.Public())
	}
	if err := writeJSONL(filepath.Join(dir, CrumbsExportFile), crumbRecords); err != nil {
		return err
	}

	tags, err := b.ListTags(ctx)
	if err != nil {
		return err
	}
	tagRecords := make([]any, 0, len(tags))
	for _, t := range tags {
		tagRecords = append(tagRecords, t.Public())
	}
	if err := writeJSONL(filepath.Join(dir, TagsExportFile), tagRecords); err != nil {
		return err
	}

	b.log.Info("store exported", "dir", dir,
		"units", len(units), "crumbs", len(crumbs), "tags", len(tags))
	return nil
}

// writeJSONL atomically writes records to path, one JSON object per line.
func writeJSONL(path string, records []any) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	enc := json.NewEncoder(w)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("encoding record: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming export: %w", err)
	}
	return nil
}
