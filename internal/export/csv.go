// Package export renders the current grid view to files on disk.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/dealgrid/internal/columns"
	"github.com/akyairhashvil/dealgrid/internal/config"
	"github.com/akyairhashvil/dealgrid/internal/models"
	"github.com/akyairhashvil/dealgrid/internal/query"
	"github.com/akyairhashvil/dealgrid/internal/util"
)

// WriteCSV renders the grouped view as CSV. The column set and order follow
// the grid's display columns, prefixed with a Group column so the grouping
// survives the flat file format.
func WriteCSV(w io.Writer, groups []query.DealGroup, cols []columns.ColumnConfig) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(cols)+1)
	header = append(header, "Group")
	for _, c := range cols {
		header = append(header, c.Title)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for gi := range groups {
		g := &groups[gi]
		for di := range g.Deals {
			record := make([]string, 0, len(cols)+1)
			record = append(record, g.Name)
			for _, c := range cols {
				record = append(record, models.Format(&g.Deals[di], c.Key))
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSVToFile writes the view into the export directory and returns the
// absolute path of the new file.
func CSVToFile(groups []query.DealGroup, cols []columns.ColumnConfig) (string, error) {
	dir := util.ExportDir(config.AppName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("deals_%s.csv", time.Now().Format("2006-01-02_150405")))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	if err := WriteCSV(f, groups, cols); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}
