package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/akyairhashvil/dealgrid/internal/columns"
	"github.com/akyairhashvil/dealgrid/internal/config"
	"github.com/akyairhashvil/dealgrid/internal/models"
	"github.com/akyairhashvil/dealgrid/internal/query"
	"github.com/akyairhashvil/dealgrid/internal/util"
)

// PDFToFile renders the grouped view as a pipeline report and returns the
// absolute path of the new file. Each group becomes a section with its own
// totals line, followed by an overall summary.
func PDFToFile(groups []query.DealGroup, cols []columns.ColumnConfig) (string, error) {
	dir := util.ExportDir(config.AppName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("deals_%s.pdf", time.Now().Format("2006-01-02_150405")))

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Pipeline Report: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(12)

	widths := columnWidths(cols)

	for gi := range groups {
		g := &groups[gi]

		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 9, fmt.Sprintf("%s (%d)", g.Name, g.Total))
		pdf.Ln(9)

		pdf.SetFont("Arial", "B", 9)
		for ci, c := range cols {
			pdf.CellFormat(widths[ci], 7, c.Title, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 9)
		if len(g.Deals) == 0 {
			pdf.Cell(0, 7, "No deals.")
			pdf.Ln(7)
		}
		for di := range g.Deals {
			for ci, c := range cols {
				pdf.CellFormat(widths[ci], 7, models.Format(&g.Deals[di], c.Key), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}

		pdf.SetFont("Arial", "I", 9)
		pdf.Cell(0, 7, fmt.Sprintf("Group total: %s", models.FormatCurrency(g.TotalValue)))
		pdf.Ln(10)
	}

	totals := query.Aggregate(query.Flatten(groups))
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 9, fmt.Sprintf("%d deals, total %s, weighted %s, avg probability %.0f%%",
		totals.Count, models.FormatCurrency(totals.ValueSum),
		models.FormatCurrency(totals.WeightedValue), totals.AvgProb))

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}
	return path, nil
}

// columnWidths spreads the printable width across the display columns in
// proportion to their configured widths.
func columnWidths(cols []columns.ColumnConfig) []float64 {
	const printable = 277.0 // A4 landscape minus margins
	total := 0
	for _, c := range cols {
		total += c.Width
	}
	widths := make([]float64, len(cols))
	if total == 0 {
		return widths
	}
	for i, c := range cols {
		widths[i] = printable * float64(c.Width) / float64(total)
	}
	return widths
}
