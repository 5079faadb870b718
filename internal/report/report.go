package report

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"motor_seeder/internal/service"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat is returned for a report path that is neither .xlsx nor .pdf.
var ErrUnsupportedFormat = errors.New("report: unsupported format, use .xlsx or .pdf")

// Write renders the run report to path, picking the format from the extension.
func Write(path string, r *service.Report) error {
	var (
		b   []byte
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		b, err = BuildXLSX(r)
	case ".pdf":
		b, err = BuildPDF(r)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write report %q: %w", path, err)
	}
	return nil
}

type stageRow struct {
	stage string
	out   service.Outcome
}

func stages(r *service.Report) []stageRow {
	return []stageRow{
		{"Motor models", r.Models},
		{"Motor instances", r.Instances},
		{"Parameter mappings", r.Mappings},
		{"Operation modes", r.Modes},
		{"Baseline learning", r.Learning},
	}
}

// BuildXLSX renders the report as a workbook with summary, verification and diagnosis sheets.
func BuildXLSX(r *service.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	summarySheet := "summary"
	verifySheet := "verification"
	diagSheet := "diagnosis"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(verifySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(diagSheet); err != nil {
		return nil, err
	}

	_ = f.SetCellValue(summarySheet, "A1", "Motor Demo Data Seeding")
	_ = f.SetCellValue(summarySheet, "A3", "Started")
	_ = f.SetCellValue(summarySheet, "B3", r.StartedAt.Format(time.RFC3339))
	_ = f.SetCellValue(summarySheet, "A4", "Finished")
	_ = f.SetCellValue(summarySheet, "B4", r.FinishedAt.Format(time.RFC3339))
	_ = f.SetCellValue(summarySheet, "A5", "Reached")
	_ = f.SetCellValue(summarySheet, "B5", r.Reached.String())
	_ = f.SetCellValue(summarySheet, "A6", "Devices")
	_ = f.SetCellValue(summarySheet, "B6", r.Devices)

	header := []string{"Stage", "Created", "Duplicates", "Failed", "Discovered", "Skipped"}
	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 8)
		_ = f.SetCellValue(summarySheet, cell, h)
	}
	for i, s := range stages(r) {
		row := i + 9
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), s.stage)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), s.out.Created)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("C%d", row), s.out.Duplicates)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("D%d", row), s.out.Failed)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("E%d", row), s.out.Discovered)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("F%d", row), s.out.Skipped)
	}
	for i, w := range r.Warnings {
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", 15+i), "Warning")
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", 15+i), w)
	}

	_ = f.SetCellValue(verifySheet, "A1", "Instance")
	_ = f.SetCellValue(verifySheet, "B1", "Model")
	_ = f.SetCellValue(verifySheet, "C1", "Mappings")
	_ = f.SetCellValue(verifySheet, "D1", "Modes")
	_ = f.SetCellValue(verifySheet, "E1", "Baselines")
	_ = f.SetCellValue(verifySheet, "F1", "Error")
	for i, v := range r.Verification {
		row := i + 2
		_ = f.SetCellValue(verifySheet, fmt.Sprintf("A%d", row), v.Instance)
		_ = f.SetCellValue(verifySheet, fmt.Sprintf("B%d", row), v.ModelName)
		_ = f.SetCellValue(verifySheet, fmt.Sprintf("C%d", row), v.Mappings)
		_ = f.SetCellValue(verifySheet, fmt.Sprintf("D%d", row), v.Modes)
		_ = f.SetCellValue(verifySheet, fmt.Sprintf("E%d", row), v.Baselines)
		_ = f.SetCellValue(verifySheet, fmt.Sprintf("F%d", row), v.Error)
	}

	_ = f.SetCellValue(diagSheet, "A1", "Instance")
	_ = f.SetCellValue(diagSheet, "B1", "Health Score")
	_ = f.SetCellValue(diagSheet, "C1", "Error")
	for i, d := range r.Diagnosis {
		row := i + 2
		_ = f.SetCellValue(diagSheet, fmt.Sprintf("A%d", row), d.Instance)
		if d.HealthScore != nil {
			_ = f.SetCellValue(diagSheet, fmt.Sprintf("B%d", row), *d.HealthScore)
		} else {
			_ = f.SetCellValue(diagSheet, fmt.Sprintf("B%d", row), d.Score())
		}
		_ = f.SetCellValue(diagSheet, fmt.Sprintf("C%d", row), d.Error)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildPDF renders a one-document summary of the run.
func BuildPDF(r *service.Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Motor Demo Data Seeding")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Started: %s", r.StartedAt.Format(time.RFC3339)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Finished: %s", r.FinishedAt.Format(time.RFC3339)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Reached: %s", r.Reached))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Devices: %d", r.Devices))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	for _, h := range []string{"Stage", "Created", "Duplicates", "Failed", "Discovered", "Skipped"} {
		w := 25.0
		if h == "Stage" {
			w = 45
		}
		pdf.CellFormat(w, 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, s := range stages(r) {
		pdf.CellFormat(45, 6, s.stage, "1", 0, "L", false, 0, "")
		for _, n := range []int{s.out.Created, s.out.Duplicates, s.out.Failed, s.out.Discovered, s.out.Skipped} {
			pdf.CellFormat(25, 6, fmt.Sprintf("%d", n), "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(60, 6, "Instance", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 6, "Model", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 6, "Mappings", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 6, "Modes", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 6, "Baselines", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, v := range r.Verification {
		pdf.CellFormat(60, 6, v.Instance, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, v.ModelName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", v.Mappings), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", v.Modes), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", v.Baselines), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	for _, d := range r.Diagnosis {
		line := fmt.Sprintf("%s: health score %s", d.Instance, d.Score())
		if d.Error != "" {
			line = fmt.Sprintf("%s: diagnosis failed (%s)", d.Instance, d.Error)
		}
		pdf.Cell(0, 6, line)
		pdf.Ln(5)
	}
	for _, w := range r.Warnings {
		pdf.Cell(0, 6, "Warning: "+w)
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
