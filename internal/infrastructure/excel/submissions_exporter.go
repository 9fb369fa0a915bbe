// Package excel renders the all-submissions export as an xlsx spreadsheet.
package excel

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ABShowcase/architectural-showcase-portal/internal/application/report"
)

const sheetName = "Submissions"

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var headers = []string{
	"Entrant Firm", "Entrant Email",
	"Status", "Project Name", "Project Location", "Category", "Type",
	"Contact Name", "Contact Email", "Contact Phone",
	"Total Construction Cost", "Total Gross Sq Ft", "Date of Occupancy",
	"Architect of Record", "Project Summary", "Last Updated",
}

// SubmissionsExporter implements report.SubmissionsExporter using excelize.
type SubmissionsExporter struct{}

// NewSubmissionsExporter builds the exporter.
func NewSubmissionsExporter() *SubmissionsExporter { return &SubmissionsExporter{} }

// Submissions renders one row per submission, in the order given. Rows whose
// registering account is gone leave the entrant columns blank.
func (e *SubmissionsExporter) Submissions(_ context.Context, subs []report.OwnedSubmission) (*report.Artifact, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("xlsx: create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("xlsx: drop default sheet: %w", err)
	}

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("xlsx: header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("xlsx: header cell: %w", err)
		}
	}

	for i, row := range subs {
		sub := row.Submission
		var firmName, email string
		if row.Owner != nil {
			firmName, email = row.Owner.FirmName, row.Owner.Email
		}
		values := []any{
			firmName, email,
			sub.Status, sub.ProjectName, sub.ProjectLocation, sub.ProjectCategory, sub.ProjectType,
			sub.ContactName, sub.ContactEmail, sub.ContactPhone,
			sub.TotalConstructionCost, sub.TotalGrossSqft, sub.DateOfOccupancy,
			sub.Architects[0].FirmName, sub.ProjectSummary,
			sub.UpdatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("xlsx: data cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("xlsx: data cell: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: write workbook: %w", err)
	}
	return &report.Artifact{
		Filename:    fmt.Sprintf("submissions-%s.xlsx", time.Now().Format("2006-01-02")),
		ContentType: xlsxContentType,
		Data:        buf.Bytes(),
	}, nil
}
