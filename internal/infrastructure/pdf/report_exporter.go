// Package pdf renders the cumulative submissions report as a printable
// document.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Portal title │ Generation date                     │
//	│  ───────────────────────────────────────────────────────── │
//	│  SUMMARY: Completed submissions + cost analysis             │
//	│  ───────────────────────────────────────────────────────── │
//	│  TABLE: Manufacturer categories (name | count)              │
//	│  TABLE: Project types (name | count)                        │
//	│  TABLE: Top suppliers (rank | name | count)                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/ABShowcase/architectural-showcase-portal/internal/application/dto"
	"github.com/ABShowcase/architectural-showcase-portal/internal/application/report"
)

const pdfContentType = "application/pdf"

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReportExporter implements report.ReportExporter using Maroto v2.
type ReportExporter struct{}

// NewReportExporter builds the exporter.
func NewReportExporter() *ReportExporter { return &ReportExporter{} }

// CumulativeReport renders the report and returns it as a download artifact.
func (g *ReportExporter) CumulativeReport(
	_ context.Context,
	rep *dto.CumulativeReportDTO,
) (*report.Artifact, error) {
	now := time.Now()

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cumulative Submissions Report", true).
		WithAuthor("Architectural Showcase Portal", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(now))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(rep)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionRows("MANUFACTURER CATEGORIES", rep.ByCategory)...)
	m.AddRows(sectionRows("PROJECT TYPES", rep.ByType)...)
	m.AddRows(sectionRows("TOP SUPPLIERS", rep.TopSuppliers)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return &report.Artifact{
		Filename:    "cumulative-report-" + now.Format("2006-01-02") + ".pdf",
		ContentType: pdfContentType,
		Data:        doc.GetBytes(),
	}, nil
}

// headerRow: portal title (left) and generation date (right).
func headerRow(now time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Architectural Showcase Portal", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Cumulative Submissions Report", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generated: "+now.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// summaryRows: completed-submission count plus the cost analysis block.
func summaryRows(rep *dto.CumulativeReportDTO) []core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 8, Top: top, Color: colorGray,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Top: top})
	}

	return []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("SUMMARY", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(22).Add(
			col.New(4).Add(
				label("Completed submissions", 1),
				value(fmt.Sprintf("%d", rep.Total), 7),
			),
			col.New(4).Add(
				label("Projects with cost data", 1),
				value(fmt.Sprintf("%d", rep.CostAnalysis.ProjectsWithCost), 7),
			),
			col.New(4).Add(
				label("Total construction spend", 1),
				value("$"+rep.CostAnalysis.TotalSpent.StringFixed(2), 7),
				label("Average project cost", 13),
				value("$"+rep.CostAnalysis.AverageCost.StringFixed(2), 19),
			),
		),
	}
}

// sectionRows: a titled two-column table (name | count). Empty sections
// render a single "no data" line so the document shape stays stable.
func sectionRows(title string, entries []dto.NameCountDTO) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
			}),
		)),
	}

	if len(entries) == 0 {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("No data recorded.", props.Text{
				Size: 8, Color: colorGray, Top: 1, Left: 2,
			}),
		)))
		return rows
	}

	rows = append(rows, tableHeaderRow())
	for i, e := range entries {
		rows = append(rows, row.New(6).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", i+1),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(8).Add(text.New(
				e.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				fmt.Sprintf("%d", e.Count),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	rows = append(rows, row.New(3))
	return rows
}

// tableHeaderRow: shared column header for the name|count tables.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Name", 8, align.Left),
		h("Submissions", 3, align.Right),
	)
}
