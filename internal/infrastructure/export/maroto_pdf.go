package export

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// PDFExporter renderiza la tabla como PDF A4 con Maroto v2: título, línea
// separadora, fila de encabezados en negrita y una fila por registro.
type PDFExporter struct{}

// NewPDFExporter construye el exportador PDF.
func NewPDFExporter() *PDFExporter { return &PDFExporter{} }

func (e *PDFExporter) ContentType() string { return "application/pdf" }
func (e *PDFExporter) Extension() string   { return ".pdf" }

// Render genera el documento y devuelve sus bytes.
func (e *PDFExporter) Render(title string, headers []string, rows [][]string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(title))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(headerRow(headers))
	for _, r := range rows {
		m.AddRows(dataRow(r, len(headers)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func titleRow(title string) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
	)
}

func headerRow(headers []string) core.Row {
	widths := colWidths(len(headers))
	cols := make([]core.Col, len(headers))
	for i, h := range headers {
		cols[i] = col.New(widths[i]).Add(
			text.New(h, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}),
		)
	}
	return row.New(7).Add(cols...)
}

func dataRow(values []string, n int) core.Row {
	widths := colWidths(n)
	cols := make([]core.Col, 0, n)
	for i := 0; i < n; i++ {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		cols = append(cols, col.New(widths[i]).Add(
			text.New(v, props.Text{Size: 7, Color: colorGray}),
		))
	}
	return row.New(6).Add(cols...)
}

// colWidths reparte las 12 columnas de la grilla de Maroto entre n columnas de
// tabla; las primeras absorben el resto de la división.
func colWidths(n int) []int {
	if n <= 0 {
		return nil
	}
	if n > 12 {
		n = 12
	}
	base := 12 / n
	rem := 12 % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < rem {
			widths[i]++
		}
	}
	return widths
}
