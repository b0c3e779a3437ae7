package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExcelExporter renderiza la tabla como libro XLSX de una hoja.
type ExcelExporter struct{}

// NewExcelExporter construye el exportador XLSX.
func NewExcelExporter() *ExcelExporter { return &ExcelExporter{} }

func (e *ExcelExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
func (e *ExcelExporter) Extension() string { return ".xlsx" }

// Render arma la hoja: fila 1 encabezados, después una fila por registro.
func (e *ExcelExporter) Render(title string, headers []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	if title != "" {
		// Los nombres de hoja tienen límite de 31 caracteres en el formato.
		name := title
		if len(name) > 31 {
			name = name[:31]
		}
		if err := f.SetSheetName(sheet, name); err != nil {
			return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
		}
		return e.write(f, name, headers, rows)
	}
	return e.write(f, sheet, headers, rows)
}

func (e *ExcelExporter) write(f *excelize.File, sheet string, headers []string, rows [][]string) ([]byte, error) {
	if err := setRow(f, sheet, 1, headers); err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err := setRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("xlsx: celda de fila %d: %w", rowNum, err)
	}
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("xlsx: fila %d: %w", rowNum, err)
	}
	return nil
}
