// Package export implementa los tres renderizadores de exportación de tablas
// (CSV, XLSX, PDF). Operan sobre la proyección de columnas que entrega el caso
// de uso de pantalla, de modo que los tres formatos comparten contenido y
// orden de campos.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSVExporter renderiza la tabla como texto CSV (RFC 4180).
type CSVExporter struct{}

// NewCSVExporter construye el exportador CSV.
func NewCSVExporter() *CSVExporter { return &CSVExporter{} }

func (e *CSVExporter) ContentType() string { return "text/csv" }
func (e *CSVExporter) Extension() string   { return ".csv" }

// Render escribe encabezados + filas. El título no aplica en CSV.
func (e *CSVExporter) Render(_ string, headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(headers); err != nil {
		return nil, fmt.Errorf("csv: encabezados: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("csv: fila: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: finalizar: %w", err)
	}
	return buf.Bytes(), nil
}
