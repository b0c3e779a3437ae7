package export

import "github.com/tu-usuario/crm-pro/internal/application/screen"

// Formatos de exportación disponibles por pantalla.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// NewExporters registra los tres renderizadores bajo su formato.
func NewExporters() map[string]screen.TableExporter {
	return map[string]screen.TableExporter{
		FormatCSV:  NewCSVExporter(),
		FormatXLSX: NewExcelExporter(),
		FormatPDF:  NewPDFExporter(),
	}
}
