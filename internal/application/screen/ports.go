package screen

// TableExporter puerto de render de una tabla ya proyectada a texto. Las
// implementaciones (CSV, XLSX, PDF) viven en infraestructura.
type TableExporter interface {
	ContentType() string
	Extension() string // con punto, ej. ".csv"
	Render(title string, headers []string, rows [][]string) ([]byte, error)
}

// ExportFile archivo de exportación listo para descargar.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
