// Package listing implementa el patrón común de los listados CRM: filtrar la
// lista completa en memoria por texto libre y paginarla con tamaño fijo. Un
// único controlador genérico reemplaza la lógica repetida por pantalla; cada
// pantalla aporta solo su proyector de campos buscables.
package listing

import "github.com/tu-usuario/crm-pro/pkg/search"

// PageSize registros por página, fijo en todas las pantallas.
const PageSize = 5

// Controller controlador de listado para registros T. El estado filtro/página
// es derivado y vive en la petición, nunca se persiste.
type Controller[T any] struct {
	pageSize int
	fields   func(T) []string
}

// NewController construye el controlador con el proyector de campos buscables
// de la entidad.
func NewController[T any](fields func(T) []string) *Controller[T] {
	return &Controller[T]{pageSize: PageSize, fields: fields}
}

// View página ya filtrada de un listado.
type View[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
	Total      int `json:"total"` // registros que pasan el filtro
}

// Filter devuelve el subconjunto que coincide con query (subcadena, sin
// distinguir mayúsculas ni acentos) sobre los campos buscables. Query vacía
// devuelve todo. No reordena: el orden lo fija el backend.
func (c *Controller[T]) Filter(records []T, query string) []T {
	if query == "" {
		return records
	}
	out := make([]T, 0, len(records))
	for _, r := range records {
		if search.Matches(query, c.fields(r)) {
			out = append(out, r)
		}
	}
	return out
}

// TotalPages número de páginas para n registros filtrados: ceil(n/pageSize).
func (c *Controller[T]) TotalPages(n int) int {
	return (n + c.pageSize - 1) / c.pageSize
}

// Paginate recorta la página pedida del conjunto filtrado. La página se ajusta
// al rango válido: un filtro que encoge el listado no puede dejar la vista
// varada en una página vacía fuera de rango.
func (c *Controller[T]) Paginate(filtered []T, page int) View[T] {
	total := len(filtered)
	pages := c.TotalPages(total)
	if page < 1 {
		page = 1
	}
	if pages > 0 && page > pages {
		page = pages
	}

	start := (page - 1) * c.pageSize
	end := start + c.pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return View[T]{
		Items:      filtered[start:end],
		Page:       page,
		TotalPages: pages,
		Total:      total,
	}
}

// View filtra y pagina en un paso.
func (c *Controller[T]) View(records []T, query string, page int) View[T] {
	return c.Paginate(c.Filter(records, query), page)
}
