// Package screen define las seis pantallas CRM como configuración sobre un
// único caso de uso genérico: gateway + campos buscables + proyección de
// columnas + lookups de relaciones. Sin actualizaciones optimistas: después de
// cada mutación el caller recarga la vista completa desde el backend.
package screen

import (
	"context"
	"fmt"

	"github.com/tu-usuario/crm-pro/internal/application/listing"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/gateway"
	"github.com/tu-usuario/crm-pro/pkg/logger"
)

// Column proyección de una columna de tabla/exportación.
type Column[T any] struct {
	Header string
	Value  func(rec T, res *Resolver) string
}

// Config configuración declarativa de una pantalla.
type Config[T any, D any] struct {
	Name    string // nombre del recurso y de los archivos exportados ("leads")
	Title   string // título del PDF ("Leads Report")
	Gateway gateway.CRUD[T, D]
	Search  func(rec T, res *Resolver) []string
	Columns []Column[T]
	// Lookups carga las listas relacionadas que la pantalla necesita para
	// selectores y resolución de nombres; nil si no referencia a nadie.
	Lookups func(ctx context.Context, token string) (*Resolver, error)
}

// UseCase caso de uso genérico de una pantalla de listado CRM.
type UseCase[T any, D any] struct {
	cfg       Config[T, D]
	exporters map[string]TableExporter
	log       *logger.Logger
}

// New construye el caso de uso de una pantalla.
func New[T any, D any](cfg Config[T, D], exporters map[string]TableExporter, log *logger.Logger) *UseCase[T, D] {
	return &UseCase[T, D]{cfg: cfg, exporters: exporters, log: log}
}

// Name nombre del recurso de la pantalla.
func (u *UseCase[T, D]) Name() string { return u.cfg.Name }

// View vista de la pantalla: página filtrada + opciones de selectores.
type View[T any] struct {
	listing.View[T]
	Query   string              `json:"query"`
	Options map[string][]Option `json:"options,omitempty"`
}

// View carga la lista y los lookups, filtra y pagina.
func (u *UseCase[T, D]) View(ctx context.Context, token, query string, page int) (*View[T], error) {
	res, err := u.lookups(ctx, token)
	if err != nil {
		return nil, err
	}
	records, err := u.cfg.Gateway.List(ctx, token)
	if err != nil {
		u.log.Error().Err(err).Str("screen", u.cfg.Name).Msg("cargar listado")
		return nil, err
	}

	ctrl := listing.NewController(func(r T) []string { return u.cfg.Search(r, res) })
	return &View[T]{
		View:    ctrl.View(records, query, page),
		Query:   query,
		Options: res.Options(),
	}, nil
}

// Create da de alta un registro; el owner lo estampa el gateway.
func (u *UseCase[T, D]) Create(ctx context.Context, token, ownerID string, draft D) (*T, error) {
	if ownerID == "" {
		return nil, domain.ErrUnauthorized
	}
	return u.cfg.Gateway.Create(ctx, token, ownerID, draft)
}

// Update modifica un registro existente.
func (u *UseCase[T, D]) Update(ctx context.Context, token, ownerID, id string, draft D) (*T, error) {
	if ownerID == "" {
		return nil, domain.ErrUnauthorized
	}
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return u.cfg.Gateway.Update(ctx, token, ownerID, id, draft)
}

// Delete borra un registro. domain.ErrConflict indica integridad referencial:
// el caller debe avisar "borre primero los dependientes", no un error genérico.
func (u *UseCase[T, D]) Delete(ctx context.Context, token, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return u.cfg.Gateway.Delete(ctx, token, id)
}

// Export exporta el conjunto FILTRADO (nunca la página) en el formato pedido,
// con la misma proyección de columnas y el mismo orden que la tabla.
func (u *UseCase[T, D]) Export(ctx context.Context, token, query, format string) (*ExportFile, error) {
	exp, ok := u.exporters[format]
	if !ok {
		return nil, fmt.Errorf("%w: formato de exportación %q", domain.ErrInvalidInput, format)
	}

	res, err := u.lookups(ctx, token)
	if err != nil {
		return nil, err
	}
	records, err := u.cfg.Gateway.List(ctx, token)
	if err != nil {
		return nil, err
	}

	ctrl := listing.NewController(func(r T) []string { return u.cfg.Search(r, res) })
	filtered := ctrl.Filter(records, query)

	headers := make([]string, len(u.cfg.Columns))
	for i, col := range u.cfg.Columns {
		headers[i] = col.Header
	}
	rows := make([][]string, len(filtered))
	for i, rec := range filtered {
		row := make([]string, len(u.cfg.Columns))
		for j, col := range u.cfg.Columns {
			row[j] = col.Value(rec, res)
		}
		rows[i] = row
	}

	content, err := exp.Render(u.cfg.Title, headers, rows)
	if err != nil {
		return nil, fmt.Errorf("exportar %s: %w", u.cfg.Name, err)
	}
	return &ExportFile{
		Filename:    u.cfg.Name + exp.Extension(),
		ContentType: exp.ContentType(),
		Content:     content,
	}, nil
}

func (u *UseCase[T, D]) lookups(ctx context.Context, token string) (*Resolver, error) {
	if u.cfg.Lookups == nil {
		return NewResolver(), nil
	}
	res, err := u.cfg.Lookups(ctx, token)
	if err != nil {
		u.log.Error().Err(err).Str("screen", u.cfg.Name).Msg("cargar lookups")
		return nil, err
	}
	return res, nil
}
