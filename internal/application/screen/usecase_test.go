package screen_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-pro/internal/application/screen"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeGateway gateway CRUD en memoria para tests de pantalla.
type fakeGateway[T any, D any] struct {
	items     []T
	created   []D
	deleted   []string
	deleteErr error
}

func (g *fakeGateway[T, D]) List(_ context.Context, _ string) ([]T, error) {
	return g.items, nil
}

func (g *fakeGateway[T, D]) Create(_ context.Context, _, _ string, draft D) (*T, error) {
	g.created = append(g.created, draft)
	var out T
	return &out, nil
}

func (g *fakeGateway[T, D]) Update(_ context.Context, _, _, _ string, draft D) (*T, error) {
	var out T
	return &out, nil
}

func (g *fakeGateway[T, D]) Delete(_ context.Context, _, id string) error {
	if g.deleteErr != nil {
		return g.deleteErr
	}
	g.deleted = append(g.deleted, id)
	return nil
}

// fakeExporter captura la proyección que recibe para inspeccionarla.
type fakeExporter struct {
	ext     string
	title   string
	headers []string
	rows    [][]string
}

func (e *fakeExporter) ContentType() string { return "application/test" }
func (e *fakeExporter) Extension() string   { return e.ext }
func (e *fakeExporter) Render(title string, headers []string, rows [][]string) ([]byte, error) {
	e.title, e.headers, e.rows = title, headers, rows
	return []byte("contenido"), nil
}

func leads(n int) []entity.Lead {
	out := make([]entity.Lead, n)
	for i := range out {
		out[i] = entity.Lead{
			ID:        fmt.Sprintf("%d", i+1),
			FirstName: fmt.Sprintf("Lead%02d", i+1),
			LastName:  "Demo",
			Email:     fmt.Sprintf("lead%02d@acme.com", i+1),
			Status:    entity.LeadStatusNew,
		}
	}
	return out
}

func testDeps(exp map[string]screen.TableExporter) screen.Deps {
	return screen.Deps{
		Leads:         &fakeGateway[entity.Lead, entity.LeadDraft]{},
		Contacts:      &fakeGateway[entity.Contact, entity.ContactDraft]{},
		Accounts:      &fakeGateway[entity.Account, entity.AccountDraft]{},
		Opportunities: &fakeGateway[entity.Opportunity, entity.OpportunityDraft]{},
		Activities:    &fakeGateway[entity.Activity, entity.ActivityDraft]{},
		Notes:         &fakeGateway[entity.Note, entity.NoteDraft]{},
		Exporters:     exp,
		Log:           logger.Nop(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Vista: filtro + paginación
// ──────────────────────────────────────────────────────────────────────────────

func TestView_FiltraYPagina(t *testing.T) {
	d := testDeps(nil)
	d.Leads = &fakeGateway[entity.Lead, entity.LeadDraft]{items: leads(12)}
	uc := screen.NewLeadScreen(d)

	v, err := uc.View(context.Background(), "tok", "", 3)
	require.NoError(t, err)

	assert.Equal(t, 12, v.Total)
	assert.Equal(t, 3, v.TotalPages)
	assert.Len(t, v.Items, 2, "la última página lleva el resto")
	assert.Equal(t, "", v.Query)
}

func TestView_FiltroPorEmail(t *testing.T) {
	d := testDeps(nil)
	d.Leads = &fakeGateway[entity.Lead, entity.LeadDraft]{items: leads(12)}
	uc := screen.NewLeadScreen(d)

	v, err := uc.View(context.Background(), "tok", "lead03@", 1)
	require.NoError(t, err)

	require.Equal(t, 1, v.Total)
	assert.Equal(t, "Lead03", v.Items[0].FirstName)
	assert.Equal(t, "lead03@", v.Query)
}

func TestView_PantallaConLookups_ExponeOpciones(t *testing.T) {
	d := testDeps(nil)
	d.Leads = &fakeGateway[entity.Lead, entity.LeadDraft]{items: leads(2)}
	d.Accounts = &fakeGateway[entity.Account, entity.AccountDraft]{items: []entity.Account{
		{ID: "a1", Name: "Acme"},
	}}
	uc := screen.NewContactScreen(d)

	v, err := uc.View(context.Background(), "tok", "", 1)
	require.NoError(t, err)

	require.Contains(t, v.Options, "leads")
	require.Contains(t, v.Options, "accounts")
	assert.Equal(t, "Acme", v.Options["accounts"][0].Label)
	assert.Equal(t, "Lead01 Demo", v.Options["leads"][0].Label)
}

// ──────────────────────────────────────────────────────────────────────────────
// Badge de relación polimórfica
// ──────────────────────────────────────────────────────────────────────────────

func TestNoteScreen_BadgeDeRelacion(t *testing.T) {
	d := testDeps(map[string]screen.TableExporter{"csv": &fakeExporter{ext: ".csv"}})
	d.Accounts = &fakeGateway[entity.Account, entity.AccountDraft]{items: []entity.Account{
		{ID: "a1", Name: "Acme"},
	}}
	d.Notes = &fakeGateway[entity.Note, entity.NoteDraft]{items: []entity.Note{
		{ID: "n1", Content: "Llamar el lunes", EntityType: "ACCOUNT", EntityID: "a1"},
		{ID: "n2", Content: "Sin relación"},
	}}
	uc := screen.NewNoteScreen(d)

	exp := &fakeExporter{ext: ".csv"}
	d.Exporters["csv"] = exp
	file, err := uc.Export(context.Background(), "tok", "", "csv")
	require.NoError(t, err)
	require.NotNil(t, file)

	require.Len(t, exp.rows, 2)
	assert.Equal(t, []string{"Content", "Related To"}, exp.headers)
	assert.Equal(t, "ACCOUNT: Acme", exp.rows[0][1], "la relación se muestra como TIPO: Nombre")
	assert.Equal(t, "", exp.rows[1][1], "sin relación la celda queda vacía")
}

// ──────────────────────────────────────────────────────────────────────────────
// Exportación
// ──────────────────────────────────────────────────────────────────────────────

// La exportación opera sobre el conjunto filtrado completo, nunca sobre la
// página visible, y todos los formatos reciben la misma proyección.
func TestExport_ConjuntoFiltradoCompleto(t *testing.T) {
	csv := &fakeExporter{ext: ".csv"}
	pdf := &fakeExporter{ext: ".pdf"}
	d := testDeps(map[string]screen.TableExporter{"csv": csv, "pdf": pdf})
	d.Leads = &fakeGateway[entity.Lead, entity.LeadDraft]{items: leads(12)}
	uc := screen.NewLeadScreen(d)

	file, err := uc.Export(context.Background(), "tok", "", "csv")
	require.NoError(t, err)

	assert.Equal(t, "leads.csv", file.Filename)
	assert.Equal(t, "application/test", file.ContentType)
	assert.Len(t, csv.rows, 12, "exporta todos los filtrados, no la página de 5")
	assert.Equal(t, "Leads Report", csv.title)

	_, err = uc.Export(context.Background(), "tok", "", "pdf")
	require.NoError(t, err)
	assert.Equal(t, csv.headers, pdf.headers, "misma proyección en todos los formatos")
	assert.Equal(t, csv.rows, pdf.rows, "mismo contenido y orden en todos los formatos")
}

func TestExport_RespetaElFiltro(t *testing.T) {
	csv := &fakeExporter{ext: ".csv"}
	d := testDeps(map[string]screen.TableExporter{"csv": csv})
	d.Leads = &fakeGateway[entity.Lead, entity.LeadDraft]{items: leads(12)}
	uc := screen.NewLeadScreen(d)

	_, err := uc.Export(context.Background(), "tok", "lead03@", "csv")
	require.NoError(t, err)
	require.Len(t, csv.rows, 1)
	assert.Equal(t, "Lead03", csv.rows[0][0])
}

func TestExport_FormatoDesconocido(t *testing.T) {
	d := testDeps(map[string]screen.TableExporter{})
	uc := screen.NewLeadScreen(d)

	_, err := uc.Export(context.Background(), "tok", "", "docx")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_SinOwner_Rechazado(t *testing.T) {
	d := testDeps(nil)
	uc := screen.NewLeadScreen(d)

	_, err := uc.Create(context.Background(), "tok", "", entity.LeadDraft{FirstName: "Ana"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"sin usuario de sesión no se estampa owner y la escritura se rechaza")
}

func TestUpdate_IdVacio_Rechazado(t *testing.T) {
	d := testDeps(nil)
	uc := screen.NewLeadScreen(d)

	_, err := uc.Update(context.Background(), "tok", "42", "", entity.LeadDraft{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDelete_ConflictoSePropaga(t *testing.T) {
	gw := &fakeGateway[entity.Lead, entity.LeadDraft]{deleteErr: domain.ErrConflict}
	d := testDeps(nil)
	d.Leads = gw
	uc := screen.NewLeadScreen(d)

	err := uc.Delete(context.Background(), "tok", "1")
	assert.ErrorIs(t, err, domain.ErrConflict,
		"el conflicto referencial llega intacto para que la UI avise de los dependientes")
}
