package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-pro/internal/application/screen"
	"github.com/tu-usuario/crm-pro/internal/application/session"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/infrastructure/export"
	apphttp "github.com/tu-usuario/crm-pro/internal/interfaces/http"
	"github.com/tu-usuario/crm-pro/pkg/logger"
)

// fakeLeads gateway de leads en memoria para tests del handler.
type fakeLeads struct {
	items     []entity.Lead
	deleteErr error
}

func (g *fakeLeads) List(_ context.Context, _ string) ([]entity.Lead, error) {
	return g.items, nil
}

func (g *fakeLeads) Create(_ context.Context, _, _ string, _ entity.LeadDraft) (*entity.Lead, error) {
	return &entity.Lead{ID: "nuevo"}, nil
}

func (g *fakeLeads) Update(_ context.Context, _, _, _ string, _ entity.LeadDraft) (*entity.Lead, error) {
	return &entity.Lead{}, nil
}

func (g *fakeLeads) Delete(_ context.Context, _, _ string) error {
	return g.deleteErr
}

func buildLeadApp(t *testing.T, gw *fakeLeads) (*fiber.App, string) {
	t.Helper()
	store := session.NewStore(logger.Nop())
	sid := sidFor(t, store, "alice", "ROLE_SALES")

	uc := screen.NewLeadScreen(screen.Deps{
		Leads:     gw,
		Exporters: export.NewExporters(),
		Log:       logger.Nop(),
	})

	app := fiber.New()
	protected := app.Group("/api", apphttp.SessionMiddleware(store, testCookie))
	apphttp.NewScreenHandler(uc).Register(protected.Group("/leads"))
	return app, sid
}

func get(t *testing.T, app *fiber.App, path, sid string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Accept", "application/json")
	req.AddCookie(&http.Cookie{Name: testCookie, Value: sid})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestScreenList_FiltraYPagina(t *testing.T) {
	items := make([]entity.Lead, 12)
	for i := range items {
		items[i] = entity.Lead{ID: fmt.Sprintf("%d", i+1), FirstName: fmt.Sprintf("Lead%02d", i+1)}
	}
	app, sid := buildLeadApp(t, &fakeLeads{items: items})

	resp := get(t, app, "/api/leads/?page=3", sid)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var view struct {
		Items      []entity.Lead `json:"items"`
		Page       int           `json:"page"`
		TotalPages int           `json:"totalPages"`
		Total      int           `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	assert.Equal(t, 12, view.Total)
	assert.Equal(t, 3, view.TotalPages)
	assert.Len(t, view.Items, 2)
}

func TestScreenDelete_Conflicto_AvisaDependientes(t *testing.T) {
	app, sid := buildLeadApp(t, &fakeLeads{deleteErr: domain.ErrConflict})

	req := httptest.NewRequest(http.MethodDelete, "/api/leads/1", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: sid})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "dependientes",
		"el conflicto referencial lleva su aviso propio, no un error genérico")
}

func TestScreenExport_DescargaArchivo(t *testing.T) {
	app, sid := buildLeadApp(t, &fakeLeads{items: []entity.Lead{
		{ID: "1", FirstName: "Ana", LastName: "Pérez"},
	}})

	resp := get(t, app, "/api/leads/export/csv", sid)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="leads.csv"`, resp.Header.Get(fiber.HeaderContentDisposition))

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Ana")
}

func TestScreenExport_FormatoDesconocido_Retorna400(t *testing.T) {
	app, sid := buildLeadApp(t, &fakeLeads{})

	resp := get(t, app, "/api/leads/export/docx", sid)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
