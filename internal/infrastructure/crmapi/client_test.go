package crmapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/pkg/logger"
)

// captura registra lo que el backend falso recibió en la última petición.
type captura struct {
	method string
	path   string
	auth   string
	body   map[string]any
}

// fakeBackend levanta un backend CRM falso que responde status/respBody y
// captura la petición entrante.
func fakeBackend(t *testing.T, status int, respBody string) (*Client, *captura, *httptest.Server) {
	t.Helper()
	got := &captura{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.path = r.URL.Path
		got.auth = r.Header.Get("Authorization")
		if r.Body != nil {
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			got.body = body
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(respBody))
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, logger.Nop()), got, srv
}

func TestDo_EnviaBearerYDecodifica(t *testing.T) {
	client, got, _ := fakeBackend(t, http.StatusOK, `[{"id":"1","firstName":"Ana"}]`)
	gw := NewLeadGateway(client)

	leads, err := gw.List(context.Background(), "tok-123")
	require.NoError(t, err)
	require.Len(t, leads, 1)

	assert.Equal(t, "Ana", leads[0].FirstName)
	assert.Equal(t, http.MethodGet, got.method)
	assert.Equal(t, "/leads", got.path)
	assert.Equal(t, "Bearer tok-123", got.auth, "el token de la sesión viaja en cada petición")
}

func TestCreate_EstampaOwner(t *testing.T) {
	client, got, _ := fakeBackend(t, http.StatusCreated, `{"id":"7"}`)
	gw := NewLeadGateway(client)

	_, err := gw.Create(context.Background(), "tok", "42", entity.LeadDraft{FirstName: "Ana"})
	require.NoError(t, err)

	owner, ok := got.body["owner"].(map[string]any)
	require.True(t, ok, "el payload debe llevar owner como objeto {id}")
	assert.Equal(t, "42", owner["id"])
}

func TestCreate_ReferenciaVacia_ViajaComoNull(t *testing.T) {
	client, got, _ := fakeBackend(t, http.StatusCreated, `{"id":"7"}`)
	gw := NewContactGateway(client)

	draft := entity.ContactDraft{FirstName: "Ana", LeadID: "3", AccountID: ""}
	_, err := gw.Create(context.Background(), "tok", "42", draft)
	require.NoError(t, err)

	lead, ok := got.body["lead"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "3", lead["id"], "id elegido en selector se normaliza a {id}")

	account, present := got.body["account"]
	assert.True(t, present, "la clave account debe estar presente")
	assert.Nil(t, account, "sin selección la referencia viaja como null")
}

func TestUpdate_RutaConIdYMontoDecimal(t *testing.T) {
	client, got, _ := fakeBackend(t, http.StatusOK, `{"id":"5"}`)
	gw := NewOpportunityGateway(client)

	draft := entity.OpportunityDraft{
		Name:   "Gran venta",
		Stage:  "NEGOTIATION",
		Amount: decimal.RequireFromString("1250.50"),
	}
	_, err := gw.Update(context.Background(), "tok", "42", "5", draft)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, got.method)
	assert.Equal(t, "/opportunities/5", got.path)
	assert.NotContains(t, got.body, "id", "el id viaja en la ruta, nunca en el payload")
}

func TestDelete_ConflictoDeIntegridad(t *testing.T) {
	client, _, _ := fakeBackend(t, http.StatusConflict, `{"message":"lead referenced by contacts"}`)
	gw := NewLeadGateway(client)

	err := gw.Delete(context.Background(), "tok", "1")
	assert.ErrorIs(t, err, domain.ErrConflict,
		"un 409 del backend debe llegar como conflicto de dependientes")
}

func TestMapError_TraduceStatusADominio(t *testing.T) {
	casos := []struct {
		status   int
		sentinel error
	}{
		{http.StatusBadRequest, domain.ErrInvalidInput},
		{http.StatusUnprocessableEntity, domain.ErrInvalidInput},
		{http.StatusUnauthorized, domain.ErrUnauthorized},
		{http.StatusForbidden, domain.ErrForbidden},
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusConflict, domain.ErrConflict},
		{http.StatusInternalServerError, domain.ErrBackend},
	}

	for _, tc := range casos {
		client, _, _ := fakeBackend(t, tc.status, `{"message":"boom"}`)
		gw := NewLeadGateway(client)

		_, err := gw.List(context.Background(), "tok")
		assert.ErrorIs(t, err, tc.sentinel, "status %d", tc.status)
	}
}

func TestDo_BackendCaido(t *testing.T) {
	client, _, srv := fakeBackend(t, http.StatusOK, `[]`)
	srv.Close()
	gw := NewLeadGateway(client)

	_, err := gw.List(context.Background(), "tok")
	assert.ErrorIs(t, err, domain.ErrBackend)
}
