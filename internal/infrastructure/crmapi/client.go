// Package crmapi implementa los gateways REST contra el backend del CRM.
// Convenciones del backend: JSON, rutas /{leads|contacts|accounts|
// opportunities|activities|notes}[/:id], bearer token por petición y
// referencias como {"id": ...}|null en escrituras.
package crmapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/pkg/logger"
)

// Client cliente HTTP base compartido por todos los gateways. Sin estado de
// sesión: el token viaja como argumento en cada operación.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logger.Logger
}

// NewClient construye el cliente base. baseURL sin slash final, ej.
// "http://localhost:8080/api".
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// backendError cuerpo de error que emite el backend; los campos son opcionales.
type backendError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Error_  string `json:"error"`
}

func (e backendError) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error_
}

// do ejecuta una petición JSON y decodifica la respuesta en out (nil para
// ignorar el cuerpo). Los códigos de error HTTP se traducen a errores de
// dominio para que los callers distingan validación, conflicto y auth.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("crmapi: serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("crmapi: construir petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackend, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.mapError(method, path, resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decodificar respuesta de %s: %v", domain.ErrBackend, path, err)
	}
	return nil
}

// mapError traduce el status HTTP del backend a un error de dominio.
func (c *Client) mapError(method, path string, resp *http.Response) error {
	var be backendError
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	_ = json.Unmarshal(raw, &be)

	c.log.Warn().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Str("backend_code", be.Code).
		Msg("respuesta de error del backend CRM")

	msg := be.text()
	switch resp.StatusCode {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return wrap(domain.ErrInvalidInput, msg)
	case http.StatusUnauthorized:
		return wrap(domain.ErrUnauthorized, msg)
	case http.StatusForbidden:
		return wrap(domain.ErrForbidden, msg)
	case http.StatusNotFound:
		return wrap(domain.ErrNotFound, msg)
	case http.StatusConflict:
		return wrap(domain.ErrConflict, msg)
	default:
		return wrap(domain.ErrBackend, fmt.Sprintf("status %d %s", resp.StatusCode, msg))
	}
}

func wrap(sentinel error, msg string) error {
	if msg == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, msg)
}
