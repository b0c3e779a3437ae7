package crmapi

import (
	"context"
	"net/http"
)

// Resource gateway CRUD genérico de un recurso CRM. T registro devuelto por el
// backend, D draft editable; wire arma el payload de escritura (estampando el
// owner y normalizando referencias a {id}|null).
type Resource[T any, D any] struct {
	client *Client
	path   string
	wire   func(draft D, ownerID string) any
}

// NewResource construye el gateway de un recurso.
func NewResource[T any, D any](client *Client, path string, wire func(D, string) any) *Resource[T, D] {
	return &Resource[T, D]{client: client, path: path, wire: wire}
}

// List devuelve todos los registros en el orden que decida el backend.
func (r *Resource[T, D]) List(ctx context.Context, token string) ([]T, error) {
	var out []T
	if err := r.client.do(ctx, http.MethodGet, r.path, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create envía el draft con el owner estampado y devuelve el registro creado.
func (r *Resource[T, D]) Create(ctx context.Context, token, ownerID string, draft D) (*T, error) {
	var out T
	if err := r.client.do(ctx, http.MethodPost, r.path, token, r.wire(draft, ownerID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update reenvía los campos mutables; el id nunca va en el payload.
func (r *Resource[T, D]) Update(ctx context.Context, token, ownerID, id string, draft D) (*T, error) {
	var out T
	if err := r.client.do(ctx, http.MethodPut, r.path+"/"+id, token, r.wire(draft, ownerID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete borra por id. ErrConflict cuando el backend bloquea por dependientes.
func (r *Resource[T, D]) Delete(ctx context.Context, token, id string) error {
	return r.client.do(ctx, http.MethodDelete, r.path+"/"+id, token, nil, nil)
}
