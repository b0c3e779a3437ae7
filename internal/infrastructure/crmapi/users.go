package crmapi

import (
	"context"
	"net/http"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// UserGateway gestión de usuarios del CRM (pantalla solo ROLE_ADMIN).
type UserGateway struct {
	client *Client
}

// NewUserGateway construye el gateway de usuarios.
func NewUserGateway(c *Client) *UserGateway {
	return &UserGateway{client: c}
}

// List GET /users.
func (g *UserGateway) List(ctx context.Context, token string) ([]entity.User, error) {
	var out []entity.User
	if err := g.client.do(ctx, http.MethodGet, "/users", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create POST /users.
func (g *UserGateway) Create(ctx context.Context, token string, draft entity.UserDraft) (*entity.User, error) {
	var out entity.User
	if err := g.client.do(ctx, http.MethodPost, "/users", token, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update PUT /users/:id (todo menos el rol).
func (g *UserGateway) Update(ctx context.Context, token, id string, draft entity.UserDraft) (*entity.User, error) {
	draft.Role = "" // el rol solo cambia vía UpdateRole
	var out entity.User
	if err := g.client.do(ctx, http.MethodPut, "/users/"+id, token, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type roleRequest struct {
	Role string `json:"role"`
}

// UpdateRole PATCH /users/:id/role.
func (g *UserGateway) UpdateRole(ctx context.Context, token, id, role string) error {
	return g.client.do(ctx, http.MethodPatch, "/users/"+id+"/role", token, roleRequest{Role: role}, nil)
}

// Delete DELETE /users/:id.
func (g *UserGateway) Delete(ctx context.Context, token, id string) error {
	return g.client.do(ctx, http.MethodDelete, "/users/"+id, token, nil, nil)
}
