package crmapi

import (
	"context"
	"net/http"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// AuthGateway puerto de autenticación; la emisión y firma del token son
// responsabilidad del backend.
type AuthGateway struct {
	client *Client
}

// NewAuthGateway construye el gateway de auth.
func NewAuthGateway(c *Client) *AuthGateway {
	return &AuthGateway{client: c}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login POST /auth/login. Devuelve el bearer token opaco; credenciales malas
// llegan como domain.ErrUnauthorized.
func (g *AuthGateway) Login(ctx context.Context, username, password string) (string, error) {
	var out loginResponse
	err := g.client.do(ctx, http.MethodPost, "/auth/login", "", loginRequest{Username: username, Password: password}, &out)
	if err != nil {
		return "", err
	}
	return out.Token, nil
}

// Register POST /auth/register.
func (g *AuthGateway) Register(ctx context.Context, draft entity.UserDraft) error {
	return g.client.do(ctx, http.MethodPost, "/auth/register", "", draft, nil)
}
