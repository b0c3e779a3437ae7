package crmapi

import (
	"context"
	"net/http"
)

// DashboardGateway consume los dos agregados precomputados del backend.
type DashboardGateway struct {
	client *Client
}

// NewDashboardGateway construye el gateway del dashboard.
func NewDashboardGateway(c *Client) *DashboardGateway {
	return &DashboardGateway{client: c}
}

// LeadsByStatus GET /dashboard/leads-by-status → {"NEW": 4, ...}.
func (g *DashboardGateway) LeadsByStatus(ctx context.Context, token string) (map[string]int, error) {
	var out map[string]int
	if err := g.client.do(ctx, http.MethodGet, "/dashboard/leads-by-status", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AccountsByIndustry GET /dashboard/accounts-by-industry → {"FINANCE": 2, ...}.
func (g *DashboardGateway) AccountsByIndustry(ctx context.Context, token string) (map[string]int, error) {
	var out map[string]int
	if err := g.client.do(ctx, http.MethodGet, "/dashboard/accounts-by-industry", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
