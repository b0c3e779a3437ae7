// Package dashboard arma los dos widgets de analítica del CRM a partir de los
// agregados precomputados del backend.
package dashboard

import (
	"context"
	"fmt"
	"sort"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain/gateway"
)

// UseCase carga leads-por-estado y accounts-por-industria y los convierte en
// secuencias ordenadas listas para graficar (pie y barras).
type UseCase struct {
	gw gateway.Dashboard
}

// NewUseCase construye el caso de uso.
func NewUseCase(gw gateway.Dashboard) *UseCase {
	return &UseCase{gw: gw}
}

// Load trae los dos agregados en paralelo.
func (uc *UseCase) Load(ctx context.Context, token string) (*dto.DashboardSummary, error) {
	type result struct {
		data map[string]int
		err  error
	}

	leadsCh := make(chan result, 1)
	accountsCh := make(chan result, 1)

	go func() {
		data, err := uc.gw.LeadsByStatus(ctx, token)
		leadsCh <- result{data, err}
	}()
	go func() {
		data, err := uc.gw.AccountsByIndustry(ctx, token)
		accountsCh <- result{data, err}
	}()

	leads := <-leadsCh
	accounts := <-accountsCh

	if leads.err != nil {
		return nil, fmt.Errorf("dashboard: leads por estado: %w", leads.err)
	}
	if accounts.err != nil {
		return nil, fmt.Errorf("dashboard: accounts por industria: %w", accounts.err)
	}

	return &dto.DashboardSummary{
		LeadsByStatus:      toChartPoints(leads.data),
		AccountsByIndustry: toChartPoints(accounts.data),
	}, nil
}

// toChartPoints convierte el mapa en una secuencia {name,value} con orden
// determinista: valor descendente y nombre como desempate (los mapas JSON no
// traen orden utilizable).
func toChartPoints(m map[string]int) []dto.ChartPoint {
	points := make([]dto.ChartPoint, 0, len(m))
	for name, value := range m {
		points = append(points, dto.ChartPoint{Name: name, Value: value})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Value != points[j].Value {
			return points[i].Value > points[j].Value
		}
		return points[i].Name < points[j].Name
	})
	return points
}
