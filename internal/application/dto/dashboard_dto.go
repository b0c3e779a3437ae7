package dto

// ChartPoint punto de una serie para graficar.
type ChartPoint struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// DashboardSummary respuesta de GET /api/dashboard: los dos widgets, ya como
// secuencias ordenadas (pie de leads por estado, barras de accounts por
// industria).
type DashboardSummary struct {
	LeadsByStatus      []ChartPoint `json:"leadsByStatus"`
	AccountsByIndustry []ChartPoint `json:"accountsByIndustry"`
}
