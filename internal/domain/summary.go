package domain

type PerformanceIndicator string

const (
	PerformanceIncrease PerformanceIndicator = "increase"
	PerformanceDecrease PerformanceIndicator = "decrease"
	PerformanceNoChange PerformanceIndicator = "no-change"
)

// DashboardSnapshot é a leitura conjunta de registros, gráficos e resumo
// feita sob o mesmo lock, todos da mesma revisão.
type DashboardSnapshot struct {
	Records []SalesRecord   `json:"records"`
	Charts  ChartsView      `json:"charts"`
	Summary SummarySnapshot `json:"summary"`
}

// SummarySnapshot reúne os KPIs calculados sobre todos os registros.
// BestSelling e BestRegion ficam nulos quando não há dados.
type SummarySnapshot struct {
	Total         float64              `json:"total_sales"`
	Average       float64              `json:"average_sales"`
	Count         int                  `json:"count"`
	BestSelling   *SalesRecord         `json:"best_selling,omitempty"`
	BestRegion    *RegionTotal         `json:"best_region,omitempty"`
	Performance   PerformanceIndicator `json:"performance"`
	PreviousTotal *float64             `json:"previous_total,omitempty"`
	Revision      string               `json:"revision,omitempty"`
}
