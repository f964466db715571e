package domain

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RegionTotal é a soma de vendas de uma região
type RegionTotal struct {
	Region Region  `json:"region"`
	Sales  float64 `json:"sales"`
}

// CategoryTotal é a soma de vendas de uma categoria (gráfico de pizza)
type CategoryTotal struct {
	Category Category `json:"name"`
	Sales    float64  `json:"value"`
}

// CategoryRegionRow é uma linha do gráfico empilhado categoria × região.
// Todas as regiões conhecidas aparecem, mesmo com valor zero.
type CategoryRegionRow struct {
	Category Category
	Regions  map[Region]float64
}

// MarshalJSON achata a linha no formato {"category": ..., "North": ..., ...}
func (row CategoryRegionRow) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(row.Regions)+1)
	for region, sales := range row.Regions {
		flat[string(region)] = sales
	}
	flat["category"] = row.Category
	return json.Marshal(flat)
}

func (row *CategoryRegionRow) UnmarshalJSON(data []byte) error {
	var flat map[string]any
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}

	row.Regions = make(map[Region]float64, len(flat))
	for key, value := range flat {
		if key == "category" {
			if s, ok := value.(string); ok {
				row.Category = Category(s)
			}
			continue
		}
		if n, ok := value.(float64); ok {
			row.Regions[Region(key)] = n
		}
	}
	return nil
}

// TrendPoint é um ponto das séries mensal (YYYY-MM) e diária (YYYY-MM-DD)
type TrendPoint struct {
	Period string  `json:"period"`
	Sales  float64 `json:"sales"`
}

// SeriesPoint é um ponto do gráfico de linha por registro ("Day N")
type SeriesPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ChartsView agrupa todos os conjuntos de dados dos gráficos
type ChartsView struct {
	RegionTotals   []RegionTotal       `json:"region_totals"`
	CategoryTotals []CategoryTotal     `json:"category_totals"`
	CategoryRegion []CategoryRegionRow `json:"category_region"`
	MonthlyTrend   []TrendPoint        `json:"monthly_trend"`
	DailyTrend     []TrendPoint        `json:"daily_trend"`
	SalesSeries    []SeriesPoint       `json:"sales_series"`
	Regions        []Region            `json:"regions"`
	Revision       string              `json:"revision"`
}

// TableView é a resposta da tabela filtrada e ordenada
type TableView struct {
	Records  []SalesRecord `json:"records"`
	Total    int           `json:"total"`
	Filter   FilterSpec    `json:"filter"`
	Sort     SortSpec      `json:"sort"`
	Revision string        `json:"revision"`
}
