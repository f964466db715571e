// Package aggregating transforma a lista de registros nos conjuntos de dados
// dos gráficos. Cada função é pura e independente das demais.
package aggregating

import (
	"fmt"
	"slices"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// RegionTotals soma as vendas por região, na ordem da primeira ocorrência.
// Regiões sem registros não aparecem.
func RegionTotals(records []domain.SalesRecord) []domain.RegionTotal {
	groups := newGroupSum[domain.Region]()
	for _, record := range records {
		groups.add(record.Region, record.Sales)
	}

	out := make([]domain.RegionTotal, 0, len(groups.order))
	for _, region := range groups.order {
		out = append(out, domain.RegionTotal{Region: region, Sales: groups.total(region)})
	}
	return out
}

// CategoryTotals soma as vendas por categoria, na ordem da primeira ocorrência
func CategoryTotals(records []domain.SalesRecord) []domain.CategoryTotal {
	groups := newGroupSum[domain.Category]()
	for _, record := range records {
		groups.add(record.Category, record.Sales)
	}

	out := make([]domain.CategoryTotal, 0, len(groups.order))
	for _, category := range groups.order {
		out = append(out, domain.CategoryTotal{Category: category, Sales: groups.total(category)})
	}
	return out
}

type cell struct {
	category domain.Category
	region   domain.Region
}

// CategoryRegionMatrix monta uma linha por categoria com uma coluna por
// região, incluindo combinações sem vendas (valor zero).
func CategoryRegionMatrix(records []domain.SalesRecord, categories []domain.Category, regions []domain.Region) []domain.CategoryRegionRow {
	groups := newGroupSum[cell]()
	for _, record := range records {
		groups.add(cell{category: record.Category, region: record.Region}, record.Sales)
	}

	out := make([]domain.CategoryRegionRow, 0, len(categories))
	for _, category := range categories {
		row := domain.CategoryRegionRow{
			Category: category,
			Regions:  make(map[domain.Region]float64, len(regions)),
		}
		for _, region := range regions {
			row.Regions[region] = groups.total(cell{category: category, region: region})
		}
		out = append(out, row)
	}
	return out
}

// MonthlyTrend soma as vendas por mês (YYYY-MM) em ordem cronológica
func MonthlyTrend(records []domain.SalesRecord) []domain.TrendPoint {
	return trend(records, func(r domain.SalesRecord) string { return r.Month() })
}

// DailyTrend soma as vendas por dia (YYYY-MM-DD) em ordem cronológica
func DailyTrend(records []domain.SalesRecord) []domain.TrendPoint {
	return trend(records, func(r domain.SalesRecord) string { return r.Date })
}

func trend(records []domain.SalesRecord, period func(domain.SalesRecord) string) []domain.TrendPoint {
	groups := newGroupSum[string]()
	for _, record := range records {
		groups.add(period(record), record.Sales)
	}

	labels := slices.Clone(groups.order)
	slices.Sort(labels)

	out := make([]domain.TrendPoint, 0, len(labels))
	for _, label := range labels {
		out = append(out, domain.TrendPoint{Period: label, Sales: groups.total(label)})
	}
	return out
}

// SalesSeries gera um ponto por registro, rotulado "Day N" pela posição
func SalesSeries(records []domain.SalesRecord) []domain.SeriesPoint {
	out := make([]domain.SeriesPoint, 0, len(records))
	for i, record := range records {
		out = append(out, domain.SeriesPoint{
			Name:  fmt.Sprintf("Day %d", i+1),
			Value: record.Sales,
		})
	}
	return out
}

// Charts calcula todos os conjuntos de dados dos gráficos sobre a mesma
// fotografia dos registros.
func Charts(records []domain.SalesRecord) domain.ChartsView {
	return domain.ChartsView{
		RegionTotals:   RegionTotals(records),
		CategoryTotals: CategoryTotals(records),
		CategoryRegion: CategoryRegionMatrix(records, domain.AllCategories, domain.AllRegions),
		MonthlyTrend:   MonthlyTrend(records),
		DailyTrend:     DailyTrend(records),
		SalesSeries:    SalesSeries(records),
		Regions:        domain.AllRegions,
	}
}
