// Package summarizing calcula os KPIs do painel de vendas
package summarizing

import (
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
)

// Summarize calcula um novo snapshot a partir de todos os registros. O
// indicador de desempenho compara o total atual com o total do snapshot
// anterior; sem snapshot anterior o indicador é "no-change".
func Summarize(records []domain.SalesRecord, prior *domain.SummarySnapshot) domain.SummarySnapshot {
	values := make([]float64, 0, len(records))
	for _, record := range records {
		values = append(values, record.Sales)
	}
	total := aggregating.Sum(values...)

	snapshot := domain.SummarySnapshot{
		Total:       total,
		Count:       len(records),
		BestSelling: bestSelling(records),
		BestRegion:  bestRegion(aggregating.RegionTotals(records)),
		Performance: domain.PerformanceNoChange,
	}

	if len(records) > 0 {
		snapshot.Average = total / float64(len(records))
	}

	if prior != nil {
		previous := prior.Total
		snapshot.PreviousTotal = &previous
		snapshot.Performance = Compare(total, previous)
	}

	return snapshot
}

// Compare devolve o indicador de desempenho do total atual frente ao anterior
func Compare(current, previous float64) domain.PerformanceIndicator {
	switch {
	case current > previous:
		return domain.PerformanceIncrease
	case current < previous:
		return domain.PerformanceDecrease
	}
	return domain.PerformanceNoChange
}

// Em empate vence o primeiro máximo encontrado
func bestSelling(records []domain.SalesRecord) *domain.SalesRecord {
	if len(records) == 0 {
		return nil
	}

	best := records[0]
	for _, record := range records[1:] {
		if record.Sales > best.Sales {
			best = record
		}
	}
	return &best
}

func bestRegion(totals []domain.RegionTotal) *domain.RegionTotal {
	if len(totals) == 0 {
		return nil
	}

	best := totals[0]
	for _, total := range totals[1:] {
		if total.Sales > best.Sales {
			best = total
		}
	}
	return &best
}
