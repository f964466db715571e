// Package filtering seleciona os registros que atendem a um FilterSpec
package filtering

import (
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Filter devolve os registros que atendem a todos os critérios ativos,
// preservando a ordem de entrada.
func Filter(records []domain.SalesRecord, spec domain.FilterSpec) []domain.SalesRecord {
	m := newMatcher(spec)

	out := make([]domain.SalesRecord, 0, len(records))
	for _, record := range records {
		if m.search(record) && m.mode(record) && m.dateRange(record) && m.selection(record) {
			out = append(out, record)
		}
	}
	return out
}

// FilterApplied monta a visão "filtros aplicados": fica vazia enquanto
// nenhum intervalo de datas, categoria ou região for escolhido. Busca e modo
// não participam desta visão.
func FilterApplied(records []domain.SalesRecord, spec domain.FilterSpec) []domain.SalesRecord {
	out := make([]domain.SalesRecord, 0)
	if !spec.HasSelection() {
		return out
	}

	m := newMatcher(spec)
	for _, record := range records {
		if m.dateRange(record) && m.selection(record) {
			out = append(out, record)
		}
	}
	return out
}

type matcher struct {
	spec       domain.FilterSpec
	term       string
	categories map[domain.Category]bool
	regions    map[domain.Region]bool
}

func newMatcher(spec domain.FilterSpec) matcher {
	m := matcher{
		spec: spec,
		term: strings.ToLower(spec.Search),
	}

	if len(spec.Categories) > 0 {
		m.categories = make(map[domain.Category]bool, len(spec.Categories))
		for _, c := range spec.Categories {
			m.categories[c] = true
		}
	}

	if len(spec.Regions) > 0 {
		m.regions = make(map[domain.Region]bool, len(spec.Regions))
		for _, r := range spec.Regions {
			m.regions[r] = true
		}
	}

	return m
}

func (m matcher) search(record domain.SalesRecord) bool {
	if m.term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(record.Product), m.term) ||
		strings.Contains(strings.ToLower(string(record.Category)), m.term) ||
		strings.Contains(strings.ToLower(string(record.Region)), m.term)
}

func (m matcher) mode(record domain.SalesRecord) bool {
	switch m.spec.Mode {
	case domain.FilterModeHighSales:
		return record.Sales >= m.spec.Threshold
	case domain.FilterModeLowSales:
		return record.Sales < m.spec.Threshold
	case domain.FilterModeLowInventory:
		return record.Inventory < domain.LowInventoryLimit
	}
	return true
}

// Datas no formato YYYY-MM-DD comparam corretamente como texto
func (m matcher) dateRange(record domain.SalesRecord) bool {
	if !m.spec.HasDateRange() {
		return true
	}
	day := calendarDay(record.Date)
	return day >= calendarDay(m.spec.StartDate) && day <= calendarDay(m.spec.EndDate)
}

func (m matcher) selection(record domain.SalesRecord) bool {
	if m.categories != nil && !m.categories[record.Category] {
		return false
	}
	if m.regions != nil && !m.regions[record.Region] {
		return false
	}
	return true
}

// calendarDay descarta qualquer componente de horário
func calendarDay(date string) string {
	if len(date) > len("2006-01-02") {
		return date[:len("2006-01-02")]
	}
	return date
}
