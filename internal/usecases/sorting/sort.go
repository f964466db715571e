// Package sorting ordena registros de forma estável por uma coluna da tabela
package sorting

import (
	"cmp"
	"slices"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Sort devolve uma nova sequência ordenada pela chave e direção informadas.
// Empates mantêm a ordem relativa da entrada; SortKeyNone apenas copia.
func Sort(records []domain.SalesRecord, spec domain.SortSpec) []domain.SalesRecord {
	out := slices.Clone(records)
	if out == nil {
		out = make([]domain.SalesRecord, 0)
	}

	compare := comparator(spec.Key)
	if compare == nil {
		return out
	}

	if spec.Direction == domain.SortDescending {
		slices.SortStableFunc(out, func(a, b domain.SalesRecord) int {
			return compare(b, a)
		})
		return out
	}

	slices.SortStableFunc(out, compare)
	return out
}

func comparator(key domain.SortKey) func(a, b domain.SalesRecord) int {
	switch key {
	case domain.SortKeyProduct:
		return func(a, b domain.SalesRecord) int { return strings.Compare(a.Product, b.Product) }
	case domain.SortKeyDate:
		return func(a, b domain.SalesRecord) int { return strings.Compare(a.Date, b.Date) }
	case domain.SortKeySales:
		return func(a, b domain.SalesRecord) int { return cmp.Compare(a.Sales, b.Sales) }
	case domain.SortKeyInventory:
		return func(a, b domain.SalesRecord) int { return cmp.Compare(a.Inventory, b.Inventory) }
	case domain.SortKeyCategory:
		return func(a, b domain.SalesRecord) int { return strings.Compare(string(a.Category), string(b.Category)) }
	case domain.SortKeyRegion:
		return func(a, b domain.SalesRecord) int { return strings.Compare(string(a.Region), string(b.Region)) }
	}
	return nil
}
