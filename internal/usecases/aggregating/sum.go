package aggregating

import (
	"github.com/shopspring/decimal"
)

// groupSum acumula somas por chave lembrando a ordem da primeira ocorrência.
// A soma decimal evita que o total dependa da ordem das parcelas.
type groupSum[K comparable] struct {
	order []K
	sums  map[K]decimal.Decimal
}

func newGroupSum[K comparable]() *groupSum[K] {
	return &groupSum[K]{
		order: make([]K, 0),
		sums:  make(map[K]decimal.Decimal),
	}
}

func (g *groupSum[K]) add(key K, value float64) {
	current, exists := g.sums[key]
	if !exists {
		g.order = append(g.order, key)
	}
	g.sums[key] = current.Add(decimal.NewFromFloat(value))
}

func (g *groupSum[K]) total(key K) float64 {
	return g.sums[key].InexactFloat64()
}

// Sum soma valores de vendas com precisão decimal
func Sum(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total.InexactFloat64()
}
