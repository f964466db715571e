package domain

import "fmt"

type SortKey string

const (
	SortKeyNone      SortKey = ""
	SortKeyProduct   SortKey = "product"
	SortKeyDate      SortKey = "date"
	SortKeySales     SortKey = "sales"
	SortKeyInventory SortKey = "inventory"
	SortKeyCategory  SortKey = "category"
	SortKeyRegion    SortKey = "region"
)

type SortDirection string

const (
	SortAscending  SortDirection = "ascending"
	SortDescending SortDirection = "descending"
)

func ParseSortKey(value string) (SortKey, error) {
	switch SortKey(value) {
	case SortKeyNone, SortKeyProduct, SortKeyDate, SortKeySales, SortKeyInventory, SortKeyCategory, SortKeyRegion:
		return SortKey(value), nil
	}
	return "", fmt.Errorf("chave de ordenação inválida: %s", value)
}

func ParseSortDirection(value string) (SortDirection, error) {
	switch value {
	case "", "asc", string(SortAscending):
		return SortAscending, nil
	case "desc", string(SortDescending):
		return SortDescending, nil
	}
	return "", fmt.Errorf("direção de ordenação inválida: %s", value)
}

// SortSpec descreve a ordenação da tabela
type SortSpec struct {
	Key       SortKey       `json:"key,omitempty"`
	Direction SortDirection `json:"direction"`
}

// Request aplica um clique no cabeçalho da coluna: a mesma chave inverte a
// direção e uma chave nova volta para ascendente.
func (s SortSpec) Request(key SortKey) SortSpec {
	if s.Key == key && key != SortKeyNone {
		if s.Direction == SortDescending {
			return SortSpec{Key: key, Direction: SortAscending}
		}
		return SortSpec{Key: key, Direction: SortDescending}
	}
	return SortSpec{Key: key, Direction: SortAscending}
}
