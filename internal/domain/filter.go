package domain

import "fmt"

// FilterMode define o filtro rápido ativo na tabela principal
type FilterMode string

const (
	FilterModeAll          FilterMode = "all"
	FilterModeHighSales    FilterMode = "highSales"
	FilterModeLowSales     FilterMode = "lowSales"
	FilterModeLowInventory FilterMode = "lowInventory"
)

// Valor inicial do limite de vendas usado por highSales/lowSales
const DefaultThreshold = 1000.0

func ParseFilterMode(value string) (FilterMode, error) {
	switch FilterMode(value) {
	case "":
		return FilterModeAll, nil
	case FilterModeAll, FilterModeHighSales, FilterModeLowSales, FilterModeLowInventory:
		return FilterMode(value), nil
	}
	return "", fmt.Errorf("modo de filtro inválido: %s", value)
}

// FilterSpec descreve os critérios de filtragem ativos
type FilterSpec struct {
	Search     string     `json:"search,omitempty"`
	Mode       FilterMode `json:"mode"`
	Threshold  float64    `json:"threshold"`
	StartDate  string     `json:"start_date,omitempty"`
	EndDate    string     `json:"end_date,omitempty"`
	Categories []Category `json:"categories,omitempty"`
	Regions    []Region   `json:"regions,omitempty"`
}

// NewFilterSpec devolve o filtro padrão: sem restrições e limite 1000
func NewFilterSpec() FilterSpec {
	return FilterSpec{
		Mode:      FilterModeAll,
		Threshold: DefaultThreshold,
	}
}

// HasDateRange indica se o intervalo de datas deve ser aplicado.
// Só vale quando início e fim estão preenchidos.
func (f FilterSpec) HasDateRange() bool {
	return f.StartDate != "" && f.EndDate != ""
}

// HasSelection indica se algum critério da visão "filtros aplicados" está ativo
func (f FilterSpec) HasSelection() bool {
	return f.StartDate != "" || f.EndDate != "" || len(f.Categories) > 0 || len(f.Regions) > 0
}
