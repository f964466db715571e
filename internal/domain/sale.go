package domain

import (
	"strings"
)

// Limite fixo usado pelo filtro de estoque baixo
const LowInventoryLimit = 30

// SalesRecord representa um registro de venda mantido pelo Record Store
type SalesRecord struct {
	ID        int      `json:"id"`
	Product   string   `json:"product"`
	Date      string   `json:"date"` // Formato YYYY-MM-DD
	Sales     float64  `json:"sales"`
	Inventory int      `json:"inventory"`
	Category  Category `json:"category"`
	Region    Region   `json:"region"`
}

// SalesRecordInput é o payload do formulário de criação/edição (sem ID)
type SalesRecordInput struct {
	Product   string   `json:"product"`
	Date      string   `json:"date"`
	Sales     float64  `json:"sales"`
	Inventory int      `json:"inventory"`
	Category  Category `json:"category"`
	Region    Region   `json:"region"`
}

// ToRecord monta um registro com o ID informado
func (in SalesRecordInput) ToRecord(id int) SalesRecord {
	return SalesRecord{
		ID:        id,
		Product:   strings.TrimSpace(in.Product),
		Date:      in.Date,
		Sales:     in.Sales,
		Inventory: in.Inventory,
		Category:  in.Category,
		Region:    in.Region,
	}
}

// Input devolve os campos editáveis do registro
func (r SalesRecord) Input() SalesRecordInput {
	return SalesRecordInput{
		Product:   r.Product,
		Date:      r.Date,
		Sales:     r.Sales,
		Inventory: r.Inventory,
		Category:  r.Category,
		Region:    r.Region,
	}
}

// Month devolve o período mensal do registro no formato YYYY-MM
func (r SalesRecord) Month() string {
	if len(r.Date) < 7 {
		return r.Date
	}
	return r.Date[:7]
}
