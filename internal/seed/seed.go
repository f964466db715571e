// Package seed fornece os registros iniciais do painel
package seed

import (
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/tailscale/hujson"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Default devolve os oito registros de demonstração do painel
func Default() []domain.SalesRecord {
	return []domain.SalesRecord{
		{ID: 1, Product: "Laptop XZ-2000", Date: "2024-01-01", Sales: 1500, Inventory: 32, Category: domain.CategoryElectronics, Region: domain.RegionNorth},
		{ID: 2, Product: "Smart Watch V3", Date: "2024-01-02", Sales: 900, Inventory: 45, Category: domain.CategoryElectronics, Region: domain.RegionEast},
		{ID: 3, Product: "Ergonomic Chair", Date: "2024-01-03", Sales: 2100, Inventory: 18, Category: domain.CategoryFurniture, Region: domain.RegionWest},
		{ID: 4, Product: "Wireless Earbuds", Date: "2024-01-04", Sales: 750, Inventory: 55, Category: domain.CategoryElectronics, Region: domain.RegionSouth},
		{ID: 5, Product: "Office Desk", Date: "2024-01-05", Sales: 1200, Inventory: 24, Category: domain.CategoryFurniture, Region: domain.RegionNorth},
		{ID: 6, Product: "Coffee Maker", Date: "2024-01-06", Sales: 600, Inventory: 38, Category: domain.CategoryAppliances, Region: domain.RegionEast},
		{ID: 7, Product: "Bluetooth Speaker", Date: "2024-01-07", Sales: 450, Inventory: 62, Category: domain.CategoryElectronics, Region: domain.RegionWest},
		{ID: 8, Product: "Standing Desk", Date: "2024-01-08", Sales: 1800, Inventory: 15, Category: domain.CategoryFurniture, Region: domain.RegionSouth},
	}
}

// Load lê um arquivo JSON (comentários e vírgulas finais são aceitos) com
// uma lista de registros.
func Load(path string) ([]domain.SalesRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler arquivo de seed %s", path)
	}
	return Parse(data)
}

func Parse(data []byte) ([]domain.SalesRecord, error) {
	standard, err := hujson.Standardize(data)
	if err != nil {
		return nil, errors.Wrap(err, "JSON de seed inválido")
	}

	var records []domain.SalesRecord
	if err := json.Unmarshal(standard, &records); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar registros de seed")
	}

	if records == nil {
		records = make([]domain.SalesRecord, 0)
	}
	return records, nil
}

// Resolve escolhe a origem dos registros iniciais: o arquivo quando
// informado, senão os registros de demonstração se useDefault for true.
func Resolve(path string, useDefault bool) ([]domain.SalesRecord, error) {
	if path != "" {
		return Load(path)
	}
	if useDefault {
		return Default(), nil
	}
	return make([]domain.SalesRecord, 0), nil
}
