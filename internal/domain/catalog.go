package domain

type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryFurniture   Category = "Furniture"
	CategoryAppliances  Category = "Appliances"
	CategoryClothing    Category = "Clothing"
	CategoryBooks       Category = "Books"
)

type Region string

const (
	RegionNorth Region = "North"
	RegionSouth Region = "South"
	RegionEast  Region = "East"
	RegionWest  Region = "West"
)

// AllCategories lista as categorias conhecidas na ordem de exibição
var AllCategories = []Category{
	CategoryElectronics,
	CategoryFurniture,
	CategoryAppliances,
	CategoryClothing,
	CategoryBooks,
}

// AllRegions lista as regiões conhecidas na ordem de exibição
var AllRegions = []Region{
	RegionNorth,
	RegionSouth,
	RegionEast,
	RegionWest,
}

func (c Category) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

func (r Region) IsValid() bool {
	for _, known := range AllRegions {
		if r == known {
			return true
		}
	}
	return false
}

// Catalog é a resposta com os valores fixos aceitos pela API
type Catalog struct {
	Categories       []Category   `json:"categories"`
	Regions          []Region     `json:"regions"`
	FilterModes      []FilterMode `json:"filter_modes"`
	SortKeys         []SortKey    `json:"sort_keys"`
	DefaultThreshold float64      `json:"default_threshold"`
}

func NewCatalog() Catalog {
	return Catalog{
		Categories:       AllCategories,
		Regions:          AllRegions,
		FilterModes:      []FilterMode{FilterModeAll, FilterModeHighSales, FilterModeLowSales, FilterModeLowInventory},
		SortKeys:         []SortKey{SortKeyProduct, SortKeyDate, SortKeySales, SortKeyInventory, SortKeyCategory, SortKeyRegion},
		DefaultThreshold: DefaultThreshold,
	}
}
