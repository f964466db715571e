package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func TestWriteCSV(t *testing.T) {
	records := []domain.SalesRecord{
		{ID: 1, Product: "Laptop XZ-2000", Date: "2024-01-01", Sales: 1500, Inventory: 32, Category: domain.CategoryElectronics, Region: domain.RegionNorth},
		{ID: 2, Product: "Desk, Oak", Date: "2024-12-09", Sales: 99.5, Inventory: 3, Category: domain.CategoryFurniture, Region: domain.RegionWest},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	want := "product,date,sales,inventory,category,region\n" +
		"Laptop XZ-2000,01/01/2024,1500,32,Electronics,North\n" +
		"\"Desk, Oak\",12/09/2024,99.5,3,Furniture,West\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSV_EmptyWritesHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "product,date,sales,inventory,category,region\n", buf.String())
}

func TestWriteCSV_InvalidDate(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []domain.SalesRecord{{ID: 9, Date: "09/01/2024"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "registro 9")
}

func TestReadCSV(t *testing.T) {
	input := "region,product,date,sales,inventory,category\n" +
		"North,Laptop,01/05/2024,1500,32,Electronics\n" +
		"South, Chair ,2024-02-10,10.25,4,Furniture\n"

	records, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, domain.SalesRecord{
		Product: "Laptop", Date: "2024-01-05", Sales: 1500, Inventory: 32,
		Category: domain.CategoryElectronics, Region: domain.RegionNorth,
	}, records[0])
	assert.Equal(t, "Chair", records[1].Product)
	assert.Equal(t, 10.25, records[1].Sales)
}

func TestReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{name: "Vazio", input: "", wantMsg: "cabeçalho"},
		{name: "Coluna ausente", input: "product,date,sales\n", wantMsg: "inventory"},
		{name: "Vendas inválidas", input: "product,date,sales,inventory,category,region\nA,01/01/2024,muito,1,Books,North\n", wantMsg: "linha 2"},
		{name: "Data inválida", input: "product,date,sales,inventory,category,region\nA,31-01-2024,1,1,Books,North\n", wantMsg: "linha 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
