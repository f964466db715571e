package recording

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*domain.SalesRecordInput)
		wantErr  error
		wantCode string
	}{
		{name: "Input válido", mutate: func(*domain.SalesRecordInput) {}},
		{name: "Produto vazio", mutate: func(in *domain.SalesRecordInput) { in.Product = "   " }, wantErr: ErrProductRequired, wantCode: apiErrors.ErrMissingRequiredData},
		{name: "Data inválida", mutate: func(in *domain.SalesRecordInput) { in.Date = "2024/01/01" }, wantErr: ErrInvalidDate, wantCode: apiErrors.ErrInvalidFormat},
		{name: "Vendas negativas", mutate: func(in *domain.SalesRecordInput) { in.Sales = -1 }, wantErr: ErrNegativeSales, wantCode: apiErrors.ErrInvalidValue},
		{name: "Estoque negativo", mutate: func(in *domain.SalesRecordInput) { in.Inventory = -3 }, wantErr: ErrNegativeInventory, wantCode: apiErrors.ErrInvalidValue},
		{name: "Categoria desconhecida", mutate: func(in *domain.SalesRecordInput) { in.Category = "Toys" }, wantErr: ErrUnknownCategory, wantCode: apiErrors.ErrInvalidValue},
		{name: "Região desconhecida", mutate: func(in *domain.SalesRecordInput) { in.Region = "Central" }, wantErr: ErrUnknownRegion, wantCode: apiErrors.ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput("  Laptop  ", 10)
			tt.mutate(&input)

			got, err := Validate(input)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, "Laptop", got.Product)
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
			var recErr *RecordError
			require.True(t, errors.As(err, &recErr))
			assert.Equal(t, tt.wantCode, recErr.Code)
		})
	}
}
