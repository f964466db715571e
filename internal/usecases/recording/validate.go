package recording

import (
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// Validate confere os campos obrigatórios e devolve o input com a data
// normalizada para YYYY-MM-DD.
func Validate(input domain.SalesRecordInput) (domain.SalesRecordInput, error) {
	if strings.TrimSpace(input.Product) == "" {
		return input, NewRecordError(ErrProductRequired, apiErrors.ErrMissingRequiredData, "informe o nome do produto")
	}

	date, err := utils.NormalizeDate(input.Date)
	if err != nil {
		return input, NewRecordError(ErrInvalidDate, apiErrors.ErrInvalidFormat, err.Error())
	}
	input.Date = date

	if input.Sales < 0 {
		return input, NewRecordError(ErrNegativeSales, apiErrors.ErrInvalidValue, "")
	}

	if input.Inventory < 0 {
		return input, NewRecordError(ErrNegativeInventory, apiErrors.ErrInvalidValue, "")
	}

	if !input.Category.IsValid() {
		return input, NewRecordError(ErrUnknownCategory, apiErrors.ErrInvalidValue, string(input.Category))
	}

	if !input.Region.IsValid() {
		return input, NewRecordError(ErrUnknownRegion, apiErrors.ErrInvalidValue, string(input.Region))
	}

	input.Product = strings.TrimSpace(input.Product)
	return input, nil
}
