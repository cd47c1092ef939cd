package products

import (
	"github.com/shopspring/decimal"

	"github.com/odyssey-erp/invoicing/internal/shared"
)

type productInput struct {
	Name  string          `json:"name" validate:"notblank"`
	Price decimal.Decimal `json:"price" validate:"dgte=0"`
}

func validate(name string, price decimal.Decimal) error {
	return shared.ValidateStruct(productInput{Name: name, Price: price})
}
