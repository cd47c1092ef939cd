package products

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/odyssey-erp/invoicing/internal/masterdata/taxes"
	"github.com/odyssey-erp/invoicing/internal/shared"
)

var categoryTaxes = map[Category]taxes.Tax{
	CategoryTaxFree:      taxes.TaxFree,
	CategoryDairy:        taxes.Reduced,
	CategoryOther:        taxes.Standard,
	CategoryFuelCanister: taxes.FuelExcise,
	CategoryBottleOfWine: taxes.AlcoholExcise,
}

// TaxFor returns the tax applied to products of category c.
func TaxFor(c Category) (taxes.Tax, bool) {
	t, ok := categoryTaxes[c]
	return t, ok
}

// New builds a product of the given category.
func New(category Category, name string, price decimal.Decimal) (Product, error) {
	tax, ok := categoryTaxes[category]
	if !ok {
		return nil, fmt.Errorf("%w: unknown product category %q", shared.ErrInvalidArgument, category)
	}
	if err := validate(name, price); err != nil {
		return nil, err
	}
	base := taxedProduct{name: name, price: price, rate: tax.Rate, category: category}
	if !tax.HasExcise() {
		return base, nil
	}
	return exciseProduct{Product: base, excise: tax.Excise, category: category}, nil
}

// NewTaxFree builds a product carrying no tax.
func NewTaxFree(name string, price decimal.Decimal) (Product, error) {
	return New(CategoryTaxFree, name, price)
}

// NewDairy builds a product taxed at the reduced 8% rate.
func NewDairy(name string, price decimal.Decimal) (Product, error) {
	return New(CategoryDairy, name, price)
}

// NewOther builds a product taxed at the standard 23% rate.
func NewOther(name string, price decimal.Decimal) (Product, error) {
	return New(CategoryOther, name, price)
}

// NewFuelCanister builds a standard-rate product with fuel excise.
func NewFuelCanister(name string, price decimal.Decimal) (Product, error) {
	return New(CategoryFuelCanister, name, price)
}

// NewBottleOfWine builds a standard-rate product with alcohol excise.
func NewBottleOfWine(name string, price decimal.Decimal) (Product, error) {
	return New(CategoryBottleOfWine, name, price)
}
