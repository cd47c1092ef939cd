package products

import (
	"github.com/shopspring/decimal"
)

// Category identifies how a product is taxed.
type Category string

const (
	CategoryTaxFree      Category = "TAX_FREE"
	CategoryDairy        Category = "DAIRY"
	CategoryOther        Category = "OTHER"
	CategoryFuelCanister Category = "FUEL_CANISTER"
	CategoryBottleOfWine Category = "BOTTLE_OF_WINE"
)

// Product is the capability set an invoice prices lines with.
type Product interface {
	Name() string
	// Price is the net unit price.
	Price() decimal.Decimal
	// TaxRate is the fractional percentage rate, 0.23 for 23%.
	TaxRate() decimal.Decimal
	// PriceWithTax is the gross unit price including any excise.
	PriceWithTax() decimal.Decimal
	Category() Category
}

// taxedProduct applies a percentage rate to the net price.
type taxedProduct struct {
	name     string
	price    decimal.Decimal
	rate     decimal.Decimal
	category Category
}

func (p taxedProduct) Name() string { return p.name }
func (p taxedProduct) Price() decimal.Decimal { return p.price }
func (p taxedProduct) TaxRate() decimal.Decimal { return p.rate }
func (p taxedProduct) Category() Category { return p.category }

func (p taxedProduct) PriceWithTax() decimal.Decimal {
	return p.price.Add(p.price.Mul(p.rate))
}

// exciseProduct adds a flat per-unit surcharge on top of the wrapped
// product's gross price.
type exciseProduct struct {
	Product
	excise   decimal.Decimal
	category Category
}

func (p exciseProduct) Category() Category { return p.category }

func (p exciseProduct) PriceWithTax() decimal.Decimal {
	return p.Product.PriceWithTax().Add(p.excise)
}

// Excise returns the flat surcharge applied per unit.
func (p exciseProduct) Excise() decimal.Decimal { return p.excise }

// Key identifies a product by value. Products with equal keys occupy the
// same invoice line.
type Key struct {
	Category Category
	Name     string
	Price    string
}

// KeyOf returns the value key of p. Prices are compared numerically, so
// 5 and 5.00 produce the same key.
func KeyOf(p Product) Key {
	return Key{
		Category: p.Category(),
		Name:     p.Name(),
		Price:    p.Price().String(),
	}
}

// Equal reports whether a and b are the same product by value.
func Equal(a, b Product) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return KeyOf(a) == KeyOf(b)
}
