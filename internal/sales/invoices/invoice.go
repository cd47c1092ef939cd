package invoices

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/odyssey-erp/invoicing/internal/masterdata/products"
	salesshared "github.com/odyssey-erp/invoicing/internal/sales/shared"
	"github.com/odyssey-erp/invoicing/internal/shared"
)

// Line is one product and its accumulated quantity.
type Line struct {
	Product  products.Product
	Quantity int
}

// Net returns the line amount before tax.
func (l Line) Net() decimal.Decimal {
	return salesshared.LineNet(l.Product.Price(), l.Quantity)
}

// Gross returns the line amount including tax and excise.
func (l Line) Gross() decimal.Decimal {
	return salesshared.LineGross(l.Product.PriceWithTax(), l.Quantity)
}

// Totals returns the net, tax and gross amounts of the line.
func (l Line) Totals() (net, tax, gross decimal.Decimal) {
	return salesshared.CalculateLineTotals(l.Product.Price(), l.Product.PriceWithTax(), l.Quantity)
}

// Invoice accumulates product lines. Products that are equal by value share
// a line. An Invoice is not safe for concurrent mutation.
type Invoice struct {
	number int64
	index  map[products.Key]int
	lines  []Line
}

// New creates an empty invoice numbered from the process-wide sequence.
func New() *Invoice {
	return NewWithSequence(defaultSequence)
}

// NewWithSequence creates an empty invoice numbered from seq, or from the
// process-wide sequence when seq is nil.
func NewWithSequence(seq *Sequence) *Invoice {
	if seq == nil {
		seq = defaultSequence
	}
	return &Invoice{
		number: seq.Next(),
		index:  make(map[products.Key]int),
	}
}

// Number returns the invoice number assigned at construction.
func (inv *Invoice) Number() int64 {
	return inv.number
}

// Add adds a single unit of product.
func (inv *Invoice) Add(product products.Product) error {
	return inv.AddProduct(product, 1)
}

// AddProduct adds quantity units of product. A product already on the
// invoice has its quantity increased. On error the invoice is unchanged.
func (inv *Invoice) AddProduct(product products.Product, quantity int) error {
	if product == nil {
		return fmt.Errorf("%w: product is required", shared.ErrInvalidArgument)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive, got %d", shared.ErrInvalidArgument, quantity)
	}

	key := products.KeyOf(product)
	if i, ok := inv.index[key]; ok {
		if quantity > math.MaxInt-inv.lines[i].Quantity {
			return fmt.Errorf("%w: quantity overflow", shared.ErrInvalidArgument)
		}
		inv.lines[i].Quantity += quantity
		return nil
	}
	inv.index[key] = len(inv.lines)
	inv.lines = append(inv.lines, Line{Product: product, Quantity: quantity})
	return nil
}

// Products returns a copy of the invoice lines in the order they were first
// added.
func (inv *Invoice) Products() []Line {
	return append([]Line(nil), inv.lines...)
}

// Quantity returns the quantity on the line matching product, or 0.
func (inv *Invoice) Quantity(product products.Product) int {
	if product == nil {
		return 0
	}
	i, ok := inv.index[products.KeyOf(product)]
	if !ok {
		return 0
	}
	return inv.lines[i].Quantity
}

// Len returns the number of distinct lines.
func (inv *Invoice) Len() int {
	return len(inv.lines)
}

// NetTotal sums price * quantity over all lines.
func (inv *Invoice) NetTotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range inv.lines {
		total = total.Add(line.Net())
	}
	return total
}

// GrossTotal sums price with tax * quantity over all lines.
func (inv *Invoice) GrossTotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range inv.lines {
		total = total.Add(line.Gross())
	}
	return total
}

// TaxTotal is GrossTotal minus NetTotal.
func (inv *Invoice) TaxTotal() decimal.Decimal {
	return inv.GrossTotal().Sub(inv.NetTotal())
}
