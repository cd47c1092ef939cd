package shared

import "github.com/shopspring/decimal"

// LineNet returns unitPrice * quantity.
func LineNet(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// LineGross returns unitPriceWithTax * quantity. Per-unit surcharges are
// already part of the unit price, so they scale with quantity.
func LineGross(unitPriceWithTax decimal.Decimal, quantity int) decimal.Decimal {
	return unitPriceWithTax.Mul(decimal.NewFromInt(int64(quantity)))
}

// CalculateLineTotals returns the net, tax and gross amounts of a line. Tax
// is derived as gross minus net.
func CalculateLineTotals(unitPrice, unitPriceWithTax decimal.Decimal, quantity int) (net, tax, gross decimal.Decimal) {
	net = LineNet(unitPrice, quantity)
	gross = LineGross(unitPriceWithTax, quantity)
	tax = gross.Sub(net)
	return
}
