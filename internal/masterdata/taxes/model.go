package taxes

import "github.com/shopspring/decimal"

// Tax represents a tax configuration. Rate is fractional (0.23 for 23%);
// Excise is a flat per-unit amount added after the percentage.
type Tax struct {
	Code   string          `json:"code" validate:"notblank,max=32"`
	Name   string          `json:"name" validate:"notblank,max=100"`
	Rate   decimal.Decimal `json:"rate" validate:"dgte=0,dlte=1"`
	Excise decimal.Decimal `json:"excise" validate:"dgte=0"`
}

// Apply returns the gross amount for a single unit priced at net.
func (t Tax) Apply(net decimal.Decimal) decimal.Decimal {
	return net.Add(net.Mul(t.Rate)).Add(t.Excise)
}

// HasExcise reports whether the tax carries a flat surcharge.
func (t Tax) HasExcise() bool {
	return t.Excise.IsPositive()
}
