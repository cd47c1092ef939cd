package taxes

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/odyssey-erp/invoicing/internal/masterdata/shared"
)

// ExciseAmount is the flat per-unit excise on fuel and alcohol.
var ExciseAmount = decimal.RequireFromString("5.56")

var (
	TaxFree  = Tax{Code: "ZW", Name: "Tax free", Rate: decimal.Zero, Excise: decimal.Zero}
	Reduced  = Tax{Code: "R8", Name: "Reduced rate", Rate: decimal.RequireFromString("0.08"), Excise: decimal.Zero}
	Standard = Tax{Code: "S23", Name: "Standard rate", Rate: decimal.RequireFromString("0.23"), Excise: decimal.Zero}

	FuelExcise    = Tax{Code: "S23-FUEL", Name: "Standard rate with fuel excise", Rate: Standard.Rate, Excise: ExciseAmount}
	AlcoholExcise = Tax{Code: "S23-ALC", Name: "Standard rate with alcohol excise", Rate: Standard.Rate, Excise: ExciseAmount}
)

var catalog = []Tax{TaxFree, Reduced, Standard, FuelExcise, AlcoholExcise}

// All returns every predefined tax in catalog order.
func All() []Tax {
	return append([]Tax(nil), catalog...)
}

// Lookup finds a predefined tax by code, ignoring case.
func Lookup(code string) (Tax, error) {
	code = strings.TrimSpace(code)
	for _, t := range catalog {
		if strings.EqualFold(t.Code, code) {
			return t, nil
		}
	}
	return Tax{}, fmt.Errorf("tax %q: %w", code, shared.ErrNotFound)
}
