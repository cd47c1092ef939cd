package products

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/odyssey-erp/invoicing/internal/shared"
)

var kinds = map[string]Category{
	"tax-free": CategoryTaxFree,
	"dairy":    CategoryDairy,
	"other":    CategoryOther,
	"fuel":     CategoryFuelCanister,
	"wine":     CategoryBottleOfWine,
}

// Kinds lists the accepted kind names in sorted order.
func Kinds() []string {
	out := make([]string, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ParseCategory maps a kind name such as "dairy" to its category.
func ParseCategory(kind string) (Category, error) {
	c, ok := kinds[strings.ToLower(strings.TrimSpace(kind))]
	if !ok {
		return "", fmt.Errorf("%w: unknown product kind %q (want one of %s)", shared.ErrInvalidArgument, kind, strings.Join(Kinds(), ", "))
	}
	return c, nil
}

// Parse builds a product from its textual kind, name and price. A missing or
// malformed price is rejected.
func Parse(kind, name, price string) (Product, error) {
	category, err := ParseCategory(kind)
	if err != nil {
		return nil, err
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil {
		return nil, fmt.Errorf("%w: price %q: %v", shared.ErrInvalidArgument, price, err)
	}
	return New(category, name, amount)
}
