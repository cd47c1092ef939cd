package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/odyssey-erp/invoicing/internal/masterdata/products"
	"github.com/odyssey-erp/invoicing/internal/shared"
)

type lineSpec struct {
	product  products.Product
	quantity int
}

// parseLineSpec reads KIND:NAME:PRICE[:QTY].
func parseLineSpec(arg string) (lineSpec, error) {
	parts := strings.Split(arg, ":")
	if len(parts) != 3 && len(parts) != 4 {
		return lineSpec{}, fmt.Errorf("%w: line %q: want KIND:NAME:PRICE[:QTY]", shared.ErrInvalidArgument, arg)
	}
	product, err := products.Parse(parts[0], parts[1], parts[2])
	if err != nil {
		return lineSpec{}, fmt.Errorf("line %q: %w", arg, err)
	}
	quantity := 1
	if len(parts) == 4 {
		quantity, err = strconv.Atoi(strings.TrimSpace(parts[3]))
		if err != nil {
			return lineSpec{}, fmt.Errorf("%w: line %q: quantity: %v", shared.ErrInvalidArgument, arg, err)
		}
	}
	return lineSpec{product: product, quantity: quantity}, nil
}
