package taxes

import (
	"github.com/odyssey-erp/invoicing/internal/shared"
)

// Validate checks a tax definition.
func Validate(t Tax) error {
	return shared.ValidateStruct(t)
}
