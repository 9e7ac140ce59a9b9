package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuhn reports whether s carries a valid Luhn check digit. Order numbers
// are generated with one so references arriving from collaborators can be
// sanity-checked cheaply.
func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
