package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsCardNumber reports whether s is a Luhn-valid card number. Top-up
// requests carry the card the patient pays with; anything failing the
// checksum is rejected before touching the balance.
func IsCardNumber(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
