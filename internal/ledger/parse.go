package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

var currencyStripper = strings.NewReplacer("£", "", "$", "", "€", "", ",", "", " ", "")

// ParseAmount reads a signed money amount such as "£20", "-10.50" or "1,250".
// The text left after removing currency symbols must be a complete plain
// decimal number; exponent forms like "1e3" are rejected.
func ParseAmount(text string) (decimal.Decimal, error) {
	clean := currencyStripper.Replace(strings.TrimSpace(text))
	if clean == "" || strings.ContainsAny(clean, "eE") {
		return decimal.Zero, ErrParseRejected
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, ErrParseRejected
	}
	return d, nil
}
