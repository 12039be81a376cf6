package payment

import (
	"strings"

	"github.com/Rhymond/go-money"
)

// FormatCents renders an amount in minor units for display, e.g. "$25.00".
// An empty currency is treated as USD.
func FormatCents(cents int64, currency string) string {
	code := strings.ToUpper(currency)
	if code == "" {
		code = money.USD
	}
	return money.New(cents, code).Display()
}
