package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the platform currency. There is no currency
// conversion anywhere in the system.
const DefaultCurrency = "USD"

// FormatMinorUnits renders an integer minor-unit amount with two
// decimal places, e.g. 35000 -> "350.00".
func FormatMinorUnits(amount int64) string {
	return decimal.New(amount, -2).StringFixed(2)
}

// FormatMoney renders a major-unit amount as "<currency> <amount>".
func FormatMoney(amount decimal.Decimal) string {
	return fmt.Sprintf("%s %s", DefaultCurrency, amount.StringFixed(2))
}
