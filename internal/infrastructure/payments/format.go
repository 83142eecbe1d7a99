package payments

import (
	"fmt"
	"strings"

	"gateway_bridge/internal/domain/entities"
)

// twoDigits zero-pads a month (or any small number) to exactly two digits.
func twoDigits(n int) string {
	return fmt.Sprintf("%02d", n%100)
}

// twoDigitYear keeps the last two digits of a year: 2015 -> "15".
func twoDigitYear(year int) string {
	return twoDigits(year % 100)
}

// fourDigitYear expands a two-digit year into the current century.
func fourDigitYear(year int) string {
	if year < 100 {
		year += 2000
	}
	return fmt.Sprintf("%04d", year)
}

func cardholderName(card entities.CreditCard, upper bool) string {
	name := card.Name()
	if upper {
		return strings.ToUpper(name)
	}
	return name
}

// currencyLookup maps an ISO code onto a gateway currency identifier.
func currencyLookup[T any](table map[string]T, code string) (T, error) {
	if v, ok := table[strings.ToUpper(code)]; ok {
		return v, nil
	}
	var zero T
	return zero, &entities.UnsupportedValueError{Kind: "currency", Value: code}
}

// lookupEnum maps a gateway-agnostic code onto the gateway's label. Unknown codes are
// rejected rather than passed through.
func lookupEnum(kind string, table map[string]string, code string) (string, error) {
	if v, ok := table[code]; ok {
		return v, nil
	}
	return "", &entities.UnsupportedValueError{Kind: kind, Value: code}
}

// moneyCurrency picks the currency of the amount, falling back to the adapter default.
func moneyCurrency(money entities.Money, fallback string) string {
	if money.IsSet() {
		return money.Currency()
	}
	return fallback
}
