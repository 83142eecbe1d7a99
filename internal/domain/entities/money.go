package entities

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var ErrNegativeAmount = errors.New("amount must not be negative")

// MoneyFormat selects how a gateway expects amounts on the wire.
type MoneyFormat string

const (
	// MoneyFormatDollars renders a major-unit decimal string with two places ("12.34").
	MoneyFormatDollars MoneyFormat = "dollars"
	// MoneyFormatCents renders an integer count of the currency's minor unit ("1234").
	MoneyFormatCents MoneyFormat = "cents"
)

// Money is a non-negative amount in a given ISO 4217 currency.
// The zero value has no currency; use NewMoney or ParseMoney.
type Money struct {
	amount   decimal.Decimal
	currency string
}

func NewMoney(amount decimal.Decimal, code string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return Money{}, &UnsupportedValueError{Kind: "currency", Value: code}
	}
	return Money{amount: amount, currency: unit.String()}, nil
}

// ParseMoney builds Money from a decimal string such as "10.00".
func ParseMoney(amount, code string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return Money{}, &UnsupportedValueError{Kind: "amount", Value: amount}
	}
	return NewMoney(d, code)
}

// MoneyFromCents builds Money from a minor-unit integer.
func MoneyFromCents(cents int64, code string) (Money, error) {
	m, err := NewMoney(decimal.NewFromInt(cents), code)
	if err != nil {
		return Money{}, err
	}
	m.amount = m.amount.Shift(-m.scale())
	return m, nil
}

func (m Money) Amount() decimal.Decimal { return m.amount }
func (m Money) Currency() string        { return m.currency }
func (m Money) IsZero() bool            { return m.amount.IsZero() }

// IsSet reports whether the value was built through a constructor.
func (m Money) IsSet() bool { return m.currency != "" }

// Dollars is the major-unit representation with exactly two decimals.
func (m Money) Dollars() string {
	return m.amount.StringFixed(2)
}

// Cents is the amount expressed in the currency's smallest unit.
func (m Money) Cents() int64 {
	return m.amount.Shift(m.scale()).Round(0).IntPart()
}

// Format renders the amount according to the gateway money format.
func (m Money) Format(mode MoneyFormat) string {
	if mode == MoneyFormatCents {
		return decimal.NewFromInt(m.Cents()).String()
	}
	return m.Dollars()
}

func (m Money) scale() int32 {
	unit, err := currency.ParseISO(m.currency)
	if err != nil {
		return 2
	}
	scale, _ := currency.Standard.Rounding(unit)
	return int32(scale)
}
