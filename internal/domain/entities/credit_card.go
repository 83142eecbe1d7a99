package entities

import (
	"regexp"
	"strings"
)

// Card brands understood by the adapters.
const (
	CardBrandVisa            = "visa"
	CardBrandMaster          = "master"
	CardBrandAmericanExpress = "american_express"
	CardBrandDiscover        = "discover"
	CardBrandMaestro         = "maestro"
	CardBrandDinersClub      = "diners_club"
	CardBrandJCB             = "jcb"
)

var cardBrandPatterns = []struct {
	brand   string
	pattern *regexp.Regexp
}{
	{CardBrandVisa, regexp.MustCompile(`^4\d{12}(\d{3})?(\d{3})?$`)},
	{CardBrandMaster, regexp.MustCompile(`^(5[1-5]\d{4}|2(22[1-9]|2[3-9]\d|[3-6]\d\d|7[01]\d|720)\d{2})\d{10}$`)},
	{CardBrandAmericanExpress, regexp.MustCompile(`^3[47]\d{13}$`)},
	{CardBrandDiscover, regexp.MustCompile(`^(6011|65\d{2}|64[4-9]\d)\d{12}$`)},
	{CardBrandDinersClub, regexp.MustCompile(`^3(0[0-5]|[68]\d)\d{11}$`)},
	{CardBrandJCB, regexp.MustCompile(`^35(28|29|[3-8]\d)\d{12}$`)},
	{CardBrandMaestro, regexp.MustCompile(`^(5[06-8]|6\d)\d{10,17}$`)},
}

// CreditCard carries the card data for one outbound call. It is never logged nor stored.
type CreditCard struct {
	Number            string `json:"-"`
	VerificationValue string `json:"-"`
	Month             int    `json:"month"`
	Year              int    `json:"year"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Brand             string `json:"brand,omitempty"`
}

// Name is the cardholder name as printed on the card.
func (c CreditCard) Name() string {
	return strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
}

// Type returns the explicit brand, or the one detected from the number.
func (c CreditCard) Type() string {
	if c.Brand != "" {
		return strings.ToLower(c.Brand)
	}
	return DetectCardBrand(c.Number)
}

// DisplayNumber masks every digit except the last four.
func (c CreditCard) DisplayNumber() string {
	digits := onlyDigits(c.Number)
	if len(digits) <= 4 {
		return digits
	}
	return strings.Repeat("X", len(digits)-4) + digits[len(digits)-4:]
}

// DetectCardBrand guesses the brand from the PAN prefix and length. Unknown numbers
// yield an empty string.
func DetectCardBrand(number string) string {
	digits := onlyDigits(number)
	for _, p := range cardBrandPatterns {
		if p.pattern.MatchString(digits) {
			return p.brand
		}
	}
	return ""
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
