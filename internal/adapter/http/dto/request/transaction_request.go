package request

import (
	"strings"

	"gateway_bridge/internal/domain/entities"
)

// CardRequest carries the card for authorize and purchase. It is never echoed back.
type CardRequest struct {
	Number            string `json:"number" binding:"required" example:"4111111111111111"`
	VerificationValue string `json:"verification_value" example:"123"`
	Month             int    `json:"month" binding:"required,min=1,max=12" example:"9"`
	Year              int    `json:"year" binding:"required" example:"2030"`
	FirstName         string `json:"first_name" example:"John"`
	LastName          string `json:"last_name" example:"Doe"`
	Brand             string `json:"brand,omitempty" example:"visa"`
}

// SaleRequest is the payload of authorize and purchase.
type SaleRequest struct {
	Amount   string         `json:"amount" binding:"required" example:"10.00"`
	Currency string         `json:"currency" binding:"required" example:"USD"`
	Card     CardRequest    `json:"card" binding:"required"`
	Options  map[string]any `json:"options"`
}

// CaptureRequest settles a previous authorization.
type CaptureRequest struct {
	Amount        string         `json:"amount" binding:"required" example:"10.00"`
	Currency      string         `json:"currency" binding:"required" example:"USD"`
	Authorization string         `json:"authorization" binding:"required" example:"2rc4br"`
	Options       map[string]any `json:"options"`
}

// VoidRequest cancels a previous authorization.
type VoidRequest struct {
	Authorization string         `json:"authorization" binding:"required" example:"2rc4br"`
	Options       map[string]any `json:"options"`
}

// CreditRequest refunds a settled transaction.
type CreditRequest struct {
	Amount         string         `json:"amount" binding:"required" example:"10.00"`
	Currency       string         `json:"currency" binding:"required" example:"USD"`
	Identification string         `json:"identification" binding:"required" example:"2rc4br"`
	Options        map[string]any `json:"options"`
}

func (r CardRequest) ToCreditCard() entities.CreditCard {
	return entities.CreditCard{
		Number:            strings.TrimSpace(r.Number),
		VerificationValue: strings.TrimSpace(r.VerificationValue),
		Month:             r.Month,
		Year:              r.Year,
		FirstName:         strings.TrimSpace(r.FirstName),
		LastName:          strings.TrimSpace(r.LastName),
		Brand:             strings.TrimSpace(r.Brand),
	}
}

func (r SaleRequest) ResolveMoney() (entities.Money, error) {
	return entities.ParseMoney(r.Amount, r.Currency)
}

func (r CaptureRequest) ResolveMoney() (entities.Money, error) {
	return entities.ParseMoney(r.Amount, r.Currency)
}

func (r CreditRequest) ResolveMoney() (entities.Money, error) {
	return entities.ParseMoney(r.Amount, r.Currency)
}

// ToOptions copies the raw options so the request map is never shared with adapters.
func ToOptions(raw map[string]any) entities.Options {
	return entities.Options{}.Merge(entities.Options(raw))
}
