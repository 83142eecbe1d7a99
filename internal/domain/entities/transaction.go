package entities

import "time"

// Action is the caller-facing transaction operation.
type Action string

const (
	ActionAuthorize Action = "authorize"
	ActionPurchase  Action = "purchase"
	ActionCapture   Action = "capture"
	ActionVoid      Action = "void"
	ActionCredit    Action = "credit"
)

// TransactionRecord is one journal line written after a gateway call, for traceability.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (authorization-index): authorization
//
// It keeps the normalized Response only. Card data never reaches the journal.
type TransactionRecord struct {
	ID            string         `json:"id"`
	Gateway       string         `json:"gateway"`
	Action        Action         `json:"action"`
	Date          time.Time      `json:"date"`
	Success       bool           `json:"success"`
	Message       string         `json:"message"`
	Authorization string         `json:"authorization,omitempty"`
	Reference     string         `json:"reference,omitempty"`
	Amount        string         `json:"amount,omitempty"`
	Currency      string         `json:"currency,omitempty"`
	Test          bool           `json:"test"`
	Params        map[string]any `json:"params,omitempty"`
}
