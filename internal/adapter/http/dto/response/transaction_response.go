package response

import (
	"time"

	"gateway_bridge/internal/domain/entities"
)

type AVSResultResponse struct {
	Code    string `json:"code" example:"I"`
	Message string `json:"message,omitempty" example:"Address not verified."`
}

// TransactionResponse is the normalized gateway answer. Declines are success=false with
// HTTP 200.
type TransactionResponse struct {
	Gateway       string             `json:"gateway" example:"braintree"`
	Success       bool               `json:"success" example:"true"`
	Message       string             `json:"message" example:"authorized"`
	Authorization *string            `json:"authorization,omitempty" example:"2rc4br"`
	Test          bool               `json:"test" example:"true"`
	FraudReview   *bool              `json:"fraud_review,omitempty"`
	AVSResult     *AVSResultResponse `json:"avs_result,omitempty"`
	CVVResult     *string            `json:"cvv_result,omitempty" example:"M"`
	Params        map[string]any     `json:"params,omitempty"`
}

func FromResponse(gateway string, r entities.Response) TransactionResponse {
	out := TransactionResponse{
		Gateway:       gateway,
		Success:       r.Success,
		Message:       r.Message,
		Authorization: r.Authorization,
		Test:          r.Test,
		FraudReview:   r.FraudReview,
		CVVResult:     r.CVVResult,
		Params:        r.Params,
	}
	if r.AVSResult != nil {
		out.AVSResult = &AVSResultResponse{Code: r.AVSResult.Code, Message: r.AVSResult.Message}
	}
	return out
}

type TransactionRecordResponse struct {
	ID            string         `json:"id"`
	Gateway       string         `json:"gateway"`
	Action        string         `json:"action"`
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

func FromTransactionRecord(r entities.TransactionRecord) TransactionRecordResponse {
	return TransactionRecordResponse{
		ID:            r.ID,
		Gateway:       r.Gateway,
		Action:        string(r.Action),
		Date:          r.Date,
		Success:       r.Success,
		Message:       r.Message,
		Authorization: r.Authorization,
		Reference:     r.Reference,
		Amount:        r.Amount,
		Currency:      r.Currency,
		Test:          r.Test,
		Params:        r.Params,
	}
}

func FromTransactionRecords(records []entities.TransactionRecord) []TransactionRecordResponse {
	out := make([]TransactionRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromTransactionRecord(r))
	}
	return out
}

type GatewaysResponse struct {
	Gateways []string `json:"gateways" example:"braintree,piraeus"`
}
