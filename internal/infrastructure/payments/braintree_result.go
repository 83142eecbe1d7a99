package payments

import (
	"context"
	"fmt"

	"gateway_bridge/internal/domain/entities"
)

// BraintreeEnvironment selects the Braintree endpoint family.
type BraintreeEnvironment string

const (
	BraintreeSandbox    BraintreeEnvironment = "sandbox"
	BraintreeProduction BraintreeEnvironment = "production"
)

// BraintreeClientConfig travels with every call instead of living in shared SDK state,
// so concurrent callers never see each other's credentials.
type BraintreeClientConfig struct {
	Environment BraintreeEnvironment
	MerchantID  string
	PublicKey   string
	PrivateKey  string
}

// BraintreeAction is the closed set of transaction calls the adapter issues.
type BraintreeAction string

const (
	BraintreeActionSale                BraintreeAction = "sale"
	BraintreeActionSubmitForSettlement BraintreeAction = "submit_for_settlement"
	BraintreeActionVoid                BraintreeAction = "void"
	BraintreeActionRefund              BraintreeAction = "refund"
)

// BraintreeTransactor is the vendor SDK collaborator: one action, one result.
type BraintreeTransactor interface {
	Perform(ctx context.Context, cfg BraintreeClientConfig, action BraintreeAction, params map[string]any) (BraintreeResult, error)
}

// BraintreeTransaction is the subset of transaction attributes the adapter reads.
// Attributes keeps everything the gateway sent, for diagnostics.
type BraintreeTransaction struct {
	ID                           string
	Status                       string
	AVSPostalCodeResponseCode    string
	AVSStreetAddressResponseCode string
	CVVResponseCode              string
	Attributes                   map[string]any
}

// BraintreeResult is either a BraintreeSuccessResult or a BraintreeErrorResult.
type BraintreeResult interface {
	isBraintreeResult()
}

type BraintreeSuccessResult struct {
	Transaction BraintreeTransaction
}

// BraintreeErrorResult carries the gateway message. Transaction is set when the gateway
// created one anyway, e.g. a processor decline.
type BraintreeErrorResult struct {
	Message     string
	Transaction *BraintreeTransaction
}

func (BraintreeSuccessResult) isBraintreeResult() {}
func (BraintreeErrorResult) isBraintreeResult()   {}

func parseBraintreeResult(result BraintreeResult) (parsedResponse, error) {
	switch r := result.(type) {
	case BraintreeSuccessResult:
		return parsedResponse{
			success:         true,
			message:         r.Transaction.Status,
			authorizationID: r.Transaction.ID,
			avsCode:         r.Transaction.AVSPostalCodeResponseCode,
			cvvCode:         r.Transaction.CVVResponseCode,
			params:          attributesOrEmpty(r.Transaction.Attributes),
		}, nil
	case BraintreeErrorResult:
		params := map[string]any{}
		if r.Transaction != nil {
			params = attributesOrEmpty(r.Transaction.Attributes)
		}
		return parsedResponse{
			success: false,
			message: r.Message,
			params:  params,
		}, nil
	default:
		return parsedResponse{}, &entities.ParseError{Gateway: braintreeName, Err: fmt.Errorf("unexpected result %T", result)}
	}
}

func attributesOrEmpty(attrs map[string]any) map[string]any {
	if attrs == nil {
		return map[string]any{}
	}
	return attrs
}
