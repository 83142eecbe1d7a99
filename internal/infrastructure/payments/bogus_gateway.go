package payments

import (
	"context"
	"strings"

	"gateway_bridge/internal/domain/entities"
	"gateway_bridge/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	bogusName          = "bogus"
	bogusAuthorization = "53433"
	bogusSuccess       = "Bogus Gateway: Forced success"
	bogusFailure       = "Bogus Gateway: Forced failure"
)

// BogusGateway answers without any network call. Card numbers (and references) ending in
// 1 succeed and those ending in 2 are declined; anything else is rejected as unsupported.
// Follow-ups also accept the authorization it hands out, so authorize then capture works.
type BogusGateway struct {
	logger *zap.Logger
}

var _ interfaces.IPaymentGateway = (*BogusGateway)(nil)

func NewBogusGateway(logger *zap.Logger) *BogusGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BogusGateway{logger: logger.With(zap.String("gateway", bogusName))}
}

func (g *BogusGateway) Name() string { return bogusName }

func (g *BogusGateway) Authorize(ctx context.Context, money entities.Money, card entities.CreditCard, opts entities.Options) (entities.Response, error) {
	return g.forced(entities.ActionAuthorize, card.Number, money)
}

func (g *BogusGateway) Purchase(ctx context.Context, money entities.Money, card entities.CreditCard, opts entities.Options) (entities.Response, error) {
	return g.forced(entities.ActionPurchase, card.Number, money)
}

func (g *BogusGateway) Capture(ctx context.Context, money entities.Money, authorization string, opts entities.Options) (entities.Response, error) {
	return g.forced(entities.ActionCapture, followUpReference(authorization), money)
}

func (g *BogusGateway) Void(ctx context.Context, authorization string, opts entities.Options) (entities.Response, error) {
	return g.forced(entities.ActionVoid, followUpReference(authorization), entities.Money{})
}

func (g *BogusGateway) Credit(ctx context.Context, money entities.Money, identification string, opts entities.Options) (entities.Response, error) {
	return g.forced(entities.ActionCredit, followUpReference(identification), money)
}

// followUpReference maps the issued authorization onto the success reference.
func followUpReference(reference string) string {
	if strings.TrimSpace(reference) == bogusAuthorization {
		return "1"
	}
	return reference
}

func (g *BogusGateway) forced(action entities.Action, reference string, money entities.Money) (entities.Response, error) {
	params := map[string]any{"action": string(action)}
	if money.IsSet() {
		params["amount"] = money.Dollars()
		params["currency"] = money.Currency()
	}

	var parsed parsedResponse
	switch {
	case strings.HasSuffix(reference, "1"):
		parsed = parsedResponse{success: true, message: bogusSuccess, authorizationID: bogusAuthorization, params: params}
	case strings.HasSuffix(reference, "2"):
		parsed = parsedResponse{success: false, message: bogusFailure, params: params}
	default:
		return entities.Response{}, &entities.UnsupportedValueError{Kind: "bogus reference", Value: "use a value ending in 1 for success or 2 for failure"}
	}

	g.logger.Info("[payment][gateway] mock commit", zap.String("action", string(action)), zap.Bool("success", parsed.success))
	return newResponse(parsed, true), nil
}
