package payments

import (
	"context"
	"errors"

	"gateway_bridge/internal/domain/entities"
	"gateway_bridge/internal/infrastructure/transport"
	"gateway_bridge/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const braintreeName = "braintree"

var braintreeCredentials = []string{"merchant_id", "public_key", "private_key"}

var braintreeCurrencies = map[string]string{
	"USD": "USD", "EUR": "EUR", "GBP": "GBP", "AUD": "AUD", "CAD": "CAD", "CHF": "CHF",
	"DKK": "DKK", "NOK": "NOK", "SEK": "SEK", "PLN": "PLN", "HKD": "HKD", "SGD": "SGD",
	"NZD": "NZD", "JPY": "JPY",
}

// BraintreeGateway talks to Braintree through a BraintreeTransactor. Amounts are sent
// in major units, expiration dates as two-digit month and year.
type BraintreeGateway struct {
	credentials entities.Options
	currency    string
	test        bool
	transactor  BraintreeTransactor
	logger      *zap.Logger
}

var _ interfaces.IPaymentGateway = (*BraintreeGateway)(nil)

// NewBraintreeGateway requires merchant_id, public_key and private_key. A nil transactor
// selects the Braintree XML gateway client.
func NewBraintreeGateway(credentials entities.Options, transactor BraintreeTransactor, logger *zap.Logger) (*BraintreeGateway, error) {
	if err := credentials.Require(braintreeCredentials...); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if transactor == nil {
		transactor = NewBraintreeHTTPClient(transport.New(), logger)
	}

	currency := "USD"
	if credentials.Has("currency") {
		currency = credentials.String("currency")
	}

	return &BraintreeGateway{
		credentials: credentials,
		currency:    currency,
		test:        credentials.Bool("test"),
		transactor:  transactor,
		logger:      logger.With(zap.String("gateway", braintreeName)),
	}, nil
}

func (g *BraintreeGateway) Name() string { return braintreeName }

func (g *BraintreeGateway) Authorize(ctx context.Context, money entities.Money, card entities.CreditCard, opts entities.Options) (entities.Response, error) {
	post := map[string]any{}
	if err := g.addAmount(post, money); err != nil {
		return entities.Response{}, err
	}
	g.addInvoice(post, opts)
	g.addCreditCard(post, card)

	return g.commit(ctx, entities.ActionAuthorize, BraintreeActionSale, post)
}

func (g *BraintreeGateway) Purchase(ctx context.Context, money entities.Money, card entities.CreditCard, opts entities.Options) (entities.Response, error) {
	post := map[string]any{}
	if err := g.addAmount(post, money); err != nil {
		return entities.Response{}, err
	}
	g.addInvoice(post, opts)
	g.addCreditCard(post, card)
	post["options"] = map[string]any{"submitForSettlement": true}

	return g.commit(ctx, entities.ActionPurchase, BraintreeActionSale, post)
}

func (g *BraintreeGateway) Capture(ctx context.Context, money entities.Money, authorization string, opts entities.Options) (entities.Response, error) {
	if authorization == "" {
		return entities.Response{}, &entities.ConfigurationError{Key: "authorization"}
	}
	post := map[string]any{"id": authorization}
	if err := g.addAmount(post, money); err != nil {
		return entities.Response{}, err
	}

	return g.commit(ctx, entities.ActionCapture, BraintreeActionSubmitForSettlement, post)
}

func (g *BraintreeGateway) Void(ctx context.Context, authorization string, opts entities.Options) (entities.Response, error) {
	if authorization == "" {
		return entities.Response{}, &entities.ConfigurationError{Key: "authorization"}
	}
	post := map[string]any{"id": authorization}

	return g.commit(ctx, entities.ActionVoid, BraintreeActionVoid, post)
}

func (g *BraintreeGateway) Credit(ctx context.Context, money entities.Money, identification string, opts entities.Options) (entities.Response, error) {
	if identification == "" {
		return entities.Response{}, &entities.ConfigurationError{Key: "identification"}
	}
	post := map[string]any{"id": identification}
	if err := g.addAmount(post, money); err != nil {
		return entities.Response{}, err
	}
	g.addInvoice(post, opts)

	return g.commit(ctx, entities.ActionCredit, BraintreeActionRefund, post)
}

func (g *BraintreeGateway) addAmount(post map[string]any, money entities.Money) error {
	if _, err := currencyLookup(braintreeCurrencies, moneyCurrency(money, g.currency)); err != nil {
		return err
	}
	post["amount"] = money.Format(entities.MoneyFormatDollars)
	return nil
}

func (g *BraintreeGateway) addInvoice(post map[string]any, opts entities.Options) {
	if opts.Has("order_id") {
		post["orderId"] = opts.String("order_id")
	}
	if g.credentials.Has("merchant_account_id") {
		post["merchantAccountId"] = g.credentials.String("merchant_account_id")
	}
}

func (g *BraintreeGateway) addCreditCard(post map[string]any, card entities.CreditCard) {
	post["creditCard"] = map[string]any{
		"number":          card.Number,
		"cvv":             card.VerificationValue,
		"expirationMonth": twoDigits(card.Month),
		"expirationYear":  twoDigitYear(card.Year),
	}
}

func (g *BraintreeGateway) clientConfig() BraintreeClientConfig {
	env := BraintreeProduction
	if g.test {
		env = BraintreeSandbox
	}
	return BraintreeClientConfig{
		Environment: env,
		MerchantID:  g.credentials.String("merchant_id"),
		PublicKey:   g.credentials.String("public_key"),
		PrivateKey:  g.credentials.String("private_key"),
	}
}

func (g *BraintreeGateway) commit(ctx context.Context, action entities.Action, btAction BraintreeAction, post map[string]any) (entities.Response, error) {
	cfg := g.clientConfig()
	g.logger.Info("[payment][gateway] commit start",
		zap.String("action", string(action)),
		zap.String("braintree_action", string(btAction)),
		zap.String("environment", string(cfg.Environment)),
	)

	result, err := g.transactor.Perform(ctx, cfg, btAction, post)
	if err != nil {
		g.logger.Error("[payment][gateway] commit failed", zap.String("action", string(action)), zap.Error(err))
		if errors.Is(err, entities.ErrParse) || errors.Is(err, entities.ErrTransport) || errors.Is(err, entities.ErrUnsupportedValue) {
			return entities.Response{}, err
		}
		return entities.Response{}, &entities.TransportError{Gateway: braintreeName, Err: err}
	}

	parsed, err := parseBraintreeResult(result)
	if err != nil {
		g.logger.Error("[payment][gateway] parse failed", zap.String("action", string(action)), zap.Error(err))
		return entities.Response{}, err
	}

	resp := newResponse(parsed, g.test)
	g.logger.Info("[payment][gateway] commit done",
		zap.String("action", string(action)),
		zap.Bool("success", resp.Success),
		zap.String("authorization", resp.AuthorizationID()),
	)
	return resp, nil
}
