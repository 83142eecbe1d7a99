package payments

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"gateway_bridge/internal/domain/entities"
	"gateway_bridge/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/refund"
	"go.uber.org/zap"
)

const mercadoPagoName = "mercadopago"

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

var mercadoPagoCredentials = []string{"access_token"}

// Per-call keys for the card token flow. Mercado Pago never accepts a raw PAN from the
// server side; the card is tokenized by the client first.
var mercadoPagoSaleKeys = []string{"token", "payment_method_id", "payer_email"}

var mercadoPagoCurrencies = map[string]string{
	"ARS": "ARS", "BRL": "BRL", "CLP": "CLP", "COP": "COP", "MXN": "MXN", "PEN": "PEN", "UYU": "UYU",
}

// mercadoPagoSuccess lists the payment status that means the action went through.
var mercadoPagoSuccess = map[entities.Action]string{
	entities.ActionAuthorize: "authorized",
	entities.ActionPurchase:  "approved",
	entities.ActionCapture:   "approved",
	entities.ActionVoid:      "cancelled",
	entities.ActionCredit:    "approved",
}

type mercadoPagoPayments interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
	Cancel(ctx context.Context, id int) (*payment.Response, error)
	CaptureAmount(ctx context.Context, id int, amount float64) (*payment.Response, error)
}

type mercadoPagoRefunds interface {
	CreatePartialRefund(ctx context.Context, paymentID int, amount float64) (*refund.Response, error)
}

// MercadoPagoGateway uses the official SDK clients. They are built once from an immutable
// config and hold no per-call state.
type MercadoPagoGateway struct {
	payments mercadoPagoPayments
	refunds  mercadoPagoRefunds
	currency string
	test     bool
	logger   *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(credentials entities.Options, logger *zap.Logger) (*MercadoPagoGateway, error) {
	if err := credentials.Require(mercadoPagoCredentials...); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	accessToken := strings.TrimSpace(credentials.String("access_token"))
	if accessToken == "" {
		logger.Error("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		logger.Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	logger.Info("[payment][gateway] Mercado Pago client initialized")

	return newMercadoPagoGateway(credentials, payment.NewClient(cfg), refund.NewClient(cfg), logger), nil
}

func newMercadoPagoGateway(credentials entities.Options, payments mercadoPagoPayments, refunds mercadoPagoRefunds, logger *zap.Logger) *MercadoPagoGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	currency := "BRL"
	if credentials.Has("currency") {
		currency = credentials.String("currency")
	}
	// TEST- access tokens belong to Mercado Pago sandbox accounts.
	test := credentials.Bool("test") || strings.HasPrefix(credentials.String("access_token"), "TEST-")

	return &MercadoPagoGateway{
		payments: payments,
		refunds:  refunds,
		currency: currency,
		test:     test,
		logger:   logger.With(zap.String("gateway", mercadoPagoName)),
	}
}

func (g *MercadoPagoGateway) Name() string { return mercadoPagoName }

func (g *MercadoPagoGateway) Authorize(ctx context.Context, money entities.Money, card entities.CreditCard, opts entities.Options) (entities.Response, error) {
	return g.sale(ctx, entities.ActionAuthorize, money, card, opts, false)
}

func (g *MercadoPagoGateway) Purchase(ctx context.Context, money entities.Money, card entities.CreditCard, opts entities.Options) (entities.Response, error) {
	return g.sale(ctx, entities.ActionPurchase, money, card, opts, true)
}

func (g *MercadoPagoGateway) Capture(ctx context.Context, money entities.Money, authorization string, opts entities.Options) (entities.Response, error) {
	id, err := mercadoPagoPaymentID(authorization, "authorization")
	if err != nil {
		return entities.Response{}, err
	}
	amount, err := g.amount(money)
	if err != nil {
		return entities.Response{}, err
	}

	return g.commitPayment(ctx, entities.ActionCapture, func() (*payment.Response, error) {
		return g.payments.CaptureAmount(ctx, id, amount)
	})
}

func (g *MercadoPagoGateway) Void(ctx context.Context, authorization string, opts entities.Options) (entities.Response, error) {
	id, err := mercadoPagoPaymentID(authorization, "authorization")
	if err != nil {
		return entities.Response{}, err
	}

	return g.commitPayment(ctx, entities.ActionVoid, func() (*payment.Response, error) {
		return g.payments.Cancel(ctx, id)
	})
}

func (g *MercadoPagoGateway) Credit(ctx context.Context, money entities.Money, identification string, opts entities.Options) (entities.Response, error) {
	id, err := mercadoPagoPaymentID(identification, "identification")
	if err != nil {
		return entities.Response{}, err
	}
	amount, err := g.amount(money)
	if err != nil {
		return entities.Response{}, err
	}

	g.logger.Info("[payment][gateway] commit start", zap.String("action", string(entities.ActionCredit)))
	resp, err := g.refunds.CreatePartialRefund(ctx, id, amount)
	if err != nil {
		return g.sdkFailure(entities.ActionCredit, err)
	}
	return g.normalize(entities.ActionCredit, strconv.Itoa(resp.ID), resp.Status, "", resp)
}

func (g *MercadoPagoGateway) sale(ctx context.Context, action entities.Action, money entities.Money, card entities.CreditCard, opts entities.Options, capture bool) (entities.Response, error) {
	if err := opts.Require(mercadoPagoSaleKeys...); err != nil {
		return entities.Response{}, err
	}
	amount, err := g.amount(money)
	if err != nil {
		return entities.Response{}, err
	}

	post := map[string]any{
		"transaction_amount": amount,
		"token":              opts.String("token"),
		"payment_method_id":  opts.String("payment_method_id"),
		"installments":       1,
		"capture":            capture,
		"payer": map[string]any{
			"email":      opts.String("payer_email"),
			"first_name": card.FirstName,
			"last_name":  card.LastName,
		},
	}
	if opts.Has("order_id") {
		post["external_reference"] = opts.String("order_id")
	}
	if opts.Has("description") {
		post["description"] = opts.String("description")
	}

	b, err := json.Marshal(post)
	if err != nil {
		return entities.Response{}, err
	}
	var req payment.Request
	if err := json.Unmarshal(b, &req); err != nil {
		g.logger.Error("[payment][gateway] payload unmarshal failed", zap.Error(err))
		return entities.Response{}, err
	}

	return g.commitPayment(ctx, action, func() (*payment.Response, error) {
		return g.payments.Create(ctx, req)
	})
}

func (g *MercadoPagoGateway) amount(money entities.Money) (float64, error) {
	if _, err := currencyLookup(mercadoPagoCurrencies, moneyCurrency(money, g.currency)); err != nil {
		return 0, err
	}
	return money.Amount().Round(2).InexactFloat64(), nil
}

func (g *MercadoPagoGateway) commitPayment(ctx context.Context, action entities.Action, call func() (*payment.Response, error)) (entities.Response, error) {
	g.logger.Info("[payment][gateway] commit start", zap.String("action", string(action)))
	resp, err := call()
	if err != nil {
		return g.sdkFailure(action, err)
	}
	return g.normalize(action, strconv.Itoa(resp.ID), resp.Status, resp.StatusDetail, resp)
}

func (g *MercadoPagoGateway) normalize(action entities.Action, id, status, detail string, raw any) (entities.Response, error) {
	params := map[string]any{}
	b, err := json.Marshal(raw)
	if err == nil {
		err = json.Unmarshal(b, &params)
	}
	if err != nil {
		g.logger.Error("[payment][gateway] response marshal failed", zap.Error(err))
		return entities.Response{}, &entities.ParseError{Gateway: mercadoPagoName, Err: err}
	}

	message := detail
	if message == "" {
		message = status
	}
	success := status == mercadoPagoSuccess[action]
	parsed := parsedResponse{success: success, message: message, params: params}
	if id != "" && id != "0" {
		parsed.authorizationID = id
	}

	resp := newResponse(parsed, g.test)
	g.logger.Info("[payment][gateway] commit done",
		zap.String("action", string(action)),
		zap.String("provider_payment_id", id),
		zap.String("provider_status", status),
	)
	return resp, nil
}

// sdkFailure maps SDK errors. Payer rejections (customer not found, invalid users) are
// declines; any other 400 is a request the API refused to validate; the rest is transport.
func (g *MercadoPagoGateway) sdkFailure(action entities.Action, err error) (entities.Response, error) {
	g.logger.Error("[payment][gateway] sdk call failed", zap.String("action", string(action)), zap.Error(err))
	switch {
	case isGatewayCustomerNotFound(err) || isGatewayInvalidUsers(err):
		return newResponse(parsedResponse{
			success: false,
			message: err.Error(),
			params:  map[string]any{},
		}, g.test), nil
	case isGatewayBadRequest(err):
		return entities.Response{}, &entities.UnsupportedValueError{Kind: "mercadopago request", Value: err.Error()}
	}
	return entities.Response{}, &entities.TransportError{Gateway: mercadoPagoName, Err: err}
}

func mercadoPagoPaymentID(reference, key string) (int, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return 0, &entities.ConfigurationError{Key: key}
	}
	id, err := strconv.Atoi(reference)
	if err != nil {
		return 0, &entities.UnsupportedValueError{Kind: key, Value: reference}
	}
	return id, nil
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
