package payments

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"

	"gateway_bridge/internal/domain/entities"
	"gateway_bridge/internal/infrastructure/transport"
	"gateway_bridge/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	piraeusName       = "piraeus"
	piraeusTestURL    = "https://paycenter.piraeusbank.gr/services/paymentgateway.asmx"
	piraeusLiveURL    = "https://paycenter.piraeusbank.gr/services/paymentgateway.asmx"
	piraeusSOAPAction = `"http://piraeusbank.gr/paycenter/ProcessTransaction"`

	piraeusExpirePreauthDays = 30
)

// piraeusRequestType is the closed set of Paycenter request types.
type piraeusRequestType string

const (
	piraeusAuthorize   piraeusRequestType = "AUTHORIZE"
	piraeusSale        piraeusRequestType = "SALE"
	piraeusSettle      piraeusRequestType = "SETTLE"
	piraeusVoidRequest piraeusRequestType = "VOIDREQUEST"
	piraeusRefund      piraeusRequestType = "REFUND"
)

var piraeusCredentials = []string{"acquire_id", "merchant_id", "pos_id", "user", "password", "channel_type"}

var piraeusCentinelKeys = []string{"cavv", "eci_flag", "xid", "enrolled", "pares_status", "signature_verification"}

var piraeusCurrencies = map[string]int{
	"USD": 840, "GRD": 300, "EUR": 978,
}

var piraeusEnrolled = map[string]string{
	"Y": "Yes",
	"N": "No",
	"U": "Undefined",
}

var piraeusPARes = map[string]string{
	"U": "Unknown",
	"A": "Attempted",
	"Y": "Succeded",
	"N": "Failed",
}

var piraeusSignature = map[string]string{
	"Y": "Yes",
	"N": "No",
	"U": "Undefined",
}

var piraeusCardTypes = map[string]string{
	entities.CardBrandVisa:   "VISA",
	entities.CardBrandMaster: "MasterCard",
}

// PiraeusGateway speaks the Piraeus Bank Paycenter SOAP 1.2 API.
type PiraeusGateway struct {
	credentials entities.Options
	currency    string
	test        bool
	sender      transport.Sender
	logger      *zap.Logger
}

var _ interfaces.IPaymentGateway = (*PiraeusGateway)(nil)

// NewPiraeusGateway requires acquire_id, merchant_id, pos_id, user, password and
// channel_type. A nil sender selects the resty transport.
func NewPiraeusGateway(credentials entities.Options, sender transport.Sender, logger *zap.Logger) (*PiraeusGateway, error) {
	if err := credentials.Require(piraeusCredentials...); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if sender == nil {
		sender = transport.New()
	}

	currency := "EUR"
	if credentials.Has("currency") {
		currency = credentials.String("currency")
	}

	return &PiraeusGateway{
		credentials: credentials,
		currency:    currency,
		test:        credentials.Bool("test"),
		sender:      sender,
		logger:      logger.With(zap.String("gateway", piraeusName)),
	}, nil
}

func (g *PiraeusGateway) Name() string { return piraeusName }

func (g *PiraeusGateway) Authorize(ctx context.Context, money entities.Money, card entities.CreditCard, opts entities.Options) (entities.Response, error) {
	info, err := g.buildSale(money, card, opts)
	if err != nil {
		return entities.Response{}, err
	}
	info.ExpirePreauth = piraeusExpirePreauthDays

	return g.commit(ctx, entities.ActionAuthorize, piraeusAuthorize, info)
}

func (g *PiraeusGateway) Purchase(ctx context.Context, money entities.Money, card entities.CreditCard, opts entities.Options) (entities.Response, error) {
	info, err := g.buildSale(money, card, opts)
	if err != nil {
		return entities.Response{}, err
	}

	return g.commit(ctx, entities.ActionPurchase, piraeusSale, info)
}

func (g *PiraeusGateway) Capture(ctx context.Context, money entities.Money, authorization string, opts entities.Options) (entities.Response, error) {
	info, err := g.buildReference(money, authorization, "authorization")
	if err != nil {
		return entities.Response{}, err
	}

	return g.commit(ctx, entities.ActionCapture, piraeusSettle, info)
}

// Void cancels an unsettled transaction. Paycenter needs the original amount, passed as
// the "amount" option (decimal string) in the adapter currency.
func (g *PiraeusGateway) Void(ctx context.Context, authorization string, opts entities.Options) (entities.Response, error) {
	if err := opts.Require("amount"); err != nil {
		return entities.Response{}, err
	}
	money, err := entities.ParseMoney(opts.String("amount"), g.currency)
	if err != nil {
		return entities.Response{}, err
	}
	info, err := g.buildReference(money, authorization, "authorization")
	if err != nil {
		return entities.Response{}, err
	}

	return g.commit(ctx, entities.ActionVoid, piraeusVoidRequest, info)
}

// Credit refunds a settled transaction. 3-D secure data is optional, but once any
// centinel key is given the whole set is required.
func (g *PiraeusGateway) Credit(ctx context.Context, money entities.Money, identification string, opts entities.Options) (entities.Response, error) {
	var auth *piraeusAuthInfo
	if opts.HasAny(piraeusCentinelKeys...) {
		a, err := g.buildCentinel(opts)
		if err != nil {
			return entities.Response{}, err
		}
		auth = a
	}
	info, err := g.buildReference(money, identification, "identification")
	if err != nil {
		return entities.Response{}, err
	}
	info.AuthInfo = auth

	return g.commit(ctx, entities.ActionCredit, piraeusRefund, info)
}

// buildSale validates everything an authorize/purchase needs before any element is built.
func (g *PiraeusGateway) buildSale(money entities.Money, card entities.CreditCard, opts entities.Options) (piraeusTransactionInfo, error) {
	if err := opts.Require("order_id"); err != nil {
		return piraeusTransactionInfo{}, err
	}
	auth, err := g.buildCentinel(opts)
	if err != nil {
		return piraeusTransactionInfo{}, err
	}
	info, err := g.buildInvoice(money, opts)
	if err != nil {
		return piraeusTransactionInfo{}, err
	}
	cardInfo, err := g.buildCreditCard(card)
	if err != nil {
		return piraeusTransactionInfo{}, err
	}
	info.CardInfo = cardInfo
	info.AuthInfo = auth
	return info, nil
}

func (g *PiraeusGateway) buildInvoice(money entities.Money, opts entities.Options) (piraeusTransactionInfo, error) {
	code, err := currencyLookup(piraeusCurrencies, moneyCurrency(money, g.currency))
	if err != nil {
		return piraeusTransactionInfo{}, err
	}
	return piraeusTransactionInfo{
		MerchantReference: opts.String("order_id"),
		EntryType:         "KeyEntry",
		CurrencyCode:      code,
		Amount:            money.Format(entities.MoneyFormatDollars),
	}, nil
}

func (g *PiraeusGateway) buildReference(money entities.Money, reference, key string) (piraeusTransactionInfo, error) {
	if reference == "" {
		return piraeusTransactionInfo{}, &entities.ConfigurationError{Key: key}
	}
	code, err := currencyLookup(piraeusCurrencies, moneyCurrency(money, g.currency))
	if err != nil {
		return piraeusTransactionInfo{}, err
	}
	return piraeusTransactionInfo{
		TransactionReferenceID: reference,
		CurrencyCode:           code,
		Amount:                 money.Format(entities.MoneyFormatDollars),
	}, nil
}

func (g *PiraeusGateway) buildCreditCard(card entities.CreditCard) (*piraeusCardInfo, error) {
	cardType, err := lookupEnum("card type", piraeusCardTypes, card.Type())
	if err != nil {
		return nil, err
	}
	return &piraeusCardInfo{
		CardType:        cardType,
		CardNumber:      card.Number,
		CardHolderName:  cardholderName(card, true),
		ExpirationMonth: twoDigits(card.Month),
		ExpirationYear:  fourDigitYear(card.Year),
		Cvv2:            card.VerificationValue,
	}, nil
}

func (g *PiraeusGateway) buildCentinel(opts entities.Options) (*piraeusAuthInfo, error) {
	if err := opts.Require(piraeusCentinelKeys...); err != nil {
		return nil, err
	}
	enrolled, err := lookupEnum("enrolled", piraeusEnrolled, opts.String("enrolled"))
	if err != nil {
		return nil, err
	}
	pares, err := lookupEnum("pares_status", piraeusPARes, opts.String("pares_status"))
	if err != nil {
		return nil, err
	}
	signature, err := lookupEnum("signature_verification", piraeusSignature, opts.String("signature_verification"))
	if err != nil {
		return nil, err
	}
	return &piraeusAuthInfo{
		Cavv:                  opts.String("cavv"),
		Eci:                   opts.String("eci_flag"),
		Xid:                   opts.String("xid"),
		Enrolled:              enrolled,
		PAResStatus:           pares,
		SignatureVerification: signature,
	}, nil
}

func (g *PiraeusGateway) header(requestType piraeusRequestType) piraeusRequestHeader {
	sum := md5.Sum([]byte(g.credentials.String("password")))
	return piraeusRequestHeader{
		RequestType:   requestType,
		RequestMethod: "SYNCHRONOUS",
		MerchantInfo: piraeusMerchantInfo{
			AcquirerID:  g.credentials.String("acquire_id"),
			MerchantID:  g.credentials.String("merchant_id"),
			PosID:       g.credentials.String("pos_id"),
			ChannelType: g.credentials.String("channel_type"),
			User:        g.credentials.String("user"),
			Password:    hex.EncodeToString(sum[:]),
		},
	}
}

func (g *PiraeusGateway) endpoint() string {
	if g.test {
		return piraeusTestURL
	}
	return piraeusLiveURL
}

func (g *PiraeusGateway) commit(ctx context.Context, action entities.Action, requestType piraeusRequestType, info piraeusTransactionInfo) (entities.Response, error) {
	body, err := marshalPiraeusEnvelope(g.header(requestType), info)
	if err != nil {
		return entities.Response{}, err
	}
	headers := map[string]string{
		"Content-Type": `text/xml; charset="utf-8"`,
		"SOAPAction":   piraeusSOAPAction,
	}

	g.logger.Info("[payment][gateway] commit start",
		zap.String("action", string(action)),
		zap.String("request_type", string(requestType)),
		zap.Bool("test", g.test),
	)
	raw, err := g.sender.Send(ctx, g.endpoint(), body, headers)
	if err != nil {
		var status *transport.StatusError
		if errors.As(err, &status) {
			if fault, ok := parsePiraeusFault(status.Body); ok {
				g.logger.Error("[payment][gateway] soap fault",
					zap.String("action", string(action)),
					zap.String("fault_code", fault.Code),
					zap.String("fault_reason", fault.Reason),
				)
				err = fmt.Errorf("soap fault %s: %s: %w", fault.Code, fault.Reason, err)
			}
		}
		g.logger.Error("[payment][gateway] commit failed", zap.String("action", string(action)), zap.Error(err))
		if errors.Is(err, entities.ErrTransport) {
			return entities.Response{}, err
		}
		return entities.Response{}, &entities.TransportError{Gateway: piraeusName, Err: err}
	}

	fields, err := parsePiraeusReply(raw)
	if err != nil {
		g.logger.Error("[payment][gateway] parse failed", zap.String("action", string(action)), zap.Error(err))
		return entities.Response{}, err
	}

	resp := newResponse(parsedResponse{
		success:         piraeusSuccessFrom(fields),
		message:         piraeusMessageFrom(fields),
		authorizationID: fields["authorization_id"].(string),
		params:          fields,
	}, g.test)
	g.logger.Info("[payment][gateway] commit done",
		zap.String("action", string(action)),
		zap.Bool("success", resp.Success),
		zap.String("support_reference_id", fields["support_reference_id"].(string)),
	)
	return resp, nil
}

func piraeusSuccessFrom(fields map[string]any) bool {
	return fields["status"] == "Success"
}

// piraeusMessageFrom prefers the transaction description and falls back to the header one.
func piraeusMessageFrom(fields map[string]any) string {
	if msg, _ := fields["response_description"].(string); msg != "" {
		return msg
	}
	msg, _ := fields["result_description"].(string)
	return msg
}
