package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"gateway_bridge/internal/domain/entities"
	"gateway_bridge/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrGatewayNotFound      = errors.New("gateway not configured")
	ErrInvalidAuthorization = errors.New("invalid authorization")
	ErrInvalidTransactionID = errors.New("invalid transaction id")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrJournalDisabled      = errors.New("transaction journal disabled")
)

// ITransactionUseCase runs one gateway operation per call, picking the adapter by name.
//
// Gateway outcomes are returned untouched: declines as Response{Success: false}, system
// failures as the adapter error. Each Response is appended to the journal when one is
// configured; a journal failure is logged and never replaces the Response.
type ITransactionUseCase interface {
	Gateways() []string
	Authorize(ctx context.Context, gateway string, money entities.Money, card entities.CreditCard, opts entities.Options) (entities.Response, error)
	Purchase(ctx context.Context, gateway string, money entities.Money, card entities.CreditCard, opts entities.Options) (entities.Response, error)
	Capture(ctx context.Context, gateway string, money entities.Money, authorization string, opts entities.Options) (entities.Response, error)
	Void(ctx context.Context, gateway string, authorization string, opts entities.Options) (entities.Response, error)
	Credit(ctx context.Context, gateway string, money entities.Money, identification string, opts entities.Options) (entities.Response, error)
	GetByID(ctx context.Context, id string) (entities.TransactionRecord, error)
	ListByAuthorization(ctx context.Context, authorization string) ([]entities.TransactionRecord, error)
}

type TransactionUseCase struct {
	gateways map[string]interfaces.IPaymentGateway
	journal  interfaces.ITransactionJournalRepository
	logger   *zap.Logger
	now      func() time.Time
	newID    func() string
}

var _ ITransactionUseCase = (*TransactionUseCase)(nil)

// NewTransactionUseCase registers the gateways under their map keys. A nil journal
// disables journaling.
func NewTransactionUseCase(gateways map[string]interfaces.IPaymentGateway, journal interfaces.ITransactionJournalRepository, logger *zap.Logger) *TransactionUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := make(map[string]interfaces.IPaymentGateway, len(gateways))
	for name, g := range gateways {
		if g != nil {
			registry[strings.ToLower(name)] = g
		}
	}
	return &TransactionUseCase{
		gateways: registry,
		journal:  journal,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

func (u *TransactionUseCase) Gateways() []string {
	names := make([]string, 0, len(u.gateways))
	for name := range u.gateways {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (u *TransactionUseCase) gateway(name string) (interfaces.IPaymentGateway, error) {
	g, ok := u.gateways[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		u.logger.Warn("[payment][usecase] gateway not configured", zap.String("gateway", name))
		return nil, ErrGatewayNotFound
	}
	return g, nil
}

func (u *TransactionUseCase) Authorize(ctx context.Context, gateway string, money entities.Money, card entities.CreditCard, opts entities.Options) (entities.Response, error) {
	g, err := u.gateway(gateway)
	if err != nil {
		return entities.Response{}, err
	}
	u.logger.Info("[payment][usecase] authorize start", zap.String("gateway", gateway), zap.String("card", card.DisplayNumber()))
	resp, err := g.Authorize(ctx, money, card, opts)
	return u.finish(ctx, gateway, entities.ActionAuthorize, money, opts.String("order_id"), resp, err)
}

func (u *TransactionUseCase) Purchase(ctx context.Context, gateway string, money entities.Money, card entities.CreditCard, opts entities.Options) (entities.Response, error) {
	g, err := u.gateway(gateway)
	if err != nil {
		return entities.Response{}, err
	}
	u.logger.Info("[payment][usecase] purchase start", zap.String("gateway", gateway), zap.String("card", card.DisplayNumber()))
	resp, err := g.Purchase(ctx, money, card, opts)
	return u.finish(ctx, gateway, entities.ActionPurchase, money, opts.String("order_id"), resp, err)
}

func (u *TransactionUseCase) Capture(ctx context.Context, gateway string, money entities.Money, authorization string, opts entities.Options) (entities.Response, error) {
	g, err := u.gateway(gateway)
	if err != nil {
		return entities.Response{}, err
	}
	u.logger.Info("[payment][usecase] capture start", zap.String("gateway", gateway), zap.String("authorization", authorization))
	resp, err := g.Capture(ctx, money, authorization, opts)
	return u.finish(ctx, gateway, entities.ActionCapture, money, authorization, resp, err)
}

func (u *TransactionUseCase) Void(ctx context.Context, gateway string, authorization string, opts entities.Options) (entities.Response, error) {
	g, err := u.gateway(gateway)
	if err != nil {
		return entities.Response{}, err
	}
	u.logger.Info("[payment][usecase] void start", zap.String("gateway", gateway), zap.String("authorization", authorization))
	resp, err := g.Void(ctx, authorization, opts)
	return u.finish(ctx, gateway, entities.ActionVoid, entities.Money{}, authorization, resp, err)
}

func (u *TransactionUseCase) Credit(ctx context.Context, gateway string, money entities.Money, identification string, opts entities.Options) (entities.Response, error) {
	g, err := u.gateway(gateway)
	if err != nil {
		return entities.Response{}, err
	}
	u.logger.Info("[payment][usecase] credit start", zap.String("gateway", gateway), zap.String("identification", identification))
	resp, err := g.Credit(ctx, money, identification, opts)
	return u.finish(ctx, gateway, entities.ActionCredit, money, identification, resp, err)
}

// finish logs the outcome and journals successful round trips. For follow-up actions
// reference is the original authorization, so a whole chain shares one journal key.
func (u *TransactionUseCase) finish(ctx context.Context, gateway string, action entities.Action, money entities.Money, reference string, resp entities.Response, err error) (entities.Response, error) {
	if err != nil {
		u.logger.Error("[payment][usecase] gateway call failed",
			zap.String("gateway", gateway),
			zap.String("action", string(action)),
			zap.Error(err),
		)
		return entities.Response{}, err
	}
	u.logger.Info("[payment][usecase] gateway call done",
		zap.String("gateway", gateway),
		zap.String("action", string(action)),
		zap.Bool("success", resp.Success),
		zap.String("message", resp.Message),
	)

	if u.journal == nil {
		return resp, nil
	}

	rec := entities.TransactionRecord{
		ID:            u.newID(),
		Gateway:       strings.ToLower(gateway),
		Action:        action,
		Date:          u.now(),
		Success:       resp.Success,
		Message:       resp.Message,
		Authorization: resp.AuthorizationID(),
		Reference:     reference,
		Test:          resp.Test,
		Params:        resp.Params,
	}
	if action != entities.ActionAuthorize && action != entities.ActionPurchase {
		rec.Authorization = reference
	}
	if money.IsSet() {
		rec.Amount = money.Dollars()
		rec.Currency = money.Currency()
	}

	if _, jErr := u.journal.Append(ctx, rec); jErr != nil {
		u.logger.Error("[payment][usecase] journal append failed",
			zap.String("gateway", gateway),
			zap.String("action", string(action)),
			zap.String("record_id", rec.ID),
			zap.Error(jErr),
		)
	}
	return resp, nil
}

func (u *TransactionUseCase) GetByID(ctx context.Context, id string) (entities.TransactionRecord, error) {
	if u.journal == nil {
		return entities.TransactionRecord{}, ErrJournalDisabled
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.TransactionRecord{}, ErrInvalidTransactionID
	}

	rec, err := u.journal.GetByID(ctx, id)
	if err != nil {
		return entities.TransactionRecord{}, err
	}
	if rec.ID == "" {
		return entities.TransactionRecord{}, ErrTransactionNotFound
	}
	return rec, nil
}

func (u *TransactionUseCase) ListByAuthorization(ctx context.Context, authorization string) ([]entities.TransactionRecord, error) {
	if u.journal == nil {
		return nil, ErrJournalDisabled
	}
	authorization = strings.TrimSpace(authorization)
	if authorization == "" {
		return nil, ErrInvalidAuthorization
	}
	return u.journal.ListByAuthorization(ctx, authorization)
}
