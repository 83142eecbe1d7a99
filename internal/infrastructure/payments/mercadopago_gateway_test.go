package payments

import (
	"context"
	"errors"
	"testing"

	"gateway_bridge/internal/domain/entities"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/refund"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMPPayments struct {
	created  *payment.Request
	captured []any
	canceled int
	resp     *payment.Response
	err      error
}

func (f *fakeMPPayments) Create(_ context.Context, req payment.Request) (*payment.Response, error) {
	f.created = &req
	return f.resp, f.err
}

func (f *fakeMPPayments) Cancel(_ context.Context, id int) (*payment.Response, error) {
	f.canceled = id
	return f.resp, f.err
}

func (f *fakeMPPayments) CaptureAmount(_ context.Context, id int, amount float64) (*payment.Response, error) {
	f.captured = []any{id, amount}
	return f.resp, f.err
}

type fakeMPRefunds struct {
	paymentID int
	amount    float64
	resp      *refund.Response
	err       error
}

func (f *fakeMPRefunds) CreatePartialRefund(_ context.Context, paymentID int, amount float64) (*refund.Response, error) {
	f.paymentID, f.amount = paymentID, amount
	return f.resp, f.err
}

func brl(t *testing.T, amount string) entities.Money {
	t.Helper()
	m, err := entities.ParseMoney(amount, "BRL")
	require.NoError(t, err)
	return m
}

func mpSaleOptions() entities.Options {
	return entities.Options{
		"token":             "card-token",
		"payment_method_id": "visa",
		"payer_email":       "buyer@test.com",
		"order_id":          "ord-1",
	}
}

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		_, err := NewMercadoPagoGateway(entities.Options{}, nil)
		assert.True(t, errors.Is(err, entities.ErrConfiguration))
	})

	t.Run("blank token", func(t *testing.T) {
		_, err := NewMercadoPagoGateway(entities.Options{"access_token": "  "}, nil)
		assert.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
	})

	t.Run("sandbox token", func(t *testing.T) {
		g := newMercadoPagoGateway(entities.Options{"access_token": "TEST-123"}, &fakeMPPayments{}, &fakeMPRefunds{}, nil)
		assert.True(t, g.test)
		assert.Equal(t, "BRL", g.currency)
	})
}

func TestMercadoPagoGateway_Authorize(t *testing.T) {
	payments := &fakeMPPayments{resp: &payment.Response{ID: 1234, Status: "authorized", StatusDetail: "pending_capture"}}
	g := newMercadoPagoGateway(entities.Options{"access_token": "APP_USR-1"}, payments, &fakeMPRefunds{}, nil)

	card := visaCard()
	resp, err := g.Authorize(context.Background(), brl(t, "99.90"), card, mpSaleOptions())
	require.NoError(t, err)

	require.NotNil(t, payments.created)
	assert.Equal(t, 99.9, payments.created.TransactionAmount)
	assert.Equal(t, "card-token", payments.created.Token)
	assert.Equal(t, "visa", payments.created.PaymentMethodID)
	assert.Equal(t, "ord-1", payments.created.ExternalReference)
	assert.False(t, payments.created.Capture)
	require.NotNil(t, payments.created.Payer)
	assert.Equal(t, "buyer@test.com", payments.created.Payer.Email)
	assert.Empty(t, payments.created.Payer.Type)

	assert.True(t, resp.Success)
	assert.Equal(t, "pending_capture", resp.Message)
	assert.Equal(t, "1234", resp.AuthorizationID())
	assert.False(t, resp.Test)
	assert.Equal(t, "authorized", resp.Params["status"])
}

func TestMercadoPagoGateway_Purchase(t *testing.T) {
	t.Run("rejected payment is a decline", func(t *testing.T) {
		payments := &fakeMPPayments{resp: &payment.Response{ID: 55, Status: "rejected", StatusDetail: "cc_rejected_insufficient_amount"}}
		g := newMercadoPagoGateway(entities.Options{"access_token": "x"}, payments, &fakeMPRefunds{}, nil)

		resp, err := g.Purchase(context.Background(), brl(t, "10"), visaCard(), mpSaleOptions())
		require.NoError(t, err)
		assert.True(t, payments.created.Capture)
		assert.False(t, resp.Success)
		assert.Equal(t, "cc_rejected_insufficient_amount", resp.Message)
	})

	t.Run("payer rejection from the api is a decline", func(t *testing.T) {
		payments := &fakeMPPayments{err: errors.New(`{"message":"Invalid users involved","error":"bad_request","status":400,"cause":[{"code":2034}]}`)}
		g := newMercadoPagoGateway(entities.Options{"access_token": "x"}, payments, &fakeMPRefunds{}, nil)

		resp, err := g.Purchase(context.Background(), brl(t, "10"), visaCard(), mpSaleOptions())
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Nil(t, resp.Authorization)
	})

	t.Run("other bad requests are not declines", func(t *testing.T) {
		payments := &fakeMPPayments{err: errors.New(`{"message":"invalid parameter token","error":"bad_request","status":400}`)}
		g := newMercadoPagoGateway(entities.Options{"access_token": "x"}, payments, &fakeMPRefunds{}, nil)

		resp, err := g.Purchase(context.Background(), brl(t, "10"), visaCard(), mpSaleOptions())
		assert.True(t, errors.Is(err, entities.ErrUnsupportedValue), "got %v", err)
		assert.Equal(t, entities.Response{}, resp)
	})

	t.Run("network failure is a transport error", func(t *testing.T) {
		payments := &fakeMPPayments{err: errors.New("dial tcp: i/o timeout")}
		g := newMercadoPagoGateway(entities.Options{"access_token": "x"}, payments, &fakeMPRefunds{}, nil)

		_, err := g.Purchase(context.Background(), brl(t, "10"), visaCard(), mpSaleOptions())
		assert.True(t, errors.Is(err, entities.ErrTransport))
	})

	t.Run("missing token option", func(t *testing.T) {
		payments := &fakeMPPayments{}
		g := newMercadoPagoGateway(entities.Options{"access_token": "x"}, payments, &fakeMPRefunds{}, nil)

		opts := mpSaleOptions()
		delete(opts, "token")
		_, err := g.Purchase(context.Background(), brl(t, "10"), visaCard(), opts)
		assert.True(t, errors.Is(err, entities.ErrConfiguration))
		assert.Nil(t, payments.created)
	})

	t.Run("unsupported currency", func(t *testing.T) {
		payments := &fakeMPPayments{}
		g := newMercadoPagoGateway(entities.Options{"access_token": "x"}, payments, &fakeMPRefunds{}, nil)

		_, err := g.Purchase(context.Background(), usd(t, "10"), visaCard(), mpSaleOptions())
		assert.True(t, errors.Is(err, entities.ErrUnsupportedValue))
		assert.Nil(t, payments.created)
	})
}

func TestMercadoPagoGateway_FollowUps(t *testing.T) {
	ctx := context.Background()

	t.Run("capture", func(t *testing.T) {
		payments := &fakeMPPayments{resp: &payment.Response{ID: 1234, Status: "approved"}}
		g := newMercadoPagoGateway(entities.Options{"access_token": "x"}, payments, &fakeMPRefunds{}, nil)

		resp, err := g.Capture(ctx, brl(t, "50"), "1234", nil)
		require.NoError(t, err)
		assert.Equal(t, []any{1234, 50.0}, payments.captured)
		assert.True(t, resp.Success)
		assert.Equal(t, "approved", resp.Message)
	})

	t.Run("void", func(t *testing.T) {
		payments := &fakeMPPayments{resp: &payment.Response{ID: 1234, Status: "cancelled", StatusDetail: "by_collector"}}
		g := newMercadoPagoGateway(entities.Options{"access_token": "x"}, payments, &fakeMPRefunds{}, nil)

		resp, err := g.Void(ctx, "1234", nil)
		require.NoError(t, err)
		assert.Equal(t, 1234, payments.canceled)
		assert.True(t, resp.Success)
	})

	t.Run("credit", func(t *testing.T) {
		refunds := &fakeMPRefunds{resp: &refund.Response{ID: 9, Status: "approved"}}
		g := newMercadoPagoGateway(entities.Options{"access_token": "x"}, &fakeMPPayments{}, refunds, nil)

		resp, err := g.Credit(ctx, brl(t, "5.25"), "1234", nil)
		require.NoError(t, err)
		assert.Equal(t, 1234, refunds.paymentID)
		assert.Equal(t, 5.25, refunds.amount)
		assert.True(t, resp.Success)
		assert.Equal(t, "9", resp.AuthorizationID())
	})

	t.Run("invalid references", func(t *testing.T) {
		g := newMercadoPagoGateway(entities.Options{"access_token": "x"}, &fakeMPPayments{}, &fakeMPRefunds{}, nil)

		_, err := g.Void(ctx, "", nil)
		assert.True(t, errors.Is(err, entities.ErrConfiguration))
		_, err = g.Capture(ctx, brl(t, "1"), "abc", nil)
		assert.True(t, errors.Is(err, entities.ErrUnsupportedValue))
	})
}
