package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gateway_bridge/internal/domain/entities"
	"gateway_bridge/internal/usecase/interfaces"
	mock_interfaces "gateway_bridge/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func newTestUseCase(gateways map[string]interfaces.IPaymentGateway, journal interfaces.ITransactionJournalRepository) *TransactionUseCase {
	uc := NewTransactionUseCase(gateways, journal, nil)
	uc.now = func() time.Time { return fixedNow }
	uc.newID = func() string { return "rec-1" }
	return uc
}

func strPtr(s string) *string { return &s }

func TestTransactionUseCase_GatewayResolution(t *testing.T) {
	t.Run("unknown gateway", func(t *testing.T) {
		uc := newTestUseCase(nil, nil)
		money, _ := entities.ParseMoney("1", "USD")
		_, err := uc.Authorize(context.Background(), "paypal", money, entities.CreditCard{}, nil)
		if !errors.Is(err, ErrGatewayNotFound) {
			t.Fatalf("expected ErrGatewayNotFound, got %v", err)
		}
		_, err = uc.Void(context.Background(), "", "a", nil)
		if !errors.Is(err, ErrGatewayNotFound) {
			t.Fatalf("expected ErrGatewayNotFound, got %v", err)
		}
	})

	t.Run("names are case insensitive and listed sorted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bt := mock_interfaces.NewMockIPaymentGateway(ctrl)
		pi := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTestUseCase(map[string]interfaces.IPaymentGateway{"Piraeus": pi, "braintree": bt, "empty": nil}, nil)

		got := uc.Gateways()
		if len(got) != 2 || got[0] != "braintree" || got[1] != "piraeus" {
			t.Fatalf("unexpected gateways: %v", got)
		}

		pi.EXPECT().Void(gomock.Any(), "99881", gomock.Any()).Return(entities.Response{Success: true}, nil)
		resp, err := uc.Void(context.Background(), "PIRAEUS", "99881", entities.Options{"amount": "1.00"})
		if err != nil || !resp.Success {
			t.Fatalf("unexpected result: %+v %v", resp, err)
		}
	})
}

func TestTransactionUseCase_Authorize(t *testing.T) {
	ctx := context.Background()
	money, _ := entities.ParseMoney("10.00", "USD")
	card := entities.CreditCard{Number: "4111111111111111", Month: 9, Year: 2015}
	opts := entities.Options{"order_id": "REF1"}

	t.Run("journals the response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		journal := mock_interfaces.NewMockITransactionJournalRepository(ctrl)
		uc := newTestUseCase(map[string]interfaces.IPaymentGateway{"braintree": gw}, journal)

		want := entities.Response{Success: true, Message: "authorized", Authorization: strPtr("2rc4br"), Test: true, Params: map[string]any{"id": "2rc4br"}}
		gw.EXPECT().Authorize(gomock.Any(), money, card, opts).Return(want, nil)
		journal.EXPECT().Append(gomock.Any(), entities.TransactionRecord{
			ID:            "rec-1",
			Gateway:       "braintree",
			Action:        entities.ActionAuthorize,
			Date:          fixedNow,
			Success:       true,
			Message:       "authorized",
			Authorization: "2rc4br",
			Reference:     "REF1",
			Amount:        "10.00",
			Currency:      "USD",
			Test:          true,
			Params:        map[string]any{"id": "2rc4br"},
		}).Return(entities.TransactionRecord{}, nil)

		resp, err := uc.Authorize(ctx, "braintree", money, card, opts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.AuthorizationID() != "2rc4br" || !resp.Success {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("journal failure never masks the response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		journal := mock_interfaces.NewMockITransactionJournalRepository(ctrl)
		uc := newTestUseCase(map[string]interfaces.IPaymentGateway{"braintree": gw}, journal)

		gw.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Response{Success: false, Message: "Do Not Honor"}, nil)
		journal.EXPECT().Append(gomock.Any(), gomock.Any()).Return(entities.TransactionRecord{}, errors.New("ddb down"))

		resp, err := uc.Authorize(ctx, "braintree", money, card, opts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Success || resp.Message != "Do Not Honor" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("gateway errors pass through without journaling", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		journal := mock_interfaces.NewMockITransactionJournalRepository(ctrl)
		uc := newTestUseCase(map[string]interfaces.IPaymentGateway{"braintree": gw}, journal)

		gwErr := &entities.ConfigurationError{Key: "order_id"}
		gw.EXPECT().Purchase(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Response{}, gwErr)
		journal.EXPECT().Append(gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.Purchase(ctx, "braintree", money, card, nil)
		if !errors.Is(err, entities.ErrConfiguration) {
			t.Fatalf("expected configuration error, got %v", err)
		}
	})
}

func TestTransactionUseCase_FollowUps(t *testing.T) {
	ctx := context.Background()
	money, _ := entities.ParseMoney("5", "EUR")

	t.Run("credit journals under the original authorization", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		journal := mock_interfaces.NewMockITransactionJournalRepository(ctrl)
		uc := newTestUseCase(map[string]interfaces.IPaymentGateway{"piraeus": gw}, journal)

		gw.EXPECT().Credit(gomock.Any(), money, "99881", gomock.Any()).
			Return(entities.Response{Success: true, Message: "Approved", Authorization: strPtr("99882")}, nil)
		journal.EXPECT().Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec entities.TransactionRecord) (entities.TransactionRecord, error) {
				if rec.Authorization != "99881" || rec.Reference != "99881" || rec.Action != entities.ActionCredit {
					t.Fatalf("unexpected record: %+v", rec)
				}
				if rec.Amount != "5.00" || rec.Currency != "EUR" {
					t.Fatalf("unexpected amount: %+v", rec)
				}
				return rec, nil
			})

		if _, err := uc.Credit(ctx, "piraeus", money, "99881", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("capture and void without journal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTestUseCase(map[string]interfaces.IPaymentGateway{"piraeus": gw}, nil)

		gw.EXPECT().Capture(gomock.Any(), money, "99881", gomock.Any()).Return(entities.Response{Success: true}, nil)
		gw.EXPECT().Void(gomock.Any(), "99881", gomock.Any()).Return(entities.Response{Success: true}, nil)

		if _, err := uc.Capture(ctx, "piraeus", money, "99881", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Void(ctx, "piraeus", "99881", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestTransactionUseCase_Journal(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		uc := newTestUseCase(nil, nil)
		if _, err := uc.GetByID(ctx, "x"); !errors.Is(err, ErrJournalDisabled) {
			t.Fatalf("expected ErrJournalDisabled, got %v", err)
		}
		if _, err := uc.ListByAuthorization(ctx, "x"); !errors.Is(err, ErrJournalDisabled) {
			t.Fatalf("expected ErrJournalDisabled, got %v", err)
		}
	})

	t.Run("get by id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		journal := mock_interfaces.NewMockITransactionJournalRepository(ctrl)
		uc := newTestUseCase(nil, journal)

		if _, err := uc.GetByID(ctx, " "); !errors.Is(err, ErrInvalidTransactionID) {
			t.Fatalf("expected ErrInvalidTransactionID, got %v", err)
		}

		journal.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.TransactionRecord{}, nil)
		if _, err := uc.GetByID(ctx, "missing"); !errors.Is(err, ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}

		journal.EXPECT().GetByID(gomock.Any(), "rec-1").Return(entities.TransactionRecord{ID: "rec-1"}, nil)
		rec, err := uc.GetByID(ctx, "rec-1")
		if err != nil || rec.ID != "rec-1" {
			t.Fatalf("unexpected result: %+v %v", rec, err)
		}
	})

	t.Run("list by authorization", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		journal := mock_interfaces.NewMockITransactionJournalRepository(ctrl)
		uc := newTestUseCase(nil, journal)

		if _, err := uc.ListByAuthorization(ctx, ""); !errors.Is(err, ErrInvalidAuthorization) {
			t.Fatalf("expected ErrInvalidAuthorization, got %v", err)
		}

		journal.EXPECT().ListByAuthorization(gomock.Any(), "2rc4br").Return([]entities.TransactionRecord{{ID: "a"}, {ID: "b"}}, nil)
		recs, err := uc.ListByAuthorization(ctx, " 2rc4br ")
		if err != nil || len(recs) != 2 {
			t.Fatalf("unexpected result: %+v %v", recs, err)
		}
	})
}
