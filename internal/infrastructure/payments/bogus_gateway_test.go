package payments

import (
	"context"
	"errors"
	"testing"

	"gateway_bridge/internal/domain/entities"
)

func TestBogusGateway(t *testing.T) {
	ctx := context.Background()
	g := NewBogusGateway(nil)
	money, _ := entities.ParseMoney("1.00", "USD")

	t.Run("number ending in 1 succeeds", func(t *testing.T) {
		resp, err := g.Purchase(ctx, money, entities.CreditCard{Number: "1"}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !resp.Success || resp.AuthorizationID() != bogusAuthorization || !resp.Test {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("number ending in 2 declines", func(t *testing.T) {
		resp, err := g.Authorize(ctx, money, entities.CreditCard{Number: "4242"}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Success || resp.Authorization != nil || resp.Message != bogusFailure {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("anything else is rejected", func(t *testing.T) {
		_, err := g.Capture(ctx, money, "3", nil)
		if !errors.Is(err, entities.ErrUnsupportedValue) {
			t.Fatalf("expected unsupported value, got %v", err)
		}
	})

	t.Run("authorization chains into follow-ups", func(t *testing.T) {
		auth, err := g.Authorize(ctx, money, entities.CreditCard{Number: "4111111111111111"}, nil)
		if err != nil || !auth.Success {
			t.Fatalf("authorize failed: %+v %v", auth, err)
		}
		id := auth.AuthorizationID()

		if resp, err := g.Capture(ctx, money, id, nil); err != nil || !resp.Success {
			t.Fatalf("capture with %q: %+v %v", id, resp, err)
		}
		if resp, err := g.Void(ctx, id, nil); err != nil || !resp.Success {
			t.Fatalf("void with %q: %+v %v", id, resp, err)
		}
		if resp, err := g.Credit(ctx, money, id, nil); err != nil || !resp.Success {
			t.Fatalf("credit with %q: %+v %v", id, resp, err)
		}
	})

	t.Run("follow-ups use the reference", func(t *testing.T) {
		if resp, _ := g.Void(ctx, "11", nil); !resp.Success {
			t.Fatalf("void should succeed")
		}
		if resp, _ := g.Credit(ctx, money, "12", nil); resp.Success {
			t.Fatalf("credit should decline")
		}
	})
}
