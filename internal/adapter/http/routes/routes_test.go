package routes

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gateway_bridge/internal/adapter/http/handlers"
	"gateway_bridge/internal/domain/entities"
	"gateway_bridge/internal/infrastructure/config"
	"gateway_bridge/internal/infrastructure/payments"
	"gateway_bridge/internal/usecase"

	"github.com/gin-gonic/gin"
)

func TestBuildGateways(t *testing.T) {

	t.Run("only configured gateways", func(t *testing.T) {
		cfg := config.GatewaysConfig{Credentials: map[string]entities.Options{
			"braintree": {"merchant_id": "m", "public_key": "p", "private_key": "k"},
			"piraeus":   {"user": "u"},
		}}
		got := BuildGateways(cfg, payments.Dependencies{}, nil)
		if _, ok := got["braintree"]; !ok {
			t.Fatalf("braintree should be configured")
		}
		if _, ok := got["piraeus"]; ok {
			t.Fatalf("piraeus lacks credentials")
		}
		if _, ok := got["bogus"]; !ok {
			t.Fatalf("bogus needs no credentials")
		}
	})

	t.Run("mock mode", func(t *testing.T) {
		got := BuildGateways(config.GatewaysConfig{Mock: true}, payments.Dependencies{}, nil)
		if len(got) != len(payments.SupportedGateways()) {
			t.Fatalf("expected every gateway, got %v", got)
		}
		if got["piraeus"].Name() != "bogus" {
			t.Fatalf("expected bogus adapter, got %s", got["piraeus"].Name())
		}
	})
}

func TestRoutes_EndToEndWithBogusGateway(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gateways := BuildGateways(config.GatewaysConfig{Mock: true}, payments.Dependencies{}, nil)
	uc := usecase.NewTransactionUseCase(gateways, nil, nil)

	router := gin.New()
	getRoutes(router, handlers.NewTransactionHandler(uc, nil))

	req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := `{"amount":"1.00","currency":"USD","card":{"number":"1","month":1,"year":2030}}`
	req = httptest.NewRequest(http.MethodPost, "/v1/gateways/braintree/purchase", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"authorization":"53433"`)) {
		t.Fatalf("unexpected reply %d %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/v1/gateways/unknown/void", bytes.NewBufferString(`{"authorization":"1"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestNewTransactionUseCase_WithoutJournal(t *testing.T) {
	cfg := &config.Config{Gateways: config.GatewaysConfig{
		Timeout: time.Second,
		Credentials: map[string]entities.Options{
			"piraeus": {
				"acquire_id": "14", "merchant_id": "m", "pos_id": "p",
				"user": "u", "password": "pw", "channel_type": "3DSecure",
			},
		},
	}}

	uc, err := NewTransactionUseCase(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := uc.Gateways()
	if len(got) != 2 || got[0] != "bogus" || got[1] != "piraeus" {
		t.Fatalf("unexpected gateways %v", got)
	}
	if _, err := uc.GetByID(context.Background(), "x"); !errors.Is(err, usecase.ErrJournalDisabled) {
		t.Fatalf("expected journal disabled, got %v", err)
	}
}
