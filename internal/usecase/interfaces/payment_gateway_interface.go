package interfaces

import (
	"context"

	"gateway_bridge/internal/domain/entities"
)

// IPaymentGateway is the single transaction interface every gateway adapter implements.
//
// Each call performs exactly one round trip to the gateway:
//   - a decline comes back as Response{Success: false}
//   - missing options, unsupported values, transport and parse failures come back as errors
//     (see entities.ErrConfiguration, ErrUnsupportedValue, ErrTransport, ErrParse).
//
// The authorization returned by Authorize/Purchase is an opaque token the caller hands back
// to Capture, Void and Credit.
type IPaymentGateway interface {
	Name() string
	Authorize(ctx context.Context, money entities.Money, card entities.CreditCard, opts entities.Options) (entities.Response, error)
	Purchase(ctx context.Context, money entities.Money, card entities.CreditCard, opts entities.Options) (entities.Response, error)
	Capture(ctx context.Context, money entities.Money, authorization string, opts entities.Options) (entities.Response, error)
	Void(ctx context.Context, authorization string, opts entities.Options) (entities.Response, error)
	Credit(ctx context.Context, money entities.Money, identification string, opts entities.Options) (entities.Response, error)
}
