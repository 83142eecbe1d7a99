package payments

import (
	"fmt"
	"sort"
	"strings"

	"gateway_bridge/internal/domain/entities"
	"gateway_bridge/internal/infrastructure/transport"
	"gateway_bridge/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Dependencies are the collaborators shared by every adapter built by NewGateway.
// Zero values select the production implementations.
type Dependencies struct {
	Logger     *zap.Logger
	Sender     transport.Sender
	Transactor BraintreeTransactor
}

var requiredCredentials = map[string][]string{
	braintreeName:   braintreeCredentials,
	piraeusName:     piraeusCredentials,
	mercadoPagoName: mercadoPagoCredentials,
	bogusName:       nil,
}

// SupportedGateways lists the gateway names NewGateway understands, sorted.
func SupportedGateways() []string {
	names := make([]string, 0, len(requiredCredentials))
	for name := range requiredCredentials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RequiredCredentials returns the configuration keys a gateway needs at construction.
func RequiredCredentials(name string) ([]string, bool) {
	keys, ok := requiredCredentials[strings.ToLower(name)]
	return keys, ok
}

// NewGateway builds the adapter registered under name.
func NewGateway(name string, credentials entities.Options, deps Dependencies) (interfaces.IPaymentGateway, error) {
	switch strings.ToLower(name) {
	case braintreeName:
		return NewBraintreeGateway(credentials, deps.Transactor, deps.Logger)
	case piraeusName:
		return NewPiraeusGateway(credentials, deps.Sender, deps.Logger)
	case mercadoPagoName:
		return NewMercadoPagoGateway(credentials, deps.Logger)
	case bogusName:
		return NewBogusGateway(deps.Logger), nil
	default:
		return nil, &entities.UnsupportedValueError{Kind: "gateway", Value: name}
	}
}

// GenerateUniqueID returns a fresh reference suitable for order ids.
func GenerateUniqueID() string {
	return fmt.Sprintf("%x", uuid.New())
}
