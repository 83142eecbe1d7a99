package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gateway_bridge/internal/adapter/http/dto/response"
	"gateway_bridge/internal/domain/entities"
	"gateway_bridge/internal/infrastructure/config"
	"gateway_bridge/internal/infrastructure/logger"
	"gateway_bridge/internal/infrastructure/payments"
	"gateway_bridge/internal/infrastructure/transport"
	"gateway_bridge/internal/usecase/interfaces"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Factory builds the adapter a command talks to.
type Factory func(name string) (interfaces.IPaymentGateway, error)

type flags struct {
	gateway  string
	amount   string
	currency string
	timeout  time.Duration
	opts     []string

	number    string
	cvv       string
	month     int
	year      int
	firstName string
	lastName  string
	brand     string

	authorization  string
	identification string
}

// NewCommand returns the "tx" command tree. A nil factory builds gateways from the
// environment configuration.
func NewCommand(factory Factory) *cobra.Command {
	if factory == nil {
		factory = FromConfig
	}
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Run one gateway transaction",
		Long:  `Send a single authorize, purchase, capture, void or credit to a configured gateway and print the normalized response as JSON.`,
	}
	cmd.PersistentFlags().StringVarP(&f.gateway, "gateway", "g", "bogus", "Gateway name")
	cmd.PersistentFlags().StringArrayVarP(&f.opts, "opt", "o", nil, "Gateway option as key=value (repeatable)")
	cmd.PersistentFlags().DurationVar(&f.timeout, "timeout", 30*time.Second, "Request timeout")

	cmd.AddCommand(
		newSaleCommand(f, factory, entities.ActionAuthorize),
		newSaleCommand(f, factory, entities.ActionPurchase),
		newCaptureCommand(f, factory),
		newVoidCommand(f, factory),
		newCreditCommand(f, factory),
		newListCommand(),
	)
	return cmd
}

func moneyFlags(cmd *cobra.Command, f *flags) {
	cmd.Flags().StringVarP(&f.amount, "amount", "a", "", "Amount as a decimal string")
	cmd.Flags().StringVarP(&f.currency, "currency", "c", "USD", "ISO 4217 currency code")
	_ = cmd.MarkFlagRequired("amount")
}

func newSaleCommand(f *flags, factory Factory, action entities.Action) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(action),
		Short: fmt.Sprintf("Run a card %s", action),
		RunE: func(cmd *cobra.Command, _ []string) error {
			money, err := entities.ParseMoney(f.amount, f.currency)
			if err != nil {
				return err
			}
			card := entities.CreditCard{
				Number:            f.number,
				VerificationValue: f.cvv,
				Month:             f.month,
				Year:              f.year,
				FirstName:         f.firstName,
				LastName:          f.lastName,
				Brand:             f.brand,
			}
			return run(cmd, f, factory, func(ctx context.Context, g interfaces.IPaymentGateway, opts entities.Options) (entities.Response, error) {
				if !opts.Has("order_id") {
					opts["order_id"] = payments.GenerateUniqueID()
				}
				if action == entities.ActionAuthorize {
					return g.Authorize(ctx, money, card, opts)
				}
				return g.Purchase(ctx, money, card, opts)
			})
		},
	}
	moneyFlags(cmd, f)
	cmd.Flags().StringVar(&f.number, "number", "", "Card number")
	cmd.Flags().StringVar(&f.cvv, "cvv", "", "Card verification value")
	cmd.Flags().IntVar(&f.month, "month", 0, "Expiry month")
	cmd.Flags().IntVar(&f.year, "year", 0, "Expiry year")
	cmd.Flags().StringVar(&f.firstName, "first-name", "", "Cardholder first name")
	cmd.Flags().StringVar(&f.lastName, "last-name", "", "Cardholder last name")
	cmd.Flags().StringVar(&f.brand, "brand", "", "Card brand (detected from the number when empty)")
	_ = cmd.MarkFlagRequired("number")
	return cmd
}

func newCaptureCommand(f *flags, factory Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Capture a previous authorization",
		RunE: func(cmd *cobra.Command, _ []string) error {
			money, err := entities.ParseMoney(f.amount, f.currency)
			if err != nil {
				return err
			}
			return run(cmd, f, factory, func(ctx context.Context, g interfaces.IPaymentGateway, opts entities.Options) (entities.Response, error) {
				return g.Capture(ctx, money, f.authorization, opts)
			})
		},
	}
	moneyFlags(cmd, f)
	cmd.Flags().StringVar(&f.authorization, "authorization", "", "Authorization returned by authorize")
	_ = cmd.MarkFlagRequired("authorization")
	return cmd
}

func newVoidCommand(f *flags, factory Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "void",
		Short: "Void a previous authorization",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, f, factory, func(ctx context.Context, g interfaces.IPaymentGateway, opts entities.Options) (entities.Response, error) {
				return g.Void(ctx, f.authorization, opts)
			})
		},
	}
	cmd.Flags().StringVar(&f.authorization, "authorization", "", "Authorization returned by authorize")
	_ = cmd.MarkFlagRequired("authorization")
	return cmd
}

func newCreditCommand(f *flags, factory Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credit",
		Short: "Refund a settled transaction",
		RunE: func(cmd *cobra.Command, _ []string) error {
			money, err := entities.ParseMoney(f.amount, f.currency)
			if err != nil {
				return err
			}
			return run(cmd, f, factory, func(ctx context.Context, g interfaces.IPaymentGateway, opts entities.Options) (entities.Response, error) {
				return g.Credit(ctx, money, f.identification, opts)
			})
		},
	}
	moneyFlags(cmd, f)
	cmd.Flags().StringVar(&f.identification, "identification", "", "Identification of the settled transaction")
	_ = cmd.MarkFlagRequired("identification")
	return cmd
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gateways",
		Short: "List supported gateways and their credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, name := range payments.SupportedGateways() {
				required, _ := payments.RequiredCredentials(name)
				fmt.Fprintf(out, "%s\t%s\n", name, strings.Join(required, ","))
			}
			return nil
		},
	}
}

func run(cmd *cobra.Command, f *flags, factory Factory, call func(context.Context, interfaces.IPaymentGateway, entities.Options) (entities.Response, error)) error {
	opts, err := ParseOptions(f.opts)
	if err != nil {
		return err
	}
	g, err := factory(f.gateway)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), f.timeout)
	defer cancel()

	resp, err := call(ctx, g, opts)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), response.FromResponse(g.Name(), resp))
}

// ParseOptions turns repeated key=value flags into gateway options.
func ParseOptions(pairs []string) (entities.Options, error) {
	opts := entities.Options{}
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid option %q, expected key=value", p)
		}
		opts[key] = value
	}
	return opts, nil
}

// FromConfig builds the named gateway from environment credentials. Mock mode always
// returns the bogus gateway.
func FromConfig(name string) (interfaces.IPaymentGateway, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	zl := logger.Must(cfg.Server.Env, cfg.Server.LogLevel)
	client := transport.New()
	if cfg.Gateways.Timeout > 0 {
		client = client.WithTimeout(cfg.Gateways.Timeout)
	}
	deps := payments.Dependencies{
		Logger:     zl,
		Sender:     client,
		Transactor: payments.NewBraintreeHTTPClient(client, zl),
	}

	if cfg.Gateways.Mock {
		zl.Warn("[payment][gateway] mock mode enabled", zap.String("gateway", name))
		return payments.NewBogusGateway(zl), nil
	}
	return payments.NewGateway(name, cfg.Gateways.Credentials[strings.ToLower(name)], deps)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
