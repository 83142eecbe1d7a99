package routes

import (
	"context"
	"strconv"

	"gateway_bridge/internal/adapter/http/handlers"
	"gateway_bridge/internal/adapter/persistence/repository"
	"gateway_bridge/internal/infrastructure/config"
	"gateway_bridge/internal/infrastructure/database"
	"gateway_bridge/internal/infrastructure/payments"
	"gateway_bridge/internal/infrastructure/transport"
	"gateway_bridge/internal/usecase"
	"gateway_bridge/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run will start the server
func Run(cfg *config.Config, logger *zap.Logger) error {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	uc, err := NewTransactionUseCase(context.Background(), cfg, logger)
	if err != nil {
		return err
	}
	getRoutes(router, handlers.NewTransactionHandler(uc, logger))

	logger.Info("[http] listening", zap.Int("port", cfg.Server.Port))
	return router.Run(":" + strconv.Itoa(cfg.Server.Port))
}

// NewTransactionUseCase wires every configured gateway and, when enabled, the DynamoDB
// journal. Gateways with missing credentials are skipped with a warning.
func NewTransactionUseCase(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*usecase.TransactionUseCase, error) {
	client := transport.New()
	if cfg.Gateways.Timeout > 0 {
		client = client.WithTimeout(cfg.Gateways.Timeout)
	}
	deps := payments.Dependencies{
		Logger:     logger,
		Sender:     client,
		Transactor: payments.NewBraintreeHTTPClient(client, logger),
	}
	gateways := BuildGateways(cfg.Gateways, deps, logger)

	var journal interfaces.ITransactionJournalRepository
	if cfg.Journal.Enabled {
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBSettings{
			Region:    cfg.Journal.Region,
			Endpoint:  cfg.Journal.Endpoint,
			AccessKey: cfg.Journal.AccessKey,
			SecretKey: cfg.Journal.SecretKey,
		}, logger)
		if err != nil {
			return nil, err
		}
		journal = repository.NewTransactionJournalDynamoRepository(ddb, cfg.Journal.Table)
	}

	return usecase.NewTransactionUseCase(gateways, journal, logger), nil
}

// BuildGateways builds one adapter per configured gateway. In mock mode every name is
// served by the bogus gateway.
func BuildGateways(cfg config.GatewaysConfig, deps payments.Dependencies, logger *zap.Logger) map[string]interfaces.IPaymentGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	gateways := map[string]interfaces.IPaymentGateway{}
	mock := cfg.Mock

	for _, name := range payments.SupportedGateways() {
		if mock {
			gateways[name] = payments.NewBogusGateway(deps.Logger)
			continue
		}
		if !cfg.Configured(name) {
			logger.Warn("[payment][gateway] not configured", zap.String("gateway", name))
			continue
		}
		g, err := payments.NewGateway(name, cfg.Credentials[name], deps)
		if err != nil {
			logger.Warn("[payment][gateway] init failed", zap.String("gateway", name), zap.Error(err))
			continue
		}
		gateways[name] = g
	}

	if mock {
		logger.Warn("[payment][gateway] mock mode enabled; every gateway answers with forced results")
	}
	return gateways
}

func getRoutes(router *gin.Engine, transactionHandler *handlers.TransactionHandler) {
	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addTransactionRoutes(v1, transactionHandler)
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("[http] recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
