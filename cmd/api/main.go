package main

import (
	"log"

	_ "gateway_bridge/docs"
	"gateway_bridge/internal/adapter/http/routes"
	"gateway_bridge/internal/infrastructure/config"
	"gateway_bridge/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Gateway Bridge API
// @version         1.0
// @description     Uniform authorize, purchase, capture, void and credit over several payment gateways.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Server.Env, cfg.Server.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if err := routes.Run(cfg, zl); err != nil {
		zl.Fatal("[http] server stopped", zap.Error(err))
	}
}
