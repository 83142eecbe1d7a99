package routes

import (
	"net/http"

	"gateway_bridge/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing         = "/ping"
	PathGateways     = "/gateways"
	PathTransactions = "/transactions"
	PathRecords      = "/records"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addTransactionRoutes(rg *gin.RouterGroup, h *handlers.TransactionHandler) {
	rg.GET(PathGateways, h.ListGateways)

	gateway := rg.Group(PathGateways + "/:gateway")
	{
		gateway.POST("/authorize", h.Authorize)
		gateway.POST("/purchase", h.Purchase)
		gateway.POST("/capture", h.Capture)
		gateway.POST("/void", h.Void)
		gateway.POST("/credit", h.Credit)
	}

	rg.GET(PathTransactions+"/:authorization", h.ListByAuthorization)
	rg.GET(PathRecords+"/:id", h.GetRecord)
}
