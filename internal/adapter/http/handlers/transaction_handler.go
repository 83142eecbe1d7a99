package handlers

import (
	"errors"
	"net/http"

	request "gateway_bridge/internal/adapter/http/dto/request"
	response "gateway_bridge/internal/adapter/http/dto/response"
	"gateway_bridge/internal/domain/entities"
	"gateway_bridge/internal/usecase"
	"gateway_bridge/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidTransactionPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// TransactionHandler exposes the gateway operations over HTTP.
type TransactionHandler struct {
	usecase usecase.ITransactionUseCase
	logger  *zap.Logger
}

func NewTransactionHandler(uc usecase.ITransactionUseCase, logger *zap.Logger) *TransactionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransactionHandler{usecase: uc, logger: logger}
}

// ListGateways godoc
// @Summary      List configured gateways
// @Tags         gateways
// @Produce      json
// @Success      200  {object}  response.GatewaysResponse
// @Router       /gateways [get]
func (h *TransactionHandler) ListGateways(c *gin.Context) {
	c.JSON(http.StatusOK, response.GatewaysResponse{Gateways: h.usecase.Gateways()})
}

// Authorize godoc
// @Summary      Authorize an amount on a card
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        gateway  path      string               true  "Gateway name"
// @Param        payload  body      request.SaleRequest  true  "Sale payload"
// @Success      200      {object}  response.TransactionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /gateways/{gateway}/authorize [post]
func (h *TransactionHandler) Authorize(c *gin.Context) {
	h.sale(c, entities.ActionAuthorize)
}

// Purchase godoc
// @Summary      Authorize and capture in one step
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        gateway  path      string               true  "Gateway name"
// @Param        payload  body      request.SaleRequest  true  "Sale payload"
// @Success      200      {object}  response.TransactionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /gateways/{gateway}/purchase [post]
func (h *TransactionHandler) Purchase(c *gin.Context) {
	h.sale(c, entities.ActionPurchase)
}

func (h *TransactionHandler) sale(c *gin.Context, action entities.Action) {
	gateway := c.Param("gateway")
	var payload request.SaleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Warn("[payment][handler] invalid payload", zap.String("gateway", gateway), zap.String("action", string(action)), zap.Error(err))
		c.JSON(errInvalidTransactionPayload.HTTPStatus, errInvalidTransactionPayload.ToHTTPError())
		return
	}
	money, err := payload.ResolveMoney()
	if err != nil {
		h.fail(c, gateway, action, err)
		return
	}

	card := payload.Card.ToCreditCard()
	opts := request.ToOptions(payload.Options)
	var resp entities.Response
	if action == entities.ActionAuthorize {
		resp, err = h.usecase.Authorize(c.Request.Context(), gateway, money, card, opts)
	} else {
		resp, err = h.usecase.Purchase(c.Request.Context(), gateway, money, card, opts)
	}
	h.reply(c, gateway, action, resp, err)
}

// Capture godoc
// @Summary      Capture a previous authorization
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        gateway  path      string                  true  "Gateway name"
// @Param        payload  body      request.CaptureRequest  true  "Capture payload"
// @Success      200      {object}  response.TransactionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /gateways/{gateway}/capture [post]
func (h *TransactionHandler) Capture(c *gin.Context) {
	gateway := c.Param("gateway")
	var payload request.CaptureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransactionPayload.HTTPStatus, errInvalidTransactionPayload.ToHTTPError())
		return
	}
	money, err := payload.ResolveMoney()
	if err != nil {
		h.fail(c, gateway, entities.ActionCapture, err)
		return
	}

	resp, err := h.usecase.Capture(c.Request.Context(), gateway, money, payload.Authorization, request.ToOptions(payload.Options))
	h.reply(c, gateway, entities.ActionCapture, resp, err)
}

// Void godoc
// @Summary      Cancel a previous authorization
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        gateway  path      string               true  "Gateway name"
// @Param        payload  body      request.VoidRequest  true  "Void payload"
// @Success      200      {object}  response.TransactionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /gateways/{gateway}/void [post]
func (h *TransactionHandler) Void(c *gin.Context) {
	gateway := c.Param("gateway")
	var payload request.VoidRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransactionPayload.HTTPStatus, errInvalidTransactionPayload.ToHTTPError())
		return
	}

	resp, err := h.usecase.Void(c.Request.Context(), gateway, payload.Authorization, request.ToOptions(payload.Options))
	h.reply(c, gateway, entities.ActionVoid, resp, err)
}

// Credit godoc
// @Summary      Refund a settled transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        gateway  path      string                 true  "Gateway name"
// @Param        payload  body      request.CreditRequest  true  "Credit payload"
// @Success      200      {object}  response.TransactionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /gateways/{gateway}/credit [post]
func (h *TransactionHandler) Credit(c *gin.Context) {
	gateway := c.Param("gateway")
	var payload request.CreditRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransactionPayload.HTTPStatus, errInvalidTransactionPayload.ToHTTPError())
		return
	}
	money, err := payload.ResolveMoney()
	if err != nil {
		h.fail(c, gateway, entities.ActionCredit, err)
		return
	}

	resp, err := h.usecase.Credit(c.Request.Context(), gateway, money, payload.Identification, request.ToOptions(payload.Options))
	h.reply(c, gateway, entities.ActionCredit, resp, err)
}

// ListByAuthorization godoc
// @Summary      Journal entries sharing one authorization
// @Tags         journal
// @Produce      json
// @Param        authorization  path      string  true  "Authorization token"
// @Success      200            {array}   response.TransactionRecordResponse
// @Failure      503            {object}  pkg.HTTPError
// @Router       /transactions/{authorization} [get]
func (h *TransactionHandler) ListByAuthorization(c *gin.Context) {
	records, err := h.usecase.ListByAuthorization(c.Request.Context(), c.Param("authorization"))
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTransactionRecords(records))
}

// GetRecord godoc
// @Summary      One journal entry
// @Tags         journal
// @Produce      json
// @Param        id   path      string  true  "Journal entry id"
// @Success      200  {object}  response.TransactionRecordResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /records/{id} [get]
func (h *TransactionHandler) GetRecord(c *gin.Context) {
	rec, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTransactionRecord(rec))
}

func (h *TransactionHandler) reply(c *gin.Context, gateway string, action entities.Action, resp entities.Response, err error) {
	if err != nil {
		h.fail(c, gateway, action, err)
		return
	}
	c.JSON(http.StatusOK, response.FromResponse(gateway, resp))
}

func (h *TransactionHandler) fail(c *gin.Context, gateway string, action entities.Action, err error) {
	h.logger.Warn("[payment][handler] request failed",
		zap.String("gateway", gateway),
		zap.String("action", string(action)),
		zap.Error(err),
	)
	appErr := mapTransactionError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapTransactionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrGatewayNotFound):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_FOUND", "Gateway not configured", http.StatusNotFound)
	case errors.Is(err, entities.ErrConfiguration):
		return pkg.NewDomainError("MISSING_OPTION", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrUnsupportedValue):
		return pkg.NewDomainError("UNSUPPORTED_VALUE", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrNegativeAmount), errors.Is(err, usecase.ErrInvalidAuthorization), errors.Is(err, usecase.ErrInvalidTransactionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrTransport):
		return pkg.NewDomainError("GATEWAY_UNAVAILABLE", "Payment gateway unavailable", err, http.StatusBadGateway)
	case errors.Is(err, entities.ErrParse):
		return pkg.NewDomainError("GATEWAY_BAD_RESPONSE", "Payment gateway returned an unexpected response", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJournalDisabled):
		return pkg.NewDomainErrorSimple("JOURNAL_DISABLED", "Transaction journal disabled", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
