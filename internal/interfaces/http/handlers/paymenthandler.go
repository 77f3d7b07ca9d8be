package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hostmail-io/hostmail/internal/application/payment/usecases"
	"github.com/hostmail-io/hostmail/internal/interfaces/http/middleware"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
	"github.com/hostmail-io/hostmail/internal/shared/utils"
)

type PaymentHandler struct {
	createOrderUC *usecases.CreateOrderUseCase
	captureUC     *usecases.CaptureOrderUseCase
	listUC        *usecases.ListPaymentsUseCase
	logger        logger.Interface
}

func NewPaymentHandler(
	createOrderUC *usecases.CreateOrderUseCase,
	captureUC *usecases.CaptureOrderUseCase,
	listUC *usecases.ListPaymentsUseCase,
	log logger.Interface,
) *PaymentHandler {
	return &PaymentHandler{
		createOrderUC: createOrderUC,
		captureUC:     captureUC,
		listUC:        listUC,
		logger:        log,
	}
}

type CreateOrderRequest struct {
	Plan          string `json:"plan" binding:"required,oneof=pro agency"`
	BillingPeriod string `json:"billing_period" binding:"required,oneof=monthly yearly"`
}

type CaptureOrderRequest struct {
	OrderNo string `json:"order_no" binding:"required"`
}

// CreateOrder opens a payment order for a paid plan. The price comes from
// the catalog; the client only names the plan and period.
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.createOrderUC.Execute(c.Request.Context(), usecases.CreateOrderCommand{
		AccountID:     middleware.AccountID(c),
		Plan:          req.Plan,
		BillingPeriod: req.BillingPeriod,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "order created")
}

// CaptureOrder settles an approved order. On confirmed completion the paid
// plan is applied to the subscription before the response is written.
func (h *PaymentHandler) CaptureOrder(c *gin.Context) {
	var req CaptureOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.captureUC.Execute(c.Request.Context(), usecases.CaptureOrderCommand{
		AccountID: middleware.AccountID(c),
		OrderNo:   req.OrderNo,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *PaymentHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)
	items, total, err := h.listUC.Execute(c.Request.Context(), middleware.AccountID(c), pagination)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, pagination.Page, pagination.PageSize)
}
