package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hostmail-io/hostmail/internal/application/subscription/usecases"
	"github.com/hostmail-io/hostmail/internal/interfaces/http/middleware"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
	"github.com/hostmail-io/hostmail/internal/shared/utils"
)

type SubscriptionHandler struct {
	getSubscriptionUC *usecases.GetSubscriptionUseCase
	listPlansUC       *usecases.ListPlansUseCase
	requestUpgradeUC  *usecases.RequestUpgradeUseCase
	cancelUC          *usecases.CancelSubscriptionUseCase
	logger            logger.Interface
}

func NewSubscriptionHandler(
	getSubscriptionUC *usecases.GetSubscriptionUseCase,
	listPlansUC *usecases.ListPlansUseCase,
	requestUpgradeUC *usecases.RequestUpgradeUseCase,
	cancelUC *usecases.CancelSubscriptionUseCase,
	log logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		getSubscriptionUC: getSubscriptionUC,
		listPlansUC:       listPlansUC,
		requestUpgradeUC:  requestUpgradeUC,
		cancelUC:          cancelUC,
		logger:            log,
	}
}

type UpgradeRequest struct {
	Plan          string `json:"plan" binding:"required,oneof=free pro agency"`
	BillingPeriod string `json:"billing_period" binding:"required,oneof=monthly yearly"`
}

// GetSubscription returns the caller's subscription with its current usage
// counters and limit snapshot.
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	result, err := h.getSubscriptionUC.Execute(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// ListPlans returns the catalog. It requires no authentication state beyond
// the route group it is mounted in.
func (h *SubscriptionHandler) ListPlans(c *gin.Context) {
	utils.OKResponse(c, h.listPlansUC.Execute(c.Request.Context()))
}

// RequestUpgrade asks for a plan change. Free targets apply immediately;
// paid targets answer with a payment-required decision.
func (h *SubscriptionHandler) RequestUpgrade(c *gin.Context) {
	var req UpgradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.requestUpgradeUC.Execute(c.Request.Context(), usecases.RequestUpgradeCommand{
		AccountID:     middleware.AccountID(c),
		Plan:          req.Plan,
		BillingPeriod: req.BillingPeriod,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// Cancel cancels a paid subscription at the end of the paid term.
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	if err := h.cancelUC.Execute(c.Request.Context(), middleware.AccountID(c)); err != nil {
		respondError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
