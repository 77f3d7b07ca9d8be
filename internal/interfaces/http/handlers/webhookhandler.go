package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hostmail-io/hostmail/internal/application/webhook/usecases"
	"github.com/hostmail-io/hostmail/internal/interfaces/http/middleware"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
	"github.com/hostmail-io/hostmail/internal/shared/utils"
)

type WebhookHandler struct {
	manageUC *usecases.ManageWebhooksUseCase
	logger   logger.Interface
}

func NewWebhookHandler(manageUC *usecases.ManageWebhooksUseCase, log logger.Interface) *WebhookHandler {
	return &WebhookHandler{
		manageUC: manageUC,
		logger:   log,
	}
}

type CreateWebhookRequest struct {
	WebsiteID uint     `json:"website_id" binding:"required"`
	URL       string   `json:"url" binding:"required,url"`
	Events    []string `json:"events" binding:"required,min=1,dive,oneof=contact.received contact.replied project.created project.updated project.deleted"`
}

type UpdateWebhookRequest struct {
	URL    string   `json:"url" binding:"required,url"`
	Events []string `json:"events" binding:"required,min=1,dive,oneof=contact.received contact.replied project.created project.updated project.deleted"`
	Active *bool    `json:"active"`
}

// Create registers a webhook endpoint. Gated on the plan's integrations
// feature.
func (h *WebhookHandler) Create(c *gin.Context) {
	var req CreateWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.manageUC.Create(c.Request.Context(), usecases.CreateWebhookCommand{
		AccountID: middleware.AccountID(c),
		WebsiteID: req.WebsiteID,
		URL:       req.URL,
		Events:    req.Events,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "webhook created")
}

func (h *WebhookHandler) List(c *gin.Context) {
	websiteID := pathID(c, "id")
	if websiteID == 0 {
		return
	}

	result, err := h.manageUC.List(c.Request.Context(), middleware.AccountID(c), websiteID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *WebhookHandler) Update(c *gin.Context) {
	webhookID := pathID(c, "id")
	if webhookID == 0 {
		return
	}

	var req UpdateWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.manageUC.Update(c.Request.Context(), usecases.UpdateWebhookCommand{
		AccountID: middleware.AccountID(c),
		WebhookID: webhookID,
		URL:       req.URL,
		Events:    req.Events,
		Active:    req.Active,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *WebhookHandler) Delete(c *gin.Context) {
	webhookID := pathID(c, "id")
	if webhookID == 0 {
		return
	}

	if err := h.manageUC.Delete(c.Request.Context(), middleware.AccountID(c), webhookID); err != nil {
		respondError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// RegenerateSecret rotates the signing secret. In-flight deliveries signed
// with the old secret will fail verification on the receiver.
func (h *WebhookHandler) RegenerateSecret(c *gin.Context) {
	webhookID := pathID(c, "id")
	if webhookID == 0 {
		return
	}

	result, err := h.manageUC.RegenerateSecret(c.Request.Context(), middleware.AccountID(c), webhookID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *WebhookHandler) ListDeliveries(c *gin.Context) {
	webhookID := pathID(c, "id")
	if webhookID == 0 {
		return
	}

	pagination := utils.ParsePagination(c)
	result, err := h.manageUC.ListDeliveries(c.Request.Context(), middleware.AccountID(c), webhookID, pagination)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.OKResponse(c, result)
}
