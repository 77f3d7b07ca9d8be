package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hostmail-io/hostmail/internal/application/contact/usecases"
	"github.com/hostmail-io/hostmail/internal/interfaces/http/middleware"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
	"github.com/hostmail-io/hostmail/internal/shared/utils"
)

type ContactHandler struct {
	manageUC *usecases.ManageContactsUseCase
	logger   logger.Interface
}

func NewContactHandler(manageUC *usecases.ManageContactsUseCase, log logger.Interface) *ContactHandler {
	return &ContactHandler{
		manageUC: manageUC,
		logger:   log,
	}
}

type UpdateContactStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new read replied archived spam"`
}

type UpdateContactNotesRequest struct {
	Notes string `json:"notes" binding:"max=2000"`
}

// List returns the caller's inbox, newest first, optionally filtered by
// website, status, or a search term over sender fields.
func (h *ContactHandler) List(c *gin.Context) {
	query := usecases.ListContactsQuery{
		AccountID: middleware.AccountID(c),
		Status:    c.Query("status"),
		Search:    c.Query("search"),
	}
	if raw := c.Query("website_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			bindError(c, err)
			return
		}
		query.WebsiteID = uint(id)
	}

	pagination := utils.ParsePagination(c)
	items, total, err := h.manageUC.List(c.Request.Context(), query, pagination)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, pagination.Page, pagination.PageSize)
}

func (h *ContactHandler) Get(c *gin.Context) {
	messageID := pathID(c, "id")
	if messageID == 0 {
		return
	}

	result, err := h.manageUC.Get(c.Request.Context(), middleware.AccountID(c), messageID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	messageID := pathID(c, "id")
	if messageID == 0 {
		return
	}

	var req UpdateContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.manageUC.UpdateStatus(c.Request.Context(), middleware.AccountID(c), messageID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *ContactHandler) UpdateNotes(c *gin.Context) {
	messageID := pathID(c, "id")
	if messageID == 0 {
		return
	}

	var req UpdateContactNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.manageUC.UpdateNotes(c.Request.Context(), middleware.AccountID(c), messageID, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	messageID := pathID(c, "id")
	if messageID == 0 {
		return
	}

	if err := h.manageUC.Delete(c.Request.Context(), middleware.AccountID(c), messageID); err != nil {
		respondError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
