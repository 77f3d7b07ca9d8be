package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hostmail-io/hostmail/internal/application/website/usecases"
	"github.com/hostmail-io/hostmail/internal/shared/errors"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
	"github.com/hostmail-io/hostmail/internal/shared/utils"

	"github.com/hostmail-io/hostmail/internal/interfaces/http/middleware"
)

type WebsiteHandler struct {
	createUC *usecases.CreateWebsiteUseCase
	manageUC *usecases.ManageWebsiteUseCase
	statsUC  *usecases.GetWebsiteStatsUseCase
	logger   logger.Interface
}

func NewWebsiteHandler(
	createUC *usecases.CreateWebsiteUseCase,
	manageUC *usecases.ManageWebsiteUseCase,
	statsUC *usecases.GetWebsiteStatsUseCase,
	log logger.Interface,
) *WebsiteHandler {
	return &WebsiteHandler{
		createUC: createUC,
		manageUC: manageUC,
		statsUC:  statsUC,
		logger:   log,
	}
}

type CreateWebsiteRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Domain      string `json:"domain" binding:"required,max=253"`
	Description string `json:"description" binding:"max=1000"`
}

type UpdateWebsiteRequest struct {
	Name           string   `json:"name" binding:"required,max=100"`
	Domain         string   `json:"domain" binding:"required,max=253"`
	Description    string   `json:"description" binding:"max=1000"`
	AllowedOrigins []string `json:"allowed_origins"`
	Active         *bool    `json:"active"`
}

// pathID parses a numeric path parameter. A zero return means the response
// has already been written.
func pathID(c *gin.Context, name string) uint {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		utils.AppErrorResponse(c, errors.NewValidationError("invalid "+name))
		return 0
	}
	return uint(id)
}

func (h *WebsiteHandler) Create(c *gin.Context) {
	var req CreateWebsiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateWebsiteCommand{
		AccountID:   middleware.AccountID(c),
		Name:        req.Name,
		Domain:      req.Domain,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "website created")
}

func (h *WebsiteHandler) List(c *gin.Context) {
	result, err := h.manageUC.List(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *WebsiteHandler) Get(c *gin.Context) {
	websiteID := pathID(c, "id")
	if websiteID == 0 {
		return
	}

	result, err := h.manageUC.Get(c.Request.Context(), middleware.AccountID(c), websiteID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *WebsiteHandler) Update(c *gin.Context) {
	websiteID := pathID(c, "id")
	if websiteID == 0 {
		return
	}

	var req UpdateWebsiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.manageUC.Update(c.Request.Context(), usecases.UpdateWebsiteCommand{
		AccountID:      middleware.AccountID(c),
		WebsiteID:      websiteID,
		Name:           req.Name,
		Domain:         req.Domain,
		Description:    req.Description,
		AllowedOrigins: req.AllowedOrigins,
		Active:         req.Active,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *WebsiteHandler) Delete(c *gin.Context) {
	websiteID := pathID(c, "id")
	if websiteID == 0 {
		return
	}

	if err := h.manageUC.Delete(c.Request.Context(), middleware.AccountID(c), websiteID); err != nil {
		respondError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// RegenerateAPIKey rotates the public form key. The old key stops working
// immediately.
func (h *WebsiteHandler) RegenerateAPIKey(c *gin.Context) {
	websiteID := pathID(c, "id")
	if websiteID == 0 {
		return
	}

	result, err := h.manageUC.RegenerateAPIKey(c.Request.Context(), middleware.AccountID(c), websiteID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *WebsiteHandler) Stats(c *gin.Context) {
	websiteID := pathID(c, "id")
	if websiteID == 0 {
		return
	}

	result, err := h.statsUC.Execute(c.Request.Context(), middleware.AccountID(c), websiteID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.OKResponse(c, result)
}
