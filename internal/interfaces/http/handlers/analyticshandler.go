package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hostmail-io/hostmail/internal/application/analytics/usecases"
	"github.com/hostmail-io/hostmail/internal/interfaces/http/middleware"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
	"github.com/hostmail-io/hostmail/internal/shared/utils"
)

// AnalyticsHandler serves the owner-side analytics views. Access requires a
// plan with the analytics feature.
type AnalyticsHandler struct {
	viewUC *usecases.ViewAnalyticsUseCase
	logger logger.Interface
}

func NewAnalyticsHandler(viewUC *usecases.ViewAnalyticsUseCase, log logger.Interface) *AnalyticsHandler {
	return &AnalyticsHandler{
		viewUC: viewUC,
		logger: log,
	}
}

// Stats returns aggregated daily activity and top event types over the
// requested window, defaulting to the last 30 days.
func (h *AnalyticsHandler) Stats(c *gin.Context) {
	query := usecases.StatsQuery{AccountID: middleware.AccountID(c)}
	if ok := parseAnalyticsWindow(c, &query.WebsiteID, &query.Days); !ok {
		return
	}

	result, err := h.viewUC.Stats(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// Events lists raw analytics events, newest first.
func (h *AnalyticsHandler) Events(c *gin.Context) {
	query := usecases.ListEventsQuery{
		AccountID: middleware.AccountID(c),
		EventType: c.Query("event_type"),
	}
	if ok := parseAnalyticsWindow(c, &query.WebsiteID, &query.Days); !ok {
		return
	}

	pagination := utils.ParsePagination(c)
	items, total, err := h.viewUC.Events(c.Request.Context(), query, pagination)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, pagination.Page, pagination.PageSize)
}

func parseAnalyticsWindow(c *gin.Context, websiteID *uint, days *int) bool {
	if raw := c.Query("website_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			bindError(c, err)
			return false
		}
		*websiteID = uint(id)
	}
	if raw := c.Query("days"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil {
			bindError(c, err)
			return false
		}
		*days = d
	}
	return true
}
