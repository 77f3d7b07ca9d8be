package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	contactusecases "github.com/hostmail-io/hostmail/internal/application/contact/usecases"
	projectusecases "github.com/hostmail-io/hostmail/internal/application/project/usecases"
	"github.com/hostmail-io/hostmail/internal/interfaces/http/middleware"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
	"github.com/hostmail-io/hostmail/internal/shared/utils"
)

// PublicHandler serves the API-key authenticated endpoints embedded in
// visitor-facing sites. It never exposes owner-side data.
type PublicHandler struct {
	submitUC       *contactusecases.SubmitContactUseCase
	publicProjects *projectusecases.ListPublicProjectsUseCase
	logger         logger.Interface
}

func NewPublicHandler(
	submitUC *contactusecases.SubmitContactUseCase,
	publicProjects *projectusecases.ListPublicProjectsUseCase,
	log logger.Interface,
) *PublicHandler {
	return &PublicHandler{
		submitUC:       submitUC,
		publicProjects: publicProjects,
		logger:         log,
	}
}

// SubmitContact accepts an arbitrary JSON form payload. The body is stored
// as-is; well-known fields (email, name, subject, message) are lifted out
// for the inbox view by the use case.
func (h *PublicHandler) SubmitContact(c *gin.Context) {
	site := middleware.ResolvedWebsite(c)
	if site == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid API key")
		return
	}

	var formData map[string]any
	if err := c.ShouldBindJSON(&formData); err != nil {
		bindError(c, err)
		return
	}
	if len(formData) == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "empty form payload")
		return
	}

	result, err := h.submitUC.Execute(c.Request.Context(), contactusecases.SubmitContactCommand{
		WebsiteID: site.ID(),
		FormData:  formData,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"id": result.ID}, "message received")
}

// ListProjects returns the site's published projects in display order.
func (h *PublicHandler) ListProjects(c *gin.Context) {
	site := middleware.ResolvedWebsite(c)
	if site == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid API key")
		return
	}

	result, err := h.publicProjects.Execute(c.Request.Context(), site.ID())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.OKResponse(c, result)
}
