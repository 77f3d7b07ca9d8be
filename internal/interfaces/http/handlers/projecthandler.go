package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hostmail-io/hostmail/internal/application/project/usecases"
	"github.com/hostmail-io/hostmail/internal/interfaces/http/middleware"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
	"github.com/hostmail-io/hostmail/internal/shared/utils"
)

type ProjectHandler struct {
	createUC *usecases.CreateProjectUseCase
	manageUC *usecases.ManageProjectUseCase
	logger   logger.Interface
}

func NewProjectHandler(
	createUC *usecases.CreateProjectUseCase,
	manageUC *usecases.ManageProjectUseCase,
	log logger.Interface,
) *ProjectHandler {
	return &ProjectHandler{
		createUC: createUC,
		manageUC: manageUC,
		logger:   log,
	}
}

type CreateProjectRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Slug        string `json:"slug" binding:"omitempty,slug,max=200"`
	Description string `json:"description" binding:"max=1000"`
	Content     string `json:"content"`
}

type UpdateProjectRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"max=1000"`
	Content     string `json:"content"`
	DemoURL     string `json:"demo_url" binding:"omitempty,url"`
	GithubURL   string `json:"github_url" binding:"omitempty,url"`
	Status      string `json:"status" binding:"omitempty,oneof=draft published archived"`
	Featured    *bool  `json:"featured"`
	Order       *int   `json:"order"`
}

func (h *ProjectHandler) Create(c *gin.Context) {
	websiteID := pathID(c, "id")
	if websiteID == 0 {
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateProjectCommand{
		AccountID:   middleware.AccountID(c),
		WebsiteID:   websiteID,
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Content:     req.Content,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "project created")
}

func (h *ProjectHandler) List(c *gin.Context) {
	websiteID := pathID(c, "id")
	if websiteID == 0 {
		return
	}

	pagination := utils.ParsePagination(c)
	items, total, err := h.manageUC.List(c.Request.Context(), middleware.AccountID(c), websiteID, pagination)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, int64(total), pagination.Page, pagination.PageSize)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	websiteID := pathID(c, "id")
	if websiteID == 0 {
		return
	}
	projectID := pathID(c, "projectId")
	if projectID == 0 {
		return
	}

	result, err := h.manageUC.Get(c.Request.Context(), middleware.AccountID(c), websiteID, projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	websiteID := pathID(c, "id")
	if websiteID == 0 {
		return
	}
	projectID := pathID(c, "projectId")
	if projectID == 0 {
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.manageUC.Update(c.Request.Context(), usecases.UpdateProjectCommand{
		AccountID:   middleware.AccountID(c),
		WebsiteID:   websiteID,
		ProjectID:   projectID,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		DemoURL:     req.DemoURL,
		GithubURL:   req.GithubURL,
		Status:      req.Status,
		Featured:    req.Featured,
		Order:       req.Order,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	websiteID := pathID(c, "id")
	if websiteID == 0 {
		return
	}
	projectID := pathID(c, "projectId")
	if projectID == 0 {
		return
	}

	if err := h.manageUC.Delete(c.Request.Context(), middleware.AccountID(c), websiteID, projectID); err != nil {
		respondError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
