package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hostmail-io/hostmail/internal/application/asset/usecases"
	"github.com/hostmail-io/hostmail/internal/interfaces/http/middleware"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
	"github.com/hostmail-io/hostmail/internal/shared/utils"
)

// maxUploadBytes caps a single multipart upload. The storage quota is
// enforced separately against the subscription.
const maxUploadBytes = 25 << 20

type AssetHandler struct {
	uploadUC *usecases.UploadAssetUseCase
	manageUC *usecases.ManageAssetsUseCase
	logger   logger.Interface
}

func NewAssetHandler(
	uploadUC *usecases.UploadAssetUseCase,
	manageUC *usecases.ManageAssetsUseCase,
	log logger.Interface,
) *AssetHandler {
	return &AssetHandler{
		uploadUC: uploadUC,
		manageUC: manageUC,
		logger:   log,
	}
}

func (h *AssetHandler) Upload(c *gin.Context) {
	websiteID := pathID(c, "id")
	if websiteID == 0 {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "missing file field")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "file too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "unreadable upload")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "unreadable upload")
		return
	}
	if len(data) > maxUploadBytes {
		utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "file too large")
		return
	}

	result, err := h.uploadUC.Execute(c.Request.Context(), usecases.UploadAssetCommand{
		AccountID:   middleware.AccountID(c),
		WebsiteID:   websiteID,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "asset stored")
}

func (h *AssetHandler) List(c *gin.Context) {
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

	utils.ListSuccessResponse(c, items, total, pagination.Page, pagination.PageSize)
}

func (h *AssetHandler) Delete(c *gin.Context) {
	assetID := pathID(c, "id")
	if assetID == 0 {
		return
	}

	if err := h.manageUC.Delete(c.Request.Context(), middleware.AccountID(c), assetID); err != nil {
		respondError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
