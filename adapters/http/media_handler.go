package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	identityUC "github.com/studenthub/profile-api/internal/application/usecase/identity"
	mediaUC "github.com/studenthub/profile-api/internal/application/usecase/media"
	"github.com/studenthub/profile-api/pkg/apperror"
	"github.com/studenthub/profile-api/pkg/logger"
)

type MediaHandler struct {
	resolveUC *identityUC.ResolveUserUseCase
	uploadUC  *mediaUC.UploadImageUseCase
	deleteUC  *mediaUC.DeleteImageUseCase
	logger    logger.Logger
}

func NewMediaHandler(resolveUC *identityUC.ResolveUserUseCase, uploadUC *mediaUC.UploadImageUseCase, deleteUC *mediaUC.DeleteImageUseCase, log logger.Logger) *MediaHandler {
	return &MediaHandler{
		resolveUC: resolveUC,
		uploadUC:  uploadUC,
		deleteUC:  deleteUC,
		logger:    log,
	}
}

func (h *MediaHandler) UploadImage(c *gin.Context) {
	caller, ok := resolveCaller(c, h.resolveUC)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("'file' is required", err))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open uploaded file", err))
		return
	}
	defer file.Close()

	input := mediaUC.UploadImageInput{
		UserID:       caller.ID,
		File:         file,
		UploadPreset: c.PostForm("upload_preset"),
	}
	output, err := h.uploadUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"secure_url": output.SecureURL,
		"public_id":  output.PublicID,
	})
}

// DeleteImage keeps the wire contract of the original deletion endpoint:
// a JSON body {"publicId": "..."}, answered with 200 {"result": ...} or
// 500 {"error": ...} and nothing in between.
func (h *MediaHandler) DeleteImage(c *gin.Context) {
	if _, ok := resolveCaller(c, h.resolveUC); !ok {
		return
	}

	var req DeleteImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), mediaUC.DeleteImageInput{PublicID: req.PublicID}); err != nil {
		h.logger.Error("Error deleting image", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "ok"})
}
