package controller

import (
	"net/http"

	apperrors "github.com/bemove/bemove-backend/internal/errors"
	"github.com/bemove/bemove-backend/internal/middleware"
	"github.com/bemove/bemove-backend/internal/storage"
	"github.com/gin-gonic/gin"
)

type UploadController struct {
	storage *storage.S3Storage
}

func NewUploadController(storage *storage.S3Storage) *UploadController {
	return &UploadController{
		storage: storage,
	}
}

type GeneratePresignedURLRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	Folder      string `json:"folder" binding:"required"` // meal-photos / body-sheets / equipment / profiles
}

// GeneratePresignedURL generates a presigned URL for uploading images to S3
// POST /api/v1/upload/presigned-url
func (ctrl *UploadController) GeneratePresignedURL(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req GeneratePresignedURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	allowedTypes := []string{
		"image/jpeg",
		"image/jpg",
		"image/png",
		"image/webp",
	}
	if err := ctrl.storage.ValidateContentType(req.ContentType, allowedTypes); err != nil {
		log.Warn("Invalid upload content type", map[string]interface{}{
			"content_type": req.ContentType,
		})
		apperrors.BadRequest(c, apperrors.UploadInvalidFileType, "이미지 파일만 업로드할 수 있습니다 (JPEG, PNG, WEBP)")
		return
	}

	if !storage.IsAllowedFolder(req.Folder) {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "유효하지 않은 업로드 용도입니다")
		return
	}

	response, err := ctrl.storage.GeneratePresignedUploadURL(req.Filename, req.ContentType, req.Folder)
	if err != nil {
		log.Error("Failed to generate presigned URL", err, map[string]interface{}{
			"filename": req.Filename,
			"folder":   req.Folder,
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.UploadFailed, "업로드 URL 생성에 실패했습니다")
		return
	}

	log.Info("Presigned URL generated", map[string]interface{}{
		"folder": req.Folder,
		"key":    response.Key,
	})

	c.JSON(http.StatusOK, gin.H{
		"upload_url": response.UploadURL,
		"file_url":   response.FileURL,
		"key":        response.Key,
	})
}
