package handlers

import (
	"bytes"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	ai "calendxr/services/intelligence"
	"calendxr/services/storage"
	"calendxr/services/vision"
	"calendxr/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	maxImageSize     = 10 * 1024 * 1024 // 10MB
	flyerAssetFolder = "calendxr/flyers"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// VisionHandler turns a photographed flyer into a calendar event draft.
type VisionHandler struct {
	ocr     vision.OCRService
	aiSvc   ai.AIService
	storage storage.StorageService
	logger  *zap.Logger
}

func NewVisionHandler(ocr vision.OCRService, aiSvc ai.AIService, storageSvc storage.StorageService, logger *zap.Logger) *VisionHandler {
	return &VisionHandler{ocr: ocr, aiSvc: aiSvc, storage: storageSvc, logger: logger}
}

// ExtractEvent handles POST /api/vision/extract-event.
func (h *VisionHandler) ExtractEvent(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "image file is required", err.Error())
		return
	}
	defer file.Close()

	if ext := strings.ToLower(filepath.Ext(header.Filename)); !allowedImageExtensions[ext] {
		utils.JSONError(c, http.StatusBadRequest, "invalid file type", "expected a jpg, png or webp image")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to read image", err.Error())
		return
	}

	ctx := c.Request.Context()

	text, err := h.ocr.ExtractText(ctx, bytes.NewReader(data))
	if err != nil {
		h.logger.Error("OCR failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to read text from the image", err.Error())
		return
	}
	if strings.TrimSpace(text) == "" {
		utils.JSONError(c, http.StatusUnprocessableEntity, "No text found in the image", "")
		return
	}

	draft, err := h.aiSvc.ExtractEvent(ctx, text)
	if err != nil {
		h.logger.Error("Event extraction failed", zap.Error(err))
		utils.JSONError(c, http.StatusUnprocessableEntity, "No event information was found", err.Error())
		return
	}

	// Keeping the flyer image is best effort; the draft is useful without it.
	if h.storage != nil {
		url, err := h.storage.UploadImage(ctx, bytes.NewReader(data), flyerAssetFolder)
		if err != nil {
			h.logger.Warn("Flyer upload failed", zap.Error(err))
		} else {
			draft.ImageURL = url
		}
	}

	c.JSON(http.StatusOK, draft)
}
