package handler

import (
	"errors"
	"net/http"

	"qr-code-service/internal/domain"
	"qr-code-service/internal/dto"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) CreateQRCode(c *gin.Context) {
	var req dto.CreateQRCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log.WithField("url", req.URL).Info("creating qr code")

	qr, err := h.qrUC.Create(c.Request.Context(), req.URL, req.Size)
	if errors.Is(err, domain.ErrQRCodeExists) {
		filename := domain.EncodeURL(req.URL)
		downloadURL := dto.DownloadURL(h.baseURL, h.downloadFolder, filename)
		c.JSON(http.StatusConflict, gin.H{
			"message": "QR code already exists.",
			"links":   dto.BuildLinks(filename, h.baseURL, downloadURL),
		})
		return
	}
	if err != nil {
		log.WithError(err).Error("create qr code failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCreatedResponse(qr, h.baseURL, h.downloadFolder))
}

func (h *Handler) ListQRCodes(c *gin.Context) {
	codes, err := h.qrUC.List(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("list qr codes failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListResponse(codes, h.baseURL, h.downloadFolder))
}

func (h *Handler) RetrieveQRCode(c *gin.Context) {
	path, err := h.qrUC.Path(c.Request.Context(), c.Param("filename"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.Header("Content-Type", "image/png")
	c.File(path)
}

func (h *Handler) DeleteQRCode(c *gin.Context) {
	filename := c.Param("filename")
	log.WithField("filename", filename).Info("deleting qr code")

	if err := h.qrUC.Delete(c.Request.Context(), filename); err != nil {
		mapDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
