package handler

import (
	"qr-code-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	qrUC           *usecase.QRCodeUseCase
	baseURL        string
	downloadFolder string
}

func New(qrUC *usecase.QRCodeUseCase, baseURL, downloadFolder string) *Handler {
	return &Handler{qrUC: qrUC, baseURL: baseURL, downloadFolder: downloadFolder}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/qr-codes", h.CreateQRCode)
	r.GET("/qr-codes", h.ListQRCodes)
	r.GET("/qr-codes/:filename", h.RetrieveQRCode)
	r.DELETE("/qr-codes/:filename", h.DeleteQRCode)
}
