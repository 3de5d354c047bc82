package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"mime"
	"net/http"
	"time"

	"github.com/avbelov/torgi-notice-service/internal/models"
	"github.com/avbelov/torgi-notice-service/internal/services"
	"github.com/avbelov/torgi-notice-service/internal/utils"
)

// AttachmentHandler - структура для обработки HTTP-запросов к вложениям.
type AttachmentHandler struct {
	Service *services.NotificationService
	Logger  *log.Logger
	Timeout time.Duration
}

// NewAttachmentHandler создаёт новый экземпляр AttachmentHandler.
func NewAttachmentHandler(service *services.NotificationService, logger *log.Logger, timeout time.Duration) *AttachmentHandler {
	return &AttachmentHandler{
		Service: service,
		Logger:  logger,
		Timeout: timeout,
	}
}

// DownloadAttachment обрабатывает запросы на скачивание вложения по
// идентификатору содержимого.
func (h *AttachmentHandler) DownloadAttachment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	contentID := r.PathValue("contentId")

	attachment, err := h.Service.DownloadAttachment(ctx, contentID)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Println(err)
			utils.SendErrorResponse(w, errorResponse.StatusCode, errorResponse.Message)
			return
		}
		h.Logger.Println(err)
		utils.SendErrorResponse(w, http.StatusBadGateway, "failed to fetch attachment")
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": attachment.Filename}))
	w.Header().Set("Content-Length", fmt.Sprint(len(attachment.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(attachment.Content); err != nil {
		h.Logger.Println(err)
	}
}

// SaveAttachment обрабатывает запросы на сохранение вложения в каталог
// вложений сервиса. Имя файла можно переопределить параметром filename.
func (h *AttachmentHandler) SaveAttachment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only POST is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	contentID := r.PathValue("contentId")
	overrideName := r.URL.Query().Get("filename")

	filename, err := h.Service.SaveAttachment(ctx, contentID, overrideName)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Println(err)
			utils.SendErrorResponse(w, errorResponse.StatusCode, errorResponse.Message)
			return
		}
		h.Logger.Println(err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to save attachment")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(map[string]string{"filename": filename}); err != nil {
		h.Logger.Println(err)
	}
}
