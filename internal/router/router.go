package router

import (
	"net/http"

	"github.com/avbelov/torgi-notice-service/internal/handlers"
)

func InitRoutes(notificationHandler *handlers.NotificationHandler, attachmentHandler *handlers.AttachmentHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/ping", handlers.PingHandler)
	mux.HandleFunc("POST /api/notifications", notificationHandler.IngestNotification)
	mux.HandleFunc("GET /api/notifications", notificationHandler.ListNotifications)
	mux.HandleFunc("GET /api/notifications/{noticeNumber}", notificationHandler.GetNotification)
	mux.HandleFunc("GET /api/attachments/{contentId}", attachmentHandler.DownloadAttachment)
	mux.HandleFunc("POST /api/attachments/{contentId}/save", attachmentHandler.SaveAttachment)

	return mux
}
