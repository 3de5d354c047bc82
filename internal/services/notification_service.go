package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/avbelov/torgi-notice-service/internal/filestore"
	"github.com/avbelov/torgi-notice-service/internal/models"
	"github.com/avbelov/torgi-notice-service/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// NotificationService принимает конверты выгрузки, ведёт реестр
// уведомлений и выдаёт вложения через файловое хранилище.
type NotificationService struct {
	Repo          repository.NotificationRepository
	Resolver      *filestore.Resolver
	Links         models.LinkBuilder
	AttachmentDir string
}

// NewNotificationService создаёт новый экземпляр NotificationService.
func NewNotificationService(repo repository.NotificationRepository, resolver *filestore.Resolver, links models.LinkBuilder, attachmentDir string) *NotificationService {
	return &NotificationService{
		Repo:          repo,
		Resolver:      resolver,
		Links:         links,
		AttachmentDir: attachmentDir,
	}
}

// IngestResult - краткая сводка по принятому уведомлению.
type IngestResult struct {
	ID           string `json:"id"`
	NoticeNumber string `json:"noticeNumber"`
	Kind         string `json:"kind"`
	Link         string `json:"link,omitempty"`
	Lots         int    `json:"lots,omitempty"`
}

// Ingest разбирает конверт выгрузки, валидирует его и сохраняет в
// реестр. Некорректный конверт отбрасывается целиком, ошибка валидации
// возвращается вызывающему.
func (s *NotificationService) Ingest(ctx context.Context, payload []byte) (*IngestResult, error) {
	notification, err := models.ParseNotification(payload)
	if err != nil {
		return nil, models.NewErrorResponse(http.StatusBadRequest, err.Error())
	}

	rec := &repository.NotificationRecord{
		ID:           uuid.New().String(),
		NoticeNumber: notification.NoticeNumber(),
		Kind:         string(notification.Kind()),
		PublishDate:  notification.PublishDate(),
		Payload:      payload,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Save(ctx, rec); err != nil {
		return nil, err
	}

	result := &IngestResult{
		ID:           rec.ID,
		NoticeNumber: rec.NoticeNumber,
		Kind:         rec.Kind,
	}
	if notice := notification.Notice(); notice != nil {
		result.Link = s.Links.NoticeLink(notice)
		result.Lots = len(notice.Lots)
	}
	return result, nil
}

// GetNotification возвращает последнее уведомление по номеру извещения.
func (s *NotificationService) GetNotification(ctx context.Context, noticeNumber string) (*repository.NotificationRecord, error) {
	if noticeNumber == "" {
		return nil, models.NewErrorResponse(http.StatusBadRequest, "notice number is required")
	}
	rec, err := s.Repo.GetByNoticeNumber(ctx, noticeNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewErrorResponse(http.StatusNotFound, fmt.Sprintf("notification %s not found", noticeNumber))
		}
		return nil, err
	}
	return rec, nil
}

// ListNotifications возвращает страницу реестра уведомлений.
func (s *NotificationService) ListNotifications(ctx context.Context, limit, offset int, kinds []string) ([]repository.NotificationRecord, error) {
	allowedKinds := map[models.DocumentKind]bool{
		models.KindNotice: true,
		models.KindCancel: true,
		models.KindStop:   true,
	}
	for _, kind := range kinds {
		if !allowedKinds[models.DocumentKind(kind)] {
			return nil, models.NewErrorResponse(http.StatusBadRequest, fmt.Sprintf("unsupported document kind: %s", kind))
		}
	}
	return s.Repo.List(ctx, limit, offset, kinds)
}

// DownloadAttachment загружает вложение по идентификатору содержимого.
func (s *NotificationService) DownloadAttachment(ctx context.Context, contentID string) (*filestore.ResolvedAttachment, error) {
	if contentID == "" {
		return nil, models.NewErrorResponse(http.StatusBadRequest, "content id is required")
	}
	attachment, err := s.Resolver.FetchByContentID(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if attachment == nil {
		return nil, models.NewErrorResponse(http.StatusNotFound, fmt.Sprintf("content %s is empty", contentID))
	}
	return attachment, nil
}

// SaveAttachment загружает вложение и сохраняет его в каталоге вложений.
func (s *NotificationService) SaveAttachment(ctx context.Context, contentID, overrideName string) (string, error) {
	if contentID == "" {
		return "", models.NewErrorResponse(http.StatusBadRequest, "content id is required")
	}
	filename, err := s.Resolver.SaveToDisk(ctx, contentID, s.AttachmentDir, overrideName)
	if err != nil {
		return "", err
	}
	if filename == "" {
		return "", models.NewErrorResponse(http.StatusNotFound, fmt.Sprintf("content %s is empty", contentID))
	}
	return filename, nil
}
