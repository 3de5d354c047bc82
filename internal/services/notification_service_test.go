package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avbelov/torgi-notice-service/internal/filestore"
	"github.com/avbelov/torgi-notice-service/internal/models"
	"github.com/avbelov/torgi-notice-service/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	records map[string]repository.NotificationRecord
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: map[string]repository.NotificationRecord{}}
}

func (f *fakeRepo) Save(ctx context.Context, rec *repository.NotificationRecord) error {
	f.records[rec.NoticeNumber] = *rec
	return nil
}

func (f *fakeRepo) GetByNoticeNumber(ctx context.Context, noticeNumber string) (*repository.NotificationRecord, error) {
	rec, ok := f.records[noticeNumber]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &rec, nil
}

func (f *fakeRepo) List(ctx context.Context, limit, offset int, kinds []string) ([]repository.NotificationRecord, error) {
	var records []repository.NotificationRecord
	for _, rec := range f.records {
		records = append(records, rec)
	}
	return records, nil
}

const cancelPayload = `{
  "exportObject": {
    "structuredObject": {
      "noticeCancel": {
        "schemeVersion": "1.0",
        "id": "cancel-1",
        "commonInfo": {
          "noticeNumber": "21000013010000000099",
          "publishDate": "20240215T1030",
          "href": "https://torgi.gov.ru/new/public/notices/view/21000013010000000099"
        },
        "cancelReason": {"code": "01", "name": "Отказ организатора"},
        "decisionDate": "20240214",
        "timezone": {"code": "MSK", "name": "Московское время"},
        "signedData": {"id": "sig-3", "size": 512, "hash": "bb22", "fileType": "sig"}
      }
    }
  }
}`

func newTestService(t *testing.T, repo repository.NotificationRepository) *NotificationService {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''dogovor.pdf")
		w.Write([]byte("pdf-bytes"))
	}))
	t.Cleanup(server.Close)

	resolver := filestore.NewResolver(server.Client(), filestore.Config{BaseURL: server.URL + "/"})
	links := models.LinkBuilder{NoticeURL: "https://torgi.gov.ru/n/", LotURL: "https://torgi.gov.ru/l/"}
	return NewNotificationService(repo, resolver, links, t.TempDir())
}

func TestNotificationService_Ingest(t *testing.T) {
	repo := newFakeRepo()
	service := newTestService(t, repo)

	result, err := service.Ingest(context.Background(), []byte(cancelPayload))
	require.NoError(t, err)
	assert.Equal(t, "21000013010000000099", result.NoticeNumber)
	assert.Equal(t, string(models.KindCancel), result.Kind)
	assert.NotEmpty(t, result.ID)

	rec, ok := repo.records["21000013010000000099"]
	require.True(t, ok)
	assert.Equal(t, []byte(cancelPayload), rec.Payload)
}

func TestNotificationService_Ingest_RejectsInvalidPayload(t *testing.T) {
	repo := newFakeRepo()
	service := newTestService(t, repo)

	_, err := service.Ingest(context.Background(), []byte(`{"exportObject": {"structuredObject": {}}}`))
	var errorResponse *models.ErrorResponse
	require.ErrorAs(t, err, &errorResponse)
	assert.Equal(t, http.StatusBadRequest, errorResponse.StatusCode)
	assert.Empty(t, repo.records)
}

func TestNotificationService_GetNotification_NotFound(t *testing.T) {
	service := newTestService(t, newFakeRepo())

	_, err := service.GetNotification(context.Background(), "unknown")
	var errorResponse *models.ErrorResponse
	require.ErrorAs(t, err, &errorResponse)
	assert.Equal(t, http.StatusNotFound, errorResponse.StatusCode)
}

func TestNotificationService_ListNotifications_RejectsUnknownKind(t *testing.T) {
	service := newTestService(t, newFakeRepo())

	_, err := service.ListNotifications(context.Background(), 5, 0, []string{"bogus"})
	var errorResponse *models.ErrorResponse
	require.ErrorAs(t, err, &errorResponse)
	assert.Equal(t, http.StatusBadRequest, errorResponse.StatusCode)
}

func TestNotificationService_DownloadAttachment(t *testing.T) {
	service := newTestService(t, newFakeRepo())

	attachment, err := service.DownloadAttachment(context.Background(), "content-1")
	require.NoError(t, err)
	assert.Equal(t, "dogovor.pdf", attachment.Filename)
	assert.Equal(t, []byte("pdf-bytes"), attachment.Content)
}

func TestNotificationService_SaveAttachment_Override(t *testing.T) {
	service := newTestService(t, newFakeRepo())

	filename, err := service.SaveAttachment(context.Background(), "content-1", "x.bin")
	require.NoError(t, err)
	assert.Equal(t, "x.bin", filename)
}
