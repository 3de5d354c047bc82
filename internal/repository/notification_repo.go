package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// NotificationRecord - строка реестра принятых уведомлений. Исходный
// конверт хранится целиком в payload, разобранная модель не
// сериализуется обратно.
type NotificationRecord struct {
	ID           string    `json:"id"`
	NoticeNumber string    `json:"noticeNumber"`
	Kind         string    `json:"kind"`
	PublishDate  time.Time `json:"publishDate"`
	Payload      []byte    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NotificationRepository - интерфейс реестра уведомлений.
type NotificationRepository interface {
	Save(ctx context.Context, rec *NotificationRecord) error
	GetByNoticeNumber(ctx context.Context, noticeNumber string) (*NotificationRecord, error)
	List(ctx context.Context, limit, offset int, kinds []string) ([]NotificationRecord, error)
}

// PostgresNotificationRepository - реализация NotificationRepository
// для базы данных.
type PostgresNotificationRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresNotificationRepository создаёт новый экземпляр
// PostgresNotificationRepository.
func NewPostgresNotificationRepository(db *pgxpool.Pool) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{DB: db}
}

// Save сохраняет уведомление в реестр. Повторная выгрузка того же
// извещения того же вида замещает предыдущую запись.
func (r *PostgresNotificationRepository) Save(ctx context.Context, rec *NotificationRecord) error {
	_, err := r.DB.Exec(ctx, `
       INSERT INTO notification (id, notice_number, kind, publish_date, payload, created_at)
       VALUES ($1, $2, $3, $4, $5, $6)
       ON CONFLICT (notice_number, kind)
       DO UPDATE SET id = EXCLUDED.id, publish_date = EXCLUDED.publish_date,
                     payload = EXCLUDED.payload, created_at = EXCLUDED.created_at`,
		rec.ID, rec.NoticeNumber, rec.Kind, rec.PublishDate, rec.Payload, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("save notification %s: %w", rec.NoticeNumber, err)
	}
	return nil
}

// GetByNoticeNumber возвращает последнее уведомление по номеру извещения.
func (r *PostgresNotificationRepository) GetByNoticeNumber(ctx context.Context, noticeNumber string) (*NotificationRecord, error) {
	var rec NotificationRecord
	query := `SELECT id, notice_number, kind, publish_date, payload, created_at
	          FROM notification WHERE notice_number = $1
	          ORDER BY created_at DESC LIMIT 1`
	err := r.DB.QueryRow(ctx, query, noticeNumber).Scan(
		&rec.ID,
		&rec.NoticeNumber,
		&rec.Kind,
		&rec.PublishDate,
		&rec.Payload,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// List возвращает уведомления реестра, опционально фильтруя по виду документа.
func (r *PostgresNotificationRepository) List(ctx context.Context, limit, offset int, kinds []string) ([]NotificationRecord, error) {
	query := `SELECT id, notice_number, kind, publish_date, payload, created_at FROM notification`
	var filters []string
	var args []interface{}
	argIndex := 1

	if len(kinds) > 0 {
		filters = append(filters, fmt.Sprintf("kind = ANY($%d)", argIndex))
		args = append(args, pq.Array(kinds))
		argIndex++
	}

	if len(filters) > 0 {
		query += " WHERE " + strings.Join(filters, " AND ")
	}

	query += fmt.Sprintf(" ORDER BY publish_date DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []NotificationRecord
	for rows.Next() {
		var rec NotificationRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.NoticeNumber,
			&rec.Kind,
			&rec.PublishDate,
			&rec.Payload,
			&rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
