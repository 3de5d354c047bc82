package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// DefaultMaxStemLength - предельная длина основы имени файла по умолчанию.
const DefaultMaxStemLength = 100

// ErrFilenameExtraction - для непустого содержимого не удалось получить
// имя файла. Содержимое без имени нельзя безопасно записать на диск.
var ErrFilenameExtraction = errors.New("cannot derive filename for fetched content")

// PersistenceError - ошибка записи вложения на диск.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return "save attachment: " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Config - параметры доступа к файловому хранилищу.
type Config struct {
	BaseURL       string
	MaxStemLength int
}

// Doer выполняет HTTP-запрос. Транспортный коллаборатор резолвера:
// таймауты и политика отмены - его ответственность.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ContentRef - запись модели, ссылающаяся на содержимое хранилища.
type ContentRef interface {
	ContentID() (string, error)
}

// ResolvedAttachment - результат загрузки вложения: имя файла и
// содержимое. Значение живёт в пределах одного вызова и не кэшируется.
type ResolvedAttachment struct {
	Filename string
	Content  []byte
}

// Resolver загружает вложения из файлового хранилища по идентификатору
// содержимого. Конкурентные вызовы независимы; повторные запросы одного
// идентификатора не дедуплицируются: хранилище контентно-адресуемо.
type Resolver struct {
	client Doer
	cfg    Config
}

// NewResolver создаёт новый экземпляр Resolver. При nil client
// используется http.DefaultClient со штатной проверкой сертификатов.
func NewResolver(client Doer, cfg Config) *Resolver {
	if client == nil {
		client = http.DefaultClient
	}
	if cfg.MaxStemLength <= 0 {
		cfg.MaxStemLength = DefaultMaxStemLength
	}
	return &Resolver{client: client, cfg: cfg}
}

// FetchByContentID загружает содержимое по идентификатору. Пустое тело
// ответа - штатный случай «содержимого нет»: возвращается (nil, nil).
// Имя файла берётся из расширенного параметра заголовка
// Content-Disposition и нормализуется по длине.
func (r *Resolver) FetchByContentID(ctx context.Context, contentID string) (*ResolvedAttachment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.cfg.BaseURL+contentID, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch content %s: %w", contentID, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch content %s: %w", contentID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch content %s: unexpected status %s", contentID, resp.Status)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch content %s: %w", contentID, err)
	}
	if len(content) == 0 {
		return nil, nil
	}

	name, err := DecodeExtendedFilename(resp.Header.Get("Content-Disposition"))
	if err != nil {
		return nil, fmt.Errorf("%w: content %s: %v", ErrFilenameExtraction, contentID, err)
	}

	return &ResolvedAttachment{
		Filename: NormalizeFilename(name, r.cfg.MaxStemLength),
		Content:  content,
	}, nil
}

// SaveToDisk загружает вложение и записывает его в файл. Итоговое имя:
// overrideName, если задано, иначе нормализованное имя из хранилища;
// при заданном dir файл кладётся внутрь каталога. Возвращает пустое имя,
// если содержимого нет - файл не создаётся.
func (r *Resolver) SaveToDisk(ctx context.Context, contentID, dir, overrideName string) (string, error) {
	attachment, err := r.FetchByContentID(ctx, contentID)
	if err != nil {
		return "", err
	}
	if attachment == nil {
		return "", nil
	}

	filename := attachment.Filename
	if overrideName != "" {
		filename = overrideName
	}
	target := filename
	if dir != "" {
		target = filepath.Join(dir, filename)
	}
	if err := os.WriteFile(target, attachment.Content, 0o644); err != nil {
		return "", &PersistenceError{Err: err}
	}
	return filename, nil
}

// Fetch загружает содержимое записи модели, ссылающейся на хранилище.
func (r *Resolver) Fetch(ctx context.Context, ref ContentRef) (*ResolvedAttachment, error) {
	id, err := ref.ContentID()
	if err != nil {
		return nil, err
	}
	return r.FetchByContentID(ctx, id)
}

// Save загружает содержимое записи модели и записывает его на диск.
func (r *Resolver) Save(ctx context.Context, ref ContentRef, dir, overrideName string) (string, error) {
	id, err := ref.ContentID()
	if err != nil {
		return "", err
	}
	return r.SaveToDisk(ctx, id, dir, overrideName)
}
