package models

import "fmt"

// Doc - ссылка на документ извещения в файловом хранилище.
// Содержимое по ссылке не хранится в модели и загружается отдельно.
type Doc struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Size           int64    `json:"size"`
	Hash           string   `json:"hash"`
	AttachmentType CodeName `json:"attachmentType"`
}

// ContentID возвращает идентификатор содержимого в хранилище.
func (d Doc) ContentID() (string, error) {
	if d.ID == "" {
		return "", fmt.Errorf("%w: doc %q", ErrMissingIdentifier, d.Name)
	}
	return d.ID, nil
}

func (d *Doc) validate(path string) error {
	if d.ID == "" {
		return missingField(path, "id")
	}
	if d.Name == "" {
		return missingField(path, "name")
	}
	if d.Size <= 0 {
		return missingField(path, "size")
	}
	if d.Hash == "" {
		return missingField(path, "hash")
	}
	return d.AttachmentType.validate(joinPath(path, "attachmentType"))
}

// ImageID - ссылка на изображение лота. В отличие от Doc тип вложения
// содержит только код, без наименования.
type ImageID struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Size           int64     `json:"size"`
	Hash           string    `json:"hash"`
	AttachmentType CodeModel `json:"attachmentType"`
}

// ContentID возвращает идентификатор содержимого в хранилище.
func (m ImageID) ContentID() (string, error) {
	if m.ID == "" {
		return "", fmt.Errorf("%w: image %q", ErrMissingIdentifier, m.Name)
	}
	return m.ID, nil
}

func (m *ImageID) validate(path string) error {
	if m.ID == "" {
		return missingField(path, "id")
	}
	if m.Name == "" {
		return missingField(path, "name")
	}
	if m.Size <= 0 {
		return missingField(path, "size")
	}
	if m.Hash == "" {
		return missingField(path, "hash")
	}
	return m.AttachmentType.validate(joinPath(path, "attachmentType"))
}

// SignedData - подписанный пакет данных документа.
type SignedData struct {
	ID       string `json:"id"`
	Size     int64  `json:"size"`
	Hash     string `json:"hash"`
	FileType string `json:"fileType"`
}

// ContentID возвращает идентификатор содержимого в хранилище.
func (s SignedData) ContentID() (string, error) {
	if s.ID == "" {
		return "", fmt.Errorf("%w: signed data", ErrMissingIdentifier)
	}
	return s.ID, nil
}

func (s *SignedData) validate(path string) error {
	if s.ID == "" {
		return missingField(path, "id")
	}
	if s.Size <= 0 {
		return missingField(path, "size")
	}
	if s.Hash == "" {
		return missingField(path, "hash")
	}
	if s.FileType == "" {
		return missingField(path, "fileType")
	}
	return nil
}

// Attachment - вложение верхнего уровня конверта выгрузки.
type Attachment struct {
	ContentIdent      string `json:"contentId"`
	URL               string `json:"URL"`
	DetachedSignature string `json:"detachedSignature"`
}

// ContentID возвращает идентификатор содержимого в хранилище.
func (a Attachment) ContentID() (string, error) {
	if a.ContentIdent == "" {
		return "", fmt.Errorf("%w: attachment %q", ErrMissingIdentifier, a.URL)
	}
	return a.ContentIdent, nil
}

func (a *Attachment) validate(path string) error {
	if a.ContentIdent == "" {
		return missingField(path, "contentId")
	}
	if a.URL == "" {
		return missingField(path, "URL")
	}
	if a.DetachedSignature == "" {
		return missingField(path, "detachedSignature")
	}
	return nil
}
