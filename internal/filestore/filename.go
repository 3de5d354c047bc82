package filestore

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Ошибки извлечения имени файла из заголовка Content-Disposition.
var (
	ErrMissingFilenameParameter = errors.New("content-disposition has no extended filename parameter")
	ErrFilenameDecode           = errors.New("cannot decode extended filename parameter")
)

// DecodeExtendedFilename извлекает имя файла из расширенного параметра
// filename* заголовка Content-Disposition (RFC 5987/6266). Значение
// параметра имеет форму <charset>''<percent-encoded>.
func DecodeExtendedFilename(header string) (string, error) {
	for _, segment := range strings.Split(header, ";") {
		segment = strings.TrimSpace(segment)
		if !strings.HasPrefix(segment, "filename*=") {
			continue
		}
		value := strings.TrimPrefix(segment, "filename*=")
		_, encoded, found := strings.Cut(value, "''")
		if !found {
			return "", fmt.Errorf("%w: %q", ErrFilenameDecode, value)
		}
		decoded, err := url.PathUnescape(encoded)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrFilenameDecode, err)
		}
		return decoded, nil
	}
	return "", ErrMissingFilenameParameter
}

// NormalizeFilename ограничивает длину основы имени файла, сохраняя
// расширение: патологически длинное имя не годится для файловой
// системы, а расширение нужно дальше для определения типа содержимого.
func NormalizeFilename(name string, maxStem int) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	if runes := []rune(stem); len(runes) > maxStem {
		stem = string(runes[:maxStem])
	}
	return stem + ext
}
