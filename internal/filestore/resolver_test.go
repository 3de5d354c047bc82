package filestore

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storedContent struct {
	disposition string
	body        []byte
}

func newFilestoreServer(t *testing.T, contents map[string]storedContent) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		content, ok := contents[filepath.Base(r.URL.Path)]
		if !ok {
			http.NotFound(w, r)
			return
		}
		if content.disposition != "" {
			w.Header().Set("Content-Disposition", content.disposition)
		}
		w.WriteHeader(http.StatusOK)
		w.Write(content.body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestResolver_FetchByContentID(t *testing.T) {
	server := newFilestoreServer(t, map[string]storedContent{
		"content-1": {
			disposition: "attachment; filename*=UTF-8''report%20final.pdf",
			body:        []byte("pdf-bytes"),
		},
	})

	resolver := NewResolver(server.Client(), Config{BaseURL: server.URL + "/"})

	attachment, err := resolver.FetchByContentID(context.Background(), "content-1")
	require.NoError(t, err)
	require.NotNil(t, attachment)
	assert.Equal(t, "report final.pdf", attachment.Filename)
	assert.Equal(t, []byte("pdf-bytes"), attachment.Content)
}

// Пустое тело ответа - не ошибка, а штатное отсутствие содержимого.
func TestResolver_FetchByContentID_EmptyBody(t *testing.T) {
	server := newFilestoreServer(t, map[string]storedContent{
		"empty-1": {disposition: "attachment; filename*=UTF-8''empty.bin"},
	})

	resolver := NewResolver(server.Client(), Config{BaseURL: server.URL + "/"})

	attachment, err := resolver.FetchByContentID(context.Background(), "empty-1")
	require.NoError(t, err)
	assert.Nil(t, attachment)
}

// Непустое содержимое без извлекаемого имени файла - фатальная ошибка:
// такое содержимое нельзя безопасно записать на диск.
func TestResolver_FetchByContentID_NoFilename(t *testing.T) {
	server := newFilestoreServer(t, map[string]storedContent{
		"content-2": {body: []byte("bytes-without-name")},
	})

	resolver := NewResolver(server.Client(), Config{BaseURL: server.URL + "/"})

	_, err := resolver.FetchByContentID(context.Background(), "content-2")
	assert.ErrorIs(t, err, ErrFilenameExtraction)
}

func TestResolver_FetchByContentID_NotFound(t *testing.T) {
	server := newFilestoreServer(t, nil)

	resolver := NewResolver(server.Client(), Config{BaseURL: server.URL + "/"})

	_, err := resolver.FetchByContentID(context.Background(), "missing")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrFilenameExtraction)
}

func TestResolver_FilenameNormalization(t *testing.T) {
	server := newFilestoreServer(t, map[string]storedContent{
		"content-3": {
			disposition: "attachment; filename*=UTF-8''averylongname.pdf",
			body:        []byte("x"),
		},
	})

	resolver := NewResolver(server.Client(), Config{BaseURL: server.URL + "/", MaxStemLength: 5})

	attachment, err := resolver.FetchByContentID(context.Background(), "content-3")
	require.NoError(t, err)
	assert.Equal(t, "avery.pdf", attachment.Filename)
}

func TestResolver_SaveToDisk(t *testing.T) {
	server := newFilestoreServer(t, map[string]storedContent{
		"content-4": {
			disposition: "attachment; filename*=UTF-8''derived.pdf",
			body:        []byte("content-bytes"),
		},
	})

	resolver := NewResolver(server.Client(), Config{BaseURL: server.URL + "/"})
	dir := t.TempDir()

	filename, err := resolver.SaveToDisk(context.Background(), "content-4", dir, "")
	require.NoError(t, err)
	assert.Equal(t, "derived.pdf", filename)

	written, err := os.ReadFile(filepath.Join(dir, "derived.pdf"))
	require.NoError(t, err)
	assert.Equal(t, []byte("content-bytes"), written)
}

// Явно заданное имя всегда выигрывает у имени из заголовка.
func TestResolver_SaveToDisk_OverrideFilename(t *testing.T) {
	server := newFilestoreServer(t, map[string]storedContent{
		"content-5": {
			disposition: "attachment; filename*=UTF-8''derived.pdf",
			body:        []byte("content-bytes"),
		},
	})

	resolver := NewResolver(server.Client(), Config{BaseURL: server.URL + "/"})
	dir := t.TempDir()

	filename, err := resolver.SaveToDisk(context.Background(), "content-5", dir, "x.bin")
	require.NoError(t, err)
	assert.Equal(t, "x.bin", filename)

	_, err = os.Stat(filepath.Join(dir, "x.bin"))
	require.NoError(t, err)
}

func TestResolver_SaveToDisk_EmptyContent(t *testing.T) {
	server := newFilestoreServer(t, map[string]storedContent{
		"empty-2": {disposition: "attachment; filename*=UTF-8''empty.bin"},
	})

	resolver := NewResolver(server.Client(), Config{BaseURL: server.URL + "/"})
	dir := t.TempDir()

	filename, err := resolver.SaveToDisk(context.Background(), "empty-2", dir, "x.bin")
	require.NoError(t, err)
	assert.Empty(t, filename)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestResolver_SaveToDisk_PersistenceError(t *testing.T) {
	server := newFilestoreServer(t, map[string]storedContent{
		"content-6": {
			disposition: "attachment; filename*=UTF-8''derived.pdf",
			body:        []byte("content-bytes"),
		},
	})

	resolver := NewResolver(server.Client(), Config{BaseURL: server.URL + "/"})

	_, err := resolver.SaveToDisk(context.Background(), "content-6", filepath.Join(t.TempDir(), "no-such-dir"), "")
	var persistenceErr *PersistenceError
	require.ErrorAs(t, err, &persistenceErr)
}

type stubRef struct {
	id  string
	err error
}

func (s stubRef) ContentID() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.id, nil
}

func TestResolver_Fetch_ByRef(t *testing.T) {
	server := newFilestoreServer(t, map[string]storedContent{
		"ref-1": {
			disposition: "attachment; filename*=UTF-8''signed.sig",
			body:        []byte("signature"),
		},
	})

	resolver := NewResolver(server.Client(), Config{BaseURL: server.URL + "/"})

	attachment, err := resolver.Fetch(context.Background(), stubRef{id: "ref-1"})
	require.NoError(t, err)
	require.NotNil(t, attachment)
	assert.Equal(t, "signed.sig", attachment.Filename)

	wantErr := errors.New("no identifier")
	_, err = resolver.Fetch(context.Background(), stubRef{err: wantErr})
	assert.ErrorIs(t, err, wantErr)
}

func TestResolver_ConcurrentFetches(t *testing.T) {
	contents := map[string]storedContent{}
	for i := 0; i < 8; i++ {
		contents[fmt.Sprintf("c-%d", i)] = storedContent{
			disposition: fmt.Sprintf("attachment; filename*=UTF-8''file-%d.bin", i),
			body:        []byte{byte(i + 1)},
		}
	}
	server := newFilestoreServer(t, contents)

	resolver := NewResolver(server.Client(), Config{BaseURL: server.URL + "/"})

	errCh := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func(i int) {
			attachment, err := resolver.FetchByContentID(context.Background(), fmt.Sprintf("c-%d", i))
			if err == nil && attachment.Filename != fmt.Sprintf("file-%d.bin", i) {
				err = fmt.Errorf("unexpected filename %s", attachment.Filename)
			}
			errCh <- err
		}(i)
	}
	for i := 0; i < 8; i++ {
		require.NoError(t, <-errCh)
	}
}
