package services

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStorage keeps uploads in a map for assertions.
type memStorage struct {
	mu    sync.Mutex
	files map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{files: make(map[string][]byte)}
}

func (m *memStorage) Save(_ context.Context, path string, reader io.Reader) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = data
	return nil
}

func (m *memStorage) Get(_ context.Context, path string) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[path]
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memStorage) Delete(_ context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, path)
	return nil
}

func (m *memStorage) Exists(_ context.Context, path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[path]
	return ok, nil
}

func (m *memStorage) GetURL(path string) string {
	return "/api/v1/files/" + path
}

const uploadTestMaxSize = 5 * 1024 * 1024

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestUploadService_ResumeUpload(t *testing.T) {
	store := newMemStorage()
	svc := NewUploadService(store, uploadTestMaxSize)

	content := []byte("%PDF-1.4 fake resume")
	result, err := svc.Upload(context.Background(), "user-1", "resume.pdf", int64(len(content)), bytes.NewReader(content))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.Path, "user-1/"))
	assert.True(t, strings.HasSuffix(result.Path, ".pdf"))
	assert.Equal(t, "/api/v1/files/"+result.Path, result.URL)
	assert.Empty(t, result.ThumbnailURL)

	stored, ok := store.files[result.Path]
	require.True(t, ok)
	assert.Equal(t, content, stored)
}

func TestUploadService_UploadedNameIsNeverReused(t *testing.T) {
	store := newMemStorage()
	svc := NewUploadService(store, uploadTestMaxSize)

	content := []byte("doc")
	first, err := svc.Upload(context.Background(), "user-1", "cv.doc", 3, bytes.NewReader(content))
	require.NoError(t, err)
	second, err := svc.Upload(context.Background(), "user-1", "cv.doc", 3, bytes.NewReader(content))
	require.NoError(t, err)

	assert.NotEqual(t, first.Path, second.Path)
	assert.Len(t, store.files, 2)
}

func TestUploadService_ImageGetsThumbnail(t *testing.T) {
	store := newMemStorage()
	svc := NewUploadService(store, uploadTestMaxSize)

	img := pngBytes(t, 800, 600)
	result, err := svc.Upload(context.Background(), "admin-1", "banner.png", int64(len(img)), bytes.NewReader(img))
	require.NoError(t, err)
	require.NotEmpty(t, result.ThumbnailURL)

	thumbPath := strings.TrimPrefix(result.ThumbnailURL, "/api/v1/files/")
	thumbData, ok := store.files[thumbPath]
	require.True(t, ok)

	cfg, _, err := image.DecodeConfig(bytes.NewReader(thumbData))
	require.NoError(t, err)
	assert.LessOrEqual(t, cfg.Width, 300)
	assert.LessOrEqual(t, cfg.Height, 200)
}

func TestUploadService_ImageStoredCappedAtCoverSize(t *testing.T) {
	store := newMemStorage()
	svc := NewUploadService(store, uploadTestMaxSize)

	img := pngBytes(t, 2400, 1600)
	result, err := svc.Upload(context.Background(), "admin-1", "hero.png", int64(len(img)), bytes.NewReader(img))
	require.NoError(t, err)

	stored, ok := store.files[result.Path]
	require.True(t, ok)

	cfg, _, err := image.DecodeConfig(bytes.NewReader(stored))
	require.NoError(t, err)
	assert.LessOrEqual(t, cfg.Width, 1200)
	assert.LessOrEqual(t, cfg.Height, 630)
}

func TestUploadService_RejectsCorruptImage(t *testing.T) {
	store := newMemStorage()
	svc := NewUploadService(store, uploadTestMaxSize)

	_, err := svc.Upload(context.Background(), "user-1", "photo.png", 9, strings.NewReader("not a png"))
	require.Error(t, err)
	assert.Empty(t, store.files)
}

func TestUploadService_RejectsDisallowedTypes(t *testing.T) {
	svc := NewUploadService(newMemStorage(), uploadTestMaxSize)

	_, err := svc.Upload(context.Background(), "user-1", "malware.exe", 10, strings.NewReader("MZ"))
	require.Error(t, err)

	_, err = svc.Upload(context.Background(), "user-1", "noext", 10, strings.NewReader("data"))
	require.Error(t, err)
}

func TestUploadService_RejectsOversizedFile(t *testing.T) {
	svc := NewUploadService(newMemStorage(), 100)

	_, err := svc.Upload(context.Background(), "user-1", "big.pdf", 101, strings.NewReader("x"))
	require.Error(t, err)
}

func TestUploadService_GetAndDelete(t *testing.T) {
	store := newMemStorage()
	svc := NewUploadService(store, uploadTestMaxSize)

	content := []byte("%PDF-1.4")
	result, err := svc.Upload(context.Background(), "user-1", "resume.pdf", int64(len(content)), bytes.NewReader(content))
	require.NoError(t, err)

	rc, err := svc.Get(context.Background(), result.Path)
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, content, got)

	require.NoError(t, svc.Delete(context.Background(), result.Path))
	assert.Error(t, svc.Delete(context.Background(), result.Path))
	_, err = svc.Get(context.Background(), result.Path)
	assert.Error(t, err)
}
