package storage

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oncare/care-report-api/pkg/config"
	apperrors "github.com/oncare/care-report-api/pkg/errors"
	"github.com/oncare/care-report-api/pkg/tempfile"
)

type fakeStore struct {
	mu       sync.Mutex
	uploads  []string
	failKeys map[string]error
	objects  map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{failKeys: map[string]error{}, objects: map[string][]byte{}}
}

func (f *fakeStore) Upload(ctx context.Context, key, localPath, contentType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, key)
	if err := f.failKeys[key]; err != nil {
		return err
	}
	data, err := os.ReadFile(localPath)
	if err != nil {
		return err
	}
	f.objects[key] = data
	return nil
}

func (f *fakeStore) Download(ctx context.Context, key, localPath string) error {
	data, ok := f.objects[key]
	if !ok {
		return errors.New("NoSuchKey")
	}
	return os.WriteFile(localPath, data, 0o600)
}

func (f *fakeStore) Presign(ctx context.Context, key string, ttl time.Duration) (string, error) {
	return "https://signed.example/" + key + "?X-Amz-Expires=" + ttl.String(), nil
}

func (f *fakeStore) PublicURL(key string) string {
	return PublicURL("", "oncare-backend", key)
}

func newPair(t *testing.T) (*tempfile.Scope, *tempfile.Handle, *tempfile.Handle) {
	t.Helper()
	m := tempfile.NewManager(t.TempDir(), zerolog.Nop())
	scope := m.NewScope("report")
	docx, err := scope.AcquireNamed("weekly-report-1.docx")
	require.NoError(t, err)
	pdf, err := scope.AcquireNamed("weekly-report-1.pdf")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(docx.Path(), []byte("docx"), 0o600))
	require.NoError(t, os.WriteFile(pdf.Path(), []byte("pdf"), 0o600))
	return scope, docx, pdf
}

func TestKey(t *testing.T) {
	assert.Equal(t, "weekly-report/docx/a.docx", Key("weekly-report", AssetDocx, "a.docx"))
	assert.Equal(t, "journal/pdf/a.pdf", Key("journal", AssetPDF, "../../a.pdf"))
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://oncare-backend.s3.amazonaws.com/journal/docx/a.docx", PublicURL("", "oncare-backend", "journal/docx/a.docx"))
	assert.Equal(t, "https://cdn.example.com/journal/pdf/a.pdf", PublicURL("https://cdn.example.com/", "b", "journal/pdf/a.pdf"))
	assert.Equal(t, "https://b.s3.amazonaws.com/journal/docx/%EC%9D%BC%EC%A7%80.docx", PublicURL("", "b", "journal/docx/일지.docx"))
}

func TestPublishPairSuccess(t *testing.T) {
	store := newFakeStore()
	pub := NewPublisher(store, 0, zerolog.Nop())
	scope, docx, pdf := newPair(t)
	defer scope.Close()

	d, p, err := pub.PublishPair(context.Background(), "weekly-report", docx, pdf, "weekly-report-1.docx", "weekly-report-1.pdf")
	require.NoError(t, err)

	assert.Equal(t, "weekly-report/docx/weekly-report-1.docx", d.Key)
	assert.Equal(t, "https://oncare-backend.s3.amazonaws.com/weekly-report/pdf/weekly-report-1.pdf", p.URL)
	assert.Equal(t, []string{d.Key, p.Key}, store.uploads)
	assert.NoFileExists(t, docx.Path())
	assert.NoFileExists(t, pdf.Path())
}

func TestPublishPairPDFFailureKeepsBoth(t *testing.T) {
	store := newFakeStore()
	store.failKeys["weekly-report/pdf/weekly-report-1.pdf"] = errors.New("AccessDenied")
	pub := NewPublisher(store, 0, zerolog.Nop())
	scope, docx, pdf := newPair(t)

	_, _, err := pub.PublishPair(context.Background(), "weekly-report", docx, pdf, "weekly-report-1.docx", "weekly-report-1.pdf")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodePublish, apperrors.GetCode(err))

	appErr, _ := apperrors.As(err)
	assert.Equal(t, AssetPDF, appErr.Details["asset"])

	scope.Close()
	assert.FileExists(t, docx.Path())
	assert.FileExists(t, pdf.Path())
}

func TestPublishPairDocxFailure(t *testing.T) {
	store := newFakeStore()
	store.failKeys["journal/docx/weekly-report-1.docx"] = errors.New("timeout")
	pub := NewPublisher(store, 0, zerolog.Nop())
	scope, docx, pdf := newPair(t)

	_, _, err := pub.PublishPair(context.Background(), "journal", docx, pdf, "weekly-report-1.docx", "weekly-report-1.pdf")
	require.Error(t, err)

	appErr, _ := apperrors.As(err)
	assert.Equal(t, AssetDocx, appErr.Details["asset"])
	// pdf upload never attempted
	assert.Len(t, store.uploads, 1)

	scope.Close()
	assert.FileExists(t, docx.Path())
}

func TestPresignAndFetch(t *testing.T) {
	store := newFakeStore()
	store.objects["journal/docx/a.docx"] = []byte("content")
	pub := NewPublisher(store, 10*time.Minute, zerolog.Nop())

	u, err := pub.Presign(context.Background(), AssetDocx, "journal/docx/a.docx")
	require.NoError(t, err)
	assert.Contains(t, u, "X-Amz-Expires=10m0s")

	local := filepath.Join(t.TempDir(), "a.docx")
	require.NoError(t, pub.Fetch(context.Background(), AssetDocx, "journal/docx/a.docx", local))
	data, err := os.ReadFile(local)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))

	err = pub.Fetch(context.Background(), AssetDocx, "journal/docx/missing.docx", local)
	assert.Equal(t, apperrors.ErrCodePublish, apperrors.GetCode(err))
}

// s3Fake answers PutObject and GetObject with path-style routing
func s3Fake(t *testing.T) (*httptest.Server, map[string]string) {
	t.Helper()
	var mu sync.Mutex
	objects := map[string]string{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		switch r.Method {
		case http.MethodPut:
			body, _ := io.ReadAll(r.Body)
			objects[r.URL.Path] = string(body)
			w.WriteHeader(http.StatusOK)
		case http.MethodGet:
			body, ok := objects[r.URL.Path]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.Header().Set("Content-Length", strconv.Itoa(len(body)))
			_, _ = io.WriteString(w, body)
		case http.MethodHead:
			if r.URL.Path != "/oncare-backend" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, objects
}

func TestS3StoreAgainstFakeEndpoint(t *testing.T) {
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(t.TempDir(), "none"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(t.TempDir(), "none"))

	srv, objects := s3Fake(t)
	store, err := NewS3Store(context.Background(), config.S3Config{
		Bucket:    "oncare-backend",
		Region:    "ap-northeast-2",
		Endpoint:  srv.URL,
		AccessKey: "AKIDTEST",
		SecretKey: "secret",
	})
	require.NoError(t, err)

	local := filepath.Join(t.TempDir(), "a.pdf")
	require.NoError(t, os.WriteFile(local, []byte("%PDF-1.7"), 0o600))

	require.NoError(t, store.Upload(context.Background(), "journal/pdf/a.pdf", local, "application/pdf"))
	assert.Contains(t, objects, "/oncare-backend/journal/pdf/a.pdf")

	signed, err := store.Presign(context.Background(), "journal/pdf/a.pdf", 10*time.Minute)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(signed, srv.URL+"/oncare-backend/journal/pdf/a.pdf?"))
	assert.Contains(t, signed, "X-Amz-Expires=600")

	assert.Equal(t, "https://oncare-backend.s3.amazonaws.com/journal/pdf/a.pdf", store.PublicURL("journal/pdf/a.pdf"))

	assert.NoError(t, store.Ping(context.Background()))
}
