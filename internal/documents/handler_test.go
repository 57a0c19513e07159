package documents

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/extract"
)

type fakeStore struct {
	objects map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: make(map[string][]byte)}
}

func (s *fakeStore) Save(_ context.Context, ownerID, fileName string, r io.Reader) (string, int64, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", 0, "", err
	}
	key := ownerID + "/" + fileName
	s.objects[key] = data
	return key, int64(len(data)), extract.MimePDF, nil
}

func (s *fakeStore) SaveWithKey(_ context.Context, storageKey, _ string, r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	s.objects[storageKey] = data
	return int64(len(data)), nil
}

func (s *fakeStore) Open(_ context.Context, storageKey string) (io.ReadCloser, error) {
	data, ok := s.objects[storageKey]
	if !ok {
		return nil, errors.New("object not found: " + storageKey)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func testRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userId", "guest:tester")
	})
	NewHandler(svc).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func newTestService() (*Service, *fakeStore) {
	store := newFakeStore()
	return &Service{Store: store, Repo: NewMemoryRepo(), StorageProvider: "local"}, store
}

func multipartBody(t *testing.T, fieldName, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}

func TestUploadRequiresFile(t *testing.T) {
	svc, _ := newTestService()
	router := testRouter(svc)

	body, contentType := multipartBody(t, "attachment", "resume.pdf", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "validation_error") {
		t.Fatalf("body = %s", resp.Body.String())
	}
}

func TestUploadRejectsNonPDF(t *testing.T) {
	svc, _ := newTestService()
	router := testRouter(svc)

	body, contentType := multipartBody(t, "file", "resume.pdf", []byte("plain text pretending to be a pdf"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "invalid_pdf") {
		t.Fatalf("body = %s", resp.Body.String())
	}
}

func TestCurrentNotFound(t *testing.T) {
	svc, _ := newTestService()
	router := testRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents/current", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "not_found") {
		t.Fatalf("body = %s", resp.Body.String())
	}
}

func TestListReturnsNewestFirst(t *testing.T) {
	svc, _ := newTestService()
	base := time.Now().UTC()
	for i, id := range []string{"a", "b"} {
		doc := seedDoc(id, "guest:tester", base.Add(time.Duration(i)*time.Minute))
		if err := svc.Repo.Create(context.Background(), doc); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	router := testRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}
	var docs []DocumentResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &docs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(docs) != 2 || docs[0].DocumentID != "b" || docs[1].DocumentID != "a" {
		t.Fatalf("unexpected order: %+v", docs)
	}
}

func TestServiceUploadRejectsEmptyFile(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Upload(context.Background(), "guest:tester", "resume.pdf", bytes.NewReader(nil))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestServiceTextReadsStoredCopy(t *testing.T) {
	svc, store := newTestService()
	doc := seedDoc("a", "guest:tester", time.Now())
	doc.ExtractedTextKey = extract.ExtractedTextKey(doc.StorageKey)
	store.objects[doc.ExtractedTextKey] = []byte("stored resume text")

	text, err := svc.Text(context.Background(), doc)
	if err != nil {
		t.Fatalf("text: %v", err)
	}
	if text != "stored resume text" {
		t.Fatalf("text = %q", text)
	}
}

func TestServiceTextFailsWithoutAnyCopy(t *testing.T) {
	svc, store := newTestService()
	doc := seedDoc("a", "guest:tester", time.Now())
	store.objects[doc.StorageKey] = []byte("not a pdf")

	_, err := svc.Text(context.Background(), doc)
	if !errors.Is(err, extract.ErrInvalidPDF) {
		t.Fatalf("err = %v, want ErrInvalidPDF", err)
	}
}
