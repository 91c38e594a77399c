package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"
	"time"

	"visionvault_backend/database"
	"visionvault_backend/internal/app"
	"visionvault_backend/internal/config"
	"visionvault_backend/internal/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TestServer runs the real router over an in-memory sqlite database.
type TestServer struct {
	Server   *httptest.Server
	DB       *gorm.DB
	Services *app.ServiceContainer
	Mailer   *app.MockEmailProvider
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testConfig(t)
	config.AppConfig = cfg
	logger.Init(cfg.Server.Env)

	// A named in-memory database keeps the schema alive across the
	// pooled connections gorm opens.
	dsn := fmt.Sprintf("file:testdb_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	router, sc := app.SetupRouterWithContainer(cfg, db)
	server := httptest.NewServer(router)

	mailer, ok := sc.Mailer.(*app.MockEmailProvider)
	if !ok {
		t.Fatal("expected the mock email provider in test config")
	}

	return &TestServer{
		Server:   server,
		DB:       db,
		Services: sc,
		Mailer:   mailer,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	if sqlDB, err := ts.DB.DB(); err == nil {
		sqlDB.Close()
	}
}

func testConfig(t *testing.T) *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Server.Port = 0
	cfg.JWT.Secret = "test-secret-key"
	cfg.JWT.TTL = 60
	cfg.Frontend.DesignerResetURL = "http://localhost:5173/aresetpassword"
	cfg.Frontend.ConsumerResetURL = "http://localhost:5173/consumerreset"
	cfg.Storage.Type = "local"
	// The server may be shared across the whole test package, so the
	// upload directory must outlive the test that happened to create it;
	// t.TempDir() would be removed when that first test finishes.
	basePath, err := os.MkdirTemp("", "visionvault-test-uploads-")
	if err != nil {
		t.Fatalf("failed to create upload directory: %v", err)
	}
	cfg.Storage.BasePath = basePath
	cfg.Storage.BaseURL = "/uploads"
	cfg.Upload.MaxSize = 10 * 1024 * 1024
	cfg.Upload.MaxFiles = 8
	cfg.Upload.AllowedTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
	return cfg
}

// SendJSON issues a request with a JSON body and returns the response
// plus its body as a string.
func (ts *TestServer) SendJSON(t *testing.T, method, path string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return ts.do(t, req)
}

// FileUpload describes one fabricated file part for SendMultipart.
type FileUpload struct {
	Field    string
	Filename string
}

// SendMultipart issues a multipart/form-data request with the given
// form fields and fabricated PNG file parts.
func (ts *TestServer) SendMultipart(t *testing.T, method, path string, fields map[string]string, files []FileUpload) (*http.Response, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("failed to write form field: %v", err)
		}
	}

	for _, file := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%q; filename=%q`, file.Field, file.Filename))
		header.Set("Content-Type", "image/png")
		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatalf("failed to create file part: %v", err)
		}
		if _, err := part.Write([]byte("png-bytes-" + file.Filename)); err != nil {
			t.Fatalf("failed to write file part: %v", err)
		}
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, &buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return ts.do(t, req)
}

func (ts *TestServer) do(t *testing.T, req *http.Request) (*http.Response, string) {
	t.Helper()

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}

	return res, string(resBody)
}

// Envelope mirrors the API response wrapper.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
}

// ParseEnvelope decodes the standard response wrapper.
func ParseEnvelope(t *testing.T, body string) Envelope {
	t.Helper()

	var env Envelope
	if err := json.Unmarshal([]byte(body), &env); err != nil {
		t.Fatalf("failed to parse response envelope %q: %v", body, err)
	}
	return env
}
