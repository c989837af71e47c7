package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/habitual/internal/db"
	"github.com/terraincognita07/habitual/internal/models"
	"github.com/terraincognita07/habitual/internal/services"
	"gorm.io/gorm"
)

const (
	testAPIPrefix = "/api/v1"
	testSecretKey = "test-secret-key-with-at-least-32-characters"
)

type testResponse struct {
	status int
	header http.Header
	body   []byte
}

func newTestApp(t *testing.T) (*fiber.App, *Handler, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "habitual-api-test.db")
	database, err := db.OpenSQLite(databasePath, nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	handler, err := NewHandler(database, testSecretKey, time.Hour, logger)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler, testAPIPrefix)
	app.Use(handler.NotFound)
	return app, handler, database
}

func createTestUser(t *testing.T, handler *Handler, email string, password string, isAdmin bool) models.User {
	t.Helper()

	handler.ensureDependencies()
	user, err := handler.userService.CreateUser(services.NewUser{
		Email:    email,
		Password: password,
		IsActive: true,
		IsAdmin:  isAdmin,
	})
	if err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func doRequest(t *testing.T, app *fiber.App, request *http.Request) testResponse {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body failed: %v", request.Method, request.URL.Path, err)
	}
	return testResponse{status: response.StatusCode, header: response.Header, body: body}
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, token string, payload any) testResponse {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, testAPIPrefix+path, body)
	if payload != nil {
		request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	return doRequest(t, app, request)
}

func loginForm(t *testing.T, app *fiber.App, email string, password string) testResponse {
	t.Helper()

	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	request := httptest.NewRequest(http.MethodPost, testAPIPrefix+"/login/token", strings.NewReader(form.Encode()))
	request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return doRequest(t, app, request)
}

func loginToken(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()

	response := loginForm(t, app, email, password)
	if response.status != fiber.StatusOK {
		t.Fatalf("login %s expected 200, got %d: %s", email, response.status, response.body)
	}
	token := tokenView{}
	response.decode(t, &token)
	if token.AccessToken == "" {
		t.Fatalf("login %s returned empty access token", email)
	}
	return token.AccessToken
}

func (response testResponse) decode(t *testing.T, target any) {
	t.Helper()
	if err := json.Unmarshal(response.body, target); err != nil {
		t.Fatalf("decode response body %q: %v", response.body, err)
	}
}

func (response testResponse) expect(t *testing.T, status int, message string) {
	t.Helper()

	if response.status != status {
		t.Fatalf("expected status %d, got %d: %s", status, response.status, response.body)
	}
	if message == "" {
		return
	}
	payload := map[string]string{}
	response.decode(t, &payload)
	if payload["error"] != message {
		t.Fatalf("expected error %q, got %q", message, payload["error"])
	}
}

func readAPIError(t *testing.T, body io.Reader) string {
	t.Helper()

	payload := map[string]string{}
	decodeJSONBody(t, body, &payload)
	return payload["error"]
}

func decodeJSONBody(t *testing.T, body io.Reader, target any) {
	t.Helper()

	raw, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}
