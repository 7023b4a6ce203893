package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"taskboard/internal/config"
	httpserver "taskboard/internal/http"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func startServer(t *testing.T) *httptest.Server {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}

	db, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(db.Close)
	applyMigrations(t, db)

	service.InitJWT("test-secret")

	// High limits so the rate limiter stays out of the way.
	cfg := &config.Config{
		APIRateLimit:      10000,
		APIRateWindowSec:  60,
		AuthRateLimit:     10000,
		AuthRateWindowSec: 60,
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	httpserver.RegisterRoutes(r, db, cfg, "test")
	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url, token string, body any) (*http.Response, map[string]any) {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()
	var obj map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&obj)
	return resp, obj
}

func TestE2E_RegisterLoginCreateTask(t *testing.T) {
	ts := startServer(t)

	email := fmt.Sprintf("e2e-%s@example.com", uuid.NewString()[:8])

	resp, obj := postJSON(t, ts.URL+"/api/v1/auth/register", "", map[string]any{
		"email":    email,
		"password": "secret123",
		"name":     "E2E",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d (%v)", resp.StatusCode, obj)
	}

	resp, obj = postJSON(t, ts.URL+"/api/v1/auth/login", "", map[string]any{
		"email":    email,
		"password": "secret123",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%v)", resp.StatusCode, obj)
	}
	token, _ := obj["token"].(string)
	if token == "" {
		t.Fatalf("login: no token in response %v", obj)
	}

	// Minimal create falls back to TODO / MEDIUM.
	resp, obj = postJSON(t, ts.URL+"/api/v1/tasks", token, map[string]any{
		"title": "Test Task",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create task: expected 201, got %d (%v)", resp.StatusCode, obj)
	}
	if obj["status"] != "TODO" || obj["priority"] != "MEDIUM" {
		t.Fatalf("unexpected defaults: status=%v priority=%v", obj["status"], obj["priority"])
	}
	if obj["title"] != "Test Task" {
		t.Fatalf("unexpected title: %v", obj["title"])
	}

	// Empty title is rejected with the field message.
	resp, obj = postJSON(t, ts.URL+"/api/v1/tasks", token, map[string]any{
		"title": "",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (%v)", resp.StatusCode, obj)
	}
	if obj["error"] != "Title is required" {
		t.Fatalf("unexpected error: %v", obj["error"])
	}

	// Missing token is a uniform 401.
	resp, obj = postJSON(t, ts.URL+"/api/v1/tasks", "", map[string]any{
		"title": "nope",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d (%v)", resp.StatusCode, obj)
	}
	if obj["error"] != "Unauthorized" {
		t.Fatalf("unexpected error: %v", obj["error"])
	}
}

func TestE2E_RegisterDuplicateEmail(t *testing.T) {
	ts := startServer(t)

	email := fmt.Sprintf("dup-%s@example.com", uuid.NewString()[:8])
	body := map[string]any{"email": email, "password": "secret123"}

	resp, obj := postJSON(t, ts.URL+"/api/v1/auth/register", "", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("first register: expected 201, got %d (%v)", resp.StatusCode, obj)
	}

	resp, obj = postJSON(t, ts.URL+"/api/v1/auth/register", "", body)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("second register: expected 400, got %d (%v)", resp.StatusCode, obj)
	}
	if obj["error"] != "Email already registered" {
		t.Fatalf("unexpected error: %v", obj["error"])
	}
}
