package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func newAdminTestApp(stub *stubAdminService) *fiber.App {
	app := fiber.New()
	h := NewAdminHandler(stub)
	app.Post("/api/v1/admin/seed-data", h.SeedData)
	app.Post("/api/v1/admin/set-admin", h.SetAdmin)
	return app
}

type stubAdminService struct {
	seedCount int
	seedErr   error
	setErr    error
	lastUID   string
}

func (s *stubAdminService) SeedProducts(now time.Time) (int, error) {
	return s.seedCount, s.seedErr
}

func (s *stubAdminService) SetAdmin(uid string) error {
	s.lastUID = uid
	return s.setErr
}

func TestSeedDataSuccess(t *testing.T) {
	app := newAdminTestApp(&stubAdminService{seedCount: 8})

	resp, err := app.Test(httptest.NewRequest("POST", "/api/v1/admin/seed-data", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Message string `json:"message"`
		Count   int    `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Count != 8 || body.Message == "" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestSeedDataFailureIsPlainText(t *testing.T) {
	app := newAdminTestApp(&stubAdminService{seedErr: errors.New("store unavailable")})

	resp, err := app.Test(httptest.NewRequest("POST", "/api/v1/admin/seed-data", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 500 {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("expected plain text error, got %q", ct)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "store unavailable" {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestSetAdminMissingUID(t *testing.T) {
	stub := &stubAdminService{}
	app := newAdminTestApp(stub)

	req := httptest.NewRequest("POST", "/api/v1/admin/set-admin", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if stub.lastUID != "" {
		t.Fatal("service should not be invoked without a uid")
	}
}

func TestSetAdminForwardsUID(t *testing.T) {
	stub := &stubAdminService{}
	app := newAdminTestApp(stub)

	req := httptest.NewRequest("POST", "/api/v1/admin/set-admin", strings.NewReader(`{"uid":"user-123"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if stub.lastUID != "user-123" {
		t.Fatalf("uid not forwarded: %q", stub.lastUID)
	}
}
