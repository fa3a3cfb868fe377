package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"travel_agency/helper"
	"travel_agency/model"
	"travel_agency/router"
	"travel_agency/store"

	"github.com/gofiber/fiber/v2"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

func newApp(st store.Store) *fiber.App {
	app := fiber.New()
	router.SetupRoutes(app, st)
	return app
}

func request(t *testing.T, app *fiber.App, method, path string, payload any, cookies ...*http.Cookie) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

// rows digs the row list out of the standard list envelope.
func rows(t *testing.T, resp *http.Response) []any {
	t.Helper()

	out := decode(t, resp)
	data, ok := out["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", out)
	}
	r, ok := data["rows"].([]any)
	if !ok {
		if data["rows"] == nil {
			return nil
		}
		t.Fatalf("response has no rows: %v", out)
	}
	return r
}

const (
	testAdminEmail    = "ops@example.com"
	testAdminPassword = "correct-horse-battery"
)

// adminSession seeds a credentialed, allow-listed admin and logs in,
// returning the session cookies.
func adminSession(t *testing.T, app *fiber.App, st *store.MemoryStore) []*http.Cookie {
	t.Helper()

	hash, err := helper.HashPassword(testAdminPassword)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := st.CreateAccount(&model.Account{Email: testAdminEmail, Password: hash}); err != nil {
		t.Fatalf("seed account: %v", err)
	}
	if err := st.CreateAdminUser(&model.AdminUser{Email: testAdminEmail}); err != nil {
		t.Fatalf("seed allow-list: %v", err)
	}

	resp := request(t, app, "POST", "/api/v1/auth/login", map[string]string{
		"email":    testAdminEmail,
		"password": testAdminPassword,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed with status %d", resp.StatusCode)
	}
	resp.Body.Close()
	return resp.Cookies()
}
