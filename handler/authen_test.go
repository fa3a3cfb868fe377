package handler_test

import (
	"net/http"
	"testing"

	"travel_agency/helper"
	"travel_agency/model"
	"travel_agency/store"
)

func TestAdminRoutesRequireSession(t *testing.T) {
	app := newApp(store.NewMemoryStore())

	resp := request(t, app, "GET", "/api/v1/admin/tours", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	body := decode(t, resp)
	if body["redirect"] != "/admin/login" {
		t.Errorf("redirect = %v, want /admin/login", body["redirect"])
	}
}

func TestLoginRejectsBadPassword(t *testing.T) {
	st := store.NewMemoryStore()
	app := newApp(st)
	adminSession(t, app, st)

	resp := request(t, app, "POST", "/api/v1/auth/login", map[string]string{
		"email":    testAdminEmail,
		"password": "wrong",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
	resp.Body.Close()
}

// An account with valid credentials but no allow-list entry must not get a
// session at all.
func TestLoginRejectsUnlistedAccount(t *testing.T) {
	st := store.NewMemoryStore()
	app := newApp(st)

	hash, err := helper.HashPassword("outsider-pass")
	if err != nil {
		t.Fatal(err)
	}
	if err := st.CreateAccount(&model.Account{Email: "outsider@example.com", Password: hash}); err != nil {
		t.Fatal(err)
	}

	resp := request(t, app, "POST", "/api/v1/auth/login", map[string]string{
		"email":    "outsider@example.com",
		"password": "outsider-pass",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	for _, ck := range resp.Cookies() {
		if ck.Name == "access_token" && ck.Value != "" {
			t.Errorf("unlisted login handed out an access token")
		}
	}
	body := decode(t, resp)
	if body["redirect"] != "/admin/login?error=unauthorized" {
		t.Errorf("redirect = %v", body["redirect"])
	}
}

// Removing an admin's allow-list entry revokes their live session: the next
// admin request is refused, the cookies are cleared, and the client is sent
// back to the login page with the unauthorized indicator.
func TestAllowListRemovalRevokesSession(t *testing.T) {
	st := store.NewMemoryStore()
	app := newApp(st)
	cookies := adminSession(t, app, st)

	resp := request(t, app, "GET", "/api/v1/admin/tours", nil, cookies...)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("pre-removal admin request = %d, want 200", resp.StatusCode)
	}
	resp.Body.Close()

	users, err := st.ListAdminUsers()
	if err != nil || len(users) != 1 {
		t.Fatalf("allow-list state: %v %v", users, err)
	}
	if err := st.DeleteAdminUser(users[0].ID); err != nil {
		t.Fatal(err)
	}

	resp = request(t, app, "GET", "/api/v1/admin/tours", nil, cookies...)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("post-removal admin request = %d, want 401", resp.StatusCode)
	}
	for _, ck := range resp.Cookies() {
		if ck.Name == "access_token" && ck.Value != "" {
			t.Errorf("access token cookie not cleared on revocation")
		}
	}
	body := decode(t, resp)
	if body["redirect"] != "/admin/login?error=unauthorized" {
		t.Errorf("redirect = %v", body["redirect"])
	}
}

func TestMeReturnsSessionEmail(t *testing.T) {
	st := store.NewMemoryStore()
	app := newApp(st)
	cookies := adminSession(t, app, st)

	resp := request(t, app, "GET", "/api/v1/auth/me", nil, cookies...)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	data := decode(t, resp)["data"].(map[string]any)
	if data["email"] != testAdminEmail {
		t.Errorf("email = %v, want %s", data["email"], testAdminEmail)
	}
}

func TestLogoutClearsCookies(t *testing.T) {
	st := store.NewMemoryStore()
	app := newApp(st)
	cookies := adminSession(t, app, st)

	resp := request(t, app, "POST", "/api/v1/auth/logout", nil, cookies...)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	for _, ck := range resp.Cookies() {
		if (ck.Name == "access_token" || ck.Name == "refresh_token") && ck.Value != "" {
			t.Errorf("cookie %s survived logout", ck.Name)
		}
	}
	resp.Body.Close()
}

func TestForgotPasswordAlwaysAcknowledges(t *testing.T) {
	st := store.NewMemoryStore()
	app := newApp(st)

	known := request(t, app, "POST", "/api/v1/auth/forgot-password", map[string]string{"email": testAdminEmail})
	unknown := request(t, app, "POST", "/api/v1/auth/forgot-password", map[string]string{"email": "nobody@example.com"})
	if known.StatusCode != unknown.StatusCode {
		t.Errorf("forgot-password leaks account existence: %d vs %d", known.StatusCode, unknown.StatusCode)
	}
	known.Body.Close()
	unknown.Body.Close()
}
