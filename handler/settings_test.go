package handler_test

import (
	"net/http"
	"testing"

	"travel_agency/constants"
	"travel_agency/store"
)

// The settings endpoint must keep serving even when the database was never
// configured: every field resolves to its default.
func TestGetSettingsWithoutDatabase(t *testing.T) {
	app := newApp(store.NewDisconnectedStore())

	resp := request(t, app, "GET", "/api/v1/settings", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	data := decode(t, resp)["data"].(map[string]any)
	if data["address"] != constants.DEFAULT_ADDRESS {
		t.Errorf("address = %v, want default", data["address"])
	}
	if data["heroBadgeText"] != constants.DEFAULT_HERO_BADGE {
		t.Errorf("heroBadgeText = %v, want default", data["heroBadgeText"])
	}
}

func TestUpdateSettingsOverlay(t *testing.T) {
	st := store.NewMemoryStore()
	app := newApp(st)
	cookies := adminSession(t, app, st)

	resp := request(t, app, "PUT", "/api/v1/admin/settings", map[string]any{
		"phone": "+91 90000 00000",
	}, cookies...)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	resp.Body.Close()

	// the updated field sticks, untouched ones keep resolving to defaults
	data := decode(t, request(t, app, "GET", "/api/v1/settings", nil))["data"].(map[string]any)
	if data["phone"] != "+91 90000 00000" {
		t.Errorf("phone = %v", data["phone"])
	}
	if data["address"] != constants.DEFAULT_ADDRESS {
		t.Errorf("address = %v, want default", data["address"])
	}
}

func TestUpdateSettingsPartialKeepsStoredFields(t *testing.T) {
	st := store.NewMemoryStore()
	app := newApp(st)
	cookies := adminSession(t, app, st)

	request(t, app, "PUT", "/api/v1/admin/settings", map[string]any{
		"websiteName": "Wanderlane",
	}, cookies...).Body.Close()
	request(t, app, "PUT", "/api/v1/admin/settings", map[string]any{
		"phone": "+91 91111 11111",
	}, cookies...).Body.Close()

	data := decode(t, request(t, app, "GET", "/api/v1/settings", nil))["data"].(map[string]any)
	if data["websiteName"] != "Wanderlane" {
		t.Errorf("earlier update lost: websiteName = %v", data["websiteName"])
	}
	if data["phone"] != "+91 91111 11111" {
		t.Errorf("phone = %v", data["phone"])
	}
}
