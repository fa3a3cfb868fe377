package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"travel_agency/model"
	"travel_agency/store"
)

func seedTour(t *testing.T, st *store.MemoryStore, title, category string, price float64) model.Tour {
	t.Helper()
	tour := model.Tour{
		Title:    title,
		Slug:     fmt.Sprintf("%s-%d", category, int(price)),
		Category: category,
		Price:    price,
		Duration: "5 Days / 4 Nights",
		Rating:   5,
	}
	if err := st.CreateTour(&tour); err != nil {
		t.Fatalf("seed tour: %v", err)
	}
	return tour
}

func TestGetToursCategoryFilter(t *testing.T) {
	st := store.NewMemoryStore()
	app := newApp(st)

	seedTour(t, st, "Bali Escape", "International", 55000)
	seedTour(t, st, "Kerala Backwaters", "Domestic", 18000)
	seedTour(t, st, "Swiss Alps", "International", 145000)

	resp := request(t, app, "GET", "/api/v1/tours?category=International", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	list := rows(t, resp)
	if len(list) != 2 {
		t.Fatalf("got %d tours, want 2", len(list))
	}
	for _, raw := range list {
		tour := raw.(map[string]any)
		if tour["category"] != "International" {
			t.Errorf("tour %v leaked into International filter", tour["title"])
		}
	}

	resp = request(t, app, "GET", "/api/v1/tours", nil)
	if got := len(rows(t, resp)); got != 3 {
		t.Fatalf("unfiltered list has %d tours, want 3", got)
	}
}

func TestGetToursSortOrder(t *testing.T) {
	st := store.NewMemoryStore()
	app := newApp(st)

	seedTour(t, st, "Mid", "Domestic", 20000)
	seedTour(t, st, "Cheap", "Domestic", 9000)
	seedTour(t, st, "Pricey", "Domestic", 80000)

	prices := func(resp *http.Response) []float64 {
		var out []float64
		for _, raw := range rows(t, resp) {
			out = append(out, raw.(map[string]any)["price"].(float64))
		}
		return out
	}

	asc := prices(request(t, app, "GET", "/api/v1/tours?sort=price_asc", nil))
	for i := 1; i < len(asc); i++ {
		if asc[i] < asc[i-1] {
			t.Fatalf("price_asc not non-decreasing: %v", asc)
		}
	}

	desc := prices(request(t, app, "GET", "/api/v1/tours?sort=price_desc", nil))
	for i := 1; i < len(desc); i++ {
		if desc[i] > desc[i-1] {
			t.Fatalf("price_desc not non-increasing: %v", desc)
		}
	}
}

func TestGetToursLatestDefault(t *testing.T) {
	st := store.NewMemoryStore()
	app := newApp(st)

	seedTour(t, st, "First", "Domestic", 100)
	seedTour(t, st, "Second", "Domestic", 200)
	seedTour(t, st, "Third", "Domestic", 300)

	list := rows(t, request(t, app, "GET", "/api/v1/tours", nil))
	if len(list) != 3 {
		t.Fatalf("got %d tours, want 3", len(list))
	}
	if list[0].(map[string]any)["title"] != "Third" {
		t.Errorf("default sort did not put newest first: first row is %v", list[0].(map[string]any)["title"])
	}
}

func TestCreateTourDerivesSlug(t *testing.T) {
	st := store.NewMemoryStore()
	app := newApp(st)
	cookies := adminSession(t, app, st)

	resp := request(t, app, "POST", "/api/v1/admin/tours", map[string]any{
		"title":    "Magical Maldives!!",
		"category": "International",
		"price":    72000,
		"duration": "4 Days / 3 Nights",
	}, cookies...)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	data := decode(t, resp)["data"].(map[string]any)
	if data["slug"] != "magical-maldives" {
		t.Errorf("slug = %q, want %q", data["slug"], "magical-maldives")
	}
}

func TestCreateTourSlugCollisionSuffixed(t *testing.T) {
	st := store.NewMemoryStore()
	app := newApp(st)
	cookies := adminSession(t, app, st)

	payload := map[string]any{
		"title":    "Goa Getaway",
		"category": "Domestic",
		"price":    15000,
		"duration": "3 Days",
	}
	first := decode(t, request(t, app, "POST", "/api/v1/admin/tours", payload, cookies...))["data"].(map[string]any)
	second := decode(t, request(t, app, "POST", "/api/v1/admin/tours", payload, cookies...))["data"].(map[string]any)

	if first["slug"] != "goa-getaway" {
		t.Errorf("first slug = %q, want goa-getaway", first["slug"])
	}
	if second["slug"] != "goa-getaway-2" {
		t.Errorf("second slug = %q, want goa-getaway-2", second["slug"])
	}
}

func TestEditTourPreservesSlug(t *testing.T) {
	st := store.NewMemoryStore()
	app := newApp(st)
	cookies := adminSession(t, app, st)

	tour := model.Tour{Title: "Old Title", Slug: "old-title", Category: "Domestic", Price: 10000, Duration: "2 Days", Rating: 5}
	if err := st.CreateTour(&tour); err != nil {
		t.Fatalf("seed tour: %v", err)
	}

	resp := request(t, app, "PUT", fmt.Sprintf("/api/v1/admin/tours/%d", tour.ID), map[string]any{
		"title":    "Completely New Title",
		"category": "Domestic",
		"price":    12000,
		"duration": "2 Days",
	}, cookies...)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	data := decode(t, resp)["data"].(map[string]any)
	if data["slug"] != "old-title" {
		t.Errorf("slug changed on edit: %q", data["slug"])
	}
	if data["title"] != "Completely New Title" {
		t.Errorf("title not updated: %q", data["title"])
	}
}

func TestDeleteTourRemovesIt(t *testing.T) {
	st := store.NewMemoryStore()
	app := newApp(st)
	cookies := adminSession(t, app, st)

	tour := seedTour(t, st, "Short Lived", "Domestic", 5000)

	resp := request(t, app, "DELETE", fmt.Sprintf("/api/v1/admin/tours/%d", tour.ID), nil, cookies...)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", resp.StatusCode)
	}
	resp.Body.Close()

	resp = request(t, app, "GET", fmt.Sprintf("/api/v1/tours/%d", tour.ID), nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("public detail after delete = %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()

	if got := len(rows(t, request(t, app, "GET", "/api/v1/admin/tours", nil, cookies...))); got != 0 {
		t.Errorf("admin list still has %d tours after delete", got)
	}
}

func TestGetToursDegradesWhenStoreDown(t *testing.T) {
	app := newApp(store.NewDisconnectedStore())

	resp := request(t, app, "GET", "/api/v1/tours", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (page must still render)", resp.StatusCode)
	}
	out := decode(t, resp)
	if out["status"] != "degraded" {
		t.Errorf("status field = %v, want degraded", out["status"])
	}
}
