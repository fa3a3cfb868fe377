package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"travel_agency/model"
	"travel_agency/store"
)

func TestPublicReviewsOnlyApproved(t *testing.T) {
	st := store.NewMemoryStore()
	app := newApp(st)
	cookies := adminSession(t, app, st)

	approved := model.Review{Name: "Asha", Rating: 5, Comment: "Great trip", Source: "google", IsApproved: true}
	pending := model.Review{Name: "Rahul", Rating: 4, Comment: "Waiting", Source: "website", IsApproved: false}
	if err := st.CreateReview(&approved); err != nil {
		t.Fatal(err)
	}
	if err := st.CreateReview(&pending); err != nil {
		t.Fatal(err)
	}

	list := rows(t, request(t, app, "GET", "/api/v1/reviews", nil))
	if len(list) != 1 {
		t.Fatalf("public reviews = %d, want 1", len(list))
	}
	if list[0].(map[string]any)["name"] != "Asha" {
		t.Errorf("unexpected public review: %v", list[0])
	}

	// the moderation queue sees both
	list = rows(t, request(t, app, "GET", "/api/v1/admin/reviews", nil, cookies...))
	if len(list) != 2 {
		t.Fatalf("admin reviews = %d, want 2", len(list))
	}
}

func TestToggleReviewApproval(t *testing.T) {
	st := store.NewMemoryStore()
	app := newApp(st)
	cookies := adminSession(t, app, st)

	review := model.Review{Name: "Meera", Rating: 5, Comment: "Lovely", Source: "facebook"}
	if err := st.CreateReview(&review); err != nil {
		t.Fatal(err)
	}

	resp := request(t, app, "PATCH", fmt.Sprintf("/api/v1/admin/reviews/%d/approve", review.ID), nil, cookies...)
	data := decode(t, resp)["data"].(map[string]any)
	if data["isApproved"] != true {
		t.Fatalf("toggle left isApproved = %v", data["isApproved"])
	}

	list := rows(t, request(t, app, "GET", "/api/v1/reviews", nil))
	if len(list) != 1 {
		t.Errorf("approved review missing from public list")
	}
}

func TestPublicReviewsLimit(t *testing.T) {
	st := store.NewMemoryStore()
	app := newApp(st)

	for i := 0; i < 5; i++ {
		r := model.Review{Name: fmt.Sprintf("Guest %d", i), Rating: 5, Comment: "ok", Source: "website", IsApproved: true}
		if err := st.CreateReview(&r); err != nil {
			t.Fatal(err)
		}
	}

	list := rows(t, request(t, app, "GET", "/api/v1/reviews?limit=3", nil))
	if len(list) != 3 {
		t.Errorf("limited reviews = %d, want 3", len(list))
	}
}

func TestDeleteReview(t *testing.T) {
	st := store.NewMemoryStore()
	app := newApp(st)
	cookies := adminSession(t, app, st)

	review := model.Review{Name: "Spam", Rating: 1, Comment: "spam", Source: "website", IsApproved: true}
	if err := st.CreateReview(&review); err != nil {
		t.Fatal(err)
	}

	resp := request(t, app, "DELETE", fmt.Sprintf("/api/v1/admin/reviews/%d", review.ID), nil, cookies...)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete = %d, want 200", resp.StatusCode)
	}
	resp.Body.Close()

	if got := rows(t, request(t, app, "GET", "/api/v1/reviews", nil)); len(got) != 0 {
		t.Errorf("review still visible after delete")
	}
}
