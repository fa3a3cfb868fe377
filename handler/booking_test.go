package handler_test

import (
	"net/http"
	"testing"

	"travel_agency/store"
)

func TestCreateBookingDefaultsPending(t *testing.T) {
	st := store.NewMemoryStore()
	app := newApp(st)

	resp := request(t, app, "POST", "/api/v1/bookings", map[string]any{
		"tour_id":        3,
		"customer_name":  "Priya Sharma",
		"customer_email": "priya@example.com",
		"customer_phone": "+91 98765 43210",
		"travel_date":    "2026-11-20",
		"amount":         24999,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	body := decode(t, resp)
	if body["success"] != true {
		t.Errorf("success = %v", body["success"])
	}
	ref, _ := body["reference"].(string)
	if ref == "" {
		t.Fatal("response carries no booking reference")
	}

	bookings := st.Bookings()
	if len(bookings) != 1 {
		t.Fatalf("bookings stored = %d, want 1", len(bookings))
	}
	b := bookings[0]
	if b.Reference != ref {
		t.Errorf("stored reference %q != returned %q", b.Reference, ref)
	}
	if b.PaymentStatus != "pending" {
		t.Errorf("payment status = %q, want pending", b.PaymentStatus)
	}
	if got := b.TravelDate.Format("2006-01-02"); got != "2026-11-20" {
		t.Errorf("travel date = %q", got)
	}
}

func TestCreateBookingMissingFieldRejected(t *testing.T) {
	st := store.NewMemoryStore()
	app := newApp(st)

	resp := request(t, app, "POST", "/api/v1/bookings", map[string]any{
		"tour_id":        3,
		"customer_name":  "Priya Sharma",
		"customer_phone": "+91 98765 43210",
		"travel_date":    "2026-11-20",
		"amount":         24999,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	resp.Body.Close()

	if got := st.Bookings(); len(got) != 0 {
		t.Errorf("rejected booking was stored anyway: %d rows", len(got))
	}
}

func TestCreateBookingStoreUnavailable(t *testing.T) {
	app := newApp(store.NewDisconnectedStore())

	resp := request(t, app, "POST", "/api/v1/bookings", map[string]any{
		"tour_id":        1,
		"customer_name":  "Priya Sharma",
		"customer_email": "priya@example.com",
		"customer_phone": "+91 98765 43210",
		"travel_date":    "2026-11-20",
		"amount":         24999,
	})
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestCreateEnquiryLogged(t *testing.T) {
	st := store.NewMemoryStore()
	app := newApp(st)
	cookies := adminSession(t, app, st)

	resp := request(t, app, "POST", "/api/v1/enquiries", map[string]any{
		"name":    "Arjun",
		"email":   "arjun@example.com",
		"phone":   "+91 91234 56789",
		"message": "Do you run Ladakh trips in winter?",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	resp.Body.Close()

	list := rows(t, request(t, app, "GET", "/api/v1/admin/enquiries", nil, cookies...))
	if len(list) != 1 {
		t.Fatalf("admin enquiries = %d, want 1", len(list))
	}
	if list[0].(map[string]any)["email"] != "arjun@example.com" {
		t.Errorf("unexpected enquiry row: %v", list[0])
	}
}
