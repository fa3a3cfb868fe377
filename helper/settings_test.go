package helper

import (
	"testing"

	"travel_agency/constants"
	"travel_agency/model"
	"travel_agency/store"
)

func TestResolveSettingsUnconfiguredStore(t *testing.T) {
	got := ResolveSettings(store.NewDisconnectedStore())
	if got.WebsiteName != constants.DEFAULT_WEBSITE_NAME {
		t.Errorf("websiteName = %q, want default", got.WebsiteName)
	}
	if got.Email != constants.DEFAULT_EMAIL {
		t.Errorf("email = %q, want default", got.Email)
	}
}

func TestResolveSettingsOverlaysStoredFields(t *testing.T) {
	st := store.NewMemoryStore()
	if err := st.SaveSettings(&model.SiteSettings{Phone: "+91 90000 00000"}); err != nil {
		t.Fatal(err)
	}

	got := ResolveSettings(st)
	if got.Phone != "+91 90000 00000" {
		t.Errorf("phone = %q, want stored value", got.Phone)
	}
	// fields absent from the stored row keep their defaults
	if got.Address != constants.DEFAULT_ADDRESS {
		t.Errorf("address = %q, want default", got.Address)
	}
}
