package helper

import (
	"testing"

	"travel_agency/model"
	"travel_agency/store"
)

func TestMakeSlug(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Magical Maldives!!", "magical-maldives"},
		{"Goa  --  Getaway", "goa-getaway"},
		{"  Trim Me  ", "trim-me"},
		{"ALL CAPS", "all-caps"},
		{"already-a-slug", "already-a-slug"},
	}
	for _, tc := range cases {
		if got := MakeSlug(tc.title); got != tc.want {
			t.Errorf("MakeSlug(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestUniqueTourSlugSuffixes(t *testing.T) {
	st := store.NewMemoryStore()

	got, err := UniqueTourSlug(st, "Goa Getaway")
	if err != nil {
		t.Fatal(err)
	}
	if got != "goa-getaway" {
		t.Fatalf("first slug = %q", got)
	}

	if err := st.CreateTour(&model.Tour{Title: "Goa Getaway", Slug: "goa-getaway"}); err != nil {
		t.Fatal(err)
	}
	got, err = UniqueTourSlug(st, "Goa Getaway")
	if err != nil {
		t.Fatal(err)
	}
	if got != "goa-getaway-2" {
		t.Fatalf("second slug = %q", got)
	}

	if err := st.CreateTour(&model.Tour{Title: "Goa Getaway", Slug: "goa-getaway-2"}); err != nil {
		t.Fatal(err)
	}
	got, err = UniqueTourSlug(st, "Goa Getaway")
	if err != nil {
		t.Fatal(err)
	}
	if got != "goa-getaway-3" {
		t.Fatalf("third slug = %q", got)
	}
}

func TestUniquePostSlugSeedWins(t *testing.T) {
	st := store.NewMemoryStore()

	got, err := UniquePostSlug(st, "Chosen Slug", "Ignored Title")
	if err != nil {
		t.Fatal(err)
	}
	if got != "chosen-slug" {
		t.Errorf("slug = %q, want chosen-slug", got)
	}

	got, err = UniquePostSlug(st, "", "Fallback Title")
	if err != nil {
		t.Fatal(err)
	}
	if got != "fallback-title" {
		t.Errorf("slug = %q, want fallback-title", got)
	}
}
