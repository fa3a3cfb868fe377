package helper

import (
	"fmt"

	"travel_agency/store"

	"github.com/gosimple/slug"
)

// MakeSlug derives a URL-safe slug: lowercased, runs of non-alphanumerics
// collapsed to single hyphens, no leading/trailing hyphens.
func MakeSlug(title string) string {
	return slug.Make(title)
}

// UniqueTourSlug derives a slug from the title and suffixes -2, -3, ... if
// an existing tour already owns it. Only used at creation; edits keep the
// stored slug.
func UniqueTourSlug(st store.Store, title string) (string, error) {
	base := slug.Make(title)
	result := base
	i := 2

	for {
		count, err := st.CountTourSlug(result)
		if err != nil {
			return "", err
		}
		if count == 0 {
			return result, nil
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}
}

// UniquePostSlug behaves like UniqueTourSlug over the posts collection.
// seed may be an operator-chosen slug; when empty the title is used.
func UniquePostSlug(st store.Store, seed, title string) (string, error) {
	if seed == "" {
		seed = title
	}
	base := slug.Make(seed)
	result := base
	i := 2

	for {
		count, err := st.CountPostSlug(result)
		if err != nil {
			return "", err
		}
		if count == 0 {
			return result, nil
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}
}
