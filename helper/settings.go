package helper

import (
	"log"

	"travel_agency/model"
	"travel_agency/store"

	"github.com/jinzhu/copier"
)

// ResolveSettings returns the site configuration with every field defined:
// the stored row overlaid on the hardcoded defaults. It never fails a page
// render: a fetch error or a missing row behaves as if every field were
// absent.
func ResolveSettings(st store.Store) model.SiteSettings {
	resolved := model.DefaultSiteSettings()

	stored, err := st.GetSettings()
	if err != nil {
		if err != store.ErrNotFound && err != store.ErrNotConfigured {
			log.Printf("settings fetch failed, serving defaults: %v", err)
		}
		return resolved
	}

	// non-empty stored fields win; empty ones keep their default
	if err := copier.CopyWithOption(&resolved, stored, copier.Option{IgnoreEmpty: true}); err != nil {
		log.Printf("settings overlay failed, serving defaults: %v", err)
		return model.DefaultSiteSettings()
	}
	return resolved
}
