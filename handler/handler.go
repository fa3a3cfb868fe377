package handler

import (
	"travel_agency/store"
)

// Handler carries the injected data-access dependency. One production store
// (Postgres through GORM), one in-memory store for tests, one disconnected
// store when credentials are missing. Handlers never construct their own.
type Handler struct {
	store store.Store
}

func New(st store.Store) *Handler {
	return &Handler{store: st}
}
