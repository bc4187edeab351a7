package handlers

import (
	"net/http"
	"time"

	"weathering-atlas/internal/catalog"
	"weathering-atlas/internal/shared/response"
)

type StatusResponse struct {
	Galaxies   int    `json:"galaxies"`
	Systems    int    `json:"systems"`
	Planets    int    `json:"planets"`
	Generation uint64 `json:"generation"`
	LoadedAt   string `json:"loaded_at"`
}

// StatusHandler reports entity totals for the catalog currently being
// served.
type StatusHandler struct {
	store *catalog.Store
}

func NewStatusHandler(store *catalog.Store) *StatusHandler {
	return &StatusHandler{store: store}
}

func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	galaxies, systems, planets := h.store.Counts()

	resp := StatusResponse{
		Galaxies:   galaxies,
		Systems:    systems,
		Planets:    planets,
		Generation: h.store.Generation(),
		LoadedAt:   h.store.LoadedAt().Format(time.RFC3339),
	}

	response.Success(w, http.StatusOK, resp)
}
