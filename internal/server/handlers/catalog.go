package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"weathering-atlas/internal/catalog"
	"weathering-atlas/internal/galaxy"
	"weathering-atlas/internal/planet"
	"weathering-atlas/internal/shared/errors"
	"weathering-atlas/internal/shared/response"
	"weathering-atlas/internal/starsystem"
)

// GalaxiesHandler lists every galaxy in the catalog.
type GalaxiesHandler struct {
	store *catalog.Store
	cache *ResponseCache
}

func NewGalaxiesHandler(store *catalog.Store, cache *ResponseCache) *GalaxiesHandler {
	return &GalaxiesHandler{store: store, cache: cache}
}

func (h *GalaxiesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "galaxies")

	key := cacheKey(h.store.Generation(), r.URL.Path)
	if payload, ok := h.cache.get(r, key); ok {
		writeCachedJSON(w, payload)
		return
	}

	galaxies := h.store.Galaxies()
	if galaxies == nil {
		galaxies = []galaxy.Galaxy{}
	}

	payload, err := json.Marshal(galaxies)
	if err != nil {
		response.Error(w, r, logger, errors.WrapInternal("failed to encode galaxies", err))
		return
	}

	h.cache.set(r, key, payload)
	writeCachedJSON(w, payload)
}

// SystemsHandler lists the star systems of one galaxy.
type SystemsHandler struct {
	store *catalog.Store
	cache *ResponseCache
}

func NewSystemsHandler(store *catalog.Store, cache *ResponseCache) *SystemsHandler {
	return &SystemsHandler{store: store, cache: cache}
}

func (h *SystemsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "systems")

	gx, gy, err := pathCoords(r, "gx", "gy", galaxy.UniverseSize)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if !h.store.HasGalaxy(gx, gy) {
		response.Error(w, r, logger, errors.NotFoundf("no galaxy at (%d, %d)", gx, gy))
		return
	}

	key := cacheKey(h.store.Generation(), r.URL.Path)
	if payload, ok := h.cache.get(r, key); ok {
		writeCachedJSON(w, payload)
		return
	}

	systems := h.store.SystemsIn(gx, gy)
	if systems == nil {
		systems = []starsystem.System{}
	}

	payload, err := json.Marshal(systems)
	if err != nil {
		response.Error(w, r, logger, errors.WrapInternal("failed to encode systems", err))
		return
	}

	h.cache.set(r, key, payload)
	writeCachedJSON(w, payload)
}

// PlanetsHandler lists the planets of one star system.
type PlanetsHandler struct {
	store *catalog.Store
	cache *ResponseCache
}

func NewPlanetsHandler(store *catalog.Store, cache *ResponseCache) *PlanetsHandler {
	return &PlanetsHandler{store: store, cache: cache}
}

func (h *PlanetsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "planets")

	gx, gy, err := pathCoords(r, "gx", "gy", galaxy.UniverseSize)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	sx, sy, err := pathCoords(r, "sx", "sy", starsystem.GridSize)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if !h.hasSystem(gx, gy, sx, sy) {
		response.Error(w, r, logger, errors.NotFoundf("no star system at (%d, %d, %d, %d)", gx, gy, sx, sy))
		return
	}

	key := cacheKey(h.store.Generation(), r.URL.Path)
	if payload, ok := h.cache.get(r, key); ok {
		writeCachedJSON(w, payload)
		return
	}

	planets := h.store.PlanetsIn(gx, gy, sx, sy)
	if planets == nil {
		planets = []planet.Planet{}
	}

	payload, err := json.Marshal(planets)
	if err != nil {
		response.Error(w, r, logger, errors.WrapInternal("failed to encode planets", err))
		return
	}

	h.cache.set(r, key, payload)
	writeCachedJSON(w, payload)
}

func (h *PlanetsHandler) hasSystem(gx, gy, sx, sy int) bool {
	for _, sys := range h.store.SystemsIn(gx, gy) {
		if sys.SX == sx && sys.SY == sy {
			return true
		}
	}
	return false
}

// pathCoords parses a coordinate pair from path values and checks the
// half-open [0, limit) bounds shared by both grid axes.
func pathCoords(r *http.Request, xName, yName string, limit int) (int, int, error) {
	x, err := strconv.Atoi(r.PathValue(xName))
	if err != nil {
		return 0, 0, errors.Validationf("invalid %s: %q", xName, r.PathValue(xName))
	}
	y, err := strconv.Atoi(r.PathValue(yName))
	if err != nil {
		return 0, 0, errors.Validationf("invalid %s: %q", yName, r.PathValue(yName))
	}
	if x < 0 || x >= limit || y < 0 || y >= limit {
		return 0, 0, errors.Validationf("coordinates (%d, %d) outside [0, %d)", x, y, limit)
	}
	return x, y, nil
}
