package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"dorm-finder/config"
	"dorm-finder/mapview"
	services "dorm-finder/service"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
)

const (
	LAT_QUERY_ARG    = "lat"
	LON_QUERY_ARG    = "lon"
	LNG_QUERY_ARG    = "lng"
	RADIUS_QUERY_ARG = "radius"
	NAME_PATH_ARG    = "name"
)

type BuildingHandler struct {
	buildingService *services.BuildingService
	decoder         *schema.Decoder
	logger          *slog.Logger
}

func NewBuildingHandler(buildingService *services.BuildingService, logger *slog.Logger) *BuildingHandler {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return &BuildingHandler{buildingService: buildingService, decoder: decoder, logger: logger}
}

// ListBuildings handles GET /v1/buildings
func (h *BuildingHandler) ListBuildings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, h.buildingService.ListBuildings())
}

// GetBuilding handles GET /v1/buildings/{name}
func (h *BuildingHandler) GetBuilding(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)[NAME_PATH_ARG]
	b, err := h.buildingService.GetBuilding(name)
	if errors.Is(err, services.ErrUnknownBuilding) {
		http.Error(w, "Unknown building "+name, http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("[BuildingHandler] Error loading building", "name", name, "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, b)
}

func parsePointArgs(vals url.Values, w http.ResponseWriter) (float64, float64, bool) {
	lng, err := parseArgFloat64(vals, LNG_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LNG_QUERY_ARG, http.StatusBadRequest)
		return 0, 0, false
	}
	lat, err := parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return 0, 0, false
	}
	return lng, lat, true
}

// BuildingAt handles GET /v1/buildings/at?lng=&lat=, the map click test.
func (h *BuildingHandler) BuildingAt(w http.ResponseWriter, r *http.Request) {
	lng, lat, ok := parsePointArgs(r.URL.Query(), w)
	if !ok {
		return
	}

	b, err := h.buildingService.BuildingAt(lng, lat)
	if errors.Is(err, services.ErrUnknownBuilding) {
		writeJSON(w, h.logger, http.StatusOK, map[string]string{"name": ""})
		return
	}
	if err != nil {
		h.logger.Error("[BuildingHandler] Hit test failed", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, b)
}

// Hover handles GET /v1/buildings/hover?lng=&lat=, the map tooltip.
func (h *BuildingHandler) Hover(w http.ResponseWriter, r *http.Request) {
	lng, lat, ok := parsePointArgs(r.URL.Query(), w)
	if !ok {
		return
	}
	writeJSON(w, h.logger, http.StatusOK, map[string]string{"name": h.buildingService.HoverName(lng, lat)})
}

// GetBuildingsNearby handles GET /v1/buildings/nearby?lat=&lon=&radius=.
// radius is in km and defaults to BUILDINGS_DEFAULT_RADIUS_KM.
func (h *BuildingHandler) GetBuildingsNearby(w http.ResponseWriter, r *http.Request) {
	lat, lon, radius, ok := h.parseNearbyArgs(r.URL.Query(), w)
	if !ok {
		return
	}

	buildings, err := h.buildingService.GetBuildingsNearby(lat, lon, radius)
	if err != nil {
		h.logger.Error("[BuildingHandler] Error loading nearby buildings", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, buildings)
}

func (h *BuildingHandler) parseNearbyArgs(vals url.Values, w http.ResponseWriter) (lat, lon, radius float64, ok bool) {
	var err error
	lat, err = parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	lon, err = parseArgFloat64(vals, LON_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LON_QUERY_ARG, http.StatusBadRequest)
		return
	}
	radius = config.BUILDINGS_DEFAULT_RADIUS_KM
	if vals.Get(RADIUS_QUERY_ARG) != "" {
		radius, err = parseArgFloat64(vals, RADIUS_QUERY_ARG)
		if err != nil || radius <= 0 {
			http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
			return
		}
	}
	ok = true
	return
}

// Viewport handles GET /v1/viewport?lat=&lng=&zoom=, clamping a camera move
// to the campus bounds. Missing args fall back to the default viewport.
func (h *BuildingHandler) Viewport(w http.ResponseWriter, r *http.Request) {
	v := mapview.DefaultViewport()
	if err := h.decoder.Decode(&v, r.URL.Query()); err != nil {
		http.Error(w, "Invalid viewport: "+err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, v.Clamp())
}
