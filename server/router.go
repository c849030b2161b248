package server

import (
	"log/slog"

	"dorm-finder/auth"
	"dorm-finder/server/handlers"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	filterHandler   *handlers.FilterHandler
	buildingHandler *handlers.BuildingHandler
	uiHandler       *handlers.UIHandler
	healthHandler   *handlers.HealthHandler
	authenticator   auth.Authenticator
	router          *mux.Router
	logger          *slog.Logger
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	filterHandler *handlers.FilterHandler,
	buildingHandler *handlers.BuildingHandler,
	uiHandler *handlers.UIHandler,
	healthHandler *handlers.HealthHandler,
	authenticator auth.Authenticator,
	router *mux.Router,
	logger *slog.Logger) *Router {
	return &Router{
		filterHandler:   filterHandler,
		buildingHandler: buildingHandler,
		uiHandler:       uiHandler,
		healthHandler:   healthHandler,
		authenticator:   authenticator,
		router:          router,
		logger:          logger,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(LoggerMiddleware(r.logger), CORSMiddleware)

	// expects every facet: ?campusLocation=&isSuite=&hasKitchen=&bathroomType=&minRoomSize=&maxRoomSize=&roomCapacity=&floorNumber=
	r.router.HandleFunc("/filter", r.filterHandler.Filter).Methods("GET", "OPTIONS")
	r.router.HandleFunc("/v1/filter/cache", r.filterHandler.CachedCriteria).Methods("GET")
	r.router.HandleFunc("/v1/filter/cache", r.filterHandler.InvalidateCache).Methods("DELETE")

	r.router.HandleFunc("/v1/buildings", r.buildingHandler.ListBuildings).Methods("GET")
	// expects ?lng={longitude(float)}&lat={latitude(float)}
	r.router.HandleFunc("/v1/buildings/at", r.buildingHandler.BuildingAt).Methods("GET")
	r.router.HandleFunc("/v1/buildings/hover", r.buildingHandler.Hover).Methods("GET")
	// expects ?lat={latitude(float)}&lon={longitude(float)}&radius={km(float), optional}
	r.router.HandleFunc("/v1/buildings/nearby", r.buildingHandler.GetBuildingsNearby).Methods("GET")
	r.router.HandleFunc("/v1/buildings/{name}", r.buildingHandler.GetBuilding).Methods("GET")
	r.router.HandleFunc("/v1/viewport", r.buildingHandler.Viewport).Methods("GET")
	r.router.HandleFunc("/v1/me", r.uiHandler.Me).Methods("GET")

	r.router.HandleFunc("/", r.uiHandler.Index).Methods("GET")
	r.router.HandleFunc("/facet", r.uiHandler.RequireUser(r.uiHandler.Facet)).Methods("POST")
	r.router.HandleFunc("/search", r.uiHandler.RequireUser(r.uiHandler.Search)).Methods("POST")
	r.router.HandleFunc("/select", r.uiHandler.RequireUser(r.uiHandler.Select)).Methods("POST")
	r.router.HandleFunc("/back", r.uiHandler.RequireUser(r.uiHandler.Back)).Methods("POST")
	r.router.HandleFunc("/sort", r.uiHandler.RequireUser(r.uiHandler.Sort)).Methods("POST")
	r.router.HandleFunc("/map", r.uiHandler.RequireUser(r.uiHandler.Map)).Methods("GET")
	r.router.HandleFunc("/info", r.uiHandler.Info).Methods("GET")
	r.router.HandleFunc("/info/{name}", r.uiHandler.Info).Methods("GET")

	r.router.HandleFunc("/login", r.authenticator.Login).Methods("GET")
	r.router.HandleFunc("/logout", r.uiHandler.Logout).Methods("GET")
	r.router.HandleFunc("/auth/callback", r.authenticator.AuthCallback).Methods("GET")

	r.router.HandleFunc("/ping", r.healthHandler.Ping).Methods("GET")
	r.router.Handle("/metrics", promhttp.Handler()).Methods("GET")
}
