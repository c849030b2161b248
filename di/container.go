package di

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"dorm-finder/api"
	"dorm-finder/api/dormfilter"
	"dorm-finder/auth"
	"dorm-finder/buildinginfo"
	"dorm-finder/config"
	"dorm-finder/dao/redis"
	"dorm-finder/db"
	"dorm-finder/mapview"
	"dorm-finder/resources"
	"dorm-finder/search"
	"dorm-finder/server"
	"dorm-finder/server/handlers"
	services "dorm-finder/service"
	"dorm-finder/util"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
)

// Container holds all application dependencies.
type Container struct {
	Config               *config.AppConfig
	Logger               *slog.Logger
	RedisClient          db.RedisClient
	FilterCacheDao       *redis.RedisFilterCacheDAO
	BuildingDao          *redis.RedisBuildingDAO
	FilterService        *services.DormFilterService
	BuildingService      *services.BuildingService
	CacheWarmerService   *services.CacheWarmerService
	DormFilterAPI        dormfilter.DormFilterAPI
	SessionStore         *search.Store
	Authenticator        auth.Authenticator
	CampusMap            *mapview.Map
	Templates            *template.Template
	MuxRouter            *mux.Router
	Router               *server.Router
	DormFinderHttpServer *server.DormFinderHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(ctx context.Context, cfg *config.AppConfig) (*Container, error) {
	logger := util.NewLogger(util.LoggerConfig{
		Level:    cfg.LogLevel,
		JSON:     cfg.LogFormat == "json",
		UseColor: cfg.LogColor,
	})
	logger.Info("[Container] Initializing container", "env", cfg.Env)

	// Redis only in prod; everywhere else the in-memory client stands in.
	var redisClient db.RedisClient
	if cfg.IsProd() {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		redisClient = db.NewGeoRedisClient(ctx, redisInternalClient, logger)
		if err := redisClient.Ping(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
	} else {
		logger.Info("[Container] Using mock redis client")
		redisClient = db.NewMockRedisClient(ctx)
	}

	filterCacheDao := redis.NewRedisFilterCacheDAO(redisClient, cfg.CacheTTL, logger)
	buildingDao := redis.NewRedisBuildingDAO(redisClient, logger)

	listings, err := services.LoadRoomListings(resources.FS, logger)
	if err != nil {
		return nil, err
	}
	filterService := services.NewDormFilterService(services.NewHierarchyIndex(listings), filterCacheDao, logger)

	campusMap, err := mapview.Load(resources.FS)
	if err != nil {
		return nil, err
	}
	info, err := buildinginfo.Load(resources.FS)
	if err != nil {
		return nil, err
	}
	buildingService := services.NewBuildingService(campusMap, info, buildingDao, logger)

	// The finder UI searches through the /filter endpoint. Outside prod it
	// calls the filter service in process.
	var dormFilterAPI dormfilter.DormFilterAPI
	if cfg.IsProd() {
		logger.Info("[Container] Using filter endpoint", "endpoint", cfg.FilterEndpoint)
		dormFilterAPI = dormfilter.NewDormFilterApiClient(api.NewHTTPClient(cfg.FilterEndpoint))
	} else {
		logger.Info("[Container] Using in-process filter api")
		dormFilterAPI = dormfilter.NewDormFilterApiClientMock(filterService)
	}
	sessionStore := search.NewStore(dormFilterAPI, config.SESSION_IDLE_TIMEOUT_MINUTES*time.Minute, logger)

	var authenticator auth.Authenticator
	googleAuth, err := auth.NewGoogleAuth(auth.GoogleAuthConfig{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		CallbackURL:  cfg.CallbackURL,
		SessionKey:   cfg.SessionSecret,
		CookieName:   config.TOKEN_COOKIE_NAME,
	}, logger)
	switch {
	case err == nil:
		authenticator = googleAuth
	case cfg.IsProd():
		return nil, err
	default:
		logger.Warn("[Container] Google sign in not configured, using mock auth", "err", err)
		authenticator = auth.NewMockAuth(config.TOKEN_COOKIE_NAME)
	}

	if cfg.MapboxToken == "" {
		logger.Warn("[Container] " + mapview.NO_MAP_TOKEN)
	}

	templates, err := handlers.LoadTemplates(resources.FS)
	if err != nil {
		return nil, err
	}

	muxRouter := mux.NewRouter()
	router := server.NewRouter(
		handlers.NewFilterHandler(filterService, logger),
		handlers.NewBuildingHandler(buildingService, logger),
		handlers.NewUIHandler(sessionStore, authenticator, campusMap, buildingService, templates, cfg.MapboxToken, logger),
		handlers.NewHealthHandler(logger),
		authenticator,
		muxRouter,
		logger,
	)

	return &Container{
		Config:               cfg,
		Logger:               logger,
		RedisClient:          redisClient,
		FilterCacheDao:       filterCacheDao,
		BuildingDao:          buildingDao,
		FilterService:        filterService,
		BuildingService:      buildingService,
		CacheWarmerService:   services.NewCacheWarmerService(filterService, logger),
		DormFilterAPI:        dormFilterAPI,
		SessionStore:         sessionStore,
		Authenticator:        authenticator,
		CampusMap:            campusMap,
		Templates:            templates,
		MuxRouter:            muxRouter,
		Router:               router,
		DormFinderHttpServer: server.NewDormFinderHttpServer(router, muxRouter, cfg.Port, logger),
	}, nil
}
