package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Filter result cache config
const FILTER_CACHE_TTL_MINUTES = 60
const FILTER_CACHE_WARMER_SCHEDULE_MINUTES = 30

// Server config
const SERVER_PORT = 3232
const SHUTDOWN_TIMEOUT_SECONDS = 5

// Filter endpoint the UI session searches against. Defaults to this server.
const FILTER_ENDPOINT_BASE = "http://localhost:3232"

// Search defaults
const MIN_ROOM_SIZE = 0
const MAX_ROOM_SIZE = 1000
const ROOM_SIZE_STEP = 20

// Sizes the backend uses when a bound is sent as All
const ALL_MIN_ROOM_SIZE = 0
const ALL_MAX_ROOM_SIZE = 99999

// Campus map defaults
const MAP_CENTER_LAT = 41.827
const MAP_CENTER_LNG = -71.4
const MAP_INITIAL_ZOOM = 15.1
const MAP_MIN_ZOOM = 13
const MAP_LAYER_DELAY_MILLIS = 400

// Building geo index radius used by the nearby endpoint when none is given, in km
const BUILDINGS_DEFAULT_RADIUS_KM = 1.0

// Finder sessions idle longer than this are evicted
const SESSION_IDLE_TIMEOUT_MINUTES = 120
const SESSION_EVICTION_SCHEDULE_MINUTES = 10

// Session cookie names
const SESSION_COOKIE_NAME = "df-session"
const TOKEN_COOKIE_NAME = "df-token"

// AppConfig is the runtime configuration, read from the environment and an optional .env file.
type AppConfig struct {
	Env                string
	Port               int
	RedisAddress       string
	RedisPassword      string
	RedisDB            int
	FilterEndpoint     string
	MapboxToken        string
	GoogleClientID     string
	GoogleClientSecret string
	CallbackURL        string
	SessionSecret      string
	LogLevel           string
	LogFormat          string
	LogColor           bool
	CacheTTL           time.Duration
	WarmerInterval     time.Duration
}

// Load reads configuration from environment variables. A missing .env file is not an error.
func Load(envPath ...string) *AppConfig {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Printf("[Config] No .env file loaded (path: %v): %v", envPath, err)
	}

	return &AppConfig{
		Env:                getEnv("ENV", "dev"),
		Port:               getEnvAsInt("PORT", SERVER_PORT),
		RedisAddress:       getEnv("REDIS_ADDRESS", REDIS_DB_ADDRESS),
		RedisPassword:      getEnv("REDIS_PASSWORD", REDIS_DB_PASSWORD),
		RedisDB:            getEnvAsInt("REDIS_DB", REDIS_DB),
		FilterEndpoint:     getEnv("FILTER_ENDPOINT", FILTER_ENDPOINT_BASE),
		MapboxToken:        getEnv("MAPBOX_TOKEN", ""),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		CallbackURL:        getEnv("CALLBACK_URL", ""),
		SessionSecret:      getEnv("SESSION_SECRET", ""),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
		LogColor:           getEnvAsBool("LOG_COLOR", true),
		CacheTTL:           time.Duration(getEnvAsInt("FILTER_CACHE_TTL_MINUTES", FILTER_CACHE_TTL_MINUTES)) * time.Minute,
		WarmerInterval:     time.Duration(getEnvAsInt("FILTER_CACHE_WARMER_SCHEDULE_MINUTES", FILTER_CACHE_WARMER_SCHEDULE_MINUTES)) * time.Minute,
	}
}

// IsProd reports whether real external collaborators should be used.
func (c *AppConfig) IsProd() bool {
	return c.Env == "prod"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[Config] %s=%q is not an int, using default %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("[Config] %s=%q is not a bool, using default %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
