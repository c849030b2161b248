package redis

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"dorm-finder/db"
	"dorm-finder/models"
)

const BUILDINGS_GEO_KEY_V1 = "buildings_geo_v1"
const BUILDINGS_GEO_PLACE_MEMBER_FORMAT_V1 = "buildings_geo_place_v1:%s"

// RedisBuildingDAO keeps building summaries in a Redis geo index.
type RedisBuildingDAO struct {
	client db.RedisClient
	logger *slog.Logger
}

// NewRedisBuildingDAO initializes a RedisBuildingDAO with the Redis client.
func NewRedisBuildingDAO(client db.RedisClient, logger *slog.Logger) *RedisBuildingDAO {
	return &RedisBuildingDAO{client: client, logger: logger}
}

func buildingMemberKey(name string) string {
	return fmt.Sprintf(BUILDINGS_GEO_PLACE_MEMBER_FORMAT_V1, strings.ReplaceAll(name, " ", "_"))
}

// UpsertBuilding stores the building at its centroid with the summary as JSON.
func (dao *RedisBuildingDAO) UpsertBuilding(b models.BuildingSummary) error {
	ctx := dao.client.GetContext()
	if err := dao.client.AddLocationWithJSON(ctx, BUILDINGS_GEO_KEY_V1, buildingMemberKey(b.Name), b.Lat, b.Lng, b); err != nil {
		return fmt.Errorf("[RedisBuildingDAO] failed to upsert %s: %w", b.Name, err)
	}
	return nil
}

// GetBuilding returns the stored summary for name.
func (dao *RedisBuildingDAO) GetBuilding(name string) (*models.BuildingSummary, error) {
	str, err := dao.client.Get(buildingMemberKey(name))
	if err != nil {
		return nil, fmt.Errorf("failed to get building %s from redis: %w", name, err)
	}
	var b models.BuildingSummary
	if err := json.Unmarshal([]byte(str), &b); err != nil {
		return nil, fmt.Errorf("failed to unmarshal building JSON: %w", err)
	}
	return &b, nil
}

// GetNearbyBuildings retrieves buildings within radius km of the point, nearest first.
func (dao *RedisBuildingDAO) GetNearbyBuildings(lat, lon, radius float64) ([]models.BuildingSummary, error) {
	dao.logger.Debug("[RedisBuildingDAO] Getting nearby buildings", "lat", lat, "lon", lon, "radius", radius)
	buildingsJSON, err := dao.client.GetLocationsWithinRadius(BUILDINGS_GEO_KEY_V1, lat, lon, radius)
	if err != nil {
		return nil, fmt.Errorf("[RedisBuildingDAO] failed to get buildings: %w", err)
	}

	buildings := make([]models.BuildingSummary, len(buildingsJSON))
	for i, buildingJSON := range buildingsJSON {
		if err := json.Unmarshal([]byte(buildingJSON), &buildings[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal building JSON: %w", err)
		}
	}
	return buildings, nil
}

// ListAllBuildingNames returns the names of every building in the geo index, sorted.
func (dao *RedisBuildingDAO) ListAllBuildingNames() ([]string, error) {
	keys, err := dao.client.Keys(fmt.Sprintf(BUILDINGS_GEO_PLACE_MEMBER_FORMAT_V1, "*"))
	if err != nil {
		return nil, fmt.Errorf("failed to list building geo keys: %w", err)
	}
	prefix := fmt.Sprintf(BUILDINGS_GEO_PLACE_MEMBER_FORMAT_V1, "")
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, strings.ReplaceAll(strings.TrimPrefix(k, prefix), "_", " "))
	}
	sort.Strings(names)
	return names, nil
}
