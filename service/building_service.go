package services

import (
	"errors"
	"fmt"
	"log/slog"

	"dorm-finder/buildinginfo"
	"dorm-finder/dao/redis"
	"dorm-finder/mapview"
	"dorm-finder/models"
	"dorm-finder/models/dorm"

	"github.com/mmcloughlin/geohash"
)

var ErrUnknownBuilding = errors.New("unknown building")

type BuildingService struct {
	campusMap   *mapview.Map
	info        *buildinginfo.Table
	buildingDao *redis.RedisBuildingDAO
	logger      *slog.Logger
}

// NewBuildingService constructs a new BuildingService with Redis dependency injection.
func NewBuildingService(
	campusMap *mapview.Map,
	info *buildinginfo.Table,
	buildingDao *redis.RedisBuildingDAO,
	logger *slog.Logger) *BuildingService {

	return &BuildingService{
		campusMap:   campusMap,
		info:        info,
		buildingDao: buildingDao,
		logger:      logger,
	}
}

func (bs *BuildingService) summary(f models.BuildingFeature) models.BuildingSummary {
	c := f.Centroid()
	s := models.BuildingSummary{
		Name:    f.Name(),
		Lat:     c.Lat(),
		Lng:     c.Lng(),
		Geohash: geohash.Encode(c.Lat(), c.Lng()),
	}
	if token, err := dorm.ParseBuildingName(f.Name()); err == nil {
		s.Token = string(token)
		if loc, ok := dorm.LocationOf(token); ok {
			s.Location = loc.Label()
		}
	}
	if info, ok := bs.info.Lookup(f.Name()); ok {
		s.Info = &info
	}
	return s
}

// ListBuildings summarises every building on the campus map.
func (bs *BuildingService) ListBuildings() []models.BuildingSummary {
	features := bs.campusMap.Features()
	out := make([]models.BuildingSummary, 0, len(features))
	for _, f := range features {
		out = append(out, bs.summary(f))
	}
	return out
}

func (bs *BuildingService) GetBuilding(name string) (*models.BuildingSummary, error) {
	f, ok := bs.campusMap.Feature(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBuilding, name)
	}
	s := bs.summary(f)
	return &s, nil
}

// BuildingAt returns the building whose outline contains the point.
func (bs *BuildingService) BuildingAt(lng, lat float64) (*models.BuildingSummary, error) {
	name := bs.campusMap.HitTest(models.Point{lng, lat})
	if name == "" {
		return nil, fmt.Errorf("%w at %f,%f", ErrUnknownBuilding, lat, lng)
	}
	return bs.GetBuilding(name)
}

// HoverName is the tooltip text for the pointer position, "" off every outline.
func (bs *BuildingService) HoverName(lng, lat float64) string {
	return bs.campusMap.Hover(models.Point{lng, lat})
}

func (bs *BuildingService) GetBuildingsNearby(lat, lon, radius float64) ([]models.BuildingSummary, error) {
	return bs.buildingDao.GetNearbyBuildings(lat, lon, radius)
}

// IndexBuildings writes every building into the geo index and returns how
// many buildings the index holds afterwards.
func (bs *BuildingService) IndexBuildings() (int, error) {
	for _, s := range bs.ListBuildings() {
		if err := bs.buildingDao.UpsertBuilding(s); err != nil {
			return 0, err
		}
	}
	names, err := bs.buildingDao.ListAllBuildingNames()
	if err != nil {
		return 0, err
	}
	bs.logger.Info("[BuildingService] Indexed buildings", "count", len(names))
	return len(names), nil
}

// InfoPage returns the info view for a building, known or not.
func (bs *BuildingService) InfoPage(name string) buildinginfo.Page {
	return bs.info.Page(name)
}

// InfoNames lists the buildings on the info page.
func (bs *BuildingService) InfoNames() []string {
	return bs.info.Names()
}
