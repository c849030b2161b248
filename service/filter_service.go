package services

import (
	"errors"
	"fmt"
	"log/slog"

	"dorm-finder/config"
	"dorm-finder/models"
	"dorm-finder/models/dorm"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	noFilterRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dormfinder_filter_requests_total",
		Help: "The total number of /filter requests",
	})
	noFilterBadRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dormfinder_filter_bad_requests_total",
		Help: "The total number of rejected /filter requests",
	})
	noFilterCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dormfinder_filter_cache_hits_total",
		Help: "The total number of filter results served from the cache",
	})
	noFilterCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dormfinder_filter_cache_misses_total",
		Help: "The total number of filter results computed from the index",
	})
)

// FilterResultCache stores filter results by canonical criteria key.
type FilterResultCache interface {
	GetFilterResult(criteriaKey string) ([]dorm.Listing, bool, error)
	SetFilterResult(criteriaKey string, listings []dorm.Listing) error
	ListCachedCriteriaKeys() ([]string, error)
	InvalidateAll() (int, error)
}

// DormFilterService answers /filter queries from the index, with the result
// cache in front. Cache failures fall back to the index.
type DormFilterService struct {
	index  DormFilter
	cache  FilterResultCache
	logger *slog.Logger
}

func NewDormFilterService(index DormFilter, cache FilterResultCache, logger *slog.Logger) *DormFilterService {
	return &DormFilterService{index: index, cache: cache, logger: logger}
}

// Filter validates params and returns the response body for /filter. Invalid
// params give a RESULT_ERROR_BAD_REQUEST response rather than an error.
func (s *DormFilterService) Filter(params models.DormFilterParams) *models.DormFilterResponse {
	noFilterRequests.Inc()
	resp := &models.DormFilterResponse{DormFilterParams: params}

	criteria, err := params.Criteria(config.ALL_MIN_ROOM_SIZE, config.ALL_MAX_ROOM_SIZE)
	if err != nil {
		noFilterBadRequests.Inc()
		resp.Result = models.RESULT_ERROR_BAD_REQUEST
		resp.ErrorMessage = err.Error()
		if !errors.Is(err, models.ErrBadRequest) {
			resp.Result = models.RESULT_ERROR_DATASOURCE
		}
		return resp
	}

	resp.Result = models.RESULT_SUCCESS
	resp.FilteredDormRoomSet = s.FilterListings(criteria)
	resp.DormBuildingList = dorm.AllBuildings()
	return resp
}

// FilterListings returns the listings matching c, consulting the cache first.
func (s *DormFilterService) FilterListings(c models.DormFilterCriteria) []dorm.Listing {
	key := c.CacheKey()

	listings, found, err := s.cache.GetFilterResult(key)
	if err != nil {
		s.logger.Warn("[DormFilterService] Filter cache read failed, filtering uncached", "err", err)
	} else if found {
		noFilterCacheHits.Inc()
		return listings
	}

	noFilterCacheMisses.Inc()
	listings = s.index.Filter(c)
	if err == nil {
		if err := s.cache.SetFilterResult(key, listings); err != nil {
			s.logger.Warn("[DormFilterService] Filter cache write failed", "key", key, "err", err)
		}
	}
	return listings
}

// CachedCriteria lists the criteria keys that currently have a cached result.
func (s *DormFilterService) CachedCriteria() ([]string, error) {
	return s.cache.ListCachedCriteriaKeys()
}

// InvalidateCache drops every cached result, e.g. after the dataset changed.
func (s *DormFilterService) InvalidateCache() (int, error) {
	n, err := s.cache.InvalidateAll()
	if err != nil {
		return n, fmt.Errorf("failed to invalidate filter cache: %w", err)
	}
	s.logger.Info("[DormFilterService] Invalidated filter cache", "entries", n)
	return n, nil
}

// Warm precomputes the all-inclusive query and one query per campus location,
// for both the API's All range and the UI's default size range.
func (s *DormFilterService) Warm() int {
	var criteria []models.DormFilterCriteria
	for _, maxSize := range []int{config.ALL_MAX_ROOM_SIZE, config.MAX_ROOM_SIZE} {
		criteria = append(criteria, models.AllCriteria(maxSize))
		for _, loc := range dorm.CampusLocations {
			c := models.AllCriteria(maxSize)
			c.Buildings = map[dorm.BuildingName]bool{}
			for _, b := range loc.Buildings() {
				c.Buildings[b] = true
			}
			criteria = append(criteria, c)
		}
	}
	for _, c := range criteria {
		s.FilterListings(c)
	}
	return len(criteria)
}
