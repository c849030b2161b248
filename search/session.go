package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"dorm-finder/api/dormfilter"
	"dorm-finder/detail"
	"dorm-finder/models"
	"dorm-finder/models/dorm"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	noSearches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dormfinder_searches_total",
		Help: "The total number of searches issued by finder sessions",
	})
	noFailedSearches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dormfinder_searches_failed_total",
		Help: "The total number of searches that failed or were not successful",
	})
	noStaleResponses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dormfinder_stale_responses_discarded_total",
		Help: "The total number of search responses discarded because a newer search was issued",
	})
)

// ErrStaleResponse is returned by Search when a newer search was issued while
// this one was in flight. The response is discarded.
var ErrStaleResponse = errors.New("stale search response discarded")

// Session is one visitor's finder state: the filter panel, the last fetched
// result set and the building selection. Safe for concurrent use.
type Session struct {
	ID string

	api    dormfilter.DormFilterAPI
	logger *slog.Logger

	mu       sync.Mutex
	criteria FilterCriteria
	listings []dorm.Listing
	matched  []string
	searched bool
	selected string
	sortKey  detail.SortKey
	seq      uint64
}

func NewSession(id string, api dormfilter.DormFilterAPI, logger *slog.Logger) *Session {
	return &Session{
		ID:       id,
		api:      api,
		logger:   logger.With("session", id),
		criteria: NewFilterCriteria(),
		sortKey:  detail.SortByCapacity,
	}
}

func (s *Session) Criteria() FilterCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

// Update applies a reducer to the filter criteria. On error the criteria are unchanged.
func (s *Session) Update(reduce func(FilterCriteria) (FilterCriteria, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := reduce(s.criteria)
	if err != nil {
		return err
	}
	s.criteria = next
	return nil
}

// Search queries the filter endpoint with the current criteria. On success the
// result set and matched buildings are replaced; on failure they are left as
// they were. Only the most recently issued search may apply its response.
func (s *Session) Search(ctx context.Context) error {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	params := s.criteria.Values()
	s.mu.Unlock()

	noSearches.Inc()
	resp, err := s.api.Filter(ctx, params)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		noStaleResponses.Inc()
		s.logger.Debug("[Session] Discarding stale search response", "seq", seq, "latest", s.seq)
		return ErrStaleResponse
	}
	if err != nil {
		noFailedSearches.Inc()
		s.logger.Error("[Session] Search request failed", "err", err)
		return fmt.Errorf("search failed: %w", err)
	}
	if !resp.Succeeded() {
		noFailedSearches.Inc()
		s.logger.Error("[Session] Search was not successful", "result", resp.Result, "error_message", resp.ErrorMessage)
		return fmt.Errorf("search returned %q: %s", resp.Result, resp.ErrorMessage)
	}

	s.listings = resp.FilteredDormRoomSet
	s.matched = MatchedBuildingNames(s.listings)
	s.searched = true
	s.logger.Info("[Session] Search completed", "listings", len(s.listings), "buildings", len(s.matched))
	return nil
}

// Searched reports whether any search has succeeded yet.
func (s *Session) Searched() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searched
}

func (s *Session) Listings() []dorm.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listings
}

// MatchedBuildings are the display names of buildings in the last result set.
func (s *Session) MatchedBuildings() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.matched...)
}

// SelectBuilding shows name in the detail panel. models.ALL shows every match.
func (s *Session) SelectBuilding(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = name
}

// Back returns to the map with no building selected.
func (s *Session) Back() {
	s.SelectBuilding("")
}

func (s *Session) SelectedBuilding() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

func (s *Session) SetSortKey(key detail.SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortKey = key
}

// View is a consistent snapshot of the session for rendering.
type View struct {
	Criteria         FilterCriteria
	Searched         bool
	MatchedBuildings []string
	SelectedBuilding string
	SortKey          detail.SortKey
	Panel            detail.Panel
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return View{
		Criteria:         s.criteria,
		Searched:         s.searched,
		MatchedBuildings: append([]string(nil), s.matched...),
		SelectedBuilding: s.selected,
		SortKey:          s.sortKey,
		Panel:            detail.Build(s.listings, s.searched, s.selected, s.sortKey),
	}
}

// ShowingDetail reports whether the detail panel replaces the map.
func (v View) ShowingDetail() bool {
	return v.SelectedBuilding != ""
}

// Params is the query the criteria serialize to.
func (v View) Params() models.DormFilterParams {
	return v.Criteria.Values()
}
