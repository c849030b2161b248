package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"dorm-finder/api/dormfilter"
	"dorm-finder/auth"
	"dorm-finder/buildinginfo"
	"dorm-finder/config"
	"dorm-finder/dao/redis"
	"dorm-finder/db"
	"dorm-finder/mapview"
	"dorm-finder/models"
	"dorm-finder/resources"
	"dorm-finder/search"
	"dorm-finder/server/handlers"
	services "dorm-finder/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var srcAttr = regexp.MustCompile(`src="([^"]+)"`)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRouter(t *testing.T, mapToken string) *mux.Router {
	t.Helper()
	router, _ := newTestApp(t, mapToken)
	return router
}

func newTestApp(t *testing.T, mapToken string) (*mux.Router, *search.Store) {
	t.Helper()
	logger := discardLogger()
	client := db.NewMockRedisClient(context.Background())

	listings, err := services.LoadRoomListings(resources.FS, logger)
	require.NoError(t, err)
	filterService := services.NewDormFilterService(
		services.NewHierarchyIndex(listings),
		redis.NewRedisFilterCacheDAO(client, time.Hour, logger),
		logger)

	campusMap, err := mapview.Load(resources.FS)
	require.NoError(t, err)
	info, err := buildinginfo.Load(resources.FS)
	require.NoError(t, err)
	buildingService := services.NewBuildingService(campusMap, info, redis.NewRedisBuildingDAO(client, logger), logger)
	_, err = buildingService.IndexBuildings()
	require.NoError(t, err)

	templates, err := handlers.LoadTemplates(resources.FS)
	require.NoError(t, err)

	authenticator := auth.NewMockAuth(config.TOKEN_COOKIE_NAME)
	store := search.NewStore(dormfilter.NewDormFilterApiClientMock(filterService), time.Hour, logger)

	muxRouter := mux.NewRouter()
	NewRouter(
		handlers.NewFilterHandler(filterService, logger),
		handlers.NewBuildingHandler(buildingService, logger),
		handlers.NewUIHandler(store, authenticator, campusMap, buildingService, templates, mapToken, logger),
		handlers.NewHealthHandler(logger),
		authenticator,
		muxRouter,
		logger,
	).RegisterRoutes()
	return muxRouter, store
}

func allQuery() url.Values {
	return models.DormFilterParams{
		CampusLocation: models.ALL,
		IsSuite:        models.ALL,
		HasKitchen:     models.ALL,
		BathroomType:   models.ALL,
		MinRoomSize:    models.ALL,
		MaxRoomSize:    models.ALL,
		RoomCapacity:   models.ALL,
		FloorNumber:    models.ALL,
	}.ToValues()
}

func serve(router http.Handler, method, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(method, target, nil))
	return rr
}

func decodeFilterResponse(t *testing.T, rr *httptest.ResponseRecorder) models.DormFilterResponse {
	t.Helper()
	var resp models.DormFilterResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestRouter_RegisterRoutes(t *testing.T) {
	router := newTestRouter(t, "")

	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		contains   string
	}{
		{"Ping Route", "GET", "/ping", http.StatusOK, `"status":"pong"`},
		{"Metrics", "GET", "/metrics", http.StatusOK, "dormfinder_filter_requests_total"},
		{"List Buildings", "GET", "/v1/buildings", http.StatusOK, "Diman House"},
		{"Get Building", "GET", "/v1/buildings/Diman%20House", http.StatusOK, `"geohash"`},
		{"Unknown Building", "GET", "/v1/buildings/Nowhere%20Hall", http.StatusNotFound, "Unknown building"},
		{"Building At", "GET", "/v1/buildings/at?lng=-71.4016&lat=41.8240", http.StatusOK, "Diman House"},
		{"Building At Nothing", "GET", "/v1/buildings/at?lng=-71.5&lat=41.9", http.StatusOK, `"name":""`},
		{"Building At Bad Arg", "GET", "/v1/buildings/at?lng=x&lat=41.9", http.StatusBadRequest, "lng"},
		{"Hover", "GET", "/v1/buildings/hover?lng=-71.4003&lat=41.8246", http.StatusOK, `"name":"Chapin House"`},
		{"Hover Nothing", "GET", "/v1/buildings/hover?lng=-71.5&lat=41.9", http.StatusOK, `"name":""`},
		{"Hover Bad Arg", "GET", "/v1/buildings/hover?lng=-71.4&lat=", http.StatusBadRequest, "lat"},
		{"Nearby", "GET", "/v1/buildings/nearby?lat=41.8240&lon=-71.4016&radius=0.05", http.StatusOK, "Diman House"},
		{"Nearby Bad Radius", "GET", "/v1/buildings/nearby?lat=41.8240&lon=-71.4016&radius=-1", http.StatusBadRequest, "radius"},
		{"Landing Page", "GET", "/", http.StatusOK, "Sign In"},
		{"Info Index", "GET", "/info", http.StatusOK, "Diman House"},
		{"Info Unknown", "GET", "/info/Nowhere%20Hall", http.StatusOK, buildinginfo.NO_INFORMATION},
		{"Map Signed Out", "GET", "/map", http.StatusSeeOther, ""},
		{"Search Signed Out", "POST", "/search", http.StatusSeeOther, ""},
		{"Me Signed Out", "GET", "/v1/me", http.StatusUnauthorized, ""},
		{"Filter Wrong Method", "POST", "/filter", http.StatusMethodNotAllowed, ""},
		{"Invalid Route", "GET", "/invalid", http.StatusNotFound, ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rr := serve(router, test.method, test.path)
			assert.Equal(t, test.statusCode, rr.Code)
			if test.contains != "" {
				assert.Contains(t, rr.Body.String(), test.contains)
			}
		})
	}
}

func TestRouter_Filter(t *testing.T) {
	router := newTestRouter(t, "")

	rr := serve(router, "GET", "/filter?"+allQuery().Encode())
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rr.Header().Get(REQUEST_ID_HEADER))

	resp := decodeFilterResponse(t, rr)
	assert.Equal(t, models.RESULT_SUCCESS, resp.Result)
	assert.NotEmpty(t, resp.FilteredDormRoomSet)
	assert.NotEmpty(t, resp.DormBuildingList)
	assert.Equal(t, models.ALL, resp.CampusLocation)
}

func TestRouter_FilterBadRequest(t *testing.T) {
	router := newTestRouter(t, "")

	bad := allQuery()
	bad.Set("roomCapacity", "Twelve")
	missing := allQuery()
	missing.Del("floorNumber")

	for name, q := range map[string]url.Values{"invalid token": bad, "missing param": missing} {
		t.Run(name, func(t *testing.T) {
			rr := serve(router, "GET", "/filter?"+q.Encode())
			require.Equal(t, http.StatusOK, rr.Code)
			resp := decodeFilterResponse(t, rr)
			assert.Equal(t, models.RESULT_ERROR_BAD_REQUEST, resp.Result)
			assert.NotEmpty(t, resp.ErrorMessage)
			assert.Empty(t, resp.FilteredDormRoomSet)
		})
	}
}

func TestRouter_FilterPreflight(t *testing.T) {
	rr := serve(newTestRouter(t, ""), "OPTIONS", "/filter")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_FilterCache(t *testing.T) {
	router := newTestRouter(t, "")
	serve(router, "GET", "/filter?"+allQuery().Encode())

	rr := serve(router, "GET", "/v1/filter/cache")
	require.Equal(t, http.StatusOK, rr.Code)
	var listed struct {
		Criteria []string `json:"criteria"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
	assert.Len(t, listed.Criteria, 1)

	rr = serve(router, "DELETE", "/v1/filter/cache")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"removed":1}`, rr.Body.String())
}

func TestRouter_Viewport(t *testing.T) {
	router := newTestRouter(t, "")

	var v mapview.Viewport
	rr := serve(router, "GET", "/v1/viewport?lat=41.9&lng=-71.5&zoom=15")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	assert.Equal(t, mapview.Viewport{Lat: mapview.MAX_LAT, Lng: mapview.MIN_LNG, Zoom: 15}, v)

	rr = serve(router, "GET", "/v1/viewport?zoom=10")
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	assert.Equal(t, mapview.Viewport{Lat: config.MAP_CENTER_LAT, Lng: config.MAP_CENTER_LNG, Zoom: config.MAP_MIN_ZOOM}, v)

	rr = serve(router, "GET", "/v1/viewport?zoom=far")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func newBrowser(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func get(t *testing.T, c *http.Client, target string) string {
	t.Helper()
	resp, err := c.Get(target)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	return string(body)
}

func post(t *testing.T, c *http.Client, target string, form url.Values) string {
	t.Helper()
	resp, err := c.PostForm(target, form)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	return string(body)
}

func TestRouter_FinderFlow(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(t, ""))
	defer srv.Close()
	browser := newBrowser(t)

	page := get(t, browser, srv.URL+"/login")
	assert.Contains(t, page, "Mock User")
	assert.Contains(t, page, "Nothing Searched Yet")
	assert.Contains(t, page, mapview.NO_MAP_TOKEN)

	page = post(t, browser, srv.URL+"/facet", url.Values{
		"facet": {"campusLocation"}, "action": {handlers.FACET_ACTION_TOGGLE}, "value": {"WristonQuad"},
	})
	assert.Contains(t, page, `class="checked">Wriston Quad`)

	page = post(t, browser, srv.URL+"/search", nil)
	assert.Contains(t, page, `value="Diman House"`)
	assert.NotContains(t, page, "Hope College")

	page = post(t, browser, srv.URL+"/select", url.Values{"building": {"Diman House"}})
	assert.Contains(t, page, "Back to Map")
	assert.Contains(t, page, `class="card"`)

	page = post(t, browser, srv.URL+"/sort", url.Values{"sort": {"size"}})
	assert.Contains(t, page, `value="size" selected`)

	page = post(t, browser, srv.URL+"/back", nil)
	assert.NotContains(t, page, "Back to Map")

	page = post(t, browser, srv.URL+"/select", url.Values{"lng": {"-71.4016"}, "lat": {"41.8240"}})
	assert.Contains(t, page, "Back to Map")

	page = get(t, browser, srv.URL+"/map")
	assert.Equal(t, mapview.NO_MAP_TOKEN, page)

	page = get(t, browser, srv.URL+"/logout")
	assert.Contains(t, page, "Sign In")
}

func TestRouter_SelectAllTitlesSuitesByTheirBuilding(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(t, ""))
	defer srv.Close()
	browser := newBrowser(t)
	get(t, browser, srv.URL+"/login")
	post(t, browser, srv.URL+"/search", nil)

	page := post(t, browser, srv.URL+"/select", url.Values{"building": {models.ALL}})
	assert.Contains(t, page, "Graduate Center D Suite")
	assert.NotContains(t, page, "All Suite")
}

func TestRouter_FacetErrors(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(t, ""))
	defer srv.Close()
	browser := newBrowser(t)
	get(t, browser, srv.URL+"/login")

	for name, form := range map[string]url.Values{
		"unknown facet":  {"facet": {"color"}, "action": {handlers.FACET_ACTION_ALL}},
		"unknown value":  {"facet": {"floorNumber"}, "action": {handlers.FACET_ACTION_TOGGLE}, "value": {"99"}},
		"unknown action": {"facet": {"floorNumber"}, "action": {"shuffle"}},
		"bad size":       {"action": {handlers.FACET_ACTION_SIZE}, "minRoomSize": {"small"}, "maxRoomSize": {"200"}},
	} {
		t.Run(name, func(t *testing.T) {
			resp, err := browser.PostForm(srv.URL+"/facet", form)
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestRouter_MapWithToken(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(t, "pk.test"))
	defer srv.Close()
	browser := newBrowser(t)

	page := get(t, browser, srv.URL+"/login")
	assert.Contains(t, page, `id="campus-map"`)
	assert.True(t, strings.Contains(page, "400"))

	page = get(t, browser, srv.URL+"/map")
	assert.Contains(t, page, "Campus Dorm Map")
}

func TestRouter_LogoutDropsSession(t *testing.T) {
	router, store := newTestApp(t, "")
	srv := httptest.NewServer(router)
	defer srv.Close()
	browser := newBrowser(t)

	get(t, browser, srv.URL+"/login")
	post(t, browser, srv.URL+"/search", nil)
	require.Equal(t, 1, store.Len())

	page := get(t, browser, srv.URL+"/logout")
	assert.Contains(t, page, "Sign In")
	assert.Zero(t, store.Len())

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	for _, c := range browser.Jar.Cookies(u) {
		assert.NotEqual(t, config.SESSION_COOKIE_NAME, c.Name)
	}
}

func TestRouter_InfoPageAssetsAreServed(t *testing.T) {
	router := newTestRouter(t, "")

	rr := serve(router, "GET", "/info/Diman%20House")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "41 Charlesfield St")
	assert.NotContains(t, rr.Body.String(), "<img")

	for _, m := range srcAttr.FindAllStringSubmatch(rr.Body.String(), -1) {
		assert.Equal(t, http.StatusOK, serve(router, "GET", m[1]).Code, m[1])
	}
}
