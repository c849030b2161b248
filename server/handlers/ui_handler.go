package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"dorm-finder/auth"
	"dorm-finder/buildinginfo"
	"dorm-finder/config"
	"dorm-finder/detail"
	"dorm-finder/mapview"
	"dorm-finder/models"
	"dorm-finder/resources"
	"dorm-finder/search"
	services "dorm-finder/service"

	"github.com/gorilla/mux"
)

// Facet form actions posted to /facet.
const (
	FACET_ACTION_TOGGLE = "toggle"
	FACET_ACTION_SELECT = "select"
	FACET_ACTION_ALL    = "all"
	FACET_ACTION_SIZE   = "size"
)

const (
	LANDING_TEMPLATE = "landing"
	FINDER_TEMPLATE  = "finder"
	INFO_TEMPLATE    = "info"
)

// LoadTemplates parses the page templates bundled in fsys.
func LoadTemplates(fsys fs.FS) (*template.Template, error) {
	t, err := template.New("").ParseFS(fsys, resources.TEMPLATES_GLOB)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return t, nil
}

type optionView struct {
	Value   string
	Label   string
	Checked bool
}

type facetView struct {
	Name    string
	Label   string
	All     bool
	Options []optionView
}

type finderPage struct {
	User             *auth.User
	Facets           []facetView
	Size             search.SizeRange
	SizeMin          int
	SizeMax          int
	SizeStep         int
	Searched         bool
	MatchedBuildings []string
	ShowingDetail    bool
	Panel            detail.Panel
	SortKeys         []detail.SortKey
	All              string
	MapAvailable     bool
	NoMapMessage     string
	MapDelayMillis   int
}

type infoLink struct {
	Name string
	Href string
}

type infoPage struct {
	User  *auth.User
	Page  *buildinginfo.Page
	Links []infoLink
}

// UIHandler serves the finder pages. Each browser gets its own search.Session,
// found through the session cookie.
type UIHandler struct {
	store     *search.Store
	auth      auth.Authenticator
	campusMap *mapview.Map
	buildings *services.BuildingService
	templates *template.Template
	mapToken  string
	logger    *slog.Logger
}

func NewUIHandler(
	store *search.Store,
	authenticator auth.Authenticator,
	campusMap *mapview.Map,
	buildings *services.BuildingService,
	templates *template.Template,
	mapToken string,
	logger *slog.Logger) *UIHandler {

	return &UIHandler{
		store:     store,
		auth:      authenticator,
		campusMap: campusMap,
		buildings: buildings,
		templates: templates,
		mapToken:  mapToken,
		logger:    logger,
	}
}

// RequireUser sends signed-out visitors back to the landing page.
func (h *UIHandler) RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := h.auth.CurrentUser(r); !ok {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

func (h *UIHandler) session(w http.ResponseWriter, r *http.Request) *search.Session {
	id := ""
	if c, err := r.Cookie(config.SESSION_COOKIE_NAME); err == nil {
		id = c.Value
	}
	s, created := h.store.GetOrCreate(id)
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     config.SESSION_COOKIE_NAME,
			Value:    s.ID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		h.logger.Debug("[UIHandler] Started finder session", "session", s.ID)
	}
	return s
}

func (h *UIHandler) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		h.logger.Error("[UIHandler] Error rendering template", "template", name, "err", err)
	}
}

func (h *UIHandler) backToFinder(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout handles GET /logout: the visitor's finder session is dropped before
// the identity provider signs them out.
func (h *UIHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(config.SESSION_COOKIE_NAME); err == nil {
		h.store.Delete(c.Value)
		h.logger.Debug("[UIHandler] Dropped finder session", "session", c.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:   config.SESSION_COOKIE_NAME,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	h.auth.Logout(w, r)
}

// Index handles GET /: the landing page when signed out, the finder otherwise.
func (h *UIHandler) Index(w http.ResponseWriter, r *http.Request) {
	user, ok := h.auth.CurrentUser(r)
	if !ok {
		h.render(w, LANDING_TEMPLATE, nil)
		return
	}
	h.render(w, FINDER_TEMPLATE, h.finderPage(user, h.session(w, r).View()))
}

func (h *UIHandler) finderPage(user *auth.User, v search.View) finderPage {
	page := finderPage{
		User:             user,
		Size:             v.Criteria.SizeRange(),
		SizeMin:          config.MIN_ROOM_SIZE,
		SizeMax:          config.MAX_ROOM_SIZE,
		SizeStep:         config.ROOM_SIZE_STEP,
		Searched:         v.Searched,
		MatchedBuildings: v.MatchedBuildings,
		ShowingDetail:    v.ShowingDetail(),
		Panel:            v.Panel,
		SortKeys:         detail.SortKeys,
		All:              models.ALL,
		MapAvailable:     h.mapToken != "",
		NoMapMessage:     mapview.NO_MAP_TOKEN,
		MapDelayMillis:   config.MAP_LAYER_DELAY_MILLIS,
	}
	for _, f := range search.Facets {
		fv := facetView{Name: f.Name(), Label: f.Label(), All: v.Criteria.IsAll(f)}
		for _, o := range f.Options() {
			fv.Options = append(fv.Options, optionView{
				Value:   o.Value,
				Label:   o.Label,
				Checked: v.Criteria.IsSelected(f, o.Value),
			})
		}
		page.Facets = append(page.Facets, fv)
	}
	return page
}

// Facet handles POST /facet, applying one filter panel change.
func (h *UIHandler) Facet(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	reduce, err := facetReducer(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.session(w, r).Update(reduce); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.backToFinder(w, r)
}

func facetReducer(r *http.Request) (func(search.FilterCriteria) (search.FilterCriteria, error), error) {
	action := r.PostFormValue("action")
	if action == FACET_ACTION_SIZE {
		lo, err := strconv.Atoi(r.PostFormValue("minRoomSize"))
		if err != nil {
			return nil, errors.New("invalid minRoomSize")
		}
		hi, err := strconv.Atoi(r.PostFormValue("maxRoomSize"))
		if err != nil {
			return nil, errors.New("invalid maxRoomSize")
		}
		return func(c search.FilterCriteria) (search.FilterCriteria, error) {
			return c.SetSizeRange(lo, hi), nil
		}, nil
	}

	facet, err := search.ParseFacet(r.PostFormValue("facet"))
	if err != nil {
		return nil, err
	}
	switch action {
	case FACET_ACTION_TOGGLE:
		value := r.PostFormValue("value")
		return func(c search.FilterCriteria) (search.FilterCriteria, error) {
			return c.Toggle(facet, value)
		}, nil
	case FACET_ACTION_SELECT:
		values := r.PostForm["value"]
		return func(c search.FilterCriteria) (search.FilterCriteria, error) {
			return c.Select(facet, values...)
		}, nil
	case FACET_ACTION_ALL:
		return func(c search.FilterCriteria) (search.FilterCriteria, error) {
			return c.SelectAll(facet), nil
		}, nil
	}
	return nil, fmt.Errorf("unknown facet action %q", action)
}

// Search handles POST /search. A failed search leaves the previous results in place.
func (h *UIHandler) Search(w http.ResponseWriter, r *http.Request) {
	if err := h.session(w, r).Search(r.Context()); err != nil && !errors.Is(err, search.ErrStaleResponse) {
		h.logger.Warn("[UIHandler] Search failed", "err", err)
	}
	h.backToFinder(w, r)
}

// Select handles POST /select. The building is named directly, or found by
// hit testing a map click at lng/lat; a click outside every building clears
// the selection.
func (h *UIHandler) Select(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	name := r.PostFormValue("building")
	if name == "" && r.PostFormValue(LNG_QUERY_ARG) != "" {
		lng, err := parseArgFloat64(r.PostForm, LNG_QUERY_ARG)
		if err != nil {
			http.Error(w, "Invalid argument "+LNG_QUERY_ARG, http.StatusBadRequest)
			return
		}
		lat, err := parseArgFloat64(r.PostForm, LAT_QUERY_ARG)
		if err != nil {
			http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
			return
		}
		name = h.campusMap.HitTest(models.Point{lng, lat})
	}
	h.session(w, r).SelectBuilding(name)
	h.backToFinder(w, r)
}

// Back handles POST /back, returning from the detail panel to the map.
func (h *UIHandler) Back(w http.ResponseWriter, r *http.Request) {
	h.session(w, r).Back()
	h.backToFinder(w, r)
}

// Sort handles POST /sort.
func (h *UIHandler) Sort(w http.ResponseWriter, r *http.Request) {
	key, err := detail.ParseSortKey(r.PostFormValue("sort"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.session(w, r).SetSortKey(key)
	h.backToFinder(w, r)
}

// Map handles GET /map, the chart page the finder embeds once the base page
// has loaded. Without a map token only the fallback text is shown.
func (h *UIHandler) Map(w http.ResponseWriter, r *http.Request) {
	if h.mapToken == "" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, mapview.NO_MAP_TOKEN)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.campusMap.Render(w, h.session(w, r).MatchedBuildings()); err != nil {
		h.logger.Error("[UIHandler] Error rendering map", "err", err)
	}
}

// Info handles GET /info and GET /info/{name}.
func (h *UIHandler) Info(w http.ResponseWriter, r *http.Request) {
	user, _ := h.auth.CurrentUser(r)
	data := infoPage{User: user}
	for _, name := range h.buildings.InfoNames() {
		data.Links = append(data.Links, infoLink{Name: name, Href: "/info/" + url.PathEscape(name)})
	}
	if name, ok := mux.Vars(r)[NAME_PATH_ARG]; ok {
		page := h.buildings.InfoPage(name)
		data.Page = &page
	}
	h.render(w, INFO_TEMPLATE, data)
}

// Me handles GET /v1/me.
func (h *UIHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.auth.CurrentUser(r)
	if !ok {
		http.Error(w, "Not signed in", http.StatusUnauthorized)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, user)
}
