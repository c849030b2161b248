package handlers

import (
	"log/slog"
	"net/http"

	"dorm-finder/models"

	"github.com/gorilla/schema"
)

// DormFilterService answers /filter queries. Invalid params come back as a
// non-success response, never as an error.
type DormFilterService interface {
	Filter(params models.DormFilterParams) *models.DormFilterResponse
	CachedCriteria() ([]string, error)
	InvalidateCache() (int, error)
}

type FilterHandler struct {
	service DormFilterService
	decoder *schema.Decoder
	logger  *slog.Logger
}

func NewFilterHandler(service DormFilterService, logger *slog.Logger) *FilterHandler {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return &FilterHandler{service: service, decoder: decoder, logger: logger}
}

// Filter handles GET /filter. Every outcome is a 200 with the result field
// telling success from error_bad_request.
func (h *FilterHandler) Filter(w http.ResponseWriter, r *http.Request) {
	var params models.DormFilterParams
	if err := h.decoder.Decode(&params, r.URL.Query()); err != nil {
		h.logger.Warn("[FilterHandler] Could not decode query", "query", r.URL.RawQuery, "err", err)
		writeJSON(w, h.logger, http.StatusOK, &models.DormFilterResponse{
			Result:       models.RESULT_ERROR_BAD_REQUEST,
			ErrorMessage: err.Error(),
		})
		return
	}

	resp := h.service.Filter(params)
	if !resp.Succeeded() {
		h.logger.Info("[FilterHandler] Rejected filter query", "result", resp.Result, "error_message", resp.ErrorMessage)
	}
	writeJSON(w, h.logger, http.StatusOK, resp)
}

// CachedCriteria handles GET /v1/filter/cache
func (h *FilterHandler) CachedCriteria(w http.ResponseWriter, r *http.Request) {
	keys, err := h.service.CachedCriteria()
	if err != nil {
		h.logger.Error("[FilterHandler] Listing cached criteria failed", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, map[string]interface{}{"criteria": keys})
}

// InvalidateCache handles DELETE /v1/filter/cache
func (h *FilterHandler) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	n, err := h.service.InvalidateCache()
	if err != nil {
		h.logger.Error("[FilterHandler] Invalidating cache failed", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, map[string]int{"removed": n})
}
