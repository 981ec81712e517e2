package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"weather-entities/internal/model"
	"weather-entities/internal/repository"
	"weather-entities/internal/service"
	"weather-entities/internal/weather"
)

var validate = validator.New()

// Handler handles HTTP requests
type Handler struct {
	service   service.ServiceInterface
	logger    *zap.Logger
	staticDir string
}

// NewHandler creates a new handler instance
func NewHandler(svc service.ServiceInterface, logger *zap.Logger, staticDir string) *Handler {
	return &Handler{service: svc, logger: logger, staticDir: staticDir}
}

// CreateEntity handles POST /entities
func (h *Handler) CreateEntity(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEntityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entity, err := h.service.CreateEntity(r.Context(), req)
	if err != nil {
		h.logger.Warn("create entity failed", zap.String("name", req.Name), zap.Error(err))
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, entity)
}

// GetEntity handles GET /entities/{name}
func (h *Handler) GetEntity(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	entity, err := h.service.GetEntity(r.Context(), name)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, entity)
}

// UpdateEntity handles PUT /entities/{name}
func (h *Handler) UpdateEntity(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var req model.UpdateEntityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	entity, err := h.service.UpdateEntity(r.Context(), name, req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, entity)
}

// DeleteEntity handles DELETE /entities/{name}
func (h *Handler) DeleteEntity(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	if err := h.service.DeleteEntity(r.Context(), name); err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListEntities handles GET /all_entities/{skip}/{limit}/{sortBy}/{order}
func (h *Handler) ListEntities(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	skip, err := strconv.ParseInt(vars["skip"], 10, 64)
	if err != nil || skip < 0 {
		http.Error(w, "invalid skip parameter", http.StatusBadRequest)
		return
	}

	limit, err := strconv.ParseInt(vars["limit"], 10, 64)
	if err != nil || limit <= 0 {
		http.Error(w, "invalid limit parameter", http.StatusBadRequest)
		return
	}

	order, err := parseOrder(vars["order"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	q := model.ListQuery{
		Skip:   skip,
		Limit:  limit,
		SortBy: vars["sortBy"],
		Order:  order,
	}

	entities, err := h.service.ListEntities(r.Context(), q)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, model.ListResponse{Elements: entities})
}

// Root handles GET / with the static landing page
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.staticDir, "index.html"))
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// parseOrder accepts the word forms and the numeric forms clients send.
func parseOrder(s string) (model.SortOrder, error) {
	switch s {
	case "asc", "ascending", "1":
		return model.OrderAscending, nil
	case "desc", "descending", "-1":
		return model.OrderDescending, nil
	default:
		return "", errors.New("order must be ascending or descending")
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// writeError maps service and upstream failures onto the outward status
// contract. Every failure path yields a distinct status.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		http.Error(w, "entity not found", http.StatusNotFound)
	case errors.Is(err, weather.ErrUpstreamClient):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, weather.ErrUpstreamUnavailable):
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	case errors.Is(err, weather.ErrUpstreamUnclassified):
		http.Error(w, "not implemented", http.StatusNotImplemented)
	case errors.Is(err, weather.ErrEmptyWindow):
		http.Error(w, "no weather data for the requested window", http.StatusUnprocessableEntity)
	case errors.Is(err, weather.ErrMalformedResponse):
		http.Error(w, "bad upstream response", http.StatusBadGateway)
	case errors.Is(err, service.ErrInvalidDateRange):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, repository.ErrDuplicateName):
		http.Error(w, "entity name already exists", http.StatusConflict)
	case errors.Is(err, repository.ErrBadSortField):
		http.Error(w, "unknown sort field", http.StatusBadRequest)
	default:
		h.logger.Error("internal error", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
