package api

import (
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"weather-entities/internal/service"
	"weather-entities/internal/stats"
)

// NewRouter creates a new HTTP router
func NewRouter(svc service.ServiceInterface, logger *zap.Logger, staticDir string, statsCollector *stats.Collector) *mux.Router {
	handler := NewHandler(svc, logger, staticDir)
	statsHandler := NewStatsHandler(statsCollector)

	router := mux.NewRouter()

	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")
	router.HandleFunc("/stats", statsHandler.GetStats).Methods("GET")
	router.HandleFunc("/", handler.Root).Methods("GET")

	router.HandleFunc("/entities", handler.CreateEntity).Methods("POST")
	router.HandleFunc("/entities/{name}", handler.GetEntity).Methods("GET")
	router.HandleFunc("/entities/{name}", handler.UpdateEntity).Methods("PUT")
	router.HandleFunc("/entities/{name}", handler.DeleteEntity).Methods("DELETE")
	router.HandleFunc("/all_entities/{skip}/{limit}/{sortBy}/{order}", handler.ListEntities).Methods("GET")

	return router
}
