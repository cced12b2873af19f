package handler

import (
	"net/http"

	"ats-resume-optimizer/internal/config"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()
	logger := container.GetLogger()
	analysisService := container.GetAnalysisService()

	router.Use(RequestIDMiddleware, LoggingMiddleware(logger), RecoveryMiddleware(logger))

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status":  "ok",
			"service": "ats-resume-optimizer",
			"ready":   analysisService.Ready(),
		})
	}).Methods(http.MethodGet)

	analysisHandler := NewAnalysisHandler(analysisService, container.GetConfig().GetMaxFileSize(), logger)

	// Web page
	router.HandleFunc("/", analysisHandler.Index).Methods(http.MethodGet)
	router.HandleFunc("/", analysisHandler.Submit).Methods(http.MethodPost)

	// JSON API
	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/analyze", analysisHandler.Analyze).Methods(http.MethodPost, http.MethodOptions)

	c := cors.New(cors.Options{
		AllowedOrigins: container.GetConfig().GetAllowedOrigins(),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			RequestIDHeader,
		},
		ExposedHeaders: []string{
			RequestIDHeader,
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
