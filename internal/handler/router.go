package handler

import (
	"net/http"

	"doc-text-extractor/internal/domain"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(extractHandler *ExtractHandler, logger domain.Logger, allowedOrigins []string) http.Handler {
	router := mux.NewRouter()

	// The extraction endpoint contract: any non-POST method gets a JSON 405.
	methodNotAllowed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})
	router.MethodNotAllowedHandler = methodNotAllowed

	// API prefix. Subrouters do not inherit the parent's 405 handler.
	api := router.PathPrefix("/api/v1").Subrouter()
	api.MethodNotAllowedHandler = methodNotAllowed

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"doc-text-extractor"}`))
	}).Methods("GET")

	// Extraction route
	api.HandleFunc("/extract", extractHandler.Extract).Methods("POST")

	router.Use(RequestLoggingMiddleware(logger))

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
