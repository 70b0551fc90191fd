/*

JSON API over the latest aggregation snapshot. This is the presentation
layer's consumption boundary: it renders nothing itself and owns no refresh
logic beyond asking for one.

*/

package web

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/farmscan/farmscan/internal/aggregator"
	"github.com/farmscan/farmscan/internal/logger"
	"github.com/farmscan/farmscan/internal/types"
	"github.com/farmscan/farmscan/internal/utils"
	"github.com/gorilla/mux"
)

var webLogger = logger.GetForComponent("web_server")

// WebServer handles HTTP requests for pool data.
type WebServer struct {
	router    *mux.Router
	port      string
	snapshots *aggregator.SnapshotHolder
	refresh   func()
}

// NewWebServer creates a web server over a snapshot holder. refresh is
// invoked (asynchronously by the caller's wiring) when a client requests an
// immediate refresh.
func NewWebServer(port string, snapshots *aggregator.SnapshotHolder, refresh func()) *WebServer {
	if port == "" {
		port = "8080"
	}

	server := &WebServer{
		router:    mux.NewRouter(),
		port:      port,
		snapshots: snapshots,
		refresh:   refresh,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all HTTP routes
func (ws *WebServer) setupRoutes() {
	ws.router.HandleFunc("/health", ws.handleHealth).Methods("GET")

	api := ws.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", ws.handleHealth).Methods("GET")
	api.HandleFunc("/pools", ws.handleGetPools).Methods("GET")
	api.HandleFunc("/refresh", ws.handleRefresh).Methods("POST")

	ws.router.Use(ws.corsMiddleware)
	ws.router.Use(ws.loggingMiddleware)
}

// Start starts the web server
func (ws *WebServer) Start() error {
	webLogger.Info().Str("port", ws.port).Msg("Starting web server")

	server := &http.Server{
		Addr:         ":" + ws.port,
		Handler:      ws.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server.ListenAndServe()
}

// handleHealth returns server health plus the age of the latest snapshot.
func (ws *WebServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := ws.snapshots.Latest()

	status := "OK"
	statusCode := http.StatusOK
	var snapshotAge interface{}
	if ok {
		snapshotAge = time.Since(snapshot.FetchedAt).Round(time.Second).String()
	} else {
		status = "WAITING_FOR_FIRST_REFRESH"
		statusCode = http.StatusServiceUnavailable
	}

	response := map[string]interface{}{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		"snapshot": map[string]interface{}{
			"available": ok,
			"age":       snapshotAge,
			"pools":     len(snapshot.Pools),
		},
	}

	ws.writeJSONResponse(w, statusCode, response)
}

// handleGetPools returns the latest snapshot with pools sorted by descending
// APR and the caller's earnings breakdown.
func (ws *WebServer) handleGetPools(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := ws.snapshots.Latest()
	if !ok {
		ws.writeErrorResponse(w, http.StatusServiceUnavailable, "No snapshot available yet")
		return
	}

	sorted := make([]types.PoolMetrics, len(snapshot.Pools))
	copy(sorted, snapshot.Pools)
	sort.SliceStable(sorted, func(i, j int) bool {
		aprI, _ := strconv.ParseFloat(sorted[i].APR, 64)
		aprJ, _ := strconv.ParseFloat(sorted[j].APR, 64)
		return aprI > aprJ
	})

	response := map[string]interface{}{
		"pools":               sorted,
		"total_weekly_return": snapshot.TotalWeeklyReturn,
		"claimable_rewards":   snapshot.ClaimableRewards,
		"earnings":            earningsRows(snapshot.TotalWeeklyReturn),
		"fetched_at":          snapshot.FetchedAt,
	}

	ws.writeJSONResponse(w, http.StatusOK, response)
}

// handleRefresh triggers an immediate refresh. The refresh runs in the
// background; clients poll /api/pools for the updated snapshot.
func (ws *WebServer) handleRefresh(w http.ResponseWriter, r *http.Request) {
	ws.refresh()

	response := map[string]interface{}{
		"triggered": true,
		"timestamp": time.Now().UTC(),
	}

	ws.writeJSONResponse(w, http.StatusAccepted, response)
}

// earningsRows derives the caller's hourly/daily/weekly dollar earnings from
// the weekly return total.
func earningsRows(totalWeeklyReturn float64) []types.LabeledValue {
	hourly := totalWeeklyReturn / 7 / 24
	daily := totalWeeklyReturn / 7
	return []types.LabeledValue{
		{Label: "Hourly", Value: hourly, Display: utils.ToDollar(hourly)},
		{Label: "Daily", Value: daily, Display: utils.ToDollar(daily)},
		{Label: "Weekly", Value: totalWeeklyReturn, Display: utils.ToDollar(totalWeeklyReturn)},
	}
}

// writeJSONResponse writes a JSON response
func (ws *WebServer) writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		webLogger.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeErrorResponse writes an error response
func (ws *WebServer) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	response := map[string]interface{}{
		"error":     true,
		"message":   message,
		"timestamp": time.Now().UTC(),
	}

	ws.writeJSONResponse(w, statusCode, response)
}

// corsMiddleware adds CORS headers
func (ws *WebServer) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs HTTP requests
func (ws *WebServer) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapper := &responseWriterWrapper{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapper, r)

		webLogger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", wrapper.statusCode).
			Dur("elapsed", time.Since(start)).
			Msg("Handled request")
	})
}

// responseWriterWrapper captures the status code written by a handler.
type responseWriterWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriterWrapper) WriteHeader(statusCode int) {
	rw.statusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}
