package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/kirillkom/doc-catalog/internal/config"
	"github.com/kirillkom/doc-catalog/internal/core/ports"
	"github.com/kirillkom/doc-catalog/internal/observability/metrics"
)

type Router struct {
	cfg      config.Config
	uploader ports.DocumentUploader
	querier  ports.CatalogQuerier
	metrics  *metrics.CatalogMetrics
}

func NewRouter(
	cfg config.Config,
	uploader ports.DocumentUploader,
	querier ports.CatalogQuerier,
	catalogMetrics *metrics.CatalogMetrics,
) *Router {
	return &Router{
		cfg:      cfg,
		uploader: uploader,
		querier:  querier,
		metrics:  catalogMetrics,
	}
}

const serviceName = "doc-catalog-api"

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/v1/documents", rt.documents)
	mux.HandleFunc("/v1/catalog/sort", rt.sortCatalog)
	mux.HandleFunc("/v1/catalog/search", rt.searchCatalog)
	mux.HandleFunc("/v1/catalog/classify", rt.classifyCatalog)
	if rt.metrics != nil {
		mux.Handle("/metrics", rt.metrics.Handler())
	}

	var handler http.Handler = mux
	handler = backpressureMiddleware(
		handler,
		rt.cfg.MaxConcurrentRequests,
		time.Duration(rt.cfg.BackpressureWaitMS)*time.Millisecond,
	)
	handler = rateLimitMiddleware(handler, rt.cfg.RateLimitRPS, rt.cfg.RateLimitBurst)
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(serviceName, handler)
	}
	handler = accessLogMiddleware(handler)
	handler = requestIDMiddleware(handler)
	return handler
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) documents(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		rt.uploadDocument(w, r)
	case http.MethodGet:
		rt.listDocuments(w, r)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	}
}

func (rt *Router) uploadDocument(w http.ResponseWriter, r *http.Request) {
	if rt.cfg.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, rt.cfg.MaxUploadBytes)
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "multipart field 'file' is required"})
		return
	}
	defer file.Close()

	doc, err := rt.uploader.Upload(r.Context(), fileHeader.Filename, file)
	if rt.metrics != nil {
		rt.metrics.RecordUpload(serviceName, err)
	}
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}
	if rt.metrics != nil {
		rt.metrics.SetCatalogSize(len(rt.querier.List(r.Context())))
	}

	writeJSON(w, http.StatusCreated, doc)
}

func (rt *Router) listDocuments(w http.ResponseWriter, r *http.Request) {
	docs := rt.querier.List(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"documents": docs,
		"count":     len(docs),
	})
}

func (rt *Router) sortCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req struct {
		Order string `json:"order"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	order := strings.ToLower(strings.TrimSpace(req.Order))
	if order == "" {
		order = "asc"
	}
	if order != "asc" && order != "desc" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "order must be asc or desc"})
		return
	}

	docs, elapsed := rt.querier.Sort(r.Context(), order == "desc")
	if rt.metrics != nil {
		rt.metrics.RecordOperation(serviceName, "sort", elapsed)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"documents":  docs,
		"count":      len(docs),
		"order":      order,
		"elapsed_ms": elapsedMS(elapsed),
	})
}

func (rt *Router) searchCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	keyword := r.URL.Query().Get("keyword")
	if strings.TrimSpace(keyword) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "keyword is required"})
		return
	}

	matches, elapsed := rt.querier.Search(r.Context(), keyword)
	if rt.metrics != nil {
		rt.metrics.RecordOperation(serviceName, "search", elapsed)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"matches":    matches,
		"count":      len(matches),
		"keyword":    keyword,
		"elapsed_ms": elapsedMS(elapsed),
	})
}

func (rt *Router) classifyCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	retrain := r.URL.Query().Get("retrain") == "1"
	results, trained, elapsed := rt.querier.Classify(r.Context(), retrain)
	if rt.metrics != nil {
		rt.metrics.RecordOperation(serviceName, "classify", elapsed)
		if trained {
			rt.metrics.RecordTraining()
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"results":    results,
		"classified": len(results),
		"categories": rt.querier.Categories(r.Context()),
		"trained":    trained,
		"elapsed_ms": elapsedMS(elapsed),
	})
}

func elapsedMS(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
