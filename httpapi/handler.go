package httpapi

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"sync/atomic"

	json "github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"

	"github.com/erraggy/urlpatterns/clusterer"
	"github.com/erraggy/urlpatterns/parser"
)

// analyzeRequest is the POST /analyze body.
type analyzeRequest struct {
	URLs []string `json:"urls"`
}

// errorResponse is the body of every non-2xx JSON response.
type errorResponse struct {
	Error string `json:"error"`
}

// healthResponse is the GET /health body.
type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Handler serves the analysis endpoints. Clustering is stateless, so a
// single Handler safely serves concurrent requests.
type Handler struct {
	cfg       Config
	metrics   *Metrics
	clusterer *clusterer.Clusterer
	logger    parser.Logger
}

// NewHandler creates a Handler with the given settings. A nil logger
// falls back to NopLogger.
func NewHandler(cfg Config, m *Metrics, logger parser.Logger) *Handler {
	if logger == nil {
		logger = parser.NopLogger{}
	}
	if m == nil {
		m = NewMetrics()
	}
	return &Handler{
		cfg:       cfg,
		metrics:   m,
		clusterer: &clusterer.Clusterer{Logger: logger},
		logger:    logger,
	}
}

// Metrics returns the handler's counter set.
func (h *Handler) Metrics() *Metrics {
	return h.metrics
}

// Routes returns a mux with all endpoints registered.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/analyze", h.HandleAnalyze)
	mux.HandleFunc("/health", h.HandleHealth)
	mux.HandleFunc("/metrics", h.HandleMetrics)
	return mux
}

// HandleAnalyze runs one clustering pass over the request list in the
// body. This is the hot path; everything else on the mux is trivia.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	atomic.AddInt64(&h.metrics.RequestsTotal, 1)

	if r.Method != http.MethodPost {
		atomic.AddInt64(&h.metrics.RequestErrorsTotal, 1)
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxBodySize)
	defer r.Body.Close()

	body, err := h.readBody(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			atomic.AddInt64(&h.metrics.RequestsRejectedBodyTooLargeTotal, 1)
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
			return
		}
		atomic.AddInt64(&h.metrics.RequestErrorsTotal, 1)
		h.logger.Warn("reading analyze request body", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unreadable request body"})
		return
	}

	var req analyzeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		atomic.AddInt64(&h.metrics.RequestErrorsTotal, 1)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	result := h.clusterer.Cluster(req.URLs)

	atomic.AddInt64(&h.metrics.AnalysesTotal, 1)
	atomic.AddInt64(&h.metrics.URLsAnalyzedTotal, int64(len(req.URLs)))

	h.writeResult(w, r, result)
}

// readBody drains the request body, transparently ungzipping when the
// client declared Content-Encoding: gzip.
func (h *Handler) readBody(r *http.Request) ([]byte, error) {
	var src io.Reader = r.Body
	if strings.EqualFold(r.Header.Get("Content-Encoding"), "gzip") {
		gz, err := gzip.NewReader(r.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		src = gz
	}
	return io.ReadAll(src)
}

// writeResult encodes the result as JSON, gzip-compressed when the
// client accepts it.
func (h *Handler) writeResult(w http.ResponseWriter, r *http.Request, result *clusterer.Result) {
	payload, err := json.Marshal(result)
	if err != nil {
		atomic.AddInt64(&h.metrics.RequestErrorsTotal, 1)
		h.logger.Error("encoding analyze response", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "encoding response"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		_, _ = gz.Write(payload)
		_ = gz.Close()
		return
	}
	_, _ = w.Write(payload)
}

// HandleHealth answers load balancer health checks.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "healthy", Service: "urlpatterns"})
}

// HandleMetrics dumps the counters as plain text.
func (h *Handler) HandleMetrics(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, h.metrics.String())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	payload, err := json.Marshal(v)
	if err != nil {
		return
	}
	_, _ = w.Write(payload)
}
