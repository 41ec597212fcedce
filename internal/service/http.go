package service

import (
	"encoding/json"
	"net/http"

	"mgpresults/internal/components/telemetry"
)

const report_http_write = "http.write"

// Handler exposes a Service over HTTP.
type Handler struct {
	service Service
	tel     telemetry.API
}

func NewHandler(service Service, tel telemetry.API) Handler {
	return Handler{
		service: service,
		tel:     telemetry.NewScopedAPI("service_http", tel),
	}
}

// RegisterRoutes mounts the handler's routes onto mux.
func (h Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/results", h.results)
	mux.HandleFunc("GET /api/chapters", h.chapters)
	mux.HandleFunc("GET /healthz", h.healthz)
	mux.HandleFunc("GET /{$}", h.index)
}

func (h Handler) writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(value)
	if err != nil {
		h.tel.ReportWarning(report_http_write, err)
	}
}

func (h Handler) results(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, err := h.service.Page(r.Context(), query.Get("country"), query.Get("chapter"))
	if err != nil {
		h.writeJSON(w, http.StatusBadGateway, page)
		return
	}
	h.writeJSON(w, http.StatusOK, page)
}

// chapters never fails, a broken run answers with an empty list.
func (h Handler) chapters(w http.ResponseWriter, r *http.Request) {
	// Load has already reported the error
	chapters, _ := h.service.ChaptersByCountry(r.Context(), r.URL.Query().Get("country"))
	h.writeJSON(w, http.StatusOK, chapters)
}

// index keeps the "?ajax=chapters" form of the chapter query working and
// otherwise serves the full results page.
func (h Handler) index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("ajax") == "chapters" {
		h.chapters(w, r)
		return
	}
	h.results(w, r)
}

func (h Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
