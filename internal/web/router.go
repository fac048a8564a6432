// Package web serves the popup page: an identifier input with suggestions, a
// fetch button and the result region written by the viewer.
package web

import (
	"html/template"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/jamesprial/dock-status/internal/viewer"
)

// Handler serves the popup page for one viewer session.
type Handler struct {
	viewer  viewer.Viewer
	refresh int
	logger  *zap.Logger
}

// NewHandler returns a Handler. The page reloads itself every pollInterval,
// rounded up to whole seconds, while the viewer is polling.
func NewHandler(v viewer.Viewer, pollInterval time.Duration, logger *zap.Logger) *Handler {
	if v == nil {
		panic("viewer must not be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	refresh := int(math.Ceil(pollInterval.Seconds()))
	if refresh < 1 {
		refresh = 1
	}
	return &Handler{viewer: v, refresh: refresh, logger: logger}
}

// NewRouter mounts the popup routes. Callers may mount further handlers on the
// returned router.
func NewRouter(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(h.accessLog)

	r.Get("/", h.servePopup)
	r.Post("/fetch", h.handleFetch)
	r.Get("/result", h.serveResult)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	return r
}

// servePopup renders the page. Before the first successful load it fetches
// the suggestion list, as opening the popup did.
func (h *Handler) servePopup(w http.ResponseWriter, r *http.Request) {
	snap := h.viewer.Snapshot()
	if snap.State == viewer.StateIdle || snap.State == viewer.StateConnectionError {
		h.viewer.Load(r.Context())
		snap = h.viewer.Snapshot()
	}

	result, err := snap.Frame.HTML()
	if err != nil {
		h.logger.Error("render result region", zap.Error(err))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	data := pageData{
		Suggestions: snap.Suggestions,
		Identifier:  snap.Identifier,
		Result:      result,
	}
	if snap.Polling {
		data.Refresh = h.refresh
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		h.logger.Error("render popup page", zap.Error(err))
	}
}

// handleFetch runs a user-triggered fetch for the submitted identifier and
// redirects back to the page.
func (h *Handler) handleFetch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	h.viewer.Fetch(r.Context(), r.PostFormValue("mac"))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// serveResult writes only the result region fragment.
func (h *Handler) serveResult(w http.ResponseWriter, r *http.Request) {
	result, err := h.viewer.Snapshot().Frame.HTML()
	if err != nil {
		h.logger.Error("render result region", zap.Error(err))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(result))
}

func (h *Handler) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

type pageData struct {
	Suggestions []string
	Identifier  string
	Result      template.HTML
	Refresh     int
}

var pageTmpl = template.Must(template.New("popup").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Dock Status</title>
  {{- if .Refresh}}
  <meta http-equiv="refresh" content="{{.Refresh}}">
  {{- end}}
  <style>
    .warn-text { color: #b00; }
    .loading-text { color: #666; }
    table { border-collapse: collapse; }
    td, th { padding: 2px 8px; text-align: right; }
  </style>
</head>
<body>
  <form method="post" action="/fetch">
    <input type="text" id="mac-text" name="mac" list="suggestions" value="{{.Identifier}}" placeholder="MAC address">
    <datalist id="suggestions">
      {{- range .Suggestions}}
      <option value="{{.}}">
      {{- end}}
    </datalist>
    <button type="submit" id="fetch-btn">Fetch</button>
  </form>
  <div class="result">{{.Result}}</div>
</body>
</html>
`))
