// Package server exposes the visualization over HTTP: an interactive viewer
// page, JSON APIs for the graph and its stats readout, snapshot rendering
// and the PNG export download.
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/arfacturas8-ai/sociograph/config"
	"github.com/arfacturas8-ai/sociograph/models"
	"github.com/arfacturas8-ai/sociograph/physics"
	"github.com/arfacturas8-ai/sociograph/render"
	"github.com/arfacturas8-ai/sociograph/social"
	"github.com/arfacturas8-ai/sociograph/viz"
)

// Relaxation step cap for one-shot snapshot renders.
const maxSnapshotSteps = 300

// Server wires the relationship source into HTTP handlers.
type Server struct {
	cfg    config.Config
	loader *social.Loader
}

// New creates a server over the given source.
func New(cfg config.Config, source social.Source, notifier social.Notifier) *Server {
	builder := social.NewBuilder(source, notifier)
	return &Server{
		cfg:    cfg,
		loader: social.NewLoader(builder),
	}
}

// Start registers routes and serves until the listener fails.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/visualize", s.handleVisualize)
	mux.HandleFunc("/export", s.handleExport)
	mux.HandleFunc("/api/graph", s.handleAPIGraph)
	mux.HandleFunc("/api/stats", s.handleAPIStats)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Starting server on port %d...", s.cfg.Port)
	return srv.ListenAndServe()
}

// request decodes the shared query parameters.
type request struct {
	subject string
	filter  models.Filter
	mode    models.ViewMode
	force   float64
	labels  bool
	width   int
	height  int
}

func (s *Server) parseRequest(r *http.Request) request {
	q := r.URL.Query()
	req := request{
		subject: q.Get("subject"),
		filter:  models.Filter(s.cfg.Filter),
		mode:    models.ViewMode(s.cfg.Mode),
		force:   s.cfg.ForceStrength,
		labels:  s.cfg.ShowLabels,
		width:   s.cfg.Width,
		height:  s.cfg.Height,
	}
	if req.subject == "" {
		req.subject = "me"
	}
	if v := q.Get("filter"); v != "" {
		req.filter = models.Filter(v)
	}
	if v := q.Get("mode"); v != "" {
		req.mode = models.ViewMode(v)
	}
	if v := q.Get("force"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			req.force = f
		}
	}
	if v := q.Get("labels"); v != "" {
		req.labels = v != "false" && v != "0"
	}
	if v := q.Get("width"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			req.width = n
		}
	}
	if v := q.Get("height"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			req.height = n
		}
	}
	return req
}

// load builds the graph for a request under the loader's last-request-wins
// discipline. Graph and aggregates come from the same committed load, so a
// concurrent request for another subject can never mix the two.
func (s *Server) load(r *http.Request, req request) (*models.Graph, models.NetworkStats, bool) {
	return s.loader.Load(r.Context(), req.subject, req.filter)
}

// relax lays the graph out and runs the simulation to (near) equilibrium,
// then draws a single frame onto the canvas.
func (s *Server) relax(g *models.Graph, req request, canvas render.Canvas) {
	physics.InitialLayout(g, req.mode, s.cfg.Seed)

	sim := physics.NewSimulator(g, physics.DefaultConfig())
	sim.SetForceStrength(req.force)
	sim.Start()
	for i := 0; i < maxSnapshotSteps; i++ {
		if sim.Step() {
			break
		}
	}

	pipe := render.NewPipeline(canvas, render.GetPalette(s.cfg.Palette), s.cfg.PixelRatio)
	pipe.ShowLabels = req.labels
	pipe.Draw(g, "", "")
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, indexPage)
}

func (s *Server) handleVisualize(w http.ResponseWriter, r *http.Request) {
	req := s.parseRequest(r)
	g, _, ok := s.load(r, req)
	if !ok {
		http.Error(w, "request superseded", http.StatusConflict)
		return
	}

	format := r.URL.Query().Get("format")
	switch format {
	case "png":
		canvas, err := render.NewRaster(req.width, req.height)
		if err != nil {
			http.Error(w, "rendering unavailable: "+err.Error(), http.StatusInternalServerError)
			return
		}
		s.relax(g, req, canvas)
		w.Header().Set("Content-Type", "image/png")
		if err := canvas.EncodePNG(w); err != nil {
			log.Printf("png encode failed: %v", err)
		}
	default:
		canvas, err := render.NewSVGCanvas(req.width, req.height)
		if err != nil {
			http.Error(w, "rendering unavailable: "+err.Error(), http.StatusInternalServerError)
			return
		}
		s.relax(g, req, canvas)
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write(canvas.Finish())
	}
}

// handleExport serializes the rendered frame as a PNG attachment under the
// fixed filename.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	req := s.parseRequest(r)
	g, _, ok := s.load(r, req)
	if !ok {
		http.Error(w, "request superseded", http.StatusConflict)
		return
	}

	canvas, err := render.NewRaster(req.width, req.height)
	if err != nil {
		http.Error(w, "export unavailable: "+err.Error(), http.StatusInternalServerError)
		return
	}
	s.relax(g, req, canvas)

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", viz.ExportFilename))
	if err := viz.ExportPNG(canvas, w); err != nil {
		log.Printf("export failed: %v", err)
	}
}

func (s *Server) handleAPIGraph(w http.ResponseWriter, r *http.Request) {
	req := s.parseRequest(r)
	g, _, ok := s.load(r, req)
	if !ok {
		http.Error(w, "request superseded", http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(g)
}

func (s *Server) handleAPIStats(w http.ResponseWriter, r *http.Request) {
	req := s.parseRequest(r)
	g, stats, ok := s.load(r, req)
	if !ok {
		http.Error(w, "request superseded", http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(g.Summarize(stats))
}

const indexPage = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Sociograph - Social Graph Visualization</title>
  <style>
    body {
      font-family: 'Helvetica Neue', Arial, sans-serif;
      margin: 0;
      padding: 20px;
      background: #1e1e2e;
      color: #f8f8f2;
    }
    .container {
      max-width: 1200px;
      margin: 0 auto;
    }
    .controls { margin: 16px 0; }
    select, input, button {
      padding: 8px;
      font-size: 14px;
      border: 1px solid #444;
      border-radius: 4px;
      margin-right: 8px;
      background: #2a2a3e;
      color: #f8f8f2;
    }
    img { max-width: 100%; border-radius: 8px; }
  </style>
</head>
<body>
  <div class="container">
    <h1>Sociograph</h1>
    <form class="controls" action="/visualize" method="get">
      <input type="text" name="subject" value="me" placeholder="Subject ID">
      <select name="mode">
        <option value="network">Network</option>
        <option value="circle">Circle</option>
        <option value="hierarchy">Hierarchy</option>
      </select>
      <select name="filter">
        <option value="all">All</option>
        <option value="friends">Friends</option>
        <option value="followers">Followers</option>
        <option value="following">Following</option>
      </select>
      <input type="number" name="force" value="0.3" min="0.1" max="1.0" step="0.1">
      <select name="format">
        <option value="svg">SVG</option>
        <option value="png">PNG</option>
      </select>
      <button type="submit">Visualize</button>
      <a href="/export?subject=me"><button type="button">Export PNG</button></a>
    </form>
    <img src="/visualize?subject=me&format=svg" alt="social graph">
  </div>
</body>
</html>
`
