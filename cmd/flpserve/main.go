// Command flpserve exposes the project catalog over a small read-only HTTP
// API, in the teacher's router-and-JSON-handler shape (gorilla/mux plus
// encoding/json), scaled down to the read-only surface this module needs.
package main

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/sonicvault/flp/internal/catalog"
	"github.com/sonicvault/flp/internal/config"
	"github.com/sonicvault/flp/internal/logger"
	"github.com/sonicvault/flp/internal/project"
)

type server struct {
	cat *catalog.Catalog
}

func main() {
	logger.Configure()
	cfg := config.Load()

	cat, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		logger.Fatal("flpserve: %v", err)
	}
	defer cat.Close()

	s := &server{cat: cat}

	router := mux.NewRouter()
	router.HandleFunc("/projects", s.listProjects).Methods("GET")
	router.HandleFunc("/projects/{path:.*}", s.getProject).Methods("GET")
	router.HandleFunc("/health", s.health).Methods("GET")

	logger.Info("flpserve: listening on %s (catalog=%s)", cfg.ListenAddr, cfg.CatalogPath)
	if err := http.ListenAndServe(cfg.ListenAddr, router); err != nil {
		logger.Fatal("flpserve: %v", err)
	}
}

func (s *server) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) listProjects(w http.ResponseWriter, r *http.Request) {
	entries, err := s.cat.All()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

// projectView is the JSON shape returned for a single project, derived live
// from the file on disk rather than the catalog row — the catalog only
// indexes summary fields, and this endpoint reports the full current state.
type projectView struct {
	Path            string   `json:"path"`
	DetectedVersion string   `json:"detected_version"`
	Title           string   `json:"title"`
	PPQ             uint16   `json:"ppq"`
	Tempo           uint32   `json:"tempo,omitempty"`
	SampleNames     []string `json:"sample_names,omitempty"`
}

func (s *server) getProject(w http.ResponseWriter, r *http.Request) {
	path := mux.Vars(r)["path"]
	if path == "" {
		respondError(w, http.StatusBadRequest, "missing path")
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		respondError(w, http.StatusNotFound, "project not found: "+err.Error())
		return
	}

	p, err := project.Open(data)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "parse failed: "+err.Error())
		return
	}

	view := projectView{
		Path:            path,
		DetectedVersion: p.DetectedVersion(),
		Title:           p.Title(),
		PPQ:             p.PPQ(),
		SampleNames:     p.SampleNames(),
	}
	if tempo, err := p.Tempo(); err == nil {
		view.Tempo = tempo
	}

	respondJSON(w, http.StatusOK, view)
}

func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Warn("flpserve: encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, map[string]string{"error": message})
}
