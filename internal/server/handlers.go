// Package server handles HTTP requests and middleware.
package server

import (
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const etagCap = 64

// NamesResponse is the body of GET /api/names.
type NamesResponse struct {
	Continents map[string]int `json:"continents"`
	Names      []string       `json:"names"`
	Count      int            `json:"count"`
}

// MatchResponse is the body of GET /api/match.
type MatchResponse struct {
	Name  string `json:"name,omitempty"`
	Match bool   `json:"match"`
}

// DebugResponse is the body of GET /debug.
type DebugResponse struct {
	Title       string `json:"title"`
	StaticDir   string `json:"static_dir"`
	TemplateDir string `json:"template_dir"`
	GeoJSON     string `json:"geojson"`
	Uptime      string `json:"uptime"`
	Names       int    `json:"names"`
}

// HandleIndex serves the rendered page.
func (s *ServerContext) HandleIndex(w http.ResponseWriter, r *http.Request) {
	etag := fmt.Sprintf(`"%x"`, len(s.IndexHTML))

	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, no-cache")
	_, _ = w.Write(s.IndexHTML)
}

// HandleNames serves the extracted name list.
func (s *ServerContext) HandleNames(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, NamesResponse{
		Continents: s.Continents,
		Names:      s.Names,
		Count:      len(s.Names),
	})
}

// HandleMatch resolves the guess in the q parameter to a canonical name.
func (s *ServerContext) HandleMatch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if strings.TrimSpace(q) == "" {
		http.Error(w, "missing q parameter", http.StatusBadRequest)
		return
	}

	name, ok := s.Index.Match(q)
	writeJSON(w, http.StatusOK, MatchResponse{Name: name, Match: ok})
}

// HandleDebug reports the running configuration.
func (s *ServerContext) HandleDebug(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, DebugResponse{
		Title:       s.Config.Title,
		StaticDir:   s.Config.StaticDir,
		TemplateDir: s.Config.TemplateDir,
		GeoJSON:     s.Config.GeoJSON,
		Uptime:      time.Since(s.Started).Round(time.Second).String(),
		Names:       len(s.Names),
	})
}

// HandleStatic serves files from the static directory. Directories are not listed.
func (s *ServerContext) HandleStatic(w http.ResponseWriter, r *http.Request) {
	// Path: /static/...
	rel := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/static")
	if rel == "" || rel == "/" {
		http.NotFound(w, r)
		return
	}

	full := filepath.Join(s.Config.StaticDir, filepath.FromSlash(rel))

	contentType := ""
	if strings.HasSuffix(rel, ".geojson") || strings.HasSuffix(rel, ".geo.json") {
		contentType = "application/geo+json"
	}

	if !s.serveFile(w, r, full, contentType) {
		http.NotFound(w, r)
	}
}

// serveFile tries to serve a file from disk with ETag generation.
// It returns true if the file was found and served (or 304).
func (s *ServerContext) serveFile(w http.ResponseWriter, r *http.Request, file string, contentType string) bool {
	info, err := os.Stat(file)
	if err != nil {
		return false
	}
	if info.IsDir() {
		return false
	}

	buf := make([]byte, 0, etagCap)
	buf = append(buf, '"')
	buf = strconv.AppendInt(buf, info.Size(), 16)
	buf = append(buf, '-')
	buf = strconv.AppendInt(buf, info.ModTime().UnixNano(), 16)
	buf = append(buf, '"')
	etag := string(buf)

	// check If-None-Match (client sent ETag)
	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return true
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, no-cache")

	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}

	http.ServeFile(w, r, file)
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(v)
}
