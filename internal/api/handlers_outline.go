package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dgallion1/outliner/internal/outline"
	"github.com/dgallion1/outliner/internal/parser"
	"github.com/dgallion1/outliner/internal/session"
)

// handleCreateOutline extracts the heading outline of one uploaded
// document synchronously and registers a navigable session for it.
func (s *Server) handleCreateOutline(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	opts := s.outlineOptions(r)
	flat := r.FormValue("flat") == "true"

	extractor, err := parser.ForFile(filename)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := extractor.Extract(bytes.NewReader(data), filename)
	if err != nil {
		jsonError(w, "extract failed: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	o := outline.Build(res.Records, opts)
	sess := session.New(filename, res, o)
	s.sessions.Put(sess)

	resp := map[string]any{
		"session_id":     sess.ID,
		"title":          res.Title,
		"filename":       filename,
		"total_headings": o.TotalHeadings,
	}
	if flat {
		resp["headings"] = outline.BuildFlat(res.Records, opts)
	} else {
		resp["outline"] = o
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

// handleGetOutline re-serves the stored outline for a session.
func (s *Server) handleGetOutline(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(chi.URLParam(r, "sessionID"))
	if sess == nil {
		jsonError(w, "session not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"session_id": sess.ID,
		"title":      sess.Title,
		"filename":   sess.Filename,
		"outline":    sess.Outline,
	})
}

// handleMarkdown exports a session's outline as Markdown.
func (s *Server) handleMarkdown(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(chi.URLParam(r, "sessionID"))
	if sess == nil {
		jsonError(w, "session not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	io.WriteString(w, outline.Markdown(sess.Outline))
}

// outlineOptions reads filter options from query or form values.
func (s *Server) outlineOptions(r *http.Request) outline.Options {
	opts := outline.Options{
		MaxDepth:      s.cfg.DefaultMaxDepth,
		IncludeFormat: r.FormValue("include_format") == "true",
	}
	if v := r.FormValue("max_depth"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			opts.MaxDepth = n
		}
	}
	if v := r.FormValue("levels"); v != "" {
		for _, part := range strings.Split(v, ",") {
			if n, err := strconv.Atoi(strings.TrimSpace(part)); err == nil && n >= 1 && n <= 9 {
				opts.SpecificLevels = append(opts.SpecificLevels, n)
			}
		}
	}
	return opts
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
