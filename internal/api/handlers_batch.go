package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dgallion1/outliner/internal/parser"
	"github.com/dgallion1/outliner/internal/pipeline"
)

// handleBatchOutline enqueues a job that outlines several documents on the
// worker pool. Unsupported or oversized files are rejected up front so the
// job only carries work the pipeline can do.
func (s *Server) handleBatchOutline(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes*10+10*1024*1024)

	if err := r.ParseMultipartForm(64 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		jsonError(w, "at least one file is required", http.StatusBadRequest)
		return
	}

	var files []pipeline.BatchFile
	var rejected []map[string]string
	for _, fh := range headers {
		filename := sanitizeFilename(fh.Filename)
		if !parser.IsSupportedExtension(filename) {
			rejected = append(rejected, map[string]string{
				"filename": filename,
				"error":    "unsupported file type",
			})
			continue
		}

		f, err := fh.Open()
		if err != nil {
			rejected = append(rejected, map[string]string{
				"filename": filename,
				"error":    "failed to open file",
			})
			continue
		}
		data, err := io.ReadAll(io.LimitReader(f, s.cfg.MaxUploadBytes+1))
		f.Close()
		if err != nil || int64(len(data)) > s.cfg.MaxUploadBytes {
			rejected = append(rejected, map[string]string{
				"filename": filename,
				"error":    "file too large or read error",
			})
			continue
		}

		files = append(files, pipeline.BatchFile{Filename: filename, Data: data})
	}

	if len(files) == 0 {
		jsonError(w, "no processable files in batch", http.StatusBadRequest)
		return
	}

	now := time.Now()
	job := &pipeline.Job{
		ID:        uuid.NewString(),
		Status:    pipeline.StatusQueued,
		Phase:     "queued",
		Options:   s.outlineOptions(r),
		CreatedAt: now,
		UpdatedAt: now,
	}
	job.SetFiles(files)

	if err := s.orchestrator.Submit(job); err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{
		"job_id":   job.ID,
		"status":   job.Status,
		"accepted": len(files),
		"rejected": rejected,
		"poll_url": fmt.Sprintf("/api/outline/batch/%s/status", job.ID),
	})
}

func (s *Server) handleBatchStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	snap := job.Snapshot()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"job_id":   snap.ID,
		"status":   snap.Status,
		"phase":    snap.Phase,
		"progress": snap.Progress,
	})
}
