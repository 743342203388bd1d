package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/dgallion1/outliner/internal/outline"
	"github.com/dgallion1/outliner/internal/parser"
	"github.com/dgallion1/outliner/internal/session"
)

// Worker processes batch outline jobs: each file is parsed, its outline
// built, and a session registered so the results stay navigable.
type Worker struct {
	sessions *session.Store
	log      *slog.Logger
}

func NewWorker(sessions *session.Store, log *slog.Logger) *Worker {
	return &Worker{sessions: sessions, log: log}
}

// Process runs every file of a job through extraction and outline
// construction. A single bad file fails only its own entry.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID)

	job.SetStatus(StatusProcessing, "extracting")

	files := job.Files()
	for _, file := range files {
		if ctx.Err() != nil {
			log.Warn("job interrupted by shutdown")
			job.SetStatus(StatusPartial, "interrupted")
			return
		}
		result := w.processFile(file, job.Options)
		job.AddResult(result)
		if result.Error != "" {
			log.Warn("file failed", "filename", file.Filename, "error", result.Error)
		}
	}

	snap := job.Snapshot()
	switch {
	case snap.Progress.FilesFailed == 0:
		job.SetStatus(StatusCompleted, "done")
	case snap.Progress.FilesFailed == snap.Progress.TotalFiles:
		job.SetStatus(StatusFailed, "done")
	default:
		job.SetStatus(StatusPartial, "done")
	}
	log.Info("batch finished",
		"total", snap.Progress.TotalFiles,
		"failed", snap.Progress.FilesFailed,
	)
}

func (w *Worker) processFile(file BatchFile, opts outline.Options) FileResult {
	extractor, err := parser.ForFile(file.Filename)
	if err != nil {
		return FileResult{Filename: file.Filename, Error: err.Error()}
	}

	res, err := extractor.Extract(bytes.NewReader(file.Data), file.Filename)
	if err != nil {
		return FileResult{Filename: file.Filename, Error: fmt.Sprintf("extract: %s", err)}
	}

	o := outline.Build(res.Records, opts)
	sess := session.New(file.Filename, res, o)
	w.sessions.Put(sess)

	return FileResult{
		Filename:  file.Filename,
		SessionID: sess.ID,
		Headings:  o.TotalHeadings,
	}
}
