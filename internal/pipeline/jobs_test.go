package pipeline

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dgallion1/outliner/internal/outline"
	"github.com/dgallion1/outliner/internal/session"
)

func newJob() *Job {
	now := time.Now()
	return &Job{
		ID:        uuid.NewString(),
		Status:    StatusQueued,
		Phase:     "queued",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestJob_StatusTransitions(t *testing.T) {
	job := newJob()

	job.SetStatus(StatusProcessing, "extracting")
	snap := job.Snapshot()
	if snap.Status != StatusProcessing || snap.Phase != "extracting" {
		t.Errorf("snapshot = %s/%s, want processing/extracting", snap.Status, snap.Phase)
	}

	job.SetStatus(StatusCompleted, "done")
	if job.Snapshot().Status != StatusCompleted {
		t.Errorf("status = %s, want completed", job.Snapshot().Status)
	}
}

func TestJob_ConcurrentResults(t *testing.T) {
	job := newJob()
	job.SetFiles(make([]BatchFile, 50))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res := FileResult{Filename: "f", Headings: 1}
			if i%5 == 0 {
				res.Error = "boom"
			}
			job.AddResult(res)
		}(i)
	}
	wg.Wait()

	snap := job.Snapshot()
	if snap.Progress.FilesProcessed != 50 {
		t.Errorf("FilesProcessed = %d, want 50", snap.Progress.FilesProcessed)
	}
	if snap.Progress.FilesFailed != 10 {
		t.Errorf("FilesFailed = %d, want 10", snap.Progress.FilesFailed)
	}
	if len(snap.Progress.Results) != 50 {
		t.Errorf("Results = %d entries, want 50", len(snap.Progress.Results))
	}
}

func TestJob_SnapshotIsolation(t *testing.T) {
	job := newJob()
	job.AddResult(FileResult{Filename: "a.md"})

	snap := job.Snapshot()
	snap.Progress.Results[0].Filename = "mutated"

	if job.Snapshot().Progress.Results[0].Filename != "a.md" {
		t.Error("mutating a snapshot must not affect the job")
	}
}

func TestJobStore_TTLEviction(t *testing.T) {
	store := NewJobStore(50 * time.Millisecond)

	job := newJob()
	store.Put(job)
	if store.Get(job.ID) == nil {
		t.Fatal("expected job to be retrievable")
	}

	store.Cleanup()
	if store.Get(job.ID) == nil {
		t.Fatal("fresh job must survive cleanup")
	}

	job.mu.Lock()
	job.UpdatedAt = time.Now().Add(-time.Minute)
	job.mu.Unlock()

	store.Cleanup()
	if store.Get(job.ID) != nil {
		t.Error("expired job should be evicted")
	}
}

func TestWorker_ProcessBatch(t *testing.T) {
	sessions := session.NewStore(time.Hour)
	w := NewWorker(sessions, slog.New(slog.NewTextHandler(io.Discard, nil)))

	job := newJob()
	job.Options = outline.Options{MaxDepth: 2}
	job.SetFiles([]BatchFile{
		{Filename: "good.md", Data: []byte("# One\n\n## Two\n\n### Three\n")},
		{Filename: "bad.xyz", Data: []byte("whatever")},
	})

	w.Process(context.Background(), job)

	snap := job.Snapshot()
	if snap.Status != StatusPartial {
		t.Errorf("status = %s, want partial", snap.Status)
	}
	if snap.Progress.FilesProcessed != 2 || snap.Progress.FilesFailed != 1 {
		t.Errorf("progress = %+v", snap.Progress)
	}

	good := snap.Progress.Results[0]
	if good.Error != "" {
		t.Fatalf("good file errored: %s", good.Error)
	}
	// MaxDepth 2 drops the level-3 heading.
	if good.Headings != 2 {
		t.Errorf("good file headings = %d, want 2", good.Headings)
	}
	sess := sessions.Get(good.SessionID)
	if sess == nil {
		t.Fatal("expected a session for the good file")
	}
	if sess.Outline.TotalHeadings != 2 {
		t.Errorf("session outline headings = %d, want 2", sess.Outline.TotalHeadings)
	}
}

func TestWorker_AllFilesFail(t *testing.T) {
	sessions := session.NewStore(time.Hour)
	w := NewWorker(sessions, slog.New(slog.NewTextHandler(io.Discard, nil)))

	job := newJob()
	job.SetFiles([]BatchFile{{Filename: "nope.bin", Data: nil}})

	w.Process(context.Background(), job)

	if got := job.Snapshot().Status; got != StatusFailed {
		t.Errorf("status = %s, want failed", got)
	}
}
