package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"dealscope/internal/domain"

	"go.uber.org/zap"
)

type recordingEvaluator struct {
	snapshots chan domain.Snapshot
}

func newRecordingEvaluator() *recordingEvaluator {
	return &recordingEvaluator{snapshots: make(chan domain.Snapshot, 8)}
}

func (r *recordingEvaluator) Evaluate(_ context.Context, snap domain.Snapshot) (domain.Report, error) {
	r.snapshots <- snap
	return domain.Report{ID: "run-1"}, nil
}

func TestIngestJSONFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dossier.json")
	payload := `{"places": {"found": true, "rating": 4.2}}`
	if err := os.WriteFile(path, []byte(payload), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	eval := newRecordingEvaluator()
	w := New(dir, eval, zap.NewNop())
	w.ingest(context.Background(), path)

	select {
	case snap := <-eval.snapshots:
		if snap.Places == nil || snap.Places.Rating != 4.2 {
			t.Errorf("snapshot not decoded: %+v", snap.Places)
		}
	default:
		t.Fatal("expected an evaluation")
	}
}

func TestIngestSkipsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	eval := newRecordingEvaluator()
	w := New(dir, eval, zap.NewNop())
	w.ingest(context.Background(), path)

	select {
	case <-eval.snapshots:
		t.Fatal("a malformed file must not be evaluated")
	default:
	}
}

func TestImporterSelection(t *testing.T) {
	if importerFor("snap.json") == nil {
		t.Error("expected a JSON importer")
	}
	if importerFor("snap.yaml") == nil || importerFor("snap.yml") == nil {
		t.Error("expected a YAML importer")
	}
	if importerFor("snap.txt") != nil {
		t.Error("unrelated files should be ignored")
	}
	if importerFor("snap.json.swp") != nil {
		t.Error("editor droppings should be ignored")
	}
}

func TestWatchPicksUpNewFile(t *testing.T) {
	dir := t.TempDir()
	eval := newRecordingEvaluator()
	w := New(dir, eval, zap.NewNop()).WithDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx) }()

	// Give the watcher a moment to register before writing.
	time.Sleep(100 * time.Millisecond)

	payload := "places:\n  found: true\n  rating: 3.8\n"
	if err := os.WriteFile(filepath.Join(dir, "dossier.yaml"), []byte(payload), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	select {
	case snap := <-eval.snapshots:
		if snap.Places == nil || snap.Places.Rating != 3.8 {
			t.Errorf("snapshot not decoded: %+v", snap.Places)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watcher never ingested the file")
	}

	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop on cancel")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	w := New("/nonexistent/intake", newRecordingEvaluator(), zap.NewNop())
	if err := w.Watch(context.Background()); err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}
