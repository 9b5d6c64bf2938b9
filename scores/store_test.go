package scores

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileStoreLoadMissing(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nope.yaml"), 3)
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty table, got %v", got)
	}
}

func TestFileStoreSaveRanksAndLimits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.yaml")
	s := NewFileStore(path, 3)
	s.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	for _, e := range []Score{
		{PlayerName: "a", Value: 10},
		{PlayerName: "b", Value: 40},
		{PlayerName: "c", Value: 20},
		{PlayerName: "d", Value: 30},
	} {
		if err := s.Save(e); err != nil {
			t.Fatalf("Save(%+v): %v", e, err)
		}
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"b", "d", "c"}
	if len(got) != len(want) {
		t.Fatalf("kept %d entries, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].PlayerName != name {
			t.Fatalf("entry %d = %s, want %s", i, got[i].PlayerName, name)
		}
		if got[i].ID == "" {
			t.Fatalf("entry %d missing id", i)
		}
		if !got[i].RecordedAt.Equal(s.now()) {
			t.Fatalf("entry %d recorded at %v", i, got[i].RecordedAt)
		}
	}
	if got[0].ID == got[1].ID {
		t.Fatalf("ids should be unique")
	}
	if Format(got) != "b: 40\nd: 30\nc: 20" {
		t.Fatalf("Format = %q", Format(got))
	}
}

func TestFileStoreRejectsEmptyPlayer(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "scores.yaml"), 0)
	if err := s.Save(Score{PlayerName: "  ", Value: 1}); !errors.Is(err, ErrEmptyPlayer) {
		t.Fatalf("Save = %v, want ErrEmptyPlayer", err)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.yaml")
	if err := os.WriteFile(path, []byte("scores: [\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s := NewFileStore(path, 5)
	if _, err := s.Load(); err == nil {
		t.Fatalf("expected an error for corrupt file")
	}
	if err := s.Save(Score{PlayerName: "x", Value: 1}); err == nil {
		t.Fatalf("Save should surface the load error")
	}
}
