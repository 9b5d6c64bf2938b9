// Package scores persists high-score entries.
package scores

//go:generate go tool mockgen -destination=./mocks/store_mock.go -package=mocks . Store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

var ErrEmptyPlayer = errors.New("scores: empty player name")

// DefaultLimit is how many entries a FileStore keeps.
const DefaultLimit = 5

// Score is one high-score entry.
type Score struct {
	ID         string    `yaml:"id,omitempty"`
	PlayerName string    `yaml:"player_name"`
	Value      int       `yaml:"value"`
	RecordedAt time.Time `yaml:"recorded_at,omitempty"`
}

// Store loads and saves high scores.
type Store interface {
	// Load returns the kept entries, best first.
	Load() ([]Score, error)
	// Save merges one entry into the table and persists it.
	Save(entry Score) error
}

type scoreFile struct {
	Scores []Score `yaml:"scores"`
}

// FileStore keeps the best Limit scores in a yaml file.
type FileStore struct {
	path  string
	limit int
	now   func() time.Time
}

// NewFileStore returns a store backed by path. limit <= 0 uses DefaultLimit.
func NewFileStore(path string, limit int) *FileStore {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &FileStore{path: path, limit: limit, now: time.Now}
}

// Load reads the score file. A missing file is an empty table.
func (s *FileStore) Load() ([]Score, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scores: read %s: %w", s.path, err)
	}

	var f scoreFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("scores: unmarshal %s: %w", s.path, err)
	}
	return s.rank(f.Scores), nil
}

// Save adds entry, keeps the best Limit entries and rewrites the file.
func (s *FileStore) Save(entry Score) error {
	entry.PlayerName = strings.TrimSpace(entry.PlayerName)
	if entry.PlayerName == "" {
		return ErrEmptyPlayer
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = s.now().UTC()
	}

	current, err := s.Load()
	if err != nil {
		return err
	}
	ranked := s.rank(append(current, entry))

	data, err := yaml.Marshal(scoreFile{Scores: ranked})
	if err != nil {
		return fmt.Errorf("scores: marshal: %w", err)
	}
	return writeFileAtomic(s.path, data)
}

func (s *FileStore) rank(entries []Score) []Score {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
	if len(entries) > s.limit {
		entries = entries[:s.limit]
	}
	return entries
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("scores: mkdir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".scores-*.yaml")
	if err != nil {
		return fmt.Errorf("scores: create temp: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("scores: write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("scores: close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("scores: rename %s: %w", path, err)
	}
	return nil
}

// Format renders entries as "name: value" lines.
func Format(entries []Score) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s: %d", e.PlayerName, e.Value))
	}
	return strings.Join(lines, "\n")
}
