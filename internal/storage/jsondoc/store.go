package jsondoc

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"hotel_desk/internal/adapters/observability"
	"hotel_desk/internal/domain"
)

const docExt = ".json"

// Store keeps one JSON document per record under a single directory.
// Writes overwrite the document in place with no atomic rename and no lock;
// the contract is exclusive single-process access, so a crash mid-write can
// leave a truncated document that fails as malformed on the next load.
type Store struct {
	dir string
	log zerolog.Logger
}

func New(dir string, log zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create document directory %s: %w", dir, err)
	}
	return &Store{dir: dir, log: log.With().Str("component", "jsondoc").Logger()}, nil
}

func (s *Store) path(key domain.ID) string {
	return filepath.Join(s.dir, string(key)+docExt)
}

func (s *Store) Save(key domain.ID, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := os.WriteFile(s.path(key), b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	observability.ObserveDocument("save")
	s.log.Debug().Str("key", string(key)).Int("bytes", len(b)).Msg("document saved")
	return nil
}

func (s *Store) Load(key domain.ID, dst any) error {
	b, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("load %s: %w: %v", key, domain.ErrMalformed, err)
	}
	observability.ObserveDocument("load")
	return nil
}

func (s *Store) Delete(key domain.ID) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	observability.ObserveDocument("delete")
	s.log.Debug().Str("key", string(key)).Msg("document deleted")
	return nil
}

// List returns the keys of every document starting with prefix, sorted.
// Discovery is purely by file name; the store holds no index.
func (s *Store) List(prefix string) ([]domain.ID, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read document directory: %w", err)
	}
	var keys []domain.ID
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, docExt) {
			continue
		}
		key := strings.TrimSuffix(name, docExt)
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, domain.ID(key))
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys, nil
}
