package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// fileStore implements Store over a directory of JSON files, one file per
// key. This is the default backend: single writer, last write wins.
type fileStore struct {
	dir    string
	logger zerolog.Logger
}

// NewFileStore creates a file-backed store rooted at dir, creating the
// directory if needed.
func NewFileStore(dir string, logger zerolog.Logger) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory %s: %w", dir, err)
	}

	return &fileStore{
		dir:    dir,
		logger: logger.With().Str("store", "file").Logger(),
	}, nil
}

// Load reads and decodes the JSON file for key into dest. A missing file
// leaves dest untouched. A file that no longer parses is treated the same
// way, but logged so the corruption is diagnosable.
func (s *fileStore) Load(ctx context.Context, key string, dest any) error {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		s.logger.Error().Err(err).Str("key", key).Msg("failed to read state file")
		return fmt.Errorf("failed to read state for %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("malformed state file, treating as empty")
		return nil
	}

	return nil
}

// Save writes the JSON encoding of value to the file for key.
func (s *fileStore) Save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to encode state")
		return fmt.Errorf("failed to encode state for %s: %w", key, err)
	}

	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to write state file")
		return fmt.Errorf("failed to write state for %s: %w", key, err)
	}

	s.logger.Debug().Str("key", key).Int("bytes", len(data)).Msg("state saved")
	return nil
}

func (s *fileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
