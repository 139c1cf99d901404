package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/goodtune/cardiotrack/internal/storage"
	"github.com/rs/zerolog"
)

// Run reads a JSON array of sessions from path and replaces the entire
// session collection with its contents. Returns the number of inserted
// records. Not part of the request-serving path.
func Run(ctx context.Context, sessions storage.SessionStore, path string, logger zerolog.Logger) (int, error) {
	log := logger.With().Str("component", "importer").Logger()

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read dataset: %w", err)
	}

	var records []storage.Session
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("parse dataset: %w", err)
	}

	log.Info().Str("path", path).Int("records", len(records)).Msg("Importing dataset")

	inserted, err := sessions.ReplaceAll(ctx, records)
	if err != nil {
		return inserted, fmt.Errorf("replace collection: %w", err)
	}

	log.Info().Int("inserted", inserted).Msg("Import complete")
	return inserted, nil
}
