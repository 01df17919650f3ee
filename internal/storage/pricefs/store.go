// Package pricefs implements file-based storage for historical price
// series, one JSON file per symbol.
package pricefs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattcarrick/folio/internal/common"
	"github.com/mattcarrick/folio/internal/interfaces"
	"github.com/mattcarrick/folio/internal/models"
)

const fileNamePrefix = "historical-price"

// Store provides file-based JSON storage for price series.
type Store struct {
	basePath string
	logger   *common.Logger
}

// NewStore creates a new price file store rooted at path.
func NewStore(logger *common.Logger, path string) (*Store, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create price store path %s: %w", path, err)
	}

	logger.Info().Str("path", path).Msg("Price store opened")
	return &Store{
		basePath: path,
		logger:   logger,
	}, nil
}

// DataPath returns the base data path.
func (s *Store) DataPath() string {
	return s.basePath
}

// GetSeries returns the cached price series for a symbol. A missing
// cache file is not an error; it yields an empty series.
func (s *Store) GetSeries(_ context.Context, symbol string) ([]models.PricePoint, error) {
	path := s.filePath(symbol)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var series []models.PricePoint
	if err := json.Unmarshal(data, &series); err != nil {
		return nil, fmt.Errorf("failed to parse cached series for '%s': %w", symbol, err)
	}
	return series, nil
}

// SaveSeries replaces the cached series for a symbol in full. The write
// is atomic (temp file + rename) so a crash never corrupts the cache.
func (s *Store) SaveSeries(_ context.Context, symbol string, series []models.PricePoint) error {
	jsonData, err := json.MarshalIndent(series, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal series: %w", err)
	}
	jsonData = append(jsonData, '\n')

	tmpFile, err := os.CreateTemp(s.basePath, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(jsonData); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.filePath(symbol)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	s.logger.Debug().Str("symbol", symbol).Int("points", len(series)).Msg("Price series saved")
	return nil
}

func (s *Store) filePath(symbol string) string {
	name := fmt.Sprintf("%s-%s.json", fileNamePrefix, sanitizeKey(models.NormalizeSymbol(symbol)))
	return filepath.Join(s.basePath, name)
}

func sanitizeKey(key string) string {
	r := strings.NewReplacer("/", "_", "\\", "_", ":", "_", "..", "_")
	return r.Replace(key)
}

// Ensure Store implements PriceStore
var _ interfaces.PriceStore = (*Store)(nil)
