// Package store opens the board Store selected by a Config.
package store

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/aacboard/internal/sqlite"
	"github.com/mesh-intelligence/aacboard/pkg/types"
)

// Open validates cfg and returns an open Store for its backend. The caller
// must Close the store.
func Open(cfg types.Config, logger *zap.Logger) (types.Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger = logger.With(zap.String("backend", cfg.Backend))
	switch cfg.Backend {
	case types.BackendText:
		return newTextStore(cfg, logger)
	case types.BackendJSONL:
		return newJSONLStore(cfg, logger)
	case types.BackendSQLite:
		b := sqlite.NewBackend(logger)
		if err := b.Attach(cfg); err != nil {
			return nil, fmt.Errorf("attach sqlite: %w", err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, cfg.Backend)
	}
}

// dataDir returns cfg.DataDir, defaulting to the working directory.
func dataDir(cfg types.Config) string {
	if cfg.DataDir == "" {
		return "."
	}
	return cfg.DataDir
}
