package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/aacboard/pkg/board"
	"github.com/mesh-intelligence/aacboard/pkg/types"
)

// textStore keeps the board in a single file of the board text format.
type textStore struct {
	path   string
	closed bool
	logger *zap.Logger
}

func newTextStore(cfg types.Config, logger *zap.Logger) (*textStore, error) {
	dir := dataDir(cfg)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &textStore{
		path:   filepath.Join(dir, cfg.BoardFileName()),
		logger: logger,
	}, nil
}

// Load reads the board file. A missing file yields an empty board.
func (s *textStore) Load() (*board.Board, error) {
	if s.closed {
		return nil, types.ErrStoreDetached
	}
	b, err := board.LoadFrom(s.path, board.WithLogger(s.logger))
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("board file missing, starting empty", zap.String("path", s.path))
		return board.New(board.WithLogger(s.logger)), nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *textStore) Save(b *board.Board) error {
	if s.closed {
		return types.ErrStoreDetached
	}
	if err := b.SaveTo(s.path); err != nil {
		return fmt.Errorf("saving %s: %w", s.path, err)
	}
	return nil
}

func (s *textStore) Close() error {
	s.closed = true
	return nil
}
