package types

import (
	"errors"

	"github.com/mesh-intelligence/aacboard/pkg/board"
)

// Store persists a board. Load returns a fresh board at home; the cursor is
// never stored.
type Store interface {
	// Load reads the stored board. A store that has never been saved to
	// returns an empty board.
	Load() (*board.Board, error)

	// Save replaces the stored board with b.
	Save(b *board.Board) error

	// Close releases backend resources. Idempotent.
	Close() error
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrCorruptStore    = errors.New("stored board is corrupt")
)
