package cli

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/aacboard/pkg/board"
	"github.com/mesh-intelligence/aacboard/pkg/types"
)

// withBoard opens the store, loads the board, and calls fn. The store is
// closed when fn returns.
func (a *app) withBoard(fn func(s types.Store, b *board.Board) error) (err error) {
	s, err := a.openStore()
	if err != nil {
		return err
	}
	defer closeStore(s, &err)

	b, err := s.Load()
	if err != nil {
		return storageError("load board", err)
	}
	return fn(s, b)
}

// closeStore closes s and reports a close failure through *err as a system
// error unless an earlier error is already set.
func closeStore(s types.Store, err *error) {
	if cerr := s.Close(); cerr != nil && *err == nil {
		*err = systemError(fmt.Errorf("close store: %w", cerr))
	}
}

// storageError wraps err with action. Malformed stored data and entries the
// store cannot represent are user errors; anything else is a system error.
func storageError(action string, err error) error {
	err = fmt.Errorf("%s: %w", action, err)
	if errors.Is(err, board.ErrParse) || errors.Is(err, types.ErrCorruptStore) || errors.Is(err, board.ErrUnencodable) {
		return err
	}
	return systemError(err)
}
