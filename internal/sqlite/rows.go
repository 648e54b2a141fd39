package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/aacboard/pkg/board"
	"github.com/mesh-intelligence/aacboard/pkg/types"
)

// newUUID generates a UUID v7 string for row IDs.
func newUUID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Load reads every category and item into a new board at home.
func (b *Backend) Load() (*board.Board, error) {
	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	bd := board.New(board.WithLogger(b.logger))

	rows, err := b.db.Query("SELECT category_id, image_loc, name FROM categories ORDER BY ordinal")
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	keys := make(map[string]string)
	for rows.Next() {
		var id, imageLoc, name string
		if err := rows.Scan(&id, &imageLoc, &name); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		keys[id] = imageLoc
		bd.AddItem(imageLoc, name)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating categories: %w", err)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}

	if err := b.loadItems(bd, keys); err != nil {
		return nil, err
	}
	b.logger.Debug("sqlite board loaded", zap.Int("categories", bd.Len()))
	return bd, nil
}

func (b *Backend) loadItems(bd *board.Board, keys map[string]string) error {
	rows, err := b.db.Query("SELECT category_id, image_loc, text FROM items ORDER BY category_id, ordinal")
	if err != nil {
		return fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var categoryID, imageLoc, text string
		if err := rows.Scan(&categoryID, &imageLoc, &text); err != nil {
			return fmt.Errorf("scanning item: %w", err)
		}
		key, ok := keys[categoryID]
		if !ok {
			return fmt.Errorf("%w: item %q references missing category %s", types.ErrCorruptStore, imageLoc, categoryID)
		}
		cat, err := bd.Category(key)
		if err != nil {
			return err
		}
		cat.AddItem(imageLoc, text)
	}
	return rows.Err()
}

// Save replaces all stored rows with the categories of bd in a single
// transaction. The stored board is unchanged if Save fails.
func (b *Backend) Save(bd *board.Board) error {
	if !b.attached {
		return types.ErrStoreDetached
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning save transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM items"); err != nil {
		return fmt.Errorf("clearing items: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM categories"); err != nil {
		return fmt.Errorf("clearing categories: %w", err)
	}

	catStmt, err := tx.Prepare("INSERT INTO categories (category_id, image_loc, name, ordinal) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing category insert: %w", err)
	}
	defer catStmt.Close()
	itemStmt, err := tx.Prepare("INSERT INTO items (item_id, category_id, image_loc, text, ordinal) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing item insert: %w", err)
	}
	defer itemStmt.Close()

	ordinal := 0
	err = bd.Walk(func(imageLoc string, cat *board.Category) error {
		categoryID := newUUID()
		if _, err := catStmt.Exec(categoryID, imageLoc, cat.Name(), ordinal); err != nil {
			return fmt.Errorf("inserting category %q: %w", imageLoc, err)
		}
		ordinal++
		return insertItems(itemStmt, categoryID, cat)
	})
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save transaction: %w", err)
	}
	b.logger.Debug("sqlite board saved", zap.Int("categories", bd.Len()))
	return nil
}

func insertItems(stmt *sql.Stmt, categoryID string, cat *board.Category) error {
	for i, item := range cat.ImageLocs() {
		text, err := cat.Select(item)
		if err != nil {
			return err
		}
		if _, err := stmt.Exec(newUUID(), categoryID, item, text, i); err != nil {
			return fmt.Errorf("inserting item %q: %w", item, err)
		}
	}
	return nil
}
