package board

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Cursor records which view the board is showing. The zero value is home.
type Cursor struct {
	key    string
	inside bool
}

// Home returns the cursor of a board showing its top-level categories.
func Home() Cursor {
	return Cursor{}
}

// InCategory returns the cursor of a board showing the category keyed key.
func InCategory(key string) Cursor {
	return Cursor{key: key, inside: true}
}

// IsHome reports whether the cursor is at the top level.
func (c Cursor) IsHome() bool {
	return !c.inside
}

// Category returns the active category key and true, or "" and false at home.
func (c Cursor) Category() (string, bool) {
	return c.key, c.inside
}

func (c Cursor) String() string {
	if !c.inside {
		return "home"
	}
	return "category " + c.key
}

// Option configures a Board.
type Option func(*Board)

// WithLogger sets the logger used for diagnostics such as replaced entries.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Board) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// Board is a two-level AAC board. Top-level entries are categories keyed by
// the image location of their cover; each category holds the items shown
// once it is entered. A Board is not safe for concurrent use.
type Board struct {
	categories *orderedMap[*Category]
	cursor     Cursor
	logger     *zap.Logger
}

// New creates an empty board at home.
func New(opts ...Option) *Board {
	b := &Board{
		categories: newOrderedMap[*Category](),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Select acts on the image at imageLoc.
//
// At home, imageLoc must be a category key: the board enters that category
// and returns the empty string. Inside a category, Select returns the text
// to speak for the item and the cursor does not move.
// Returns ErrNotFound if imageLoc is not selectable in the current view.
func (b *Board) Select(imageLoc string) (string, error) {
	if cat, ok := b.active(); ok {
		return cat.Select(imageLoc)
	}
	if !b.categories.has(imageLoc) {
		return "", fmt.Errorf("%w: %q is not a category", ErrNotFound, imageLoc)
	}
	b.cursor = InCategory(imageLoc)
	b.logger.Debug("entered category", zap.String("category", imageLoc))
	return "", nil
}

// Reset returns the board to home.
func (b *Board) Reset() {
	b.cursor = Home()
}

// Cursor returns the current view.
func (b *Board) Cursor() Cursor {
	return b.cursor
}

// CurrentCategory returns the key of the active category, or the empty
// string at home.
func (b *Board) CurrentCategory() string {
	key, _ := b.cursor.Category()
	return key
}

// ImageLocs returns the top-level category keys in insertion order,
// regardless of the cursor.
func (b *Board) ImageLocs() []string {
	return b.categories.keyList()
}

// CategoryImageLocs returns the images of the current view: the items of
// the active category, or the category keys at home.
func (b *Board) CategoryImageLocs() []string {
	if cat, ok := b.active(); ok {
		return cat.ImageLocs()
	}
	return b.ImageLocs()
}

// AddItem adds an entry to the current view.
//
// At home this registers a new empty category keyed imageLoc whose display
// name is text; registering an existing key replaces that category with an
// empty one. Inside a category it adds the item imageLoc speaking text.
func (b *Board) AddItem(imageLoc, text string) {
	if cat, ok := b.active(); ok {
		cat.AddItem(imageLoc, text)
		return
	}
	b.addCategory(imageLoc, text)
}

// CheckAdd reports whether AddItem(imageLoc, text) in the current view
// would produce an entry that can be saved. It returns an *EncodeError
// otherwise and never changes the board.
func (b *Board) CheckAdd(imageLoc, text string) error {
	if _, ok := b.active(); ok {
		if err := CheckItem(imageLoc, text); err != nil {
			var eerr *EncodeError
			if errors.As(err, &eerr) {
				eerr.Category = b.CurrentCategory()
			}
			return err
		}
		return nil
	}
	return CheckCategory(imageLoc, text)
}

// addCategory registers an empty category and returns it.
func (b *Board) addCategory(imageLoc, name string) *Category {
	cat := newCategory(name, b.logger)
	if b.categories.set(imageLoc, cat) {
		b.logger.Debug("category replaced", zap.String("category", imageLoc))
	}
	return cat
}

// HasImage reports whether imageLoc is a top-level category or an item of
// the active category.
func (b *Board) HasImage(imageLoc string) bool {
	if b.categories.has(imageLoc) {
		return true
	}
	cat, ok := b.active()
	return ok && cat.HasImage(imageLoc)
}

// Category returns the category keyed imageLoc without moving the cursor.
// Returns ErrNotFound if there is no such category.
func (b *Board) Category(imageLoc string) (*Category, error) {
	cat, ok := b.categories.get(imageLoc)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a category", ErrNotFound, imageLoc)
	}
	return cat, nil
}

// Len returns the number of top-level categories.
func (b *Board) Len() int {
	return b.categories.len()
}

// Walk calls fn for every category in insertion order and stops at the
// first error, which it returns.
func (b *Board) Walk(fn func(imageLoc string, cat *Category) error) error {
	for _, key := range b.categories.keys {
		cat, _ := b.categories.get(key)
		if err := fn(key, cat); err != nil {
			return err
		}
	}
	return nil
}

// active returns the category the cursor points at.
func (b *Board) active() (*Category, bool) {
	key, inside := b.cursor.Category()
	if !inside {
		return nil, false
	}
	return b.categories.get(key)
}
