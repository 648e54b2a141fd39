package board

import (
	"fmt"

	"go.uber.org/zap"
)

// Category holds the items shown after entering a category: each item maps
// an image location to the text spoken when it is selected.
type Category struct {
	name   string
	items  *orderedMap[string]
	logger *zap.Logger
}

// NewCategory creates an empty category with the given display name.
func NewCategory(name string) *Category {
	return newCategory(name, zap.NewNop())
}

func newCategory(name string, logger *zap.Logger) *Category {
	return &Category{
		name:   name,
		items:  newOrderedMap[string](),
		logger: logger,
	}
}

// AddItem maps imageLoc to text. Adding an image that is already present
// replaces its text and keeps its position.
func (c *Category) AddItem(imageLoc, text string) {
	if c.items.set(imageLoc, text) {
		c.logger.Debug("item text replaced",
			zap.String("category", c.name),
			zap.String("image", imageLoc))
	}
}

// ImageLocs returns the item image locations in insertion order. The result
// is empty, not nil, when the category has no items.
func (c *Category) ImageLocs() []string {
	return c.items.keyList()
}

// Name returns the display name given at construction.
func (c *Category) Name() string {
	return c.name
}

// Select returns the text associated with imageLoc.
// Returns ErrNotFound if the image is not in this category.
func (c *Category) Select(imageLoc string) (string, error) {
	text, ok := c.items.get(imageLoc)
	if !ok {
		return "", fmt.Errorf("%w: %q in category %q", ErrNotFound, imageLoc, c.name)
	}
	return text, nil
}

// HasImage reports whether imageLoc is an item of this category.
func (c *Category) HasImage(imageLoc string) bool {
	return c.items.has(imageLoc)
}

// Len returns the number of items.
func (c *Category) Len() int {
	return c.items.len()
}
