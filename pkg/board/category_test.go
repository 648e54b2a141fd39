package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryAddAndSelect(t *testing.T) {
	c := NewCategory("food")
	c.AddItem("img/food/fries.png", "french fries")
	c.AddItem("img/food/watermelon.png", "watermelon")

	text, err := c.Select("img/food/fries.png")
	require.NoError(t, err)
	assert.Equal(t, "french fries", text)

	text, err = c.Select("img/food/watermelon.png")
	require.NoError(t, err)
	assert.Equal(t, "watermelon", text)
	assert.Equal(t, "food", c.Name())
	assert.Equal(t, 2, c.Len())
}

func TestCategorySelectMissing(t *testing.T) {
	c := NewCategory("food")
	c.AddItem("img/food/fries.png", "french fries")

	text, err := c.Select("img/clothing/shirt.png")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, text)
}

func TestCategoryOverwriteKeepsPosition(t *testing.T) {
	c := NewCategory("food")
	c.AddItem("a.png", "apple")
	c.AddItem("b.png", "banana")
	c.AddItem("a.png", "green apple")

	assert.Equal(t, []string{"a.png", "b.png"}, c.ImageLocs())
	text, err := c.Select("a.png")
	require.NoError(t, err)
	assert.Equal(t, "green apple", text)
}

func TestCategoryImageLocs(t *testing.T) {
	tests := []struct {
		name  string
		items [][2]string
		want  []string
	}{
		{
			name: "empty category returns empty slice",
			want: []string{},
		},
		{
			name:  "single item",
			items: [][2]string{{"x.png", "x"}},
			want:  []string{"x.png"},
		},
		{
			name:  "insertion order preserved",
			items: [][2]string{{"z.png", "z"}, {"a.png", "a"}, {"m.png", "m"}},
			want:  []string{"z.png", "a.png", "m.png"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCategory("test")
			for _, it := range tt.items {
				c.AddItem(it[0], it[1])
			}
			got := c.ImageLocs()
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategoryImageLocsIsCopy(t *testing.T) {
	c := NewCategory("test")
	c.AddItem("a.png", "a")

	locs := c.ImageLocs()
	locs[0] = "changed.png"

	assert.Equal(t, []string{"a.png"}, c.ImageLocs())
}

func TestCategoryHasImage(t *testing.T) {
	c := NewCategory("test")
	assert.False(t, c.HasImage("a.png"))

	c.AddItem("a.png", "a")
	assert.True(t, c.HasImage("a.png"))
	assert.False(t, c.HasImage("b.png"))
	assert.False(t, c.HasImage(""))
}
