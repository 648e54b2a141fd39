package board

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeExample(t *testing.T) {
	b := newExampleBoard(t)

	food, err := b.Category("img/food/plate.png")
	require.NoError(t, err)
	assert.Equal(t, "food", food.Name())
	assert.Equal(t, []string{"img/food/fries.png", "img/food/watermelon.png"}, food.ImageLocs())

	clothing, err := b.Category("img/clothing/hanger.png")
	require.NoError(t, err)
	assert.Equal(t, "clothing", clothing.Name())
	text, err := clothing.Select("img/clothing/shirt.png")
	require.NoError(t, err)
	assert.Equal(t, "collared shirt", text)
}

func TestDecodeTolerance(t *testing.T) {
	tests := []struct {
		name  string
		input string
		keys  []string
	}{
		{name: "empty input", input: "", keys: []string{}},
		{name: "no trailing newline", input: "a.png A\n>b.png B", keys: []string{"a.png"}},
		{name: "blank lines skipped", input: "\na.png A\n\n>b.png B\n\n", keys: []string{"a.png"}},
		{name: "crlf line endings", input: "a.png A\r\n>b.png B\r\n", keys: []string{"a.png"}},
		{name: "category without items", input: "a.png A\nc.png C\n", keys: []string{"a.png", "c.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Decode(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.keys, b.ImageLocs())
			assert.True(t, b.Cursor().IsHome())
		})
	}
}

func TestDecodeSplitsOnFirstSpace(t *testing.T) {
	b, err := Decode(strings.NewReader("img/a.png my big category\n>img/b.png say this please\n"))
	require.NoError(t, err)

	cat, err := b.Category("img/a.png")
	require.NoError(t, err)
	assert.Equal(t, "my big category", cat.Name())
	text, err := cat.Select("img/b.png")
	require.NoError(t, err)
	assert.Equal(t, "say this please", text)
}

func TestDecodeCRLFKeepsText(t *testing.T) {
	b, err := Decode(strings.NewReader("a.png A\r\n>b.png B\r\n"))
	require.NoError(t, err)
	_, err = b.Select("a.png")
	require.NoError(t, err)
	text, err := b.Select("b.png")
	require.NoError(t, err)
	assert.Equal(t, "B", text)
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
	}{
		{name: "header without separator", input: "a.png\n", wantLine: 1},
		{name: "item without separator", input: "a.png A\n>b.png\n", wantLine: 2},
		{name: "item before category", input: ">b.png B\n", wantLine: 1},
		{name: "empty category key", input: " A\n", wantLine: 1},
		{name: "empty item key", input: "a.png A\n\n> B\n", wantLine: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Decode(strings.NewReader(tt.input))
			assert.Nil(t, b)
			require.ErrorIs(t, err, ErrParse)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.wantLine, perr.Line)
		})
	}
}

func TestDecodeDuplicateHeaderStartsFresh(t *testing.T) {
	b, err := Decode(strings.NewReader("a.png A\n>x.png x\nb.png B\na.png again\n>y.png y\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"a.png", "b.png"}, b.ImageLocs())
	cat, err := b.Category("a.png")
	require.NoError(t, err)
	assert.Equal(t, "again", cat.Name())
	assert.Equal(t, []string{"y.png"}, cat.ImageLocs())
}

func TestEncodeExample(t *testing.T) {
	b := newExampleBoard(t)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, b))
	assert.Equal(t, exampleBoard, buf.String())
}

func TestEncodeIgnoresCursor(t *testing.T) {
	b := newExampleBoard(t)
	_, err := b.Select("img/clothing/hanger.png")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, b))
	assert.Equal(t, exampleBoard, buf.String())
}

func TestEncodeEmptyBoard(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, New()))
	assert.Empty(t, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, assert.AnError
}

func TestEncodeWriteError(t *testing.T) {
	err := Encode(failingWriter{}, newExampleBoard(t))
	assert.ErrorIs(t, err, assert.AnError)
}

func TestEncodeRejectsBeforeWriting(t *testing.T) {
	b := newExampleBoard(t)
	_, err := b.Select("img/clothing/hanger.png")
	require.NoError(t, err)
	b.AddItem("bad.png", "one\ntwo")

	var buf bytes.Buffer
	err = Encode(&buf, b)
	assert.ErrorIs(t, err, ErrUnencodable)
	assert.Empty(t, buf.String())

	var eerr *EncodeError
	require.ErrorAs(t, err, &eerr)
	assert.Equal(t, "img/clothing/hanger.png", eerr.Category)
	assert.Equal(t, "bad.png", eerr.Item)
	assert.True(t, eerr.IsItem)
	assert.Contains(t, err.Error(), "line break")
}

func TestEncodeRejectsOverlongLine(t *testing.T) {
	b := New()
	b.AddItem("a.png", strings.Repeat("x", maxLineSize))

	err := Encode(io.Discard, b)
	assert.ErrorIs(t, err, ErrUnencodable)
}

func TestCheckAddFollowsCursor(t *testing.T) {
	b := newExampleBoard(t)

	// Category keys may not start with the item marker; item keys may.
	assert.ErrorIs(t, b.CheckAdd(">x.png", "x"), ErrUnencodable)
	_, err := b.Select("img/food/plate.png")
	require.NoError(t, err)
	assert.NoError(t, b.CheckAdd(">x.png", "x"))

	err = b.CheckAdd("", "x")
	var eerr *EncodeError
	require.ErrorAs(t, err, &eerr)
	assert.Equal(t, "img/food/plate.png", eerr.Category)
	assert.Contains(t, err.Error(), "empty image location")

	assert.Equal(t, []string{"img/food/fries.png", "img/food/watermelon.png"}, b.CategoryImageLocs(),
		"CheckAdd must not change the board")
}
