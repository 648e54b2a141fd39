package store

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/aacboard/pkg/board"
	"github.com/mesh-intelligence/aacboard/pkg/types"
)

// JSONLFileName is the file the jsonl backend writes inside the data directory.
const JSONLFileName = "categories.jsonl"

// categoryRecord is one line of categories.jsonl.
type categoryRecord struct {
	ImageLoc string       `json:"image_loc"`
	Name     string       `json:"name"`
	Items    []itemRecord `json:"items"`
}

type itemRecord struct {
	ImageLoc string `json:"image_loc"`
	Text     string `json:"text"`
}

// jsonlStore keeps one JSON object per category, in board order.
type jsonlStore struct {
	path   string
	closed bool
	logger *zap.Logger
}

func newJSONLStore(cfg types.Config, logger *zap.Logger) (*jsonlStore, error) {
	dir := dataDir(cfg)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &jsonlStore{
		path:   filepath.Join(dir, JSONLFileName),
		logger: logger,
	}, nil
}

// Load reads categories.jsonl. A missing file yields an empty board; a
// malformed line is an ErrCorruptStore error.
func (s *jsonlStore) Load() (*board.Board, error) {
	if s.closed {
		return nil, types.ErrStoreDetached
	}
	b := board.New(board.WithLogger(s.logger))

	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return b, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", s.path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec categoryRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %v", types.ErrCorruptStore, s.path, lineNo, err)
		}
		if rec.ImageLoc == "" {
			return nil, fmt.Errorf("%w: %s line %d: empty image_loc", types.ErrCorruptStore, s.path, lineNo)
		}
		b.AddItem(rec.ImageLoc, rec.Name)
		cat, err := b.Category(rec.ImageLoc)
		if err != nil {
			return nil, err
		}
		for _, item := range rec.Items {
			if item.ImageLoc == "" {
				return nil, fmt.Errorf("%w: %s line %d: empty item image_loc", types.ErrCorruptStore, s.path, lineNo)
			}
			cat.AddItem(item.ImageLoc, item.Text)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", s.path, err)
	}
	return b, nil
}

// Save atomically rewrites categories.jsonl. A board with an empty image
// location is refused before the file is touched, since Load rejects it.
func (s *jsonlStore) Save(b *board.Board) error {
	if s.closed {
		return types.ErrStoreDetached
	}
	if err := checkJSONLKeys(b); err != nil {
		return err
	}
	return board.WriteFileAtomic(s.path, func(f *os.File) error {
		w := bufio.NewWriter(f)
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		err := b.Walk(func(imageLoc string, cat *board.Category) error {
			rec := categoryRecord{
				ImageLoc: imageLoc,
				Name:     cat.Name(),
				Items:    make([]itemRecord, 0, cat.Len()),
			}
			for _, item := range cat.ImageLocs() {
				text, err := cat.Select(item)
				if err != nil {
					return err
				}
				rec.Items = append(rec.Items, itemRecord{ImageLoc: item, Text: text})
			}
			if err := enc.Encode(rec); err != nil {
				return fmt.Errorf("writing record: %w", err)
			}
			return nil
		})
		if err != nil {
			return err
		}
		if err := w.Flush(); err != nil {
			return fmt.Errorf("flushing buffer: %w", err)
		}
		return nil
	})
}

func (s *jsonlStore) Close() error {
	s.closed = true
	return nil
}

func checkJSONLKeys(b *board.Board) error {
	return b.Walk(func(imageLoc string, cat *board.Category) error {
		if imageLoc == "" {
			return &board.EncodeError{Category: imageLoc, Reason: "empty image location"}
		}
		if cat.HasImage("") {
			return &board.EncodeError{Category: imageLoc, IsItem: true, Reason: "empty image location"}
		}
		return nil
	})
}
