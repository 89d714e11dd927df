package repository

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"FindThemAPI/internal/helper"
)

// Collection is one named JSON-array file under the data directory. Load and
// Save move the whole sequence at once; there is no indexing, callers scan.
// Update serializes the load-mutate-save cycle behind the collection mutex so
// two concurrent moderation actions cannot silently drop each other's write.
type Collection[T any] struct {
	path string
	mu   sync.Mutex
}

func NewCollection[T any](dataDir, name string) *Collection[T] {
	return &Collection[T]{
		path: filepath.Join(dataDir, name+".json"),
	}
}

// Load returns the collection contents. A missing file is simply "no data
// yet"; an unparseable file is treated the same way but logged, so real
// corruption is at least visible.
func (c *Collection[T]) Load() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

func (c *Collection[T]) load() []T {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("Failed to read collection file, treating as empty", "path", c.path, "error", err)
		}
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		slog.Warn("Collection file is not a valid JSON array, treating as empty", "path", c.path, "error", err)
		return []T{}
	}
	if records == nil {
		records = []T{}
	}
	return records
}

// Save overwrites the collection with the given records. The write goes to a
// temp file in the same directory and is renamed over the target, so a crash
// mid-write never leaves a truncated collection behind.
func (c *Collection[T]) Save(records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(records)
}

func (c *Collection[T]) save(records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return helper.NewInternalServerError(fmt.Sprintf("failed to encode collection: %v", err))
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return helper.NewInternalServerError(fmt.Sprintf("failed to create data directory: %v", err))
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return helper.NewInternalServerError(fmt.Sprintf("failed to create temp file: %v", err))
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return helper.NewInternalServerError(fmt.Sprintf("failed to write collection: %v", err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return helper.NewInternalServerError(fmt.Sprintf("failed to write collection: %v", err))
	}

	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return helper.NewInternalServerError(fmt.Sprintf("failed to replace collection: %v", err))
	}

	return nil
}

// Update runs one locked read-modify-write cycle. The mutator returns the new
// contents, or an error to abort without writing.
func (c *Collection[T]) Update(fn func([]T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := fn(c.load())
	if err != nil {
		return err
	}
	return c.save(records)
}
