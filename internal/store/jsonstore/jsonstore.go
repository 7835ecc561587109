package jsonstore

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/idilsaglam/todos/internal/model"
	"github.com/idilsaglam/todos/internal/store"
)

// JSON export of a list snapshot. Single file, human-readable, portable.
// Write-only: nothing is ever loaded back, so a new session starts empty.

const DefaultFileName = "todos.json"

// Document is the exported shape.
type Document struct {
	ExportedAt  time.Time    `json:"exportedAt"`
	Filter      string       `json:"filter"`
	AllSelected bool         `json:"allSelected"`
	Remaining   int          `json:"remaining"`
	Items       []model.Item `json:"items"`
}

// NewDocument builds a Document from snap, stamped with now.
func NewDocument(snap store.Snapshot, now time.Time) Document {
	items := snap.Items
	if items == nil {
		items = []model.Item{}
	}
	return Document{
		ExportedAt:  now.UTC(),
		Filter:      snap.Filter.String(),
		AllSelected: snap.AllSelected,
		Remaining:   snap.Remaining(),
		Items:       items,
	}
}

// Encode writes doc as indented JSON.
func Encode(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// Path resolves p against the working directory; empty means DefaultFileName.
func Path(p string) (string, error) {
	if p == "" {
		p = DefaultFileName
	}
	if filepath.IsAbs(p) {
		return p, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, p), nil
}

// Export writes snap to the file at p and returns the resolved path.
func Export(p string, snap store.Snapshot) (string, error) {
	path, err := Path(p)
	if err != nil {
		return "", err
	}
	b, err := json.MarshalIndent(NewDocument(snap, time.Now()), "", "  ")
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return path, nil
}
