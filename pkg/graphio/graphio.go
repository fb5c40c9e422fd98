package graphio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/edgekit/edgekit/pkg/graph"
)

// Marshal converts a graph to indented JSON bytes.
func Marshal(g graph.Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes a graph as JSON to w.
func Write(g graph.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteFile writes a graph to a JSON file.
// The file is created with 0644 permissions.
func WriteFile(g graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(g, f)
}

// Read decodes a JSON document from r.
func Read(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode: %w", err)
	}
	return doc, nil
}

// ReadFile reads a JSON file and returns the decoded document.
func ReadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Unmarshal deserializes JSON bytes to a Document.
func Unmarshal(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}
