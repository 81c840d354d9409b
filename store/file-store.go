package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// FileStore persists values of type S as one file per name under a
// directory, serialized as yaml or json.
type FileStore[S any] struct {
	dir    string
	format string
}

// NewFileStore creates the backing directory if needed. format is "yaml"
// or "json".
func NewFileStore[S any](dir, format string) (*FileStore[S], error) {
	if format != "yaml" && format != "json" {
		return nil, errors.Errorf("unsupported store format %q", format)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create store directory %s", dir)
	}
	return &FileStore[S]{dir: dir, format: format}, nil
}

func (fs *FileStore[S]) filePath(name string) string {
	return filepath.Join(fs.dir, name+"."+fs.format)
}

// Marshal serializes data in the store's format.
func (fs *FileStore[S]) Marshal(data S) ([]byte, error) {
	if fs.format == "json" {
		return json.Marshal(data)
	}
	return yaml.Marshal(data)
}

// Unmarshal deserializes data in the store's format.
func (fs *FileStore[S]) Unmarshal(serialized []byte, data *S) error {
	if fs.format == "json" {
		return json.Unmarshal(serialized, data)
	}
	return yaml.Unmarshal(serialized, data)
}

// Save serializes and writes the value under the given name.
func (fs *FileStore[S]) Save(name string, data S) error {
	serialized, err := fs.Marshal(data)
	if err != nil {
		return errors.Wrapf(err, "failed to serialize %s", name)
	}
	if err := os.WriteFile(fs.filePath(name), serialized, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", fs.filePath(name))
	}
	return nil
}

// Load reads and deserializes the value stored under the given name.
// A missing file yields the zero value without an error.
func (fs *FileStore[S]) Load(name string) (S, error) {
	var data S
	filePath := fs.filePath(name)
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return data, nil
	}
	serialized, err := os.ReadFile(filePath)
	if err != nil {
		return data, errors.Wrapf(err, "failed to read %s", filePath)
	}
	if err := fs.Unmarshal(serialized, &data); err != nil {
		return data, errors.Wrapf(err, "failed to parse %s", filePath)
	}
	return data, nil
}
