// Package storage provides the file-backed task database.
package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jacksmith/taskd/internal/model"
)

// DefaultPath is the database file used when no path is configured.
const DefaultPath = "tasks.json"

// FileStore persists the task collection as a single JSON array in one
// file. Every load reads the whole array and every save replaces it.
// There is no locking: concurrent writers race, and the last save wins.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the file at path.
// The file is not touched until the first load or save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the database file path.
func (s *FileStore) Path() string {
	return s.path
}

// Init creates an empty task database at path.
// Returns an error if the file already exists.
func Init(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("task database already exists at %s", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check for task database: %w", err)
	}
	if err := os.WriteFile(path, []byte("[]\n"), 0644); err != nil {
		return &Error{Kind: classifyWrite(err), Path: path, Err: err}
	}
	return nil
}

// LoadAll reads and decodes the whole task collection.
// Failures are classified: missing file, permission, other read errors,
// undecodable content, and content that is not a JSON array each get a
// distinct kind.
func (s *FileStore) LoadAll() ([]model.Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &Error{Kind: classifyRead(err), Path: s.path, Err: err}
	}
	return decodeTasks(data, s.path)
}

// SaveAll replaces the whole task collection. A nil slice is persisted
// as an empty array, never as JSON null.
func (s *FileStore) SaveAll(tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return &Error{Kind: KindWriteFailed, Path: s.path, Err: err}
	}
	data = append(data, '\n')
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return &Error{Kind: classifyWrite(err), Path: s.path, Err: err}
	}
	return nil
}

// decodeTasks decodes a task array, distinguishing undecodable JSON from
// a decodable value of the wrong top-level shape. Pretty and compact
// formatting are both accepted.
func decodeTasks(data []byte, path string) ([]model.Task, error) {
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, &Error{Kind: KindBadJSON, Path: path, Err: err}
	}
	if _, ok := probe.([]any); !ok {
		return nil, &Error{Kind: KindNotArray, Path: path}
	}
	var tasks []model.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, &Error{Kind: KindBadJSON, Path: path, Err: err}
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}
