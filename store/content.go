package store

import (
	"encoding/json"
	"os"
	"sync"
)

// ContentStore is the editable site-content mapping: section name to an
// arbitrary JSON value.
type ContentStore interface {
	All() (map[string]json.RawMessage, error)
	Section(name string) (json.RawMessage, error)
	PutSection(name string, value json.RawMessage) error
	ReplaceAll(doc map[string]json.RawMessage) error
}

type fileContentStore struct {
	mu   sync.Mutex
	path string
}

// NewContentStore opens the content document at path. A missing file reads as
// an empty mapping and is created on first write.
func NewContentStore(path string) ContentStore {
	return &fileContentStore{path: path}
}

func (s *fileContentStore) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, err
	}
	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *fileContentStore) save(doc map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

func (s *fileContentStore) All() (map[string]json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *fileContentStore) Section(name string) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	value, ok := doc[name]
	if !ok {
		return nil, ErrNotFound
	}
	return value, nil
}

func (s *fileContentStore) PutSection(name string, value json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	doc[name] = value
	return s.save(doc)
}

func (s *fileContentStore) ReplaceAll(doc map[string]json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(doc)
}
