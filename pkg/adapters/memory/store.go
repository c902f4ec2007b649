// Package memory provides an in-memory implementation of ports.Store.
// Useful for tests and for single-process tools that do not need
// persistence across restarts.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/finite/pkg/ports"
	"github.com/aretw0/finite/pkg/schema"
)

// Store implements ports.Store in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*schema.Document
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*schema.Document),
	}
}

// Save persists the document in memory.
func (s *Store) Save(ctx context.Context, name string, doc *schema.Document) error {
	// Deep copy to ensure isolation, similar to serialization
	copied := copyDocument(doc)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name] = copied
	return nil
}

// Load retrieves the document from memory.
func (s *Store) Load(ctx context.Context, name string) (*schema.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.data[name]
	if !ok {
		return nil, ports.ErrAutomatonNotFound
	}

	// Copy on read so the caller can't mutate store state through the pointer
	return copyDocument(doc), nil
}

// Delete removes the document.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
	return nil
}

// List returns the names of saved documents.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	return names, nil
}

func copyDocument(doc *schema.Document) *schema.Document {
	copied := &schema.Document{
		States:      append([]schema.StateRecord(nil), doc.States...),
		Transitions: append([]schema.TransitionRecord(nil), doc.Transitions...),
		Alphabet:    append([]string(nil), doc.Alphabet...),
	}
	copied.FinalStateIDs = append([]string(nil), doc.FinalStateIDs...)
	if doc.InitialStateID != nil {
		initial := *doc.InitialStateID
		copied.InitialStateID = &initial
	}
	return copied
}
