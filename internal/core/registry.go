package core

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownSchema is returned when a schema key is not registered.
var ErrUnknownSchema = errors.New("unknown schema")

// Registry holds the price list schemas a service can ingest.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*Schema
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*Schema)}
}

// Register adds a schema after checking it.
// Returns an error if the schema is invalid or its key is already taken.
func (r *Registry) Register(s *Schema) error {
	if s == nil {
		return errors.New("register: nil schema")
	}
	if err := s.Check(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.schemas[s.Key]; exists {
		return fmt.Errorf("schema already registered: %s", s.Key)
	}
	r.schemas[s.Key] = s
	return nil
}

// Get returns a schema by key.
// Returns false if not found.
func (r *Registry) Get(key string) (*Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.schemas[key]
	return s, ok
}

// Lookup is Get with an error wrapping ErrUnknownSchema.
func (r *Registry) Lookup(key string) (*Schema, error) {
	s, ok := r.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSchema, key)
	}
	return s, nil
}

// All returns all registered schemas sorted by key.
func (r *Registry) All() []*Schema {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Schema, 0, len(r.schemas))
	for _, s := range r.schemas {
		result = append(result, s)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Key < result[j].Key
	})

	return result
}

// Keys returns the registered keys, sorted.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.schemas))
	for k := range r.schemas {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of registered schemas.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.schemas)
}
