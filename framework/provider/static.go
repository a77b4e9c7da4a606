package provider

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// Entry is one (id, definition) pair for AddServices.
type Entry struct {
	ID         string
	Definition any
}

// Service builds an Entry.
func Service(id string, definition any) Entry {
	return Entry{ID: id, Definition: definition}
}

// Static is a provider whose definitions are registered up front, typically
// from the concrete provider's constructor, and handed to the container
// through GetServices.
//
// Static is not safe for concurrent mutation. Populate it, then share it.
// The zero value is an empty provider ready for use.
type Static struct {
	Base

	definitions map[string]Definition
	order       []string
}

// NewStatic creates an empty static provider. owner is the value bound
// methods created by Method and Prepare dispatch to; pass the embedding
// struct.
func NewStatic(owner any, opts ...Option) *Static {
	return &Static{
		Base:        NewBase(owner, opts...),
		definitions: make(map[string]Definition),
	}
}

// GetServices returns a snapshot of every registered definition.
func (s *Static) GetServices() map[string]Definition {
	out := make(map[string]Definition, len(s.definitions))
	for id, def := range s.definitions {
		out[id] = def
	}
	return out
}

// AddService registers definition under id, replacing any earlier one.
// definition may be any shape accepted by Normalize; anything else yields an
// *InvalidDefinitionError and leaves the registry untouched.
func (s *Static) AddService(id string, definition any) error {
	def, ok := Normalize(definition)
	if !ok {
		err := &InvalidDefinitionError{
			ID:      id,
			Value:   definition,
			message: s.messages().Translate(invalidDefinitionFormat, id),
		}
		s.logger().Warn("rejected service definition",
			zap.String("id", id),
			zap.String("type", fmt.Sprintf("%T", definition)))
		return err
	}

	if _, exists := s.definitions[id]; !exists {
		s.order = append(s.order, id)
	}
	if s.definitions == nil {
		s.definitions = make(map[string]Definition)
	}
	s.definitions[id] = def

	s.logger().Debug("service definition added",
		zap.String("id", id),
		zap.String("kind", def.Kind()))
	return nil
}

// MustAddService is AddService for setup code, panicking on invalid input
// and returning s for chaining.
func (s *Static) MustAddService(id string, definition any) *Static {
	if err := s.AddService(id, definition); err != nil {
		panic(err)
	}
	return s
}

// AddServices registers entries in order. The first invalid entry stops the
// batch and its error is returned; entries before it stay registered.
func (s *Static) AddServices(entries ...Entry) error {
	for _, e := range entries {
		if err := s.AddService(e.ID, e.Definition); err != nil {
			return err
		}
	}
	return nil
}

// AddDefinitions registers a map of definitions, such as the result of
// Prepare, in sorted id order.
func (s *Static) AddDefinitions(defs map[string]Definition) error {
	ids := make([]string, 0, len(defs))
	for id := range defs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	entries := make([]Entry, len(ids))
	for i, id := range ids {
		entries[i] = Service(id, defs[id])
	}
	return s.AddServices(entries...)
}

// Has reports whether id is registered.
func (s *Static) Has(id string) bool {
	_, ok := s.definitions[id]
	return ok
}

// Len returns the number of registered ids.
func (s *Static) Len() int { return len(s.definitions) }

// IDs returns registered ids in first-registration order.
func (s *Static) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
