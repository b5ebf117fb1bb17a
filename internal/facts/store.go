package facts

import (
	"fmt"

	"github.com/lusakalabs/crucible/internal/model"
)

// Store holds the immutable ground-truth fact collection.
// Read-only after construction; safe for concurrent use without locking.
type Store struct {
	facts []model.Fact
	byID  map[string]model.Fact
}

// NewStore builds a store from a fact slice, validating categories and
// rejecting duplicate ids. Fact order is preserved.
func NewStore(facts []model.Fact) (*Store, error) {
	s := &Store{
		facts: make([]model.Fact, 0, len(facts)),
		byID:  make(map[string]model.Fact, len(facts)),
	}

	for i, f := range facts {
		if f.ID == "" {
			return nil, fmt.Errorf("fact %d: missing id", i)
		}
		if _, err := model.ParseCategory(string(f.Category)); err != nil {
			return nil, fmt.Errorf("fact %s: %w", f.ID, err)
		}
		if _, dup := s.byID[f.ID]; dup {
			return nil, fmt.Errorf("fact %s: duplicate id", f.ID)
		}
		s.facts = append(s.facts, f)
		s.byID[f.ID] = f
	}

	return s, nil
}

// NewBuiltinStore builds a store over the builtin dataset
func NewBuiltinStore() *Store {
	s, err := NewStore(BuiltinFacts())
	if err != nil {
		// The builtin dataset is compiled in; a validation failure here is a bug
		panic(fmt.Sprintf("builtin fact dataset invalid: %v", err))
	}
	return s
}

// All returns every fact in load order
func (s *Store) All() []model.Fact {
	out := make([]model.Fact, len(s.facts))
	copy(out, s.facts)
	return out
}

// ByCategory returns all facts in the given category, in load order.
// Fails for categories outside the fixed enumeration.
func (s *Store) ByCategory(category model.Category) ([]model.Fact, error) {
	c, err := model.ParseCategory(string(category))
	if err != nil {
		return nil, err
	}

	var out []model.Fact
	for _, f := range s.facts {
		if f.Category == c {
			out = append(out, f)
		}
	}
	return out, nil
}

// ByID looks up a single fact
func (s *Store) ByID(id string) (model.Fact, bool) {
	f, ok := s.byID[id]
	return f, ok
}

// Len returns the number of facts in the store
func (s *Store) Len() int {
	return len(s.facts)
}
