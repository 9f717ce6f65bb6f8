// Package goals models the survey's health-goal keyword picker as an
// explicit finite state machine: one state per goal category, next and
// previous transitions, and per-category selections that persist
// across transitions.
package goals

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// Category is one health-goal category with its selectable keywords.
type Category struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

var (
	ErrNoCategories    = errors.New("goal selection requires at least one category")
	ErrUnknownKeyword  = errors.New("keyword does not belong to the current category")
	ErrAtFirstCategory = errors.New("already at the first category")
	ErrAtLastCategory  = errors.New("already at the last category")
	ErrNotAtEnd        = errors.New("selection can only be completed at the last category")
	ErrSessionNotFound = errors.New("goal selection session not found")
)

// Session is one in-progress goal selection. States are the ordered
// categories; the chosen keywords for each category survive moving
// back and forth.
type Session struct {
	id         uuid.UUID
	categories []Category
	index      int
	selections map[string]map[string]struct{}
	completed  bool
}

// NewSession starts a selection over the given categories.
func NewSession(categories []Category) (*Session, error) {
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}
	return &Session{
		id:         uuid.New(),
		categories: categories,
		selections: make(map[string]map[string]struct{}),
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Current returns the category for the current state.
func (s *Session) Current() Category {
	return s.categories[s.index]
}

// AtEnd reports whether the session is at the last category.
func (s *Session) AtEnd() bool {
	return s.index == len(s.categories)-1
}

// Completed reports whether Complete has been called.
func (s *Session) Completed() bool {
	return s.completed
}

// Toggle flips the selection state of a keyword in the current
// category.
func (s *Session) Toggle(keyword string) error {
	current := s.Current()
	if !contains(current.Keywords, keyword) {
		return ErrUnknownKeyword
	}

	chosen, ok := s.selections[current.Name]
	if !ok {
		chosen = make(map[string]struct{})
		s.selections[current.Name] = chosen
	}
	if _, selected := chosen[keyword]; selected {
		delete(chosen, keyword)
	} else {
		chosen[keyword] = struct{}{}
	}
	return nil
}

// Next advances to the following category.
func (s *Session) Next() error {
	if s.AtEnd() {
		return ErrAtLastCategory
	}
	s.index++
	return nil
}

// Previous returns to the preceding category.
func (s *Session) Previous() error {
	if s.index == 0 {
		return ErrAtFirstCategory
	}
	s.index--
	return nil
}

// Selected returns the chosen keywords of the current category in
// category keyword order.
func (s *Session) Selected() []string {
	return s.selectedFor(s.Current())
}

// Complete finishes the selection. It is only valid at the last
// category and returns the full category-to-keywords result.
func (s *Session) Complete() (map[string][]string, error) {
	if !s.AtEnd() {
		return nil, ErrNotAtEnd
	}
	s.completed = true

	result := make(map[string][]string, len(s.categories))
	for _, cat := range s.categories {
		result[cat.Name] = s.selectedFor(cat)
	}
	return result, nil
}

func (s *Session) selectedFor(cat Category) []string {
	chosen := s.selections[cat.Name]
	out := make([]string, 0, len(chosen))
	for _, kw := range cat.Keywords {
		if _, ok := chosen[kw]; ok {
			out = append(out, kw)
		}
	}
	return out
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// Store keeps active sessions in memory, keyed by session ID.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[uuid.UUID]*Session)}
}

// Start creates and registers a new session.
func (st *Store) Start(categories []Category) (*Session, error) {
	session, err := NewSession(categories)
	if err != nil {
		return nil, err
	}
	st.mu.Lock()
	st.sessions[session.id] = session
	st.mu.Unlock()
	return session, nil
}

// Get returns the session with the given ID.
func (st *Store) Get(id uuid.UUID) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	session, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Delete removes a session.
func (st *Store) Delete(id uuid.UUID) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}
