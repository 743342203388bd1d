package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dgallion1/outliner/internal/outline"
	"github.com/dgallion1/outliner/internal/parser"
)

// Session snapshots one extraction pass: the flat heading records, the
// built outline, and the paragraph count that bounds navigation. The live
// document may diverge after extraction; a session only ever answers for
// its own snapshot.
type Session struct {
	mu sync.Mutex

	ID       string
	Filename string
	Title    string

	Records        []outline.HeadingRecord
	Outline        *outline.Outline
	ParagraphCount int

	CreatedAt time.Time
	UpdatedAt time.Time

	selected int
}

// New builds a session from an extraction result and its outline.
func New(filename string, res *parser.Result, o *outline.Outline) *Session {
	now := time.Now()
	return &Session{
		ID:             uuid.NewString(),
		Filename:       filename,
		Title:          res.Title,
		Records:        res.Records,
		Outline:        o,
		ParagraphCount: res.ParagraphCount,
		CreatedAt:      now,
		UpdatedAt:      now,
		selected:       -1,
	}
}

// SelectParagraph implements outline.Navigator against the snapshot. It
// fails with outline.ErrPositionOutOfRange when the position is not a
// valid paragraph index.
func (s *Session) SelectParagraph(position int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if position < 0 || position >= s.ParagraphCount {
		return fmt.Errorf("%w: position %d, document has %d paragraphs",
			outline.ErrPositionOutOfRange, position, s.ParagraphCount)
	}
	s.selected = position
	s.UpdatedAt = time.Now()
	return nil
}

// Selected returns the last selected position, or -1 if none.
func (s *Session) Selected() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// HeadingAt returns the heading record at a document position, if one
// exists there.
func (s *Session) HeadingAt(position int) (outline.HeadingRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.Records {
		if rec.Position == position {
			return rec, true
		}
	}
	return outline.HeadingRecord{}, false
}

// Store is a thread-safe in-memory session registry with TTL eviction.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

func (st *Store) Put(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID] = s
}

func (st *Store) Get(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.sessions[id]
}

// Cleanup removes sessions idle past the TTL.
func (st *Store) Cleanup() {
	st.mu.Lock()
	defer st.mu.Unlock()
	now := time.Now()
	for id, s := range st.sessions {
		s.mu.Lock()
		idle := now.Sub(s.UpdatedAt)
		s.mu.Unlock()
		if idle > st.ttl {
			delete(st.sessions, id)
		}
	}
}
