package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrFetchFailed means the raw dataset could not be retrieved.
	ErrFetchFailed = errors.New("fetch failed")
	// ErrEmpty means the dataset was retrieved but holds no records.
	ErrEmpty = errors.New("dataset is empty")
)

// Passage is a single verse record.
type Passage struct {
	Text    string
	Book    string
	Chapter string
	Verse   string
}

// Location formats the passage reference, e.g. "John 3:16".
func (p Passage) Location() string {
	return fmt.Sprintf("%s %s:%s", p.Book, p.Chapter, p.Verse)
}

// Store holds the passages parsed at startup. It is never mutated after Parse.
type Store struct {
	passages []Passage

	// Set when parsing stopped early on a malformed row.
	Truncated error
}

var columns = []string{"text", "book", "chapter", "verse"}

// Parse reads header-driven CSV. Blank lines are skipped and missing
// columns read as empty strings.
func Parse(raw []byte) (*Store, error) {
	raw = bytes.TrimPrefix(raw, []byte("\ufeff"))

	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable header: %v", ErrEmpty, err)
	}

	pos := make(map[string]int, len(columns))
	for i, name := range header {
		pos[strings.ToLower(strings.TrimSpace(name))] = i
	}

	field := func(rec []string, col string) string {
		i, ok := pos[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	s := &Store{}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			s.Truncated = err
			break
		}
		s.passages = append(s.passages, Passage{
			Text:    field(rec, "text"),
			Book:    field(rec, "book"),
			Chapter: field(rec, "chapter"),
			Verse:   field(rec, "verse"),
		})
	}

	if len(s.passages) == 0 {
		return nil, ErrEmpty
	}
	return s, nil
}

// NewStore builds a store from already parsed passages.
func NewStore(passages []Passage) (*Store, error) {
	if len(passages) == 0 {
		return nil, ErrEmpty
	}
	return &Store{passages: append([]Passage(nil), passages...)}, nil
}

// Len returns the number of passages.
func (s *Store) Len() int { return len(s.passages) }

// At returns the passage at index i.
func (s *Store) At(i int) Passage { return s.passages[i] }

// All returns a copy of every passage in load order.
func (s *Store) All() []Passage {
	return append([]Passage(nil), s.passages...)
}

// Message converts a load error into the text shown in place of a passage.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmpty):
		return "The scripture file is empty."
	case errors.Is(err, ErrFetchFailed):
		return "Failed to load scriptures. Check the file name or URL."
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
