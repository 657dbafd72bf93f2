package dataset

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_HeaderDriven(t *testing.T) {
	raw := "text,book,chapter,verse\n" +
		"In the beginning,Genesis,1,1\n" +
		"\n" +
		"\"Jesus wept.\",John,11,35\n\n"

	s, err := Parse([]byte(raw))
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())

	assert.Equal(t, Passage{Text: "In the beginning", Book: "Genesis", Chapter: "1", Verse: "1"}, s.At(0))
	assert.Equal(t, "John 11:35", s.At(1).Location())
	assert.Nil(t, s.Truncated)
}

func TestParse_ColumnOrderAndCase(t *testing.T) {
	raw := "Book,Verse,Chapter,Text\nPsalms,1,23,The Lord is my shepherd\n"

	s, err := Parse([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, Passage{Text: "The Lord is my shepherd", Book: "Psalms", Chapter: "23", Verse: "1"}, s.At(0))
}

func TestParse_MissingColumnAndBOM(t *testing.T) {
	raw := "\ufefftext,book,chapter\nA verse,Ruth,1\n"

	s, err := Parse([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "", s.At(0).Verse)
	assert.Equal(t, "A verse", s.At(0).Text)
}

func TestParse_QuotedComma(t *testing.T) {
	raw := "text,book,chapter,verse\n\"Be still, and know\",Psalms,46,10\n"

	s, err := Parse([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "Be still, and know", s.At(0).Text)
}

func TestParse_Empty(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no bytes", ""},
		{"header only", "text,book,chapter,verse\n"},
		{"header and blank lines", "text,book,chapter,verse\n\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			assert.ErrorIs(t, err, ErrEmpty)
			assert.False(t, errors.Is(err, ErrFetchFailed))
		})
	}
}

func TestStore_AllReturnsCopy(t *testing.T) {
	s, err := NewStore([]Passage{{Text: "a"}, {Text: "b"}})
	require.NoError(t, err)

	all := s.All()
	all[0].Text = "changed"
	assert.Equal(t, "a", s.At(0).Text)
}

func TestNewStore_Empty(t *testing.T) {
	_, err := NewStore(nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestMessage_DistinctPerKind(t *testing.T) {
	fetch := Message(fmt.Errorf("%w: status 404", ErrFetchFailed))
	empty := Message(ErrEmpty)

	assert.NotEqual(t, fetch, empty)
	assert.Contains(t, fetch, "Failed to load")
	assert.Contains(t, empty, "empty")
	assert.Equal(t, "", Message(nil))
}
