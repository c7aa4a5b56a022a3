package teams

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLastWriteWins(t *testing.T) {
	table, dups := Build([]Entry{
		{1, "One"},
		{2, "Two"},
		{1, "Uno"},
		{3, "Three"},
		{1, "Eins"},
	})

	require.Equal(t, 3, table.Len())
	assert.Equal(t, []Entry{{1, "Eins"}, {2, "Two"}, {3, "Three"}}, table.Entries())

	require.Len(t, dups, 2)
	assert.Equal(t, Duplicate{ID: 1, Previous: "One", Current: "Uno"}, dups[0])
	assert.Equal(t, Duplicate{ID: 1, Previous: "Uno", Current: "Eins"}, dups[1])
}

func TestBuildEmpty(t *testing.T) {
	table, dups := Build(nil)
	assert.Equal(t, 0, table.Len())
	assert.Empty(t, table.Entries())
	assert.Empty(t, dups)
}

func TestDefaultTable(t *testing.T) {
	table := Default()

	distinct := make(map[int]struct{})
	for _, e := range rawTable {
		distinct[e.ID] = struct{}{}
	}

	assert.Equal(t, 30, RawLen())
	assert.Equal(t, len(distinct), table.Len())
	assert.Equal(t, 29, table.Len())

	entries := table.Entries()
	assert.Equal(t, Entry{17, "Manchester City"}, entries[0])
	assert.Equal(t, Entry{2935, "Benfica"}, entries[len(entries)-1])
}

func TestDefaultDuplicateCollapsesToCeltic(t *testing.T) {
	table := Default()

	e, ok := table.Lookup(2829)
	require.True(t, ok)
	assert.Equal(t, "Celtic", e.Name)

	// The id keeps Barcelona's slot at the head of the La Liga block
	assert.Equal(t, Entry{2829, "Celtic"}, table.Entries()[9])

	dups := DefaultDuplicates()
	require.Len(t, dups, 1)
	assert.Equal(t, Duplicate{ID: 2829, Previous: "Barcelona", Current: "Celtic"}, dups[0])
}

func TestLookupMissing(t *testing.T) {
	_, ok := Default().Lookup(99999)
	assert.False(t, ok)
}

func TestEntriesReturnsCopy(t *testing.T) {
	table := Default()
	entries := table.Entries()
	entries[0].Name = "changed"

	assert.Equal(t, "Manchester City", table.Entries()[0].Name)
}

func TestEntryString(t *testing.T) {
	assert.Equal(t, "Chelsea (ID: 19)", Entry{19, "Chelsea"}.String())
}
