package teams

import "fmt"

// Entry is one club whose logo is to be fetched
type Entry struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

func (e Entry) String() string {
	return fmt.Sprintf("%s (ID: %d)", e.Name, e.ID)
}

// Duplicate records an id that appeared more than once in the source pairs.
// Current is the name that won.
type Duplicate struct {
	ID       int
	Previous string
	Current  string
}

// Table is an ordered team table with unique ids
type Table struct {
	entries []Entry
	index   map[int]int
}

// Build collapses pairs into a Table using last-write-wins. An id keeps the
// position of its first appearance and takes the name of its last one.
func Build(pairs []Entry) (*Table, []Duplicate) {
	t := &Table{
		entries: make([]Entry, 0, len(pairs)),
		index:   make(map[int]int, len(pairs)),
	}

	var dups []Duplicate
	for _, p := range pairs {
		if i, ok := t.index[p.ID]; ok {
			dups = append(dups, Duplicate{ID: p.ID, Previous: t.entries[i].Name, Current: p.Name})
			t.entries[i].Name = p.Name
			continue
		}
		t.index[p.ID] = len(t.entries)
		t.entries = append(t.entries, p)
	}

	return t, dups
}

// Default returns the effective embedded table
func Default() *Table {
	t, _ := Build(rawTable)
	return t
}

// DefaultDuplicates reports the duplicate ids in the embedded table
func DefaultDuplicates() []Duplicate {
	_, dups := Build(rawTable)
	return dups
}

// RawLen is the number of pairs listed before deduplication
func RawLen() int {
	return len(rawTable)
}

// Entries returns the entries in iteration order
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of distinct ids
func (t *Table) Len() int {
	return len(t.entries)
}

// Lookup finds an entry by id
func (t *Table) Lookup(id int) (Entry, bool) {
	i, ok := t.index[id]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}
