// Package greeting holds the ordered language → greeting table that the
// rotator cycles through.
package greeting

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/yllada/greeter/common"
)

// Entry pairs a language name with its greeting text.
type Entry struct {
	Language string `yaml:"language"`
	Text     string `yaml:"text"`
}

// Table is an ordered, immutable mapping from language to greeting.
// Insertion order is the rotation order.
type Table struct {
	entries []Entry
	index   map[string]int
}

// DefaultEntries returns the built-in greetings in rotation order.
func DefaultEntries() []Entry {
	return []Entry{
		{Language: "English", Text: "Hello World!"},
		{Language: "French", Text: "Bonjour le monde!"},
		{Language: "German", Text: "Hallo Welt!"},
		{Language: "Japanese", Text: "Kon'nichiwa sekai!"},
		{Language: "Spanish", Text: "¡Hola Mundo!"},
	}
}

// DefaultTable returns the built-in five-language table.
func DefaultTable() *Table {
	t, err := NewTable(DefaultEntries()...)
	if err != nil {
		panic(err)
	}
	return t
}

// NewTable validates entries and builds a table from a private copy of them.
func NewTable(entries ...Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, common.ErrEmptyTable
	}

	for _, e := range entries {
		switch e.Language {
		case "":
			return nil, common.ErrEmptyLanguage
		case common.SentinelLanguage:
			return nil, fmt.Errorf("%w: %q", common.ErrReservedLanguage, e.Language)
		}
	}

	if dups := lo.FindDuplicatesBy(entries, func(e Entry) string { return e.Language }); len(dups) > 0 {
		return nil, fmt.Errorf("%w: %q", common.ErrDuplicateLanguage, dups[0].Language)
	}

	t := &Table{
		entries: append([]Entry(nil), entries...),
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range t.entries {
		t.index[e.Language] = i
	}
	return t, nil
}

// Len returns the number of languages.
func (t *Table) Len() int {
	return len(t.entries)
}

// KeyAt returns the language at position i in rotation order.
func (t *Table) KeyAt(i int) string {
	return t.entries[i].Language
}

// Languages returns the language names in rotation order.
func (t *Table) Languages() []string {
	return lo.Map(t.entries, func(e Entry, _ int) string { return e.Language })
}

// Entries returns a copy of the table's entries.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Lookup returns the greeting for language.
func (t *Table) Lookup(language string) (string, bool) {
	i, ok := t.index[language]
	if !ok {
		return "", false
	}
	return t.entries[i].Text, true
}

// Contains reports whether language is a key of the table.
func (t *Table) Contains(language string) bool {
	_, ok := t.index[language]
	return ok
}

// Derive returns the greeting for language, or "" when the table has no
// such language.
func Derive(t *Table, language string) string {
	text, _ := t.Lookup(language)
	return text
}
