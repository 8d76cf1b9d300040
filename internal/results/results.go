// Package results turns word lists from the API into display sections.
package results

import (
	"strconv"

	"github.com/sahilm/fuzzy"

	"github.com/henri123lemoine/rhymer/internal/datamuse"
	"github.com/henri123lemoine/rhymer/internal/group"
)

// MissingHeading labels the section of words without a syllable count.
const MissingHeading = "?"

// Entry is a word paired with its save control.
type Entry struct {
	Word datamuse.Word
}

// Section is a run of entries under an optional heading.
type Section struct {
	Heading string
	Entries []Entry
}

// View is the display structure for one response.
type View struct {
	Empty    bool
	Sections []Section
}

// Grouped builds a view of words grouped by syllable count, in ascending order.
func Grouped(words []datamuse.Word) View {
	if len(words) == 0 {
		return View{Empty: true}
	}

	g := group.GroupBy(words, group.ByAttribute[int, datamuse.Word]("numSyllables"))

	var v View
	for _, grp := range g.Groups() {
		heading := MissingHeading
		if !grp.Missing {
			heading = strconv.Itoa(grp.Key)
		}
		v.Sections = append(v.Sections, Section{
			Heading: heading,
			Entries: entries(grp.Items),
		})
	}
	return v
}

// Flat builds a single-section view in input order.
func Flat(words []datamuse.Word) View {
	if len(words) == 0 {
		return View{Empty: true}
	}
	return View{Sections: []Section{{Entries: entries(words)}}}
}

func entries(words []datamuse.Word) []Entry {
	out := make([]Entry, len(words))
	for i, w := range words {
		out[i] = Entry{Word: w}
	}
	return out
}

// Entries returns every entry in display order.
func (v View) Entries() []Entry {
	var out []Entry
	for _, s := range v.Sections {
		out = append(out, s.Entries...)
	}
	return out
}

// Len returns the number of entries in the view.
func (v View) Len() int {
	n := 0
	for _, s := range v.Sections {
		n += len(s.Entries)
	}
	return n
}

// At returns the entry at display index i.
func (v View) At(i int) (Entry, bool) {
	if i < 0 {
		return Entry{}, false
	}
	for _, s := range v.Sections {
		if i < len(s.Entries) {
			return s.Entries[i], true
		}
		i -= len(s.Entries)
	}
	return Entry{}, false
}

// entrySource implements fuzzy.Source over a section's entries.
type entrySource []Entry

func (e entrySource) String(i int) string {
	return e[i].Word.Word
}

func (e entrySource) Len() int {
	return len(e)
}

// Filter keeps the entries fuzzy-matching query. Sections left with no
// entries are dropped; relative order is kept.
func (v View) Filter(query string) View {
	if query == "" || v.Empty {
		return v
	}

	var out View
	for _, s := range v.Sections {
		matches := fuzzy.FindFrom(query, entrySource(s.Entries))
		if len(matches) == 0 {
			continue
		}

		keep := make([]bool, len(s.Entries))
		for _, m := range matches {
			keep[m.Index] = true
		}

		filtered := Section{Heading: s.Heading}
		for i, e := range s.Entries {
			if keep[i] {
				filtered.Entries = append(filtered.Entries, e)
			}
		}
		out.Sections = append(out.Sections, filtered)
	}
	return out
}
