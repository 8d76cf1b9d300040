package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/henri123lemoine/rhymer/internal/config"
	"github.com/henri123lemoine/rhymer/internal/datamuse"
	"github.com/henri123lemoine/rhymer/internal/results"
)

func syl(word string, n int) datamuse.Word {
	return datamuse.Word{Word: word, NumSyllables: &n}
}

func baseParams() RenderParams {
	return RenderParams{
		State:        StateMain,
		Width:        120,
		Height:       40,
		Config:       config.DefaultConfig(),
		InputFocused: true,
		HasResults:   true,
		Saved:        "(none)",
	}
}

func TestRenderGroupedOrder(t *testing.T) {
	p := baseParams()
	p.Query = "night"
	p.Results = results.Grouped([]datamuse.Word{
		syl("light", 1),
		syl("bright", 1),
		syl("delight", 2),
	})

	out := Render(p)

	order := []string{"1 syllable", "[+] light", "[+] bright", "2 syllables", "[+] delight"}
	last := -1
	for _, s := range order {
		i := strings.Index(out, s)
		if i < 0 {
			t.Fatalf("missing %q in output:\n%s", s, out)
		}
		if i <= last {
			t.Errorf("%q out of order", s)
		}
		last = i
	}
	if !strings.Contains(out, `RHYMES WITH "night"`) {
		t.Error("expected rhymes title")
	}
}

func TestRenderFlat(t *testing.T) {
	p := baseParams()
	p.Relation = datamuse.RelationSimilar
	p.Query = "happy"
	p.Results = results.Flat([]datamuse.Word{{Word: "glad"}, {Word: "joyful"}})

	out := Render(p)

	if !strings.Contains(out, `SIMILAR TO "happy"`) {
		t.Error("expected similar title")
	}
	if strings.Contains(out, "syllable") {
		t.Error("flat view should have no syllable headings")
	}
	if strings.Index(out, "[+] glad") > strings.Index(out, "[+] joyful") {
		t.Error("expected input order")
	}
}

func TestRenderEmptyResults(t *testing.T) {
	for name, v := range map[string]results.View{
		"grouped": results.Grouped(nil),
		"flat":    results.Flat(nil),
	} {
		t.Run(name, func(t *testing.T) {
			p := baseParams()
			p.Results = v

			out := Render(p)
			if !strings.Contains(out, NoResultsText) {
				t.Errorf("expected %q in output", NoResultsText)
			}
			if strings.Contains(out, SaveControl) {
				t.Error("expected no save controls")
			}
		})
	}
}

func TestRenderLoading(t *testing.T) {
	p := baseParams()
	p.Loading = true
	p.SpinnerFrame = "*"
	p.Results = results.Flat([]datamuse.Word{{Word: "old"}})

	out := Render(p)
	if !strings.Contains(out, LoadingText) {
		t.Error("expected loading indicator")
	}
	if strings.Contains(out, "[+] old") {
		t.Error("loading should replace prior results")
	}
}

func TestRenderNoMatches(t *testing.T) {
	p := baseParams()
	p.Results = results.Flat([]datamuse.Word{{Word: "cat"}}).Filter("zzz")
	p.FilterValue = "zzz"

	out := Render(p)
	if !strings.Contains(out, NoMatchesText) {
		t.Error("expected no-matches indicator")
	}
	if !strings.Contains(out, "filter: zzz") {
		t.Error("expected active filter to be shown")
	}
}

func TestRenderBeforeFirstLookup(t *testing.T) {
	p := baseParams()
	p.HasResults = false

	out := Render(p)
	if strings.Contains(out, NoResultsText) {
		t.Error("should not claim no results before any lookup")
	}
	if !strings.Contains(out, "Saved: (none)") {
		t.Errorf("expected empty saved placeholder, got:\n%s", out)
	}
}

func TestRenderSaved(t *testing.T) {
	if got := RenderSaved("(none)", 0); !strings.Contains(got, "Saved: (none)") {
		t.Errorf("RenderSaved() = %q", got)
	}
	if got := RenderSaved("cat, hat", 2); !strings.Contains(got, "Saved (2): cat, hat") {
		t.Errorf("RenderSaved() = %q", got)
	}
}

func TestRenderSelection(t *testing.T) {
	p := baseParams()
	p.InputFocused = false
	p.Cursor = 1
	p.Results = results.Flat([]datamuse.Word{{Word: "glad"}, {Word: "joyful"}})

	out := Render(p)
	if !strings.Contains(out, SymbolCursor+" [+] joyful") {
		t.Errorf("expected cursor on joyful, got:\n%s", out)
	}
	if strings.Contains(out, SymbolCursor+" [+] glad") {
		t.Error("cursor on wrong entry")
	}
}

func TestRenderScoresAndTags(t *testing.T) {
	score := 812
	p := baseParams()
	p.Config.UI.ShowScores = true
	p.Config.UI.ShowTags = true
	p.Results = results.Flat([]datamuse.Word{{Word: "glad", Score: &score, Tags: []string{"adj"}}})

	out := Render(p)
	if !strings.Contains(out, "(812)") {
		t.Error("expected score")
	}
	if !strings.Contains(out, "adj") {
		t.Error("expected tags")
	}
}

func TestRenderErrorAndStatus(t *testing.T) {
	p := baseParams()
	p.Status = "Exported 2 words"
	if out := Render(p); !strings.Contains(out, "Exported 2 words") {
		t.Error("expected status line")
	}

	p.Err = errors.New("disk full")
	out := Render(p)
	if !strings.Contains(out, "Error: disk full") {
		t.Error("expected error line")
	}
	if strings.Contains(out, "Exported 2 words") {
		t.Error("error should take precedence over status")
	}
}

func TestRenderHelp(t *testing.T) {
	p := baseParams()
	p.State = StateHelp
	p.HelpSections = []HelpSection{
		{Title: "Lookup", Bindings: []HelpBinding{{Keys: "ctrl+r", Desc: "show rhymes"}}},
	}

	out := Render(p)
	if !strings.Contains(out, "HELP") || !strings.Contains(out, "show rhymes") {
		t.Errorf("unexpected help output:\n%s", out)
	}
}

func TestVisibleRange(t *testing.T) {
	var lines []line
	for i := 0; i < 20; i++ {
		lines = append(lines, line{entry: i})
	}

	tests := []struct {
		name               string
		cursor, budget     int
		wantStart, wantEnd int
	}{
		{"fits", 0, 30, 0, 20},
		{"top", 0, 5, 0, 5},
		{"middle", 10, 5, 8, 13},
		{"bottom", 19, 5, 15, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := visibleRange(lines, tt.cursor, tt.budget)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("visibleRange() = (%d, %d), want (%d, %d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
