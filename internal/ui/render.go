package ui

import (
	"fmt"
	"strings"

	"github.com/henri123lemoine/rhymer/internal/config"
	"github.com/henri123lemoine/rhymer/internal/datamuse"
	"github.com/henri123lemoine/rhymer/internal/results"
)

// State constants (matching app.State)
const (
	StateMain = iota
	StateFilter
	StateHelp
)

// Display strings shared with tests.
const (
	LoadingText   = "Loading..."
	NoResultsText = "No results"
	NoMatchesText = "No matches"
	SaveControl   = "[+]"
)

// HelpBinding represents a keybinding for help display.
type HelpBinding struct {
	Keys string
	Desc string
}

// HelpSection represents a section of help bindings.
type HelpSection struct {
	Title    string
	Bindings []HelpBinding
}

// RenderParams contains all parameters needed for rendering.
type RenderParams struct {
	State        int
	Width        int
	Height       int
	Config       *config.Config
	Input        string
	InputFocused bool
	FilterInput  string
	FilterValue  string
	Loading      bool
	SpinnerFrame string
	HasResults   bool
	Relation     datamuse.Relation
	Query        string
	Results      results.View
	Cursor       int
	Saved        string
	SavedCount   int
	Status       string
	Err          error
	HelpSections []HelpSection
}

// MinWidth is the absolute minimum terminal width we try to support.
const MinWidth = 30

// MinHeight is the absolute minimum terminal height we try to support.
const MinHeight = 12

// chromeLines is the number of lines outside the results region.
const chromeLines = 16

// Render renders the full UI.
func Render(p RenderParams) string {
	if p.Width < MinWidth {
		p.Width = MinWidth
	}
	if p.Height < MinHeight {
		p.Height = MinHeight
	}

	if p.State == StateHelp {
		return renderHelp(p)
	}
	return renderMain(p)
}

// renderMain renders the input, results and saved-words regions.
func renderMain(p RenderParams) string {
	var b strings.Builder
	contentWidth := p.Width - 4

	b.WriteString(TitleStyle.Render("RHYMER") + "\n")
	b.WriteString(DividerStyle.Render(strings.Repeat("─", contentWidth)) + "\n")

	// Input
	inputBox := InputStyle
	if !p.InputFocused {
		inputBox = InputBlurredStyle
	}
	b.WriteString(inputBox.Width(max(contentWidth-4, 10)).Render(p.Input) + "\n")

	if p.State == StateFilter {
		b.WriteString(HeaderStyle.Render("FILTER") + "  " + p.FilterInput + "\n")
	} else if p.FilterValue != "" {
		b.WriteString(MutedStyle.Render("filter: "+p.FilterValue) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(renderResults(p))

	// Saved words
	b.WriteString("\n" + DividerStyle.Render(strings.Repeat("─", contentWidth)) + "\n")
	b.WriteString(RenderSaved(p.Saved, p.SavedCount) + "\n")
	if p.Err != nil {
		b.WriteString(ErrorStyle.Render("Error: "+p.Err.Error()) + "\n")
	} else if p.Status != "" {
		b.WriteString(StatusStyle.Render(p.Status) + "\n")
	}

	// Footer
	b.WriteString(DividerStyle.Render(strings.Repeat("─", contentWidth)) + "\n")
	var helpText string
	if p.InputFocused {
		helpText = compactHelp(
			"enter rhymes • ctrl+t synonyms • tab results • ctrl+c quit",
			"enter•ctrl+t•tab•ctrl+c",
			p.Width,
		)
	} else {
		helpText = compactHelp(
			"enter save • ctrl+r rhymes • ctrl+t synonyms • / filter • e export • tab input • ? help • q quit",
			"enter•ctrl+r•ctrl+t•/•e•tab•?•q",
			p.Width,
		)
	}
	b.WriteString(HelpStyle.Render(helpText))

	return wrapInBox(b.String(), p.Width)
}

// renderResults renders the results region. A new response replaces the
// whole region.
func renderResults(p RenderParams) string {
	var b strings.Builder

	if p.Loading {
		b.WriteString(p.SpinnerFrame + " " + LoadingText + "\n")
		return b.String()
	}

	if !p.HasResults {
		b.WriteString(MutedStyle.Render("Type a word, then press enter for rhymes or ctrl+t for similar words.") + "\n")
		return b.String()
	}

	b.WriteString(HeaderStyle.Render(resultsTitle(p.Relation, p.Query)) + "\n")

	if p.Results.Empty {
		b.WriteString(MutedStyle.Render(NoResultsText) + "\n")
		return b.String()
	}
	if p.Results.Len() == 0 {
		b.WriteString(MutedStyle.Render(NoMatchesText) + "\n")
		return b.String()
	}

	lines := resultLines(p)
	budget := max(p.Height-chromeLines, 3)
	start, end := visibleRange(lines, p.Cursor, budget)

	if start > 0 {
		b.WriteString(MutedStyle.Render(fmt.Sprintf("  ↑ %d more above", start)) + "\n")
	}
	for _, l := range lines[start:end] {
		b.WriteString(l.text + "\n")
	}
	if end < len(lines) {
		b.WriteString(MutedStyle.Render(fmt.Sprintf("  ↓ %d more below", len(lines)-end)) + "\n")
	}

	return b.String()
}

func resultsTitle(rel datamuse.Relation, query string) string {
	if rel == datamuse.RelationSimilar {
		return fmt.Sprintf("SIMILAR TO %q", query)
	}
	return fmt.Sprintf("RHYMES WITH %q", query)
}

// line is one rendered results line. entry is -1 for headings.
type line struct {
	text  string
	entry int
}

// resultLines lays the view out as section headings followed by entries.
func resultLines(p RenderParams) []line {
	var lines []line
	idx := 0
	for _, s := range p.Results.Sections {
		if s.Heading != "" {
			lines = append(lines, line{text: SectionStyle.Render(sectionHeading(s.Heading)), entry: -1})
		}
		for _, e := range s.Entries {
			selected := !p.InputFocused && idx == p.Cursor
			lines = append(lines, line{text: renderEntry(e, selected, p.Config), entry: idx})
			idx++
		}
	}
	return lines
}

// sectionHeading names a syllable group.
func sectionHeading(h string) string {
	switch h {
	case results.MissingHeading:
		return "? syllables"
	case "1":
		return "1 syllable"
	default:
		return h + " syllables"
	}
}

// renderEntry renders a word with its save control.
func renderEntry(e results.Entry, selected bool, cfg *config.Config) string {
	cursor := "  "
	word := WordStyle.Render(e.Word.Word)
	if selected {
		cursor = SelectedStyle.Render(SymbolCursor + " ")
		word = SelectedStyle.Render(e.Word.Word)
	}

	out := cursor + SaveStyle.Render(SaveControl) + " " + word

	if cfg != nil && cfg.UI.ShowScores && e.Word.Score != nil {
		out += " " + MutedStyle.Render(fmt.Sprintf("(%d)", *e.Word.Score))
	}
	if cfg != nil && cfg.UI.ShowTags && len(e.Word.Tags) > 0 {
		out += " " + TagStyle.Render(strings.Join(e.Word.Tags, " "))
	}
	return out
}

// visibleRange picks a window of at most budget lines that keeps the
// cursor's entry in view.
func visibleRange(lines []line, cursor, budget int) (int, int) {
	if len(lines) <= budget {
		return 0, len(lines)
	}

	cursorLine := 0
	for i, l := range lines {
		if l.entry == cursor {
			cursorLine = i
			break
		}
	}

	start := cursorLine - budget/2
	if start < 0 {
		start = 0
	}
	end := start + budget
	if end > len(lines) {
		end = len(lines)
		start = end - budget
	}
	return start, end
}

// RenderSaved renders the saved-words region.
func RenderSaved(saved string, count int) string {
	label := "Saved:"
	if count > 0 {
		label = fmt.Sprintf("Saved (%d):", count)
	}
	return HeaderStyle.Render(label) + " " + SavedStyle.Render(saved)
}

// renderHelp renders the help screen.
func renderHelp(p RenderParams) string {
	var b strings.Builder
	contentWidth := p.Width - 4

	b.WriteString(HeaderStyle.Render("HELP") + "\n")
	b.WriteString(DividerStyle.Render(strings.Repeat("─", contentWidth)) + "\n\n")

	for i, section := range p.HelpSections {
		b.WriteString(WordStyle.Render(section.Title) + "\n")
		b.WriteString(DividerStyle.Render(strings.Repeat("─", 40)) + "\n")
		for _, binding := range section.Bindings {
			// Pad keys to 10 chars for alignment
			keys := binding.Keys
			if len(keys) < 10 {
				keys = keys + strings.Repeat(" ", 10-len(keys))
			}
			b.WriteString(MutedStyle.Render("  "+keys) + " " + binding.Desc + "\n")
		}
		if i < len(p.HelpSections)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n" + DividerStyle.Render(strings.Repeat("─", contentWidth)) + "\n")
	b.WriteString(HelpStyle.Render("Press any key to close"))

	return wrapInBox(b.String(), p.Width)
}

// wrapInBox wraps content in a box.
func wrapInBox(content string, width int) string {
	boxWidth := width - 2
	if boxWidth < MinWidth-2 {
		boxWidth = MinWidth - 2
	}
	return BoxStyle.Width(boxWidth).Render(content)
}

// compactHelp returns a shortened help string for small terminals.
func compactHelp(full, compact string, width int) string {
	if width >= 100 {
		return full
	}
	return compact
}
