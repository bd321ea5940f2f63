package changelog

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upperCaser = cases.Upper(language.Und)

// Render produces the markdown document for a release sequence. releases
// are ordered oldest first; output is newest first. url is the base
// repository URL for compare and release links.
func Render(releases []*Release, url string) string {
	lines := []string{"# Changelog", ""}
	for i := len(releases) - 1; i >= 0; i-- {
		rel := releases[i]
		if rel.Empty() {
			continue
		}
		prev := ""
		if i > 0 {
			prev = releases[i-1].Version
		}
		lines = append(lines, header(rel, prev, url), "")
		for _, sec := range sections {
			lines = append(lines, section(rel, sec.scope, sec.title)...)
		}
	}
	return strings.TrimRight(strings.Join(lines, "\n"), " \t\r\n")
}

func header(rel *Release, prev, url string) string {
	text := rel.Version
	if text == UnreleasedLabel {
		text = "Unreleased"
	}
	if prev != "" {
		return fmt.Sprintf("## [%s](%s/compare/%s...%s) - %s", text, url, prev, rel.Version, rel.Date)
	}
	return fmt.Sprintf("## [%s](%s/releases/tag/%s) - %s", text, url, rel.Version, rel.Date)
}

func section(rel *Release, scope, title string) []string {
	entries := rel.Entries(scope)
	if len(entries) == 0 {
		return nil
	}
	lines := []string{"### " + title, ""}
	// most recently added first
	for i := len(entries) - 1; i >= 0; i-- {
		lines = append(lines, "* "+capitalize(entries[i]))
	}
	return append(lines, "")
}

// capitalize upper-cases the first character of s, leaving the rest
// untouched. The caser handles mappings where the upper form is more than
// one rune.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError && size == 1 {
		return s
	}
	return upperCaser.String(s[:size]) + s[size:]
}
