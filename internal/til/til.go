// Package til renders the "Today I Learned" bullet list from a notes directory.
package til

import (
	"fmt"
	"os"
	"path"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// Entry is one note in the rendered list.
type Entry struct {
	// Title is the display title derived from the file name.
	Title string
	// Path is the README-relative link target, always forward-slashed.
	Path string
}

var leadingDigits = regexp.MustCompile(`^\d+\s*`)

// List returns the newest limit notes in dir, newest first. Note files are
// named so that lexical order matches recency (date or sequence prefixes).
func List(dir string, limit int) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read til directory %q: %w", dir, err)
	}

	var names []string
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".md") {
			continue
		}
		names = append(names, de.Name())
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	if len(names) > limit {
		names = names[:limit]
	}

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, Entry{
			Title: displayTitle(name),
			Path:  path.Join(dir, name),
		})
	}
	return entries, nil
}

// RenderList renders the markdown bullet list, or a placeholder line when
// there are no notes so the spliced region is never emptied.
func RenderList(entries []Entry) string {
	if len(entries) == 0 {
		return "_Nothing here yet — check back soon._"
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("* [%s](%s)", e.Title, e.Path))
	}
	return strings.Join(lines, "\n")
}

// displayTitle turns "20240722-smart-truncation.md" into "Smart truncation".
func displayTitle(name string) string {
	stem := strings.TrimSuffix(name, ".md")
	clean := strings.ReplaceAll(stem, "-", " ")
	clean = strings.TrimSpace(leadingDigits.ReplaceAllString(clean, ""))
	if clean == "" {
		return stem
	}
	runes := []rune(clean)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
