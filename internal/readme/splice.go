// Package readme replaces marker-delimited regions in the profile README.
package readme

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Marker pairs delimiting the spliced regions.
const (
	ChatStartMarker = "<!-- CHAT_START -->"
	ChatEndMarker   = "<!-- CHAT_END -->"
	TILStartMarker  = "<!-- TIL_START -->"
	TILEndMarker    = "<!-- TIL_END -->"
)

// ErrMarkerNotFound reports a missing or misordered sentinel marker. The
// document is never modified in that case.
var ErrMarkerNotFound = errors.New("marker not found")

// Splice replaces everything strictly between the first start marker and the
// following end marker with fragment, preserving the markers themselves.
func Splice(doc, start, end, fragment string) (string, error) {
	startIdx := strings.Index(doc, start)
	if startIdx < 0 {
		return "", fmt.Errorf("%w: %s", ErrMarkerNotFound, start)
	}
	rest := startIdx + len(start)
	endIdx := strings.Index(doc[rest:], end)
	if endIdx < 0 {
		return "", fmt.Errorf("%w: %s", ErrMarkerNotFound, end)
	}

	var sb strings.Builder
	sb.WriteString(doc[:rest])
	sb.WriteString("\n")
	sb.WriteString(fragment)
	sb.WriteString("\n")
	sb.WriteString(doc[rest+endIdx:])
	return sb.String(), nil
}

// UpdateFile reads the document at path, splices fragment between the markers
// and writes the file back. It reports whether the content actually changed;
// an identical document is left untouched.
func UpdateFile(path, start, end, fragment string) (bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read %q: %w", path, err)
	}

	updated, err := Splice(string(raw), start, end, fragment)
	if err != nil {
		return false, fmt.Errorf("splice %q: %w", path, err)
	}
	if updated == string(raw) {
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("stat %q: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("write %q: %w", path, err)
	}
	return true, nil
}
