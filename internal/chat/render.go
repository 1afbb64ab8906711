package chat

import (
	"fmt"

	"github.com/keethesh/profilectl/internal/config"
)

// Renderer assembles a fragment from already-prepared messages. Backends must
// not re-derive filtering, truncation or time formatting.
type Renderer interface {
	// Render returns the fragment text for the prepared messages. An empty
	// slice renders the backend's placeholder, never an empty string.
	Render(msgs []Message, opts Options) (string, error)
}

// NewRenderer selects a backend by config format name.
func NewRenderer(format string) (Renderer, error) {
	switch format {
	case config.FormatHTML:
		return &HTMLRenderer{}, nil
	case config.FormatASCII:
		return &ASCIIRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown chat format %q", format)
	}
}
