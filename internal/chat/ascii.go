package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ASCIIRenderer emits a monospace terminal-session chat block suitable for a
// fenced code block in the README.
type ASCIIRenderer struct{}

var (
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	bubbleStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Render implements Renderer.
func (r *ASCIIRenderer) Render(msgs []Message, opts Options) (string, error) {
	// Frame border and padding eat four columns of the configured width.
	inner := opts.Width - 4
	rule := strings.Repeat("─", inner)

	sections := []string{
		"💬 " + opts.Title,
		fmt.Sprintf("🟢 %d online", Participants(msgs)),
		rule,
	}

	if len(msgs) == 0 {
		sections = append(sections,
			"",
			lipgloss.PlaceHorizontal(inner, lipgloss.Center, "no messages yet"),
		)
	}
	for i, m := range msgs {
		if i > 0 {
			sections = append(sections, "")
		}
		sections = append(sections, renderBubble(m, inner))
	}

	sections = append(sections,
		"",
		rule,
		fmt.Sprintf("💭 Join the conversation at Issue #%d", opts.Issue),
	)

	return frameStyle.Width(opts.Width - 2).Render(strings.Join(sections, "\n")), nil
}

// renderBubble lays out one message: guests on the left, the owner on the
// right, mirroring the original mobile-chat look.
func renderBubble(m Message, inner int) string {
	align := lipgloss.Left
	header := "⚪ " + m.Author
	if m.Timestamp != "" {
		header += " " + m.Timestamp
	}
	if m.IsOwner {
		align = lipgloss.Right
		header = m.Author + " 🔵"
		if m.Timestamp != "" {
			header = m.Timestamp + " " + header
		}
	}

	bubble := bubbleStyle.Render(strings.Join(wrapLines(m.Lines, inner-6), "\n"))

	parts := []string{
		lipgloss.PlaceHorizontal(inner, align, header),
		lipgloss.PlaceHorizontal(inner, align, bubble),
	}
	if len(m.Reactions) > 0 {
		row := make([]string, 0, len(m.Reactions))
		for _, re := range m.Reactions {
			row = append(row, fmt.Sprintf("%s %d", re.Emoji, re.Count))
		}
		parts = append(parts, lipgloss.PlaceHorizontal(inner, align, strings.Join(row, "  ")))
	}
	return strings.Join(parts, "\n")
}

// wrapLines word-wraps each body line to width columns without breaking words.
func wrapLines(lines []string, width int) []string {
	var out []string
	for _, line := range lines {
		words := strings.Fields(line)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		current := words[0]
		for _, word := range words[1:] {
			if lipgloss.Width(current)+1+lipgloss.Width(word) > width {
				out = append(out, current)
				current = word
				continue
			}
			current += " " + word
		}
		out = append(out, current)
	}
	return out
}
