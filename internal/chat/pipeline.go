package chat

import (
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/keethesh/profilectl/internal/githubapi"
)

// ellipsis marks bodies that were cut during truncation.
const ellipsis = "…"

// Prepare applies the backend-agnostic pipeline: bot filtering, the trailing
// message window, smart truncation and timestamp formatting. Malformed
// records degrade to placeholder values and are logged, never fatal.
func Prepare(logger *slog.Logger, comments []githubapi.IssueComment, opts Options, now time.Time) []Message {
	kept := comments
	if opts.FilterBots {
		kept = make([]githubapi.IssueComment, 0, len(comments))
		for _, c := range comments {
			if c.AuthorIsBot {
				continue
			}
			kept = append(kept, c)
		}
	}

	if len(kept) > opts.MaxMessages {
		kept = kept[len(kept)-opts.MaxMessages:]
	}

	msgs := make([]Message, 0, len(kept))
	for _, c := range kept {
		author := c.Author
		if author == "" {
			author = "ghost"
		}
		body := c.Body
		if strings.TrimSpace(body) == "" {
			body = "(empty message)"
		}

		ts := ""
		if opts.ShowTimestamps {
			var err error
			ts, err = FormatTimestamp(c.CreatedAt, opts.HumanFriendlyTime, now)
			if err != nil && logger != nil {
				logger.Warn("unparseable comment timestamp",
					"comment_id", c.ID,
					"created_at", c.CreatedAt,
					"error", err,
				)
			}
		}

		var reactions []githubapi.Reaction
		if opts.ShowReactions {
			reactions = c.Reactions
		}

		msgs = append(msgs, Message{
			Author:    author,
			IsOwner:   c.AuthorIsOwner,
			AvatarURL: c.AvatarURL,
			Lines:     Truncate(body, opts.MaxMessageLength, opts.MaxLinesPerMessage),
			Timestamp: ts,
			Reactions: reactions,
		})
	}
	return msgs
}

// Truncate cuts body to at most maxLen characters and maxLines lines, marking
// any cut with an ellipsis. Length cuts land on the nearest preceding word
// boundary rather than mid-word. Truncate is idempotent.
func Truncate(body string, maxLen, maxLines int) []string {
	runes := []rune(strings.TrimSpace(body))
	if len(runes) > maxLen {
		// Budget one rune for the ellipsis so re-truncating is a no-op.
		cut := maxLen - 1
		boundary := -1
		for i := cut; i > 0; i-- {
			if unicode.IsSpace(runes[i]) {
				boundary = i
				break
			}
		}
		if boundary > 0 {
			cut = boundary
		}
		runes = append([]rune(strings.TrimRightFunc(string(runes[:cut]), unicode.IsSpace)), []rune(ellipsis)...)
	}

	lines := strings.Split(string(runes), "\n")
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		last := lines[maxLines-1]
		if !strings.HasSuffix(last, ellipsis) {
			lines[maxLines-1] = strings.TrimRight(last, " ") + ellipsis
		}
	}
	return lines
}
