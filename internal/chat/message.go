// Package chat turns issue comments into README chat fragments. The filtering,
// windowing, truncation and time formatting pipeline is shared by all renderer
// backends; only the final text assembly differs per backend.
package chat

import "github.com/keethesh/profilectl/internal/githubapi"

// Message is one comment prepared for display, independent of the backend.
type Message struct {
	// Author is the GitHub login of the comment author.
	Author string
	// IsOwner marks the profile owner for distinct styling.
	IsOwner bool
	// AvatarURL is the author's avatar image URL.
	AvatarURL string
	// Lines is the truncated message body split into lines.
	Lines []string
	// Timestamp is the already-formatted display time, or "??:??" when the
	// source timestamp could not be parsed.
	Timestamp string
	// Reactions holds the nonzero reaction counts in source order.
	Reactions []githubapi.Reaction
}

// Options is the immutable render policy for one run.
type Options struct {
	// Repo is the owner/name slug, used for links in the HTML backend.
	Repo string
	// Issue is the featured issue number, used for footer links.
	Issue int
	// Title is the channel-style heading of the chat block.
	Title string
	// Width is the column width of the ASCII frame.
	Width int
	// MaxMessages caps the trailing window of rendered comments.
	MaxMessages int
	// MaxMessageLength caps body length in characters before truncation.
	MaxMessageLength int
	// MaxLinesPerMessage caps body line count before truncation.
	MaxLinesPerMessage int
	// FilterBots drops comments from bot accounts.
	FilterBots bool
	// ShowTimestamps toggles per-message timestamps.
	ShowTimestamps bool
	// HumanFriendlyTime selects relative time over absolute HH:MM.
	HumanFriendlyTime bool
	// ShowReactions toggles the reaction row under messages.
	ShowReactions bool
	// ShowAvatars toggles avatars in the HTML backend.
	ShowAvatars bool
	// AvatarSize is the avatar edge size in pixels.
	AvatarSize string
}

// Participants counts the distinct authors among the prepared messages.
func Participants(msgs []Message) int {
	seen := make(map[string]struct{}, len(msgs))
	for _, m := range msgs {
		seen[m.Author] = struct{}{}
	}
	return len(seen)
}
