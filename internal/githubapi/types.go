// Package githubapi provides minimal GitHub REST API models for issue comments.
package githubapi

// Reaction is a single emoji reaction kind with its count.
type Reaction struct {
	// Emoji is the rendered emoji glyph.
	Emoji string
	// Count is how many users reacted with this emoji.
	Count int
}

// IssueComment is one comment on the featured issue, in creation order.
type IssueComment struct {
	// ID is the GitHub comment database ID.
	ID int64
	// Author is the GitHub login of the comment author.
	Author string
	// AuthorIsBot reports whether the author looks like a bot account.
	AuthorIsBot bool
	// AuthorIsOwner reports whether the author is the repository owner.
	AuthorIsOwner bool
	// AvatarURL is the author's avatar image URL.
	AvatarURL string
	// Body is the raw markdown body of the comment.
	Body string
	// CreatedAt is the ISO timestamp of comment creation. It is kept as a
	// string so that one unparseable timestamp degrades a single message
	// instead of failing the fetch.
	CreatedAt string
	// Reactions holds nonzero reaction counts in the API's summary order.
	Reactions []Reaction
}

type commentNode struct {
	ID                int64  `json:"id"`
	Body              string `json:"body"`
	CreatedAt         string `json:"created_at"`
	AuthorAssociation string `json:"author_association"`
	User              struct {
		Login     string `json:"login"`
		Type      string `json:"type"`
		AvatarURL string `json:"avatar_url"`
	} `json:"user"`
	Reactions reactionSummary `json:"reactions"`
}

// reactionSummary mirrors the REST reaction rollup. Field order matches the
// API response and fixes the display order of rendered reactions.
type reactionSummary struct {
	PlusOne  int `json:"+1"`
	MinusOne int `json:"-1"`
	Laugh    int `json:"laugh"`
	Hooray   int `json:"hooray"`
	Confused int `json:"confused"`
	Heart    int `json:"heart"`
	Rocket   int `json:"rocket"`
	Eyes     int `json:"eyes"`
}

// list returns the nonzero reactions in summary order.
func (r reactionSummary) list() []Reaction {
	pairs := []Reaction{
		{Emoji: "👍", Count: r.PlusOne},
		{Emoji: "👎", Count: r.MinusOne},
		{Emoji: "😄", Count: r.Laugh},
		{Emoji: "🎉", Count: r.Hooray},
		{Emoji: "😕", Count: r.Confused},
		{Emoji: "❤️", Count: r.Heart},
		{Emoji: "🚀", Count: r.Rocket},
		{Emoji: "👀", Count: r.Eyes},
	}
	var out []Reaction
	for _, p := range pairs {
		if p.Count > 0 {
			out = append(out, p)
		}
	}
	return out
}
