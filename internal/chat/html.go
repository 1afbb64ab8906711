package chat

import (
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/keethesh/profilectl/internal/githubapi"
)

// HTMLRenderer emits a GitHub-styled HTML chat block.
type HTMLRenderer struct{}

type htmlMessage struct {
	Author    string
	IsOwner   bool
	AvatarURL string
	Body      template.HTML
	Timestamp string
	Reactions []githubapi.Reaction
}

type htmlData struct {
	Style       template.CSS
	Title       string
	Status      string
	Repo        string
	Issue       int
	ShowAvatars bool
	AvatarSize  string
	Messages    []htmlMessage
}

const htmlStyle = template.CSS(`
.chat-container {
    max-width: 600px;
    margin: 0 auto;
    border: 1px solid #d1d9e0;
    border-radius: 8px;
    background: #ffffff;
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Helvetica, Arial, sans-serif;
}
.chat-header {
    background: linear-gradient(135deg, #f6f8fa 0%, #e1e8ed 100%);
    border-bottom: 1px solid #d1d9e0;
    padding: 12px 16px;
    border-radius: 8px 8px 0 0;
}
.window-controls { display: inline-flex; gap: 6px; margin-right: 12px; }
.window-control { width: 12px; height: 12px; border-radius: 50%; display: inline-block; }
.control-close { background: #ff5f57; }
.control-minimize { background: #ffbd2e; }
.control-maximize { background: #28ca42; }
.header-title { font-weight: 600; color: #24292f; display: inline; }
.header-meta { font-size: 12px; color: #656d76; margin-top: 4px; }
.chat-messages { padding: 16px; }
.message { margin-bottom: 16px; }
.message:last-child { margin-bottom: 0; }
.message-header { display: flex; align-items: center; margin-bottom: 4px; gap: 8px; }
.avatar { border-radius: 50%; }
.username { font-weight: 600; color: #0969da; font-size: 14px; text-decoration: none; }
.username.owner { color: #8250df; }
.timestamp { font-size: 12px; color: #656d76; }
.message-content {
    background: #f6f8fa;
    padding: 8px 12px;
    border-radius: 8px;
    border-left: 3px solid #d1d9e0;
    line-height: 1.4;
    color: #24292f;
}
.message.owner .message-content { background: #dbeafe; border-left-color: #0969da; }
.reactions { margin-top: 4px; font-size: 12px; color: #656d76; }
.reaction { margin-right: 8px; }
.empty-state { text-align: center; padding: 32px 16px; color: #656d76; }
.chat-footer {
    background: #f6f8fa;
    border-top: 1px solid #d1d9e0;
    padding: 12px 16px;
    border-radius: 0 0 8px 8px;
    text-align: center;
    font-size: 14px;
    color: #656d76;
}
.join-link { color: #0969da; text-decoration: none; font-weight: 500; }
@media (prefers-color-scheme: dark) {
    .chat-container { background: #0d1117; border-color: #30363d; }
    .chat-header { background: linear-gradient(135deg, #161b22 0%, #21262d 100%); border-bottom-color: #30363d; }
    .header-title { color: #f0f6fc; }
    .header-meta { color: #8b949e; }
    .message-content { background: #161b22; border-left-color: #30363d; color: #f0f6fc; }
    .message.owner .message-content { background: #0c2d6b; border-left-color: #1f6feb; }
    .username { color: #58a6ff; }
    .username.owner { color: #a5a3ff; }
    .timestamp { color: #8b949e; }
    .chat-footer { background: #161b22; border-top-color: #30363d; color: #8b949e; }
}
`)

var htmlTemplate = template.Must(template.New("chat").Parse(`<style>{{.Style}}</style>
<div class="chat-container">
<div class="chat-header">
<div class="window-controls">
<span class="window-control control-close"></span>
<span class="window-control control-minimize"></span>
<span class="window-control control-maximize"></span>
</div>
<div class="header-title">{{.Title}}</div>
<div class="header-meta">{{.Status}}</div>
</div>
<div class="chat-messages">
{{- if not .Messages}}
<div class="empty-state">
<h3>👋 No messages yet</h3>
<p><em>Start a conversation to see messages appear here!</em></p>
</div>
{{- end}}
{{- range .Messages}}
<div class="message{{if .IsOwner}} owner{{end}}">
<div class="message-header">
{{- if and $.ShowAvatars .AvatarURL}}
<img class="avatar" src="{{.AvatarURL}}" width="{{$.AvatarSize}}" height="{{$.AvatarSize}}" alt="">
{{- end}}
<a href="https://github.com/{{.Author}}" class="username{{if .IsOwner}} owner{{end}}">@{{.Author}}</a>
{{- if .Timestamp}}
<span class="timestamp">{{.Timestamp}}</span>
{{- end}}
</div>
<div class="message-content">{{.Body}}</div>
{{- if .Reactions}}
<div class="reactions">
{{- range .Reactions}}
<span class="reaction">{{.Emoji}} {{.Count}}</span>
{{- end}}
</div>
{{- end}}
</div>
{{- end}}
</div>
<div class="chat-footer">
💬 <a href="https://github.com/{{.Repo}}/issues/{{.Issue}}" class="join-link">Join the conversation in Issue #{{.Issue}}</a>
</div>
</div>
`))

// Render implements Renderer.
func (r *HTMLRenderer) Render(msgs []Message, opts Options) (string, error) {
	data := htmlData{
		Style:       htmlStyle,
		Title:       opts.Title,
		Status:      statusLine(Participants(msgs)),
		Repo:        opts.Repo,
		Issue:       opts.Issue,
		ShowAvatars: opts.ShowAvatars,
		AvatarSize:  opts.AvatarSize,
	}
	for _, m := range msgs {
		data.Messages = append(data.Messages, htmlMessage{
			Author:    m.Author,
			IsOwner:   m.IsOwner,
			AvatarURL: m.AvatarURL,
			Body:      bodyHTML(m.Lines),
			Timestamp: m.Timestamp,
			Reactions: m.Reactions,
		})
	}

	var sb strings.Builder
	if err := htmlTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render html chat: %w", err)
	}
	return sb.String(), nil
}

// bodyHTML escapes the body lines and joins them with <br>.
func bodyHTML(lines []string) template.HTML {
	escaped := make([]string, len(lines))
	for i, line := range lines {
		escaped[i] = html.EscapeString(line)
	}
	return template.HTML(strings.Join(escaped, "<br>"))
}

// statusLine builds the presence line in the chat header.
func statusLine(participants int) string {
	switch participants {
	case 0:
		return "ready for connections"
	case 1:
		return "1 contributor online"
	default:
		return fmt.Sprintf("%d users active", participants)
	}
}
