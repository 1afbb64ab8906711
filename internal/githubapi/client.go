// Package githubapi provides a small GitHub REST client for issue comments.
package githubapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.github.com"
	perPage        = 100
)

// botLoginHints flags well-known automation accounts whose login does not
// carry the Bot account type.
var botLoginHints = []string{"bot", "github-actions", "dependabot", "renovate"}

// Client talks to the GitHub REST API for a single repository.
type Client struct {
	logger     *slog.Logger
	http       *http.Client
	baseURL    string
	token      string
	repo       string
	owner      string
	name       string
	maxRetries int
	retryDelay time.Duration
}

// Options tunes client timeouts and retry behavior.
type Options struct {
	// Timeout is the per-attempt HTTP timeout.
	Timeout time.Duration
	// MaxRetries is how many attempts are made per request before giving up.
	MaxRetries int
	// RetryDelay is the fixed pause between attempts.
	RetryDelay time.Duration
	// BaseURL overrides the API endpoint, used in tests.
	BaseURL string
}

// NewClient validates the owner/repo slug and constructs a Client.
func NewClient(logger *slog.Logger, token, repo string, opts Options) (*Client, error) {
	repo = strings.TrimSpace(repo)
	if repo == "" {
		return nil, fmt.Errorf("repository is empty")
	}
	parts := strings.Split(repo, "/")
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return nil, fmt.Errorf("invalid repository slug %q, expected owner/repo", repo)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 1
	}
	baseURL := strings.TrimSuffix(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		logger:     logger,
		http:       &http.Client{Timeout: opts.Timeout},
		baseURL:    baseURL,
		token:      token,
		repo:       repo,
		owner:      parts[0],
		name:       parts[1],
		maxRetries: opts.MaxRetries,
		retryDelay: opts.RetryDelay,
	}, nil
}

// FetchIssueComments returns all comments on the issue in creation order,
// following pagination.
func (c *Client) FetchIssueComments(ctx context.Context, number int) ([]IssueComment, error) {
	if number <= 0 {
		return nil, fmt.Errorf("issue number must be positive")
	}

	var out []IssueComment
	for page := 1; ; page++ {
		url := fmt.Sprintf("%s/repos/%s/issues/%d/comments?per_page=%d&page=%d",
			c.baseURL, c.repo, number, perPage, page)

		var nodes []commentNode
		if err := c.getJSON(ctx, url, &nodes); err != nil {
			return nil, err
		}
		for _, node := range nodes {
			out = append(out, IssueComment{
				ID:            node.ID,
				Author:        strings.TrimSpace(node.User.Login),
				AuthorIsBot:   isBotUser(node.User.Login, node.User.Type),
				AuthorIsOwner: node.AuthorAssociation == "OWNER" || node.User.Login == c.owner,
				AvatarURL:     node.User.AvatarURL,
				Body:          strings.TrimSpace(node.Body),
				CreatedAt:     strings.TrimSpace(node.CreatedAt),
				Reactions:     node.Reactions.list(),
			})
		}
		if len(nodes) < perPage {
			break
		}
	}
	return out, nil
}

// getJSON fetches url and decodes the response, retrying transient failures
// (network errors and 5xx) with a fixed delay between attempts.
func (c *Client) getJSON(ctx context.Context, url string, dst any) error {
	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		if attempt > 1 {
			if c.logger != nil {
				c.logger.Warn("retrying comments fetch",
					"attempt", attempt,
					"max_retries", c.maxRetries,
					"error", lastErr,
				)
			}
			select {
			case <-time.After(c.retryDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		retryable, err := c.doOnce(ctx, url, dst)
		if err == nil {
			return nil
		}
		if !retryable {
			return err
		}
		lastErr = err
	}
	return fmt.Errorf("fetch %s: giving up after %d attempts: %w", url, c.maxRetries, lastErr)
}

// doOnce performs a single request attempt. The first return value reports
// whether the failure is transient and worth retrying.
func (c *Client) doOnce(ctx context.Context, url string, dst any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("create request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", c.repo+"-profilectl")
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return true, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 500 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return true, fmt.Errorf("HTTP %d from %s: %s", resp.StatusCode, url, strings.TrimSpace(string(body)))
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return false, fmt.Errorf("HTTP %d from %s: %s", resp.StatusCode, url, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return false, fmt.Errorf("decode response from %s: %w", url, err)
	}
	return false, nil
}

// isBotUser applies the account type and the login-substring heuristics.
func isBotUser(login, userType string) bool {
	if strings.EqualFold(userType, "Bot") {
		return true
	}
	login = strings.ToLower(login)
	for _, hint := range botLoginHints {
		if strings.Contains(login, hint) {
			return true
		}
	}
	return false
}
