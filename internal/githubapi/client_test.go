package githubapi

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string, maxRetries int) *Client {
	t.Helper()
	c, err := NewClient(nil, "test-token", "keethesh/keethesh", Options{
		Timeout:    5 * time.Second,
		MaxRetries: maxRetries,
		RetryDelay: time.Millisecond,
		BaseURL:    baseURL,
	})
	require.NoError(t, err)
	return c
}

func TestNewClientValidatesSlug(t *testing.T) {
	for _, repo := range []string{"", "justowner", "a/b/c", "/name", "owner/"} {
		_, err := NewClient(nil, "t", repo, Options{})
		require.Error(t, err, "slug %q", repo)
	}
}

func TestFetchIssueCommentsMapsFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "token test-token", r.Header.Get("Authorization"))
		require.Contains(t, r.URL.Path, "/repos/keethesh/keethesh/issues/2/comments")
		fmt.Fprint(w, `[
			{
				"id": 11,
				"body": "  hey there  ",
				"created_at": "2024-07-22T10:23:00Z",
				"author_association": "NONE",
				"user": {"login": "alice", "type": "User", "avatar_url": "https://example.com/a.png"},
				"reactions": {"+1": 2, "rocket": 1}
			},
			{
				"id": 12,
				"body": "thanks!",
				"created_at": "2024-07-22T11:47:00Z",
				"author_association": "OWNER",
				"user": {"login": "keethesh", "type": "User"},
				"reactions": {}
			},
			{
				"id": 13,
				"body": "bump",
				"created_at": "2024-07-22T12:00:00Z",
				"author_association": "NONE",
				"user": {"login": "dependabot[bot]", "type": "Bot"},
				"reactions": {}
			}
		]`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 1)
	comments, err := c.FetchIssueComments(t.Context(), 2)
	require.NoError(t, err)
	require.Len(t, comments, 3)

	require.Equal(t, "alice", comments[0].Author)
	require.Equal(t, "hey there", comments[0].Body)
	require.False(t, comments[0].AuthorIsBot)
	require.False(t, comments[0].AuthorIsOwner)
	require.Equal(t, []Reaction{{Emoji: "👍", Count: 2}, {Emoji: "🚀", Count: 1}}, comments[0].Reactions)

	require.True(t, comments[1].AuthorIsOwner)
	require.Empty(t, comments[1].Reactions)

	require.True(t, comments[2].AuthorIsBot)
}

func TestFetchIssueCommentsPaginates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		var sb strings.Builder
		sb.WriteString("[")
		count := perPage
		if page == "2" {
			count = 3
		}
		for i := 0; i < count; i++ {
			if i > 0 {
				sb.WriteString(",")
			}
			fmt.Fprintf(&sb, `{"id": %s%03d, "body": "m", "created_at": "2024-07-22T10:00:00Z", "user": {"login": "alice"}}`, page, i)
		}
		sb.WriteString("]")
		fmt.Fprint(w, sb.String())
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 1)
	comments, err := c.FetchIssueComments(t.Context(), 1)
	require.NoError(t, err)
	require.Len(t, comments, perPage+3)
}

func TestFetchIssueCommentsRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "upstream hiccup", http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 3)
	_, err := c.FetchIssueComments(t.Context(), 1)
	require.NoError(t, err)
	require.Equal(t, int32(3), calls.Load())
}

func TestFetchIssueCommentsGivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 3)
	_, err := c.FetchIssueComments(t.Context(), 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "giving up after 3 attempts")
	require.Equal(t, int32(3), calls.Load())
}

func TestFetchIssueCommentsDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 3)
	_, err := c.FetchIssueComments(t.Context(), 1)
	require.Error(t, err)
	require.Equal(t, int32(1), calls.Load())
}

func TestFetchIssueCommentsRejectsBadIssueNumber(t *testing.T) {
	c := newTestClient(t, "http://127.0.0.1:0", 1)
	_, err := c.FetchIssueComments(t.Context(), 0)
	require.Error(t, err)
}

func TestIsBotUser(t *testing.T) {
	cases := []struct {
		login    string
		userType string
		want     bool
	}{
		{"alice", "User", false},
		{"some-app", "Bot", true},
		{"github-actions[bot]", "User", true},
		{"dependabot[bot]", "User", true},
		{"renovate-runner", "User", true},
		{"robotics-fan", "User", true},
		{"keethesh", "User", false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, isBotUser(tc.login, tc.userType), "login %q", tc.login)
	}
}
