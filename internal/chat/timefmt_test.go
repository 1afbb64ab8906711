package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatTimestampRelativeBuckets(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		elapsed time.Duration
		want    string
	}{
		{5 * time.Second, "just now"},
		{59 * time.Second, "just now"},
		{60 * time.Second, "1 minute ago"},
		{125 * time.Second, "2 minutes ago"},
		{59 * time.Minute, "59 minutes ago"},
		{time.Hour, "1 hour ago"},
		{5*time.Hour + 59*time.Minute, "5 hours ago"},
		{24 * time.Hour, "1 day ago"},
		{73 * time.Hour, "3 days ago"},
	}
	for _, tc := range cases {
		raw := now.Add(-tc.elapsed).Format(time.RFC3339)
		got, err := FormatTimestamp(raw, true, now)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "elapsed %s", tc.elapsed)
	}
}

func TestFormatTimestampAbsoluteKeepsZone(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	got, err := FormatTimestamp("2026-08-29T10:23:00+02:00", false, now)
	require.NoError(t, err)
	require.Equal(t, "10:23", got)
}

func TestFormatTimestampMalformed(t *testing.T) {
	got, err := FormatTimestamp("yesterday-ish", true, time.Now())
	require.Error(t, err)
	require.Equal(t, "??:??", got)
}
