package formatter

import (
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestUpdatedAgoFrom(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"seconds", now.Add(-20 * time.Second), "Just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-2 * time.Hour), "2h ago"},
		{"yesterday", now.Add(-24 * time.Hour), "Yesterday"},
		{"days", now.Add(-72 * time.Hour), "3 days ago"},
		{"old", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), "Jan 2, 2024"},
		{"future", now.Add(48 * time.Hour), "Mar 22, 2024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UpdatedAgoFrom(tt.at, now))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefghij", 5))
	assert.Equal(t, "", Truncate("abc", 0))

	styled := Truncate(StyleBold.Render("abcdefghij"), 5)
	assert.Equal(t, "abcd…", ansi.Strip(styled))
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "12345678", ansi.Strip(TruncID("1234567890abcdef")))
	assert.Equal(t, "abc", ansi.Strip(TruncID("abc")))
}

func TestWrap(t *testing.T) {
	out := Wrap("the quick brown fox jumps over the lazy dog", 12)
	for _, line := range splitLines(out) {
		assert.LessOrEqual(t, ansi.StringWidth(line), 12)
	}
}

func TestHours(t *testing.T) {
	assert.Equal(t, "8h", Hours(8))
}
