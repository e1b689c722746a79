package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	t.Run("short strings pass through", func(t *testing.T) {
		assert.Equal(t, "hello", Truncate("hello", 10))
		assert.Equal(t, "hello", Truncate("hello", 5))
	})

	t.Run("long strings get an ellipsis within the limit", func(t *testing.T) {
		assert.Equal(t, "hello w...", Truncate("hello world and more", 10))
		assert.Len(t, Truncate("hello world and more", 10), 10)
	})

	t.Run("tiny limits hard-truncate", func(t *testing.T) {
		assert.Equal(t, "he", Truncate("hello", 2))
		assert.Equal(t, "", Truncate("hello", 0))
		assert.Equal(t, "", Truncate("hello", -1))
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		assert.Equal(t, "héllo", Truncate("héllo", 5))
	})
}

func TestTable(t *testing.T) {
	t.Run("columns align on the widest cell", func(t *testing.T) {
		table := NewTable()
		table.AddRow("1", "short", "pending")
		table.AddRow("1234567890123", "a longer title", "done")

		var buf strings.Builder
		table.Render(&buf)

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		assert.Len(t, lines, 2)
		assert.Equal(t, strings.Index(lines[0], "short"), strings.Index(lines[1], "a longer title"))
	})

	t.Run("max width truncates a column", func(t *testing.T) {
		table := NewTable()
		table.SetMaxWidth(1, 8)
		table.AddRow("1", "a very long title indeed", "pending")

		var buf strings.Builder
		table.Render(&buf)

		assert.Contains(t, buf.String(), "a ver...")
		assert.NotContains(t, buf.String(), "a very long title indeed")
	})

	t.Run("color hook applies after width calculation", func(t *testing.T) {
		table := NewTable()
		table.SetColor(0, func(s string) string { return "<" + s + ">" })
		table.AddRow("x", "tail")

		var buf strings.Builder
		table.Render(&buf)

		assert.Contains(t, buf.String(), "<x>")
		assert.Contains(t, buf.String(), "tail")
	})

	t.Run("empty table renders nothing", func(t *testing.T) {
		var buf strings.Builder
		NewTable().Render(&buf)
		assert.Empty(t, buf.String())
	})
}

func TestStatusColor(t *testing.T) {
	prev := colorEnabled
	defer SetColorEnabled(prev)

	t.Run("no escape codes when colors are disabled", func(t *testing.T) {
		SetColorEnabled(false)

		assert.Equal(t, "done", StatusColor("done"))
		assert.Equal(t, "pending", StatusColor("pending"))
	})

	t.Run("done is green when colors are enabled", func(t *testing.T) {
		SetColorEnabled(true)

		colored := StatusColor("done")
		assert.Contains(t, colored, "done")
		assert.Contains(t, colored, "\033[32m")
	})
}
