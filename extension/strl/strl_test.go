package strl

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/jpl-au/irisk/extension"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCat(t *testing.T) {
	tests := []struct {
		name      string
		dst, src  string
		size      int
		want      string
		length    int
		needed    int
		truncated bool
		dropped   int
	}{
		{"fits", "ab", "cdef", 8, "abcdef", 6, 7, false, 0},
		{"exact fit", "ab", "cdef", 7, "abcdef", 6, 7, false, 0},
		{"truncated", "ab", "cdef", 5, "abcd", 6, 7, true, 2},
		{"empty src", "ab", "", 3, "ab", 2, 3, false, 0},
		{"dst fills buffer", "xyz", "x", 3, "xyz", 4, 5, true, 1},
		{"dst larger than buffer", "abcdef", "gh", 4, "abcd", 6, 9, true, 4},
		{"zero size", "", "abc", 0, "", 3, 4, true, 3},
		{"src stops at NUL", "a", "b\x00c", 8, "ab", 2, 3, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Cat(tt.dst, tt.src, tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Content)
			assert.Equal(t, tt.length, r.Length)
			assert.Equal(t, tt.needed, r.Needed)
			assert.Equal(t, tt.truncated, r.Truncated)
			assert.Equal(t, tt.dropped, r.Dropped)
		})
	}
}

func TestCat_SizeOutOfRange(t *testing.T) {
	_, err := Cat("a", "b", -1)
	assert.Error(t, err)

	_, err = Cat("a", "b", MaxSize+1)
	assert.Error(t, err)
}

func TestDiff_DstLargerThanBuffer(t *testing.T) {
	r, err := Cat("abcdef", "gh", 4)
	require.NoError(t, err)

	d := Diff("abcdef", "gh", r)
	assert.Equal(t, "efgh", d.Dropped())
	assert.Equal(t, len(d.Dropped()), r.Dropped)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, isTerminal(f))
}

func TestDiff(t *testing.T) {
	r, err := Cat("ab", "cdef", 5)
	require.NoError(t, err)

	d := Diff("ab", "cdef", r)
	assert.Equal(t, "ef", d.Dropped())
	assert.Equal(t, "abcd[-ef-]", d.Format(false))
}

// recorder captures dispatched events.
type recorder struct{ events []extension.Event }

func (r *recorder) Name() string                  { return "strl-test-recorder" }
func (r *recorder) Commands() []*cobra.Command    { return nil }
func (r *recorder) MCPTools() []extension.MCPTool { return nil }
func (r *recorder) HandleEvent(_ extension.Context, e extension.Event) error {
	r.events = append(r.events, e)
	return nil
}

var rec = &recorder{}

func init() {
	extension.Register(rec)
}

func TestHandleCat(t *testing.T) {
	extCtx := extension.NewContext(nil)

	call := func(args map[string]any) *mcp.CallToolResult {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = args
		res, err := handleCat(context.Background(), extCtx, req)
		require.NoError(t, err)
		require.NotNil(t, res)
		return res
	}

	t.Run("truncation dispatches event", func(t *testing.T) {
		before := len(rec.events)
		res := call(map[string]any{"dst": "ab", "src": "cdef", "size": float64(5), "diff": true})
		require.False(t, res.IsError)

		var r Result
		require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &r))
		assert.Equal(t, "abcd", r.Content)
		assert.Equal(t, 6, r.Length)
		assert.Equal(t, "abcd[-ef-]", r.Diff)

		require.Len(t, rec.events, before+1)
		assert.Equal(t, extension.TruncationEvent{Source: "mcp", Size: 5, Length: 6, Dropped: 2}, rec.events[before])
	})

	t.Run("no event without truncation", func(t *testing.T) {
		before := len(rec.events)
		res := call(map[string]any{"dst": "ab", "src": "cd", "size": float64(16)})
		require.False(t, res.IsError)
		assert.Len(t, rec.events, before)
	})

	t.Run("missing size", func(t *testing.T) {
		res := call(map[string]any{"dst": "ab", "src": "cd"})
		assert.True(t, res.IsError)
	})
}
