// Package strl provides the strl extension for irisk.
// It registers commands: cat.
package strl

import (
	"fmt"
	"io"

	"github.com/jpl-au/irisk/cmd"
	"github.com/jpl-au/irisk/extension"
	"github.com/jpl-au/irisk/internal/diff"
	"github.com/jpl-au/irisk/internal/log"
	"github.com/jpl-au/irisk/internal/strl"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// MaxSize bounds the buffer a single cat may allocate.
const MaxSize = 1 << 20

func init() {
	extension.Register(&Extension{})
}

// Extension implements the strl extension.
type Extension struct{}

// Compile-time interface compliance.
var _ extension.Extension = (*Extension)(nil)

// Name returns "strl".
func (e *Extension) Name() string { return "strl" }

// Commands returns the cat command.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{e.newCatCmd()}
}

// MCPTools returns irisk_cat.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{catTool()}
}

// Result is the outcome of a bounded append.
type Result struct {
	Content   string `json:"content"`   // visible buffer content after the append
	Size      int    `json:"size"`      // buffer capacity, terminator included
	Length    int    `json:"length"`    // append return value: buffer content length plus src length
	Needed    int    `json:"needed"`    // bytes dst+src need, terminator included
	Truncated bool   `json:"truncated"` // Length >= Size
	Dropped   int    `json:"dropped"`   // bytes of dst+src that did not fit
	Diff      string `json:"diff,omitempty"`
}

// Cat places dst in a zeroed buffer of size bytes and appends src onto it.
// A dst of size bytes or more fills the buffer with no terminator, so
// nothing is appended. Length then counts only the size bytes of dst that
// landed in the buffer; Needed and Dropped count all of dst.
func Cat(dst, src string, size int) (Result, error) {
	if size < 0 || size > MaxSize {
		return Result{}, fmt.Errorf("size %d out of range (0,%d)", size, MaxSize)
	}

	buf := make([]byte, size)
	copy(buf, dst)
	n := strl.BoundedAppend(buf, src, size)

	got := strl.String(buf)
	want := strl.Strlen(dst) + strl.Strlen(src)
	return Result{
		Content:   got,
		Size:      size,
		Length:    n,
		Needed:    want + 1,
		Truncated: n >= size,
		Dropped:   want - len(got),
	}, nil
}

// Diff compares the unbounded concatenation with what landed in the buffer.
func Diff(dst, src string, r Result) diff.Result {
	want := dst[:strl.Strlen(dst)] + src[:strl.Strlen(src)]
	return diff.Compute(want, r.Content)
}

// event builds the truncation notice for r.
func event(source string, r Result) extension.TruncationEvent {
	return extension.TruncationEvent{Source: source, Size: r.Size, Length: r.Length, Dropped: r.Dropped}
}

func (e *Extension) newCatCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "cat <dst> <src>",
		Short: "Append src onto dst in a buffer of fixed size",
		Long: `Places dst in a buffer of --size bytes and appends as much of src as fits,
always leaving room for the terminator. Prints the buffer content.

A truncated append is reported on stderr with the bytes dst and src need
together, terminator included. --diff shows what was dropped: [-dropped-]
in plain output, red when stdout is a terminal.

  irisk cat "ab" "cdef" --size 8          # abcdef
  irisk cat "ab" "cdef" --size 5          # abcd (truncated)
  irisk cat "ab" "cdef" --size 5 --diff   # abcd[-ef-]`,
		Args: cobra.ExactArgs(2),
		RunE: e.runCat,
	}
	c.Flags().Int(extension.FlagSize, 0, "Buffer capacity in bytes, terminator included")
	c.Flags().Bool(extension.FlagDiff, false, "Show what did not fit")
	_ = c.MarkFlagRequired(extension.FlagSize)
	return c
}

func (e *Extension) runCat(c *cobra.Command, args []string) error {
	dst, src := args[0], args[1]
	size, _ := c.Flags().GetInt(extension.FlagSize)
	showDiff, _ := c.Flags().GetBool(extension.FlagDiff)

	l := log.Event("strl:cat", "append").
		Author(cmd.Author()).
		Subject(fmt.Sprintf("size=%d", size))

	r, err := Cat(dst, src, size)
	if err != nil {
		l.Write(err)
		return cmd.PrintJSONError(err)
	}

	d := Diff(dst, src, r)
	if showDiff {
		r.Diff = d.Format(false)
	}

	l.Detail("length", r.Length).Detail("truncated", r.Truncated).Write(nil)

	if r.Truncated {
		if err := extension.Dispatch(cmd.Context(), event("cli", r)); err != nil {
			fmt.Fprintf(c.ErrOrStderr(), "warning: %v\n", err)
		}
	}

	if cmd.JSON() {
		return cmd.PrintJSON(r)
	}

	switch {
	case showDiff:
		fmt.Fprintln(cmd.Out(), d.Format(isTerminal(cmd.Out())))
	default:
		fmt.Fprintln(cmd.Out(), r.Content)
	}
	if r.Truncated {
		fmt.Fprintf(c.ErrOrStderr(), "truncated: needed %d bytes, have %d (dropped %d)\n", r.Needed, r.Size, r.Dropped)
	}
	return nil
}

// isTerminal reports whether w writes to a terminal. Writers without a file
// descriptor never do.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
