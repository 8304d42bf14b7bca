// Package diff shows what a bounded append dropped by comparing the
// unbounded concatenation with what actually landed in the buffer.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Result holds a character-level comparison of the unbounded result (Want)
// and the bounded buffer content (Got).
type Result struct {
	Want  string
	Got   string
	diffs []diffmatchpatch.Diff
}

// Compute compares want with got.
func Compute(want, got string) Result {
	dmp := diffmatchpatch.New()
	return Result{
		Want:  want,
		Got:   got,
		diffs: dmp.DiffMain(want, got, false),
	}
}

// Dropped returns the bytes of Want missing from Got, in order.
func (r Result) Dropped() string {
	var b strings.Builder
	for _, d := range r.diffs {
		if d.Type == diffmatchpatch.DiffDelete {
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

// Changed reports whether Got differs from Want.
func (r Result) Changed() bool {
	for _, d := range r.diffs {
		if d.Type != diffmatchpatch.DiffEqual {
			return true
		}
	}
	return false
}

// Format renders Got inline with dropped text as [-text-] and unexpected
// text as {+text+}. With colour, dropped text is red and unexpected green.
func (r Result) Format(colour bool) string {
	const (
		red   = "\033[31m"
		green = "\033[32m"
		reset = "\033[0m"
	)

	var b strings.Builder
	for _, d := range r.diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			b.WriteString(d.Text)
		case diffmatchpatch.DiffDelete:
			if colour {
				b.WriteString(red + d.Text + reset)
			} else {
				fmt.Fprintf(&b, "[-%s-]", d.Text)
			}
		case diffmatchpatch.DiffInsert:
			if colour {
				b.WriteString(green + d.Text + reset)
			} else {
				fmt.Fprintf(&b, "{+%s+}", d.Text)
			}
		}
	}
	return b.String()
}
