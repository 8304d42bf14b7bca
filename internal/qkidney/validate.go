// Package qkidney validates the arguments of the QKidney®-2010 risk
// equations before they are scored.
//
// Validation follows the ClinRisk routines: every argument the selected
// equation takes is checked against its permitted range, and one message
// per failure is appended to a caller-supplied, fixed-size error buffer.
// Messages that do not fit are truncated rather than overflowing it.
//
// Validate works on the raw buffer for callers that already own one. Check
// allocates the buffer and returns a structured Result.
package qkidney

import (
	"fmt"
	"strings"

	"github.com/jpl-au/irisk/internal/check"
	"github.com/jpl-au/irisk/internal/strl"
)

// DefaultBufferSize is the error buffer size used when none is configured.
const DefaultBufferSize = 1024

// Options adjusts validation policy.
type Options struct {
	// RejectNaN makes NaN fail the bmi, sbp and town range checks. By
	// default NaN passes them, as it does in the ClinRisk routines.
	RejectNaN bool
}

func (o Options) inRange() func(x, min, max float64) bool {
	if o.RejectNaN {
		return check.DoubleInRangeStrict
	}
	return check.DoubleInRange
}

// rule checks one argument. min and max are the inclusive bounds reported
// in the failure message.
type rule struct {
	min, max int
	test     func(a *Args, o Options) bool
}

func (r rule) message(name string) string {
	return fmt.Sprintf("error: %s must be in range (%d,%d)\n", name, r.min, r.max)
}

func intRule(get func(*Args) int, min, max int) rule {
	return rule{min: min, max: max, test: func(a *Args, _ Options) bool {
		return check.IntInRange(get(a), min, max)
	}}
}

func boolRule(get func(*Args) int) rule {
	return rule{min: 0, max: 1, test: func(a *Args, _ Options) bool {
		return check.IsValidBoolean(get(a))
	}}
}

func floatRule(get func(*Args) float64, min, max int) rule {
	return rule{min: min, max: max, test: func(a *Args, o Options) bool {
		return o.inRange()(get(a), float64(min), float64(max))
	}}
}

var rules = map[string]rule{
	"age":           intRule(func(a *Args) int { return a.Age }, 35, 74),
	"b_CCF":         boolRule(func(a *Args) int { return a.CCF }),
	"b_cvd":         boolRule(func(a *Args) int { return a.CVD }),
	"b_nsaid":       boolRule(func(a *Args) int { return a.NSAID }),
	"b_pvd":         boolRule(func(a *Args) int { return a.PVD }),
	"b_ra":          boolRule(func(a *Args) int { return a.RA }),
	"b_renalstones": boolRule(func(a *Args) int { return a.RenalStones }),
	"b_sle":         boolRule(func(a *Args) int { return a.SLE }),
	"b_treatedhyp":  boolRule(func(a *Args) int { return a.TreatedHyp }),
	"b_type1":       boolRule(func(a *Args) int { return a.Type1 }),
	"b_type2":       boolRule(func(a *Args) int { return a.Type2 }),
	"bmi":           floatRule(func(a *Args) float64 { return a.BMI }, 20, 40),
	"ethrisk":       intRule(func(a *Args) int { return a.Ethrisk }, 1, 9),
	"fh_kidney":     boolRule(func(a *Args) int { return a.FHKidney }),
	"sbp":           floatRule(func(a *Args) float64 { return a.SBP }, 70, 210),
	"smoke_cat":     intRule(func(a *Args) int { return a.SmokeCat }, 0, 4),
	"surv":          intRule(func(a *Args) int { return a.Surv }, 1, 5),
	"town":          floatRule(func(a *Args) float64 { return a.Town }, -7, 11),
}

const diabetesMessage = "error: only one of b_type1 and b_type2 can be nonzero\n"

// Validate checks a against the equation for m and s. The content of errBuf
// is replaced by one line per failed check, truncated to fit. Returns true
// when every check passed.
func Validate(m Model, s Sex, a Args, opts Options, errBuf []byte) bool {
	return validate(m, s, &a, opts, errBuf).ok
}

type outcome struct {
	ok        bool
	failures  int
	length    int
	truncated bool
}

func validate(m Model, s Sex, a *Args, opts Options, errBuf []byte) outcome {
	strl.Reset(errBuf)
	size := len(errBuf)
	out := outcome{ok: true}

	add := func(msg string) {
		out.ok = false
		out.failures++
		out.length += len(msg)
		if strl.BoundedAppend(errBuf, msg, size) >= size {
			out.truncated = true
		}
	}

	for _, name := range ArgNames(m, s) {
		if r := rules[name]; !r.test(a, opts) {
			add(r.message(name))
		}
	}
	if a.Type1 != 0 && a.Type2 != 0 {
		add(diabetesMessage)
	}
	return out
}

// Result is the outcome of Check.
//
// Errors holds the lines that fit in the error buffer. When Truncated is
// set, fewer lines than Failures may be present and the last one may be cut
// short (e.g. "error: age must"). Failures always counts every failed check.
type Result struct {
	Model     string   `json:"model"`
	Sex       string   `json:"sex"`
	OK        bool     `json:"ok"`
	Failures  int      `json:"failures"`
	Errors    []string `json:"errors,omitempty"`
	Truncated bool     `json:"truncated"`
	Length    int      `json:"length"` // bytes all messages would need, terminator excluded
}

// Check validates a using an error buffer of bufSize bytes. A bufSize below
// one uses DefaultBufferSize.
func Check(m Model, s Sex, a Args, opts Options, bufSize int) Result {
	if bufSize < 1 {
		bufSize = DefaultBufferSize
	}
	buf := make([]byte, bufSize)
	out := validate(m, s, &a, opts, buf)

	r := Result{
		Model:     m.String(),
		Sex:       s.String(),
		OK:        out.ok,
		Failures:  out.failures,
		Truncated: out.truncated,
		Length:    out.length,
	}
	for _, line := range strings.Split(strl.String(buf), "\n") {
		if line != "" {
			r.Errors = append(r.Errors, line)
		}
	}
	return r
}

// Err returns nil for a passing result, otherwise an error wrapping
// ErrInvalidArgs that lists the messages. A truncated result says how many
// checks failed, since the listed messages may be incomplete.
func (r Result) Err() error {
	if r.OK {
		return nil
	}
	msg := strings.Join(r.Errors, "; ")
	if r.Truncated {
		msg += fmt.Sprintf(" (truncated, %d failed)", r.Failures)
	}
	return fmt.Errorf("%w: %s", ErrInvalidArgs, msg)
}
