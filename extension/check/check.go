// Package check provides the check extension for irisk.
// It registers commands: bool, range.
package check

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/jpl-au/irisk/cmd"
	"github.com/jpl-au/irisk/extension"
	"github.com/jpl-au/irisk/internal/check"
	"github.com/jpl-au/irisk/internal/config"
	"github.com/jpl-au/irisk/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the check extension.
type Extension struct {
	cfg *config.Config
}

// Compile-time interface compliance.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "check".
func (e *Extension) Name() string { return "check" }

// Init keeps the loaded config for the NaN policy.
func (e *Extension) Init(ctx extension.Context) error {
	e.cfg = ctx.Config()
	return nil
}

// Commands returns the bool and range commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newBoolCmd(),
		e.newRangeCmd(),
	}
}

// MCPTools returns irisk_is_boolean and irisk_in_range.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{
		{
			Tool: mcp.NewTool("irisk_is_boolean",
				mcp.WithDescription("Report whether an integer is a valid boolean flag (exactly 0 or 1)"),
				mcp.WithNumber("value", mcp.Required(), mcp.Description("Integer to test")),
			),
			Handler: handleIsBoolean,
		},
		{
			Tool: mcp.NewTool("irisk_in_range",
				mcp.WithDescription("Report whether a value lies in the inclusive range [min, max]"),
				mcp.WithNumber("value", mcp.Required(), mcp.Description("Value to test")),
				mcp.WithNumber("min", mcp.Required(), mcp.Description("Inclusive lower bound")),
				mcp.WithNumber("max", mcp.Required(), mcp.Description("Inclusive upper bound")),
				mcp.WithBoolean("int", mcp.Description("Compare as integers (fractions are truncated)")),
				mcp.WithBoolean("strict", mcp.Description("Treat NaN as out of range")),
			),
			Handler: handleInRange,
		},
	}
}

// Result is the outcome of a bool or range check.
type Result struct {
	Kind  string `json:"kind"` // "boolean", "int" or "double"
	Value string `json:"value"`
	Min   string `json:"min,omitempty"`
	Max   string `json:"max,omitempty"`
	OK    bool   `json:"ok"`
}

// RangeOptions selects the range predicate.
type RangeOptions struct {
	Int    bool
	Strict bool
}

// Bool runs IsValidBoolean on v.
func Bool(v int) Result {
	return Result{Kind: "boolean", Value: strconv.Itoa(v), OK: check.IsValidBoolean(v)}
}

// Range parses x, min and max and runs the predicate opts selects. Integer
// ranges reject non-integer text. Double ranges accept "NaN" and "Inf".
func Range(x, min, max string, opts RangeOptions) (Result, error) {
	if opts.Int {
		xi, err := parseInt("value", x)
		if err != nil {
			return Result{}, err
		}
		lo, err := parseInt("min", min)
		if err != nil {
			return Result{}, err
		}
		hi, err := parseInt("max", max)
		if err != nil {
			return Result{}, err
		}
		return Result{
			Kind: "int", Value: strconv.Itoa(xi), Min: strconv.Itoa(lo), Max: strconv.Itoa(hi),
			OK: check.IntInRange(xi, lo, hi),
		}, nil
	}

	xf, err := parseFloat("value", x)
	if err != nil {
		return Result{}, err
	}
	lo, err := parseFloat("min", min)
	if err != nil {
		return Result{}, err
	}
	hi, err := parseFloat("max", max)
	if err != nil {
		return Result{}, err
	}
	return rangeDouble(xf, lo, hi, opts.Strict), nil
}

func rangeDouble(x, lo, hi float64, strict bool) Result {
	test := check.DoubleInRange
	if strict {
		test = check.DoubleInRangeStrict
	}
	return Result{
		Kind: "double", Value: formatFloat(x), Min: formatFloat(lo), Max: formatFloat(hi),
		OK: test(x, lo, hi),
	}
}

func parseInt(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not an integer", name, s)
	}
	return v, nil
}

func parseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not a number", name, s)
	}
	return v, nil
}

// toInt truncates v toward zero like a C cast. Values a cast would not
// define (NaN, infinities, anything outside the int range) are errors.
func toInt(name string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < float64(math.MinInt) || v >= -float64(math.MinInt) {
		return 0, fmt.Errorf("%s %s is not representable as an integer", name, formatFloat(v))
	}
	return int(v), nil
}

func rangeError(err error) *mcp.CallToolResult {
	log.Event("mcp:irisk_in_range", "check").Author("mcp").Subject("int").Write(err)
	return mcp.NewToolResultError(err.Error())
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// strict reports whether NaN should fail, from the flag or checks.reject_nan.
func (e *Extension) strict(flag bool) bool {
	return flag || (e.cfg != nil && e.cfg.RejectNaN())
}

// printResult writes r as JSON or as a single true/false line.
func printResult(r Result) error {
	if cmd.JSON() {
		return cmd.PrintJSON(r)
	}
	fmt.Fprintln(cmd.Out(), r.OK)
	return nil
}

func (e *Extension) newBoolCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bool <value>",
		Short: "Check that an integer is 0 or 1",
		Long: `Prints true if value is exactly 0 or 1, false otherwise.

  irisk bool 1     # true
  irisk bool 2     # false
  irisk bool -- -1 # false (use -- before negative numbers)`,
		Args: cobra.ExactArgs(1),
		RunE: e.runBool,
	}
}

func (e *Extension) runBool(_ *cobra.Command, args []string) error {
	l := log.Event("check:bool", "check").Author(cmd.Author()).Subject("boolean")

	v, err := parseInt("value", args[0])
	if err != nil {
		l.Write(err)
		return cmd.PrintJSONError(err)
	}

	r := Bool(v)
	l.Detail("value", v).Detail("ok", r.OK).Write(nil)
	return printResult(r)
}

func (e *Extension) newRangeCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "range <value> <min> <max>",
		Short: "Check that a value lies in an inclusive range",
		Long: `Prints true if min <= value <= max, false otherwise.

Values are compared as doubles unless --int is given. A NaN value is in
range unless --strict is given or checks.reject_nan is set in config.

  irisk range 25.5 20 40          # true
  irisk range NaN 20 40           # true
  irisk range --strict NaN 20 40  # false
  irisk range --int 3 1 9         # true
  irisk range -- -8 -7 11         # false (use -- before negative numbers)`,
		Args: cobra.ExactArgs(3),
		RunE: e.runRange,
	}
	c.Flags().Bool(extension.FlagInt, false, "Compare as integers")
	c.Flags().Bool(extension.FlagStrict, false, "Treat NaN as out of range")
	return c
}

func (e *Extension) runRange(c *cobra.Command, args []string) error {
	asInt, _ := c.Flags().GetBool(extension.FlagInt)
	strictFlag, _ := c.Flags().GetBool(extension.FlagStrict)
	opts := RangeOptions{Int: asInt, Strict: e.strict(strictFlag)}

	subject := "double"
	if asInt {
		subject = "int"
	}
	l := log.Event("check:range", "check").Author(cmd.Author()).Subject(subject)

	r, err := Range(args[0], args[1], args[2], opts)
	if err != nil {
		l.Write(err)
		return cmd.PrintJSONError(err)
	}

	l.Detail("strict", opts.Strict).Detail("ok", r.OK).Write(nil)
	return printResult(r)
}

func handleIsBoolean(_ context.Context, _ extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	v, err := req.RequireFloat("value")
	if err != nil {
		return mcp.NewToolResultError("value is required"), nil //nolint:nilerr
	}
	if _, err := toInt("value", v); err != nil {
		log.Event("mcp:irisk_is_boolean", "check").Author("mcp").Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	// 0.5 truncates to 0 and would pass, so only whole numbers are accepted.
	if v != math.Trunc(v) {
		log.Event("mcp:irisk_is_boolean", "check").Author("mcp").Write(fmt.Errorf("value %v is not an integer", v))
		return extension.JSONResult(Result{Kind: "boolean", Value: formatFloat(v), OK: false})
	}

	r := Bool(int(v))
	log.Event("mcp:irisk_is_boolean", "check").Author("mcp").Detail("ok", r.OK).Write(nil)
	return extension.JSONResult(r)
}

func handleInRange(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	x, err := req.RequireFloat("value")
	if err != nil {
		return mcp.NewToolResultError("value is required"), nil //nolint:nilerr
	}
	lo, err := req.RequireFloat("min")
	if err != nil {
		return mcp.NewToolResultError("min is required"), nil //nolint:nilerr
	}
	hi, err := req.RequireFloat("max")
	if err != nil {
		return mcp.NewToolResultError("max is required"), nil //nolint:nilerr
	}

	var r Result
	if extension.ArgBool(req, "int", false) {
		xi, err := toInt("value", x)
		if err != nil {
			return rangeError(err), nil
		}
		loi, err := toInt("min", lo)
		if err != nil {
			return rangeError(err), nil
		}
		hii, err := toInt("max", hi)
		if err != nil {
			return rangeError(err), nil
		}
		r = Result{
			Kind: "int", Value: strconv.Itoa(xi), Min: strconv.Itoa(loi), Max: strconv.Itoa(hii),
			OK: check.IntInRange(xi, loi, hii),
		}
	} else {
		strict := extension.ArgBool(req, "strict", false) || extCtx.Config().RejectNaN()
		r = rangeDouble(x, lo, hi, strict)
	}

	log.Event("mcp:irisk_in_range", "check").Author("mcp").Subject(r.Kind).Detail("ok", r.OK).Write(nil)
	return extension.JSONResult(r)
}
