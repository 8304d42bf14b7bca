// Package qkidney provides the qkidney extension for irisk.
// It registers commands: qkidney.
package qkidney

import (
	"errors"
	"fmt"

	"github.com/jpl-au/irisk/cmd"
	"github.com/jpl-au/irisk/extension"
	"github.com/jpl-au/irisk/internal/config"
	"github.com/jpl-au/irisk/internal/log"
	"github.com/jpl-au/irisk/internal/qkidney"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the qkidney extension.
type Extension struct {
	cfg *config.Config
}

// Compile-time interface compliance.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "qkidney".
func (e *Extension) Name() string { return "qkidney" }

// Init keeps the loaded config for the buffer size and NaN policy.
func (e *Extension) Init(ctx extension.Context) error {
	e.cfg = ctx.Config()
	return nil
}

// Commands returns the qkidney command.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{e.newQKidneyCmd()}
}

// MCPTools returns irisk_qkidney_validate.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{validateTool()}
}

// Request is one validation: which equation, its arguments, and policy.
type Request struct {
	Model  qkidney.Model
	Sex    qkidney.Sex
	Args   qkidney.Args
	Buffer int // error buffer size; below one uses the configured size
}

// Run validates req under the context's config and reports the outcome to
// every event handler. The returned error is only ever a dispatch failure;
// invalid arguments are reported in the Result.
func Run(extCtx extension.Context, source string, req Request) (qkidney.Result, error) {
	cfg := extCtx.Config()

	size := req.Buffer
	if size < 1 {
		size = cfg.ErrorBuffer()
	}
	opts := qkidney.Options{RejectNaN: cfg.RejectNaN()}

	res := qkidney.Check(req.Model, req.Sex, req.Args, opts, size)

	err := extension.Dispatch(extCtx, extension.ValidationEvent{
		Source:    source,
		Model:     res.Model,
		Sex:       res.Sex,
		OK:        res.OK,
		Failures:  res.Failures,
		Truncated: res.Truncated,
	})
	return res, err
}

func (e *Extension) newQKidneyCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "qkidney <model> <sex>",
		Short: "Validate QKidney risk arguments",
		Long: `Validates the arguments of a QKidney-2010 equation and prints one line per
invalid argument. Exits non-zero when any argument is invalid.

model is ckd (CKD 3b-5) or esrf (end-stage renal failure). sex is female
or male. Arguments come from --file (YAML), then individual flags, which
override the file. Arguments the equation does not take are ignored.

  irisk qkidney ckd female --file patient.yaml
  irisk qkidney esrf male --age 60 --bmi 31.2 --sbp 150 --ethrisk 1 \
      --smoke_cat 0 --surv 5 --town 0.5

Messages are collected in a fixed error buffer of limits.error_buffer bytes
(--buffer overrides). Messages that do not fit are truncated.`,
		Args: cobra.ExactArgs(2),
		RunE: e.runQKidney,
	}
	c.Flags().String(extension.FlagFile, "", "YAML file of arguments")
	c.Flags().Int(extension.FlagBuffer, 0, "Error buffer size in bytes (default limits.error_buffer)")
	for _, name := range qkidney.ArgNames(qkidney.Neph3, qkidney.Female) {
		c.Flags().String(name, "", "Value of "+name)
	}
	return c
}

func (e *Extension) runQKidney(c *cobra.Command, args []string) error {
	l := log.Event("qkidney:validate", "validate").Author(cmd.Author())

	req, err := requestFromFlags(c, args)
	if err != nil {
		l.Write(err)
		return cmd.PrintJSONError(err)
	}
	l.Subject(req.Model.String() + "/" + req.Sex.String())

	res, dispatchErr := Run(cmd.Context(), "cli", req)
	if dispatchErr != nil {
		fmt.Fprintf(c.ErrOrStderr(), "warning: %v\n", dispatchErr)
	}

	l.Detail("failures", res.Failures).Detail("truncated", res.Truncated).Write(res.Err())

	if cmd.JSON() {
		if err := cmd.PrintJSON(res); err != nil {
			return err
		}
		if !res.OK {
			c.SilenceErrors = true
			return res.Err()
		}
		return nil
	}

	if res.OK {
		fmt.Fprintf(cmd.Out(), "ok: %s/%s arguments valid\n", res.Model, res.Sex)
		return nil
	}
	for _, line := range res.Errors {
		fmt.Fprintln(cmd.Out(), line)
	}
	if res.Truncated {
		fmt.Fprintf(cmd.Out(), "(truncated: %d checks failed, messages need %d bytes)\n", res.Failures, res.Length+1)
	}
	c.SilenceErrors = true
	return res.Err()
}

// requestFromFlags builds a Request from the positional args, --file and
// the per-argument flags.
func requestFromFlags(c *cobra.Command, args []string) (Request, error) {
	m, err := qkidney.ParseModel(args[0])
	if err != nil {
		return Request{}, err
	}
	s, err := qkidney.ParseSex(args[1])
	if err != nil {
		return Request{}, err
	}
	req := Request{Model: m, Sex: s}

	if path, _ := c.Flags().GetString(extension.FlagFile); path != "" {
		if req.Args, err = qkidney.LoadArgsFile(path); err != nil {
			return Request{}, err
		}
	}

	var errs []error
	for _, name := range qkidney.ArgNames(qkidney.Neph3, qkidney.Female) {
		if !c.Flags().Changed(name) {
			continue
		}
		v, _ := c.Flags().GetString(name)
		if err := req.Args.Set(name, v); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return Request{}, err
	}

	req.Buffer, _ = c.Flags().GetInt(extension.FlagBuffer)
	if req.Buffer < 0 || req.Buffer > config.MaxErrorBuffer {
		return Request{}, fmt.Errorf("buffer %d out of range (%d,%d)", req.Buffer, config.MinErrorBuffer, config.MaxErrorBuffer)
	}
	return req, nil
}
