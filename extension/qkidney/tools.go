// tools.go implements the irisk_qkidney_validate MCP tool.

package qkidney

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jpl-au/irisk/extension"
	"github.com/jpl-au/irisk/internal/config"
	"github.com/jpl-au/irisk/internal/log"
	"github.com/jpl-au/irisk/internal/qkidney"
	"github.com/mark3labs/mcp-go/mcp"
)

func validateTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("irisk_qkidney_validate",
			mcp.WithDescription("Validate the arguments of a QKidney-2010 equation. Returns ok and one message per invalid argument"),
			mcp.WithString("model", mcp.Required(), mcp.Description("ckd or esrf")),
			mcp.WithString("sex", mcp.Required(), mcp.Description("female or male")),
			mcp.WithObject("args", mcp.Required(), mcp.Description("Argument values keyed by name (age, b_CCF, b_cvd, b_nsaid, b_pvd, b_ra, b_renalstones, b_sle, b_treatedhyp, b_type1, b_type2, bmi, ethrisk, fh_kidney, sbp, smoke_cat, surv, town)")),
			mcp.WithNumber("buffer", mcp.Description("Error buffer size in bytes (default limits.error_buffer)")),
		),
		Handler: handleValidate,
	}
}

func handleValidate(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	l := log.Event("mcp:irisk_qkidney_validate", "validate").Author("mcp")

	r, err := requestFromTool(req)
	if err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	l.Subject(r.Model.String() + "/" + r.Sex.String())

	res, err := Run(extCtx, "mcp", r)
	l.Detail("failures", res.Failures).Detail("truncated", res.Truncated).Write(res.Err())
	if err != nil {
		return nil, err
	}
	return extension.JSONResult(res)
}

func requestFromTool(req mcp.CallToolRequest) (Request, error) {
	model, err := req.RequireString("model")
	if err != nil {
		return Request{}, errors.New("model is required")
	}
	sex, err := req.RequireString("sex")
	if err != nil {
		return Request{}, errors.New("sex is required")
	}

	m, err := qkidney.ParseModel(model)
	if err != nil {
		return Request{}, err
	}
	s, err := qkidney.ParseSex(sex)
	if err != nil {
		return Request{}, err
	}
	r := Request{Model: m, Sex: s, Buffer: extension.ArgInt(req, "buffer", 0)}
	if r.Buffer < 0 || r.Buffer > config.MaxErrorBuffer {
		return Request{}, fmt.Errorf("buffer %d out of range (%d,%d)", r.Buffer, config.MinErrorBuffer, config.MaxErrorBuffer)
	}

	obj := extension.ArgObject(req, "args")
	if obj == nil {
		return Request{}, errors.New("args is required")
	}
	var errs []error
	for name, v := range obj {
		if err := r.Args.Set(name, toText(v)); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return Request{}, err
	}
	return r, nil
}

// toText renders a JSON value for Args.Set. Numbers print without an
// exponent so integral floats parse as ints.
func toText(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return x
	case bool:
		if x {
			return "1"
		}
		return "0"
	default:
		return fmt.Sprint(x)
	}
}
