package qkidney

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jpl-au/irisk/extension"
	"github.com/jpl-au/irisk/internal/config"
	"github.com/jpl-au/irisk/internal/qkidney"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures dispatched events.
type recorder struct{ events []extension.Event }

func (r *recorder) Name() string                  { return "qkidney-test-recorder" }
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

func validArgs() map[string]any {
	return map[string]any{
		"age":       float64(52),
		"bmi":       27.5,
		"ethrisk":   float64(1),
		"sbp":       float64(132),
		"smoke_cat": float64(2),
		"surv":      float64(5),
		"town":      -1.2,
	}
}

func callValidate(t *testing.T, extCtx extension.Context, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	res, err := handleValidate(context.Background(), extCtx, req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func decode(t *testing.T, res *mcp.CallToolResult) qkidney.Result {
	t.Helper()
	require.False(t, res.IsError, "unexpected tool error")
	var r qkidney.Result
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &r))
	return r
}

func TestHandleValidate(t *testing.T) {
	extCtx := extension.NewContext(nil)

	t.Run("valid", func(t *testing.T) {
		r := decode(t, callValidate(t, extCtx, map[string]any{
			"model": "ckd", "sex": "female", "args": validArgs(),
		}))
		assert.True(t, r.OK)
		assert.Equal(t, "ckd", r.Model)
		assert.Equal(t, "female", r.Sex)
		assert.Empty(t, r.Errors)
	})

	t.Run("invalid age", func(t *testing.T) {
		args := validArgs()
		args["age"] = float64(80)
		r := decode(t, callValidate(t, extCtx, map[string]any{
			"model": "esrf", "sex": "male", "args": args,
		}))
		assert.False(t, r.OK)
		assert.Equal(t, []string{"error: age must be in range (35,74)"}, r.Errors)
	})

	t.Run("small buffer truncates", func(t *testing.T) {
		r := decode(t, callValidate(t, extCtx, map[string]any{
			"model": "ckd", "sex": "female", "args": map[string]any{}, "buffer": float64(16),
		}))
		assert.False(t, r.OK)
		assert.True(t, r.Truncated)
		assert.Equal(t, []string{"error: age must"}, r.Errors)
		assert.Equal(t, 5, r.Failures)
	})

	t.Run("unknown argument", func(t *testing.T) {
		res := callValidate(t, extCtx, map[string]any{
			"model": "ckd", "sex": "female", "args": map[string]any{"weight": float64(70)},
		})
		assert.True(t, res.IsError)
	})

	t.Run("fractional int argument", func(t *testing.T) {
		res := callValidate(t, extCtx, map[string]any{
			"model": "ckd", "sex": "female", "args": map[string]any{"age": 50.5},
		})
		assert.True(t, res.IsError)
	})

	t.Run("unknown model", func(t *testing.T) {
		res := callValidate(t, extCtx, map[string]any{
			"model": "qrisk", "sex": "female", "args": validArgs(),
		})
		assert.True(t, res.IsError)
	})

	t.Run("missing args", func(t *testing.T) {
		res := callValidate(t, extCtx, map[string]any{"model": "ckd", "sex": "male"})
		assert.True(t, res.IsError)
	})
}

func TestRun_UsesConfig(t *testing.T) {
	size := 16
	reject := true
	extCtx := extension.NewContext(&config.Config{
		Limits: config.Limits{ErrorBuffer: &size},
		Checks: config.Checks{RejectNaN: &reject},
	})

	res, err := Run(extCtx, "test", Request{Model: qkidney.Neph3, Sex: qkidney.Male})
	require.NoError(t, err)
	assert.True(t, res.Truncated, "configured buffer is too small for every message")

	req := Request{Model: qkidney.Neph5, Sex: qkidney.Female, Buffer: qkidney.DefaultBufferSize}
	for name, v := range validArgs() {
		require.NoError(t, req.Args.Set(name, toText(v)))
	}
	require.NoError(t, req.Args.Set("bmi", "NaN"))

	res, err = Run(extCtx, "test", req)
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, []string{"error: bmi must be in range (20,40)"}, res.Errors)
}

func TestToText(t *testing.T) {
	assert.Equal(t, "52", toText(float64(52)))
	assert.Equal(t, "-1.2", toText(-1.2))
	assert.Equal(t, "1", toText(true))
	assert.Equal(t, "0", toText(false))
	assert.Equal(t, "27,5", toText("27,5"))
}

func TestRun_EventCountsEveryFailure(t *testing.T) {
	extCtx := extension.NewContext(nil)
	before := len(rec.events)

	res, err := Run(extCtx, "cli", Request{Model: qkidney.Neph3, Sex: qkidney.Female, Buffer: 16})
	require.NoError(t, err)
	require.True(t, res.Truncated)
	require.Len(t, res.Errors, 1)

	require.Len(t, rec.events, before+1)
	assert.Equal(t, extension.ValidationEvent{
		Source:    "cli",
		Model:     "ckd",
		Sex:       "female",
		OK:        false,
		Failures:  5,
		Truncated: true,
	}, rec.events[before])
}
