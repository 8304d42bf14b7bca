// Package core provides the core extension for irisk.
// It registers commands: config, guide, serve, version, and records the
// events other extensions dispatch in the audit log.
package core

import (
	"fmt"

	"github.com/jpl-au/irisk/extension"
	"github.com/jpl-au/irisk/internal/log"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

// Compile-time interface compliance.
var (
	_ extension.Extension    = (*Extension)(nil)
	_ extension.EventHandler = (*Extension)(nil)
)

// Name returns "core".
func (e *Extension) Name() string { return "core" }

// Commands returns the commands every irisk build carries.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		newServeCmd(),
		newGuideCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns the guide and config lookup tools.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{guideTool(), configGetTool()}
}

// HandleEvent records truncations and validation outcomes in the audit log.
// A truncation is logged as a failure so it stands out in the log.
func (e *Extension) HandleEvent(_ extension.Context, evt extension.Event) error {
	switch ev := evt.(type) {
	case extension.TruncationEvent:
		log.Event("core:event", "truncate").
			Subject(fmt.Sprintf("size=%d", ev.Size)).
			Detail("source", ev.Source).
			Detail("length", ev.Length).
			Detail("dropped", ev.Dropped).
			Write(fmt.Errorf("truncated %d bytes", ev.Dropped))
	case extension.ValidationEvent:
		var err error
		if !ev.OK {
			err = fmt.Errorf("%d invalid arguments", ev.Failures)
		}
		log.Event("core:event", "validate").
			Subject(ev.Model+"/"+ev.Sex).
			Detail("source", ev.Source).
			Detail("failures", ev.Failures).
			Detail("truncated", ev.Truncated).
			Write(err)
	}
	return nil
}
