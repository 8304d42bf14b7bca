// events.go defines the notifications extensions send each other.
//
// Events are fire-and-forget: handlers observe an operation after it has
// completed and cannot veto it. A handler error is returned to the sender,
// which decides whether it matters.

package extension

import "errors"

// EventType identifies the kind of event.
type EventType string

const (
	EventTruncation EventType = "strl:truncation"
	EventValidation EventType = "qkidney:validation"
)

// Event is the base interface for all events.
type Event interface {
	EventType() EventType
}

// TruncationEvent is fired when a bounded append could not fit its source.
type TruncationEvent struct {
	Source  string // "cli" or "mcp"
	Size    int    // buffer capacity
	Length  int    // unbounded length returned by the append
	Dropped int    // bytes of the source that did not fit
}

func (e TruncationEvent) EventType() EventType { return EventTruncation }

// ValidationEvent is fired after QKidney arguments were validated.
type ValidationEvent struct {
	Source    string
	Model     string
	Sex       string
	OK        bool
	Failures  int
	Truncated bool
}

func (e ValidationEvent) EventType() EventType { return EventValidation }

// EventHandler is implemented by extensions that want to receive events.
type EventHandler interface {
	HandleEvent(ctx Context, e Event) error
}

// Dispatch delivers e to every registered EventHandler in registration
// order. Every handler runs; their errors are joined.
func Dispatch(ctx Context, e Event) error {
	var errs []error
	for _, ext := range All() {
		if h, ok := ext.(EventHandler); ok {
			if err := h.HandleEvent(ctx, e); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
