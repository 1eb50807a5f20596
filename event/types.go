package event

import "strings"

// Event describes a single application occurrence to be captured as one
// trace span. It is a plain value type: construct it with a struct literal,
// pass it to the bridge, and discard it. Events carry no identity and no
// timestamps; the span created from the event owns all timing.
type Event struct {
	// Action identifies what happened, e.g. "click", "login", "export".
	// This field is required and becomes the span name verbatim. An event
	// with an empty (or whitespace-only) action fails validation.
	Action string

	// Subject identifies what the action applied to, e.g. "log-button" or
	// "settings-page". Optional; when present it is recorded as a span
	// attribute under the key "subject".
	Subject string

	// Attributes carries additional key/value context for the event.
	// Optional. Keys are unique and order is irrelevant. Values must satisfy
	// the scalar rule documented in this package (see NormalizeValue);
	// values that do not are skipped by the bridge, they never fail the
	// capture as a whole.
	Attributes map[string]interface{}
}

// Validate checks the event preconditions. It returns ErrEmptyAction when
// the action name is empty or consists only of whitespace, and nil
// otherwise. Validate does not inspect attribute values; attribute
// validation happens per-entry during capture so one bad value cannot
// reject the whole event.
func (e Event) Validate() error {
	if strings.TrimSpace(e.Action) == "" {
		return ErrEmptyAction
	}
	return nil
}
