package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_NonEmptyAction(t *testing.T) {
	t.Parallel()
	evt := Event{Action: "click"}

	assert.NoError(t, evt.Validate())
}

func TestValidate_EmptyAction(t *testing.T) {
	t.Parallel()
	evt := Event{Action: "", Subject: "log-button"}

	err := evt.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyAction)
}

func TestValidate_WhitespaceAction(t *testing.T) {
	t.Parallel()
	evt := Event{Action: "   \t"}

	assert.ErrorIs(t, evt.Validate(), ErrEmptyAction)
}

func TestValidate_IgnoresAttributes(t *testing.T) {
	t.Parallel()
	// A bad attribute value must not fail validation; the bridge skips it
	// per entry during capture instead.
	evt := Event{
		Action: "login",
		Attributes: map[string]interface{}{
			"nested": map[string]string{"a": "b"},
		},
	}

	assert.NoError(t, evt.Validate())
}

func TestValidate_RepeatedCallsAreStable(t *testing.T) {
	t.Parallel()
	evt := Event{Action: ""}

	assert.ErrorIs(t, evt.Validate(), ErrEmptyAction)
	assert.ErrorIs(t, evt.Validate(), ErrEmptyAction)
}
