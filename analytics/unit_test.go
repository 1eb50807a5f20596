package analytics

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/aalemi-dev/tracebridge/bridge"
	"github.com/aalemi-dev/tracebridge/event"
)

// recordedBridge is a test double for bridge.Bridge.
type recordedBridge struct {
	mu     sync.Mutex
	events []event.Event
	err    error
}

func (b *recordedBridge) Capture(ctx context.Context, evt event.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, evt)
	return b.err
}

func TestCapture_AssemblesEvent(t *testing.T) {
	t.Parallel()
	rec := &recordedBridge{}
	p := NewProvider(rec)

	err := p.Capture(context.Background(), "click", "log-button", map[string]interface{}{
		"userId": 42,
	})

	require.NoError(t, err)
	require.Len(t, rec.events, 1)
	got := rec.events[0]
	assert.Equal(t, "click", got.Action)
	assert.Equal(t, "log-button", got.Subject)
	assert.Equal(t, 42, got.Attributes["userId"])
}

func TestCapture_EmptyOptionalFields(t *testing.T) {
	t.Parallel()
	rec := &recordedBridge{}
	p := NewProvider(rec)

	err := p.Capture(context.Background(), "login", "", nil)

	require.NoError(t, err)
	got := rec.events[0]
	assert.Equal(t, "login", got.Action)
	assert.Empty(t, got.Subject)
	assert.Nil(t, got.Attributes)
}

func TestCapture_PropagatesBridgeError(t *testing.T) {
	t.Parallel()
	rec := &recordedBridge{err: bridge.ErrTracerUnavailable}
	p := NewProvider(rec)

	err := p.Capture(context.Background(), "click", "", nil)

	assert.ErrorIs(t, err, bridge.ErrTracerUnavailable)
}

func TestFXModule_ProvidesProvider(t *testing.T) {
	t.Parallel()
	rec := &recordedBridge{}
	var p Provider

	app := fxtest.New(t,
		FXModule,
		fx.Provide(func() bridge.Bridge { return rec }),
		fx.Populate(&p),
	)

	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, p)
	assert.NoError(t, p.Capture(context.Background(), "click", "", nil))
}
