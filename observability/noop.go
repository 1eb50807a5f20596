package observability

// NoOpObserver is an Observer that discards everything it receives.
// Useful as a default value and in tests.
type NoOpObserver struct{}

// ObserveCapture does nothing.
func (n *NoOpObserver) ObserveCapture(ctx CaptureContext) {}

// NewNoOpObserver creates a new NoOpObserver.
func NewNoOpObserver() Observer {
	return &NoOpObserver{}
}
