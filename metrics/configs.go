package metrics

// DefaultMetricsAddress is the address the metrics HTTP server listens on
// when none is configured.
const DefaultMetricsAddress = ":9091"

// Config defines the configuration for the metrics server.
type Config struct {
	// Address is the network address for the /metrics HTTP endpoint,
	// e.g. ":9091" or "127.0.0.1:9091". When nil, DefaultMetricsAddress is
	// used. Set a pointer to the empty string to disable the server
	// entirely; metrics are still collected and can be gathered from the
	// Registry directly.
	Address *string

	// ServiceName identifies the service in metric output. It is attached
	// to every metric as a constant "service" label.
	ServiceName string

	// EnableRuntimeMetrics additionally registers the Go runtime and
	// process collectors (goroutines, GC, memory, file descriptors) on the
	// same registry.
	EnableRuntimeMetrics bool
}

// Ptr returns a pointer to the given string value. Helper for disabling
// the metrics endpoint in configuration:
//
//	cfg := metrics.Config{
//	    Address:     metrics.Ptr(""), // collect only, no HTTP server
//	    ServiceName: "webapp-analytics",
//	}
func Ptr(s string) *string {
	return &s
}
