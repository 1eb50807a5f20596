package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics() *Metrics {
	// Disable the HTTP server; tests gather from the registry directly.
	return NewMetrics(Config{ServiceName: "test-service", Address: Ptr("")})
}

func TestNewMetrics_Defaults(t *testing.T) {
	t.Parallel()
	m := NewMetrics(Config{ServiceName: "test-service"})

	require.NotNil(t, m.Registry)
	require.NotNil(t, m.Server)
	assert.Equal(t, DefaultMetricsAddress, m.Server.Addr)
}

func TestNewMetrics_DisabledServer(t *testing.T) {
	t.Parallel()
	m := newTestMetrics()

	assert.Nil(t, m.Server)
	assert.NotNil(t, m.Registry)
}

func TestNewMetrics_CustomAddress(t *testing.T) {
	t.Parallel()
	m := NewMetrics(Config{ServiceName: "test-service", Address: Ptr("127.0.0.1:9191")})

	require.NotNil(t, m.Server)
	assert.Equal(t, "127.0.0.1:9191", m.Server.Addr)
}

func TestNewMetrics_RuntimeMetrics(t *testing.T) {
	t.Parallel()
	m := NewMetrics(Config{
		ServiceName:          "test-service",
		Address:              Ptr(""),
		EnableRuntimeMetrics: true,
	})

	families, err := m.Registry.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestCreateCounter_RecordsWithServiceLabel(t *testing.T) {
	t.Parallel()
	m := newTestMetrics()

	counter := m.CreateCounter("test_events_total", "Test events", []string{"kind"})
	counter.WithLabelValues("a").Inc()
	counter.WithLabelValues("a").Add(2)
	counter.WithLabelValues("b").Inc()

	expected := `
# HELP test_events_total Test events
# TYPE test_events_total counter
test_events_total{kind="a",service="test-service"} 3
test_events_total{kind="b",service="test-service"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry, strings.NewReader(expected), "test_events_total"))
}

func TestCreateGauge_UpAndDown(t *testing.T) {
	t.Parallel()
	m := newTestMetrics()

	gauge := m.CreateGauge("test_in_flight", "In flight", nil)
	gauge.WithLabelValues().Inc()
	gauge.WithLabelValues().Inc()
	gauge.WithLabelValues().Dec()
	gauge.WithLabelValues().Set(5)

	expected := `
# HELP test_in_flight In flight
# TYPE test_in_flight gauge
test_in_flight{service="test-service"} 5
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry, strings.NewReader(expected), "test_in_flight"))
}

func TestCreateHistogram_CountsObservations(t *testing.T) {
	t.Parallel()
	m := newTestMetrics()

	hist := m.CreateHistogram("test_duration_seconds", "Duration", []string{"op"}, []float64{0.1, 1})
	hist.WithLabelValues("x").Observe(0.05)
	hist.WithLabelValues("x").Observe(0.5)

	count, err := testutil.GatherAndCount(m.Registry, "test_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCreateCounter_DuplicateNamePanics(t *testing.T) {
	t.Parallel()
	m := newTestMetrics()
	m.CreateCounter("dup_total", "Dup", nil)

	assert.Panics(t, func() {
		m.CreateCounter("dup_total", "Dup", nil)
	})
}

func TestTwoInstances_AreIndependent(t *testing.T) {
	t.Parallel()
	// Dedicated registries: the same metric name can exist on two
	// instances without a registration conflict.
	first := newTestMetrics()
	second := newTestMetrics()

	assert.NotPanics(t, func() {
		first.CreateCounter("same_total", "Same", nil)
		second.CreateCounter("same_total", "Same", nil)
	})
}
