package metric

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	istaerrors "github.com/RomanoLab/ista/errors"
)

func TestNewMetricsRegistry(t *testing.T) {
	registry := NewMetricsRegistry()

	require.NotNil(t, registry.CoreMetrics())
	require.NotNil(t, registry.PrometheusRegistry())
	assert.NotNil(t, registry.CoreMetrics().AxiomsAdded)
	assert.NotNil(t, registry.CoreMetrics().FilterDuration)
}

func TestRegisterCounter(t *testing.T) {
	registry := NewMetricsRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "test_snapshots_total",
		Help: "test counter",
	})

	require.NoError(t, registry.RegisterCounter("store", "snapshots", counter))

	// Duplicate registration is rejected with a structural error.
	err := registry.RegisterCounter("store", "snapshots", counter)
	require.Error(t, err)
	assert.True(t, istaerrors.IsStructural(err))
}

func TestUnregister(t *testing.T) {
	registry := NewMetricsRegistry()

	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "test_open_stores",
		Help: "test gauge",
	})

	require.NoError(t, registry.RegisterGauge("store", "open", gauge))
	assert.True(t, registry.Unregister("store", "open"))
	assert.False(t, registry.Unregister("store", "open"), "second unregister finds nothing")

	// Re-registration after unregister succeeds.
	require.NoError(t, registry.RegisterGauge("store", "open", gauge))
}

func TestCoreMetricsUsable(t *testing.T) {
	registry := NewMetricsRegistry()
	m := registry.CoreMetrics()

	// Exercising the core metrics must not panic.
	m.AxiomsAdded.WithLabelValues("ClassAssertion").Inc()
	m.DuplicateAxioms.Inc()
	m.EntitiesRegistered.Set(42)
	m.FilterOperations.WithLabelValues("neighborhood").Inc()
	m.FilterDuration.Observe(0.001)
	m.SerializeOperations.WithLabelValues("functional").Inc()

	handler := registry.Handler()
	assert.NotNil(t, handler)
}
