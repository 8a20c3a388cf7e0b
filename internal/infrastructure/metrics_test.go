package infrastructure

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_SingletonRegistration(t *testing.T) {
	first := Metrics()
	second := Metrics()
	require.NotNil(t, first)
	// Repeated calls return the same registered instance instead of
	// panicking on duplicate registration.
	assert.Same(t, first, second)
}

func TestMetrics_Counters(t *testing.T) {
	m := Metrics()

	before := testutil.ToFloat64(m.FilesScanned.WithLabelValues("D"))
	m.FilesScanned.WithLabelValues("D").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(m.FilesScanned.WithLabelValues("D")))

	beforeBuilt := testutil.ToFloat64(m.CalculationsBuilt)
	m.CalculationsBuilt.Inc()
	assert.Equal(t, beforeBuilt+1, testutil.ToFloat64(m.CalculationsBuilt))
}
