package control_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/momentics/hioload-pooled/api"
	"github.com/momentics/hioload-pooled/control"
)

func TestNewLogger(t *testing.T) {
	logger, err := control.NewLogger(control.LoggerConfig{Level: "debug", Encoding: "console"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = control.NewLogger(control.LoggerConfigFromTunables(control.Tunables{LogLevel: "warn"}))
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	_, err = control.NewLogger(control.LoggerConfig{Level: "loud"})
	assert.Error(t, err)
}

func sampleStats() api.PoolStats {
	return api.PoolStats{
		Name:    "bytes",
		Rents:   10,
		Hits:    6,
		Misses:  3,
		Returns: 8,
		Drops:   1,
		Trimmed: 2,
		Buckets: []api.BucketStats{
			{Class: 0, Length: 16, Count: 3},
			{Class: 4, Length: 256, Count: 2},
		},
	}
}

func TestPoolCollector(t *testing.T) {
	pc := control.NewPoolCollector()
	pc.Add("bytes", sampleStats)

	// 3 rent outcomes + returns + drops + trimmed + 2 buckets.
	assert.Equal(t, 8, testutil.CollectAndCount(pc))

	expected := `
# HELP hioload_pool_drops_total Returned buffers discarded because their bucket was full.
# TYPE hioload_pool_drops_total counter
hioload_pool_drops_total{pool="bytes"} 1
# HELP hioload_pool_pooled_buffers Buffers currently retained, by size class length.
# TYPE hioload_pool_pooled_buffers gauge
hioload_pool_pooled_buffers{length="16",pool="bytes"} 3
hioload_pool_pooled_buffers{length="256",pool="bytes"} 2
`
	require.NoError(t, testutil.CollectAndCompare(pc, strings.NewReader(expected),
		"hioload_pool_drops_total", "hioload_pool_pooled_buffers"))

	pc.Remove("bytes")
	assert.Zero(t, testutil.CollectAndCount(pc))
}

func TestPoolCollector_Register(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	pc := control.NewPoolCollector()
	require.NoError(t, reg.Register(pc))

	pc.Add("a", sampleStats)
	pc.Add("b", func() api.PoolStats { return api.PoolStats{Name: "b"} })

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "hioload_pool_rents_total")
	assert.Contains(t, names, "hioload_pool_trimmed_total")
}

func TestDebugProbes(t *testing.T) {
	dp := control.NewDebugProbes()
	dp.RegisterRuntimeProbes()
	dp.RegisterPoolProbe("bytes", sampleStats)
	dp.RegisterProbe("answer", func() any { return 42 })

	assert.Equal(t, []string{"answer", "pool.bytes", "runtime.cpus", "runtime.heap_alloc"}, dp.Names())

	state := dp.DumpState()
	assert.Equal(t, 42, state["answer"])
	assert.Equal(t, sampleStats(), state["pool.bytes"])
	assert.Positive(t, state["runtime.cpus"])
}
