package sysprom

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/open-control-systems/monoclock/components/system/syscore"
)

type testClockStatsReader struct {
	stats syscore.ClockStats
	kind  syscore.SourceKind
}

func (r *testClockStatsReader) Stats() syscore.ClockStats {
	return r.stats
}

func (r *testClockStatsReader) SourceKind() syscore.SourceKind {
	return r.kind
}

func TestClockCollectorCollect(t *testing.T) {
	reader := &testClockStatsReader{
		stats: syscore.ClockStats{Reads: 10, Synthesized: 3},
		kind:  syscore.SourceKindWallClock,
	}

	collector := NewClockCollector(reader)

	expected := `
# HELP monoclock_reads_total Number of successful monotonic clock readings
# TYPE monoclock_reads_total counter
monoclock_reads_total 10
# HELP monoclock_source_info Kind of the time source backing the clock
# TYPE monoclock_source_info gauge
monoclock_source_info{kind="wallclock",monotonic="false"} 1
# HELP monoclock_synthesized_total Number of readings synthesized because the source didn't move forward
# TYPE monoclock_synthesized_total counter
monoclock_synthesized_total 3
`
	require.Nil(t, testutil.CollectAndCompare(collector, strings.NewReader(expected)))
}

func TestClockCollectorRegister(t *testing.T) {
	registry := prometheus.NewRegistry()

	clock := syscore.NewClock(syscore.NewDefaultSource())
	require.Nil(t, registry.Register(NewClockCollector(clock)))

	_, err := clock.NowMs()
	require.Nil(t, err)

	count, err := testutil.GatherAndCount(registry, "monoclock_reads_total")
	require.Nil(t, err)
	require.Equal(t, 1, count)
	require.Equal(t, 3, testutil.CollectAndCount(NewClockCollector(clock)))
}
