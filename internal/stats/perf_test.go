package stats

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporterAveragesAndFlushes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	r := NewReporter(logger, 3)

	var got []Summary
	r.OnFlush(func(s Summary) { got = append(got, s) })

	r.Record(1, 1*time.Millisecond, 4*time.Millisecond, 10, 60)
	r.Record(2, 2*time.Millisecond, 5*time.Millisecond, 11, 66)
	assert.Empty(t, got)
	r.Record(3, 3*time.Millisecond, 6*time.Millisecond, 12, 72)

	require.Len(t, got, 1)
	assert.Equal(t, Summary{
		Generation: 3,
		Samples:    3,
		AvgStep:    2 * time.Millisecond,
		AvgBuild:   5 * time.Millisecond,
		LiveCells:  12,
		Vertices:   72,
	}, got[0])
	assert.Equal(t, got[0], r.Last())
	assert.Contains(t, buf.String(), "generation timings")
	assert.Contains(t, buf.String(), "step_avg=2ms")

	r.Record(4, time.Second, time.Second, 0, 0)
	r.Reset()
	assert.Equal(t, Summary{}, r.Last())
	r.Record(5, 0, 0, 0, 0)
	r.Record(6, 9*time.Millisecond, 0, 0, 0)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[1].Samples)
}

func TestNewReporterDefaults(t *testing.T) {
	r := NewReporter(nil, 0)
	assert.Equal(t, DefaultEvery, r.every)
	assert.NotNil(t, r.logger)
	assert.Equal(t, time.Duration(0), average(nil))
}
