package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/go-log-lens/internal/core/model"
)

func record(requestID string, ts time.Time) model.LogRecord {
	return model.LogRecord{
		RequestID:    requestID,
		Timestamp:    ts,
		SourceFile:   "mod.py",
		FunctionName: "handler",
		Severity:     model.SeverityInfo,
		Message:      "event",
		ExtraInfo:    model.RawExtraInfo("none"),
	}
}

func TestBuildDeltasSingleRequest(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	records := []model.LogRecord{
		record("req-1", t0),
		record("req-1", t0.Add(5*time.Second)),
		record("req-1", t0.Add(5*time.Second+2500*time.Millisecond)),
	}

	table := Build(records)

	require.Equal(t, 3, table.Len())
	rows := table.Rows()
	assert.Equal(t, 0.0, rows[0].TimeDeltaSeconds)
	assert.Equal(t, 5.00, rows[1].TimeDeltaSeconds)
	assert.Equal(t, 2.50, rows[2].TimeDeltaSeconds)
	assert.Equal(t, 7.50, table.TotalSeconds())
}

func TestBuildSortsByTimestamp(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	records := []model.LogRecord{
		record("req-1", t0.Add(10*time.Second)),
		record("req-1", t0),
		record("req-1", t0.Add(4*time.Second)),
	}

	table := Build(records)

	rows := table.Rows()
	require.Len(t, rows, 3)
	assert.True(t, rows[0].Timestamp.Before(rows[1].Timestamp))
	assert.True(t, rows[1].Timestamp.Before(rows[2].Timestamp))
	assert.Equal(t, []float64{0, 4.00, 6.00},
		[]float64{rows[0].TimeDeltaSeconds, rows[1].TimeDeltaSeconds, rows[2].TimeDeltaSeconds})
}

func TestBuildInterleavedRequestIDs(t *testing.T) {
	// Deltas are computed within each request id group, over the
	// globally sorted order.
	t0 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	records := []model.LogRecord{
		record("a", t0),
		record("b", t0.Add(1*time.Second)),
		record("a", t0.Add(3*time.Second)),
		record("b", t0.Add(6*time.Second)),
	}

	table := Build(records)

	rows := table.Rows()
	require.Len(t, rows, 4)
	assert.Equal(t, 0.0, rows[0].TimeDeltaSeconds)  // a first
	assert.Equal(t, 0.0, rows[1].TimeDeltaSeconds)  // b first
	assert.Equal(t, 3.00, rows[2].TimeDeltaSeconds) // a: 3s after a@t0
	assert.Equal(t, 5.00, rows[3].TimeDeltaSeconds) // b: 5s after b@t0+1
}

func TestBuildEmpty(t *testing.T) {
	table := Build(nil)

	assert.True(t, table.IsEmpty())
	assert.Equal(t, 0.0, table.TotalSeconds())
	assert.Empty(t, table.RequestIDs())
}

func TestBuildDeltaRounding(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	records := []model.LogRecord{
		record("r", t0),
		record("r", t0.Add(1234567*time.Microsecond)),
	}

	table := Build(records)

	assert.Equal(t, 1.23, table.Rows()[1].TimeDeltaSeconds)
}

func TestRequestIDsFirstAppearanceOrder(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	records := []model.LogRecord{
		record("b", t0),
		record("a", t0.Add(time.Second)),
		record("b", t0.Add(2*time.Second)),
	}

	table := Build(records)

	assert.Equal(t, []string{"b", "a"}, table.RequestIDs())
}

func TestRequestTotals(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	records := []model.LogRecord{
		record("a", t0),
		record("a", t0.Add(5*time.Second)),
		record("b", t0.Add(time.Second)),
		record("b", t0.Add(3*time.Second)),
	}

	table := Build(records)

	totals := table.RequestTotals()
	assert.Equal(t, 5.00, totals["a"])
	assert.Equal(t, 2.00, totals["b"])
}
