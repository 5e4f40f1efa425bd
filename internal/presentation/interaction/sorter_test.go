package interaction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/penwyp/go-log-lens/internal/core/model"
)

func rowsFixture() []model.SessionRow {
	t0 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	return []model.SessionRow{
		{LogRecord: model.LogRecord{RequestID: "b", Timestamp: t0.Add(2 * time.Second)}, TimeDeltaSeconds: 5.0},
		{LogRecord: model.LogRecord{RequestID: "a", Timestamp: t0}, TimeDeltaSeconds: 0.0},
		{LogRecord: model.LogRecord{RequestID: "c", Timestamp: t0.Add(time.Second)}, TimeDeltaSeconds: 2.5},
	}
}

func TestSortByTimeAscendingIsDefault(t *testing.T) {
	sorter := NewRowSorter()
	rows := rowsFixture()

	sorter.Sort(rows)

	assert.Equal(t, "a", rows[0].RequestID)
	assert.Equal(t, "c", rows[1].RequestID)
	assert.Equal(t, "b", rows[2].RequestID)
	assert.Equal(t, "time", sorter.FieldName())
}

func TestToggleOrder(t *testing.T) {
	sorter := NewRowSorter()
	sorter.ToggleOrder()
	rows := rowsFixture()

	sorter.Sort(rows)

	assert.Equal(t, "b", rows[0].RequestID)
	assert.Equal(t, "a", rows[2].RequestID)
}

func TestCycleFieldToDelta(t *testing.T) {
	sorter := NewRowSorter()
	sorter.CycleField()
	assert.Equal(t, "delta", sorter.FieldName())

	rows := rowsFixture()
	sorter.Sort(rows)

	assert.Equal(t, 0.0, rows[0].TimeDeltaSeconds)
	assert.Equal(t, 5.0, rows[2].TimeDeltaSeconds)
}

func TestCycleFieldWrapsAround(t *testing.T) {
	sorter := NewRowSorter()
	sorter.CycleField()
	sorter.CycleField()
	assert.Equal(t, "request", sorter.FieldName())

	rows := rowsFixture()
	sorter.Sort(rows)
	assert.Equal(t, "a", rows[0].RequestID)

	sorter.CycleField()
	assert.Equal(t, "time", sorter.FieldName())
}
