package viewer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/go-log-lens/internal/config"
	"github.com/penwyp/go-log-lens/internal/util"
)

func writeLog(t *testing.T, folder, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(folder, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(folder, name), []byte(content), 0644))
}

func viewerFor(folder string) *Viewer {
	return New(&Config{
		Source: config.Source{Name: "test", FolderPath: folder},
	})
}

func TestLoadTableEndToEnd(t *testing.T) {
	folder := filepath.Join(t.TempDir(), "logs")
	writeLog(t, folder, "app.log",
		`request_id: abc, 2024-01-01 10:00:00, mod.py, handler, INFO: started, extra_info: {"step":1}
request_id: abc, 2024-01-01 10:00:03, mod.py, handler, INFO: finished, extra_info: {"step":2}
`)

	table, err := viewerFor(folder).LoadTable()

	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	rows := table.Rows()
	assert.Equal(t, 0.0, rows[0].TimeDeltaSeconds)
	assert.Equal(t, 3.00, rows[1].TimeDeltaSeconds)
	assert.Equal(t, 3.00, table.TotalSeconds())
}

func TestLoadTableMergesFilesOfOneSource(t *testing.T) {
	folder := filepath.Join(t.TempDir(), "logs")
	writeLog(t, folder, "one.log",
		"request_id: r, 2024-01-01 10:00:00, a.py, f, INFO: first, extra_info: {}\n")
	writeLog(t, folder, "two.log",
		"request_id: r, 2024-01-01 10:00:02, b.py, g, INFO: second, extra_info: {}\n")

	table, err := viewerFor(folder).LoadTable()

	require.NoError(t, err)
	require.Equal(t, 2, table.Len())
	// Ordering and deltas span files
	assert.Equal(t, "first", table.Rows()[0].Message)
	assert.Equal(t, 2.00, table.Rows()[1].TimeDeltaSeconds)
}

func TestLoadTableSourcesStayIsolated(t *testing.T) {
	base := t.TempDir()
	folderA := filepath.Join(base, "source-a")
	folderB := filepath.Join(base, "source-b")
	writeLog(t, folderA, "a.log",
		"request_id: only-a, 2024-01-01 10:00:00, a.py, f, INFO: a, extra_info: {}\n")
	writeLog(t, folderB, "b.log",
		"request_id: only-b, 2024-01-01 10:00:00, b.py, g, INFO: b, extra_info: {}\n")

	tableA, err := viewerFor(folderA).LoadTable()
	require.NoError(t, err)
	tableB, err := viewerFor(folderB).LoadTable()
	require.NoError(t, err)

	assert.Equal(t, []string{"only-a"}, tableA.RequestIDs())
	assert.Equal(t, []string{"only-b"}, tableB.RequestIDs())
}

func TestLoadTableEmptyFolder(t *testing.T) {
	table, err := viewerFor(filepath.Join(t.TempDir(), "never-synced")).LoadTable()

	require.NoError(t, err)
	assert.True(t, table.IsEmpty())
}

func TestBuildFilterDateBounds(t *testing.T) {
	require.NoError(t, util.InitializeTimeProvider("UTC"))

	v := New(&Config{
		Source: config.Source{Name: "test"},
		From:   "2024-01-01",
		To:     "2024-01-02",
	})

	filter, err := v.BuildFilter()

	require.NoError(t, err)
	require.NotNil(t, filter.From)
	require.NotNil(t, filter.To)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), filter.From.UTC())
	// A bare end date includes the whole day
	assert.Equal(t, time.Date(2024, 1, 2, 23, 59, 59, 0, time.UTC), filter.To.UTC())
}

func TestBuildFilterTimestampBounds(t *testing.T) {
	require.NoError(t, util.InitializeTimeProvider("UTC"))

	v := New(&Config{
		Source: config.Source{Name: "test"},
		From:   "2024-01-01 10:30:00",
	})

	filter, err := v.BuildFilter()

	require.NoError(t, err)
	require.NotNil(t, filter.From)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC), filter.From.UTC())
	assert.Nil(t, filter.To)
}

func TestBuildFilterInvalidValues(t *testing.T) {
	v := New(&Config{Source: config.Source{Name: "test"}, From: "not-a-date"})
	_, err := v.BuildFilter()
	assert.Error(t, err)

	v = New(&Config{Source: config.Source{Name: "test"}, Severity: "WARN"})
	_, err = v.BuildFilter()
	assert.Error(t, err)
}

func TestBuildFilterSeverity(t *testing.T) {
	v := New(&Config{Source: config.Source{Name: "test"}, Severity: "ERROR"})

	filter, err := v.BuildFilter()

	require.NoError(t, err)
	require.NotNil(t, filter.Severity)
}
