package fsjournal

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/raulk/clock"
	"github.com/stretchr/testify/require"

	"github.com/konnect-labs/konnect/build"
	"github.com/konnect-labs/konnect/journal"
)

func withMockClock(t *testing.T) *clock.Mock {
	mock := clock.NewMock()
	prev := build.Clock
	build.Clock = mock
	t.Cleanup(func() { build.Clock = prev })
	return mock
}

func rolledFiles(t *testing.T, dir string) []string {
	entries, err := os.ReadDir(filepath.Join(dir, "journal"))
	require.NoError(t, err)
	var out []string
	for _, e := range entries {
		if e.Name() != currentFile {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out
}

func readEvents(t *testing.T, path string) []map[string]interface{} {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	var out []map[string]interface{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m))
		out = append(out, m)
	}
	require.NoError(t, sc.Err())
	return out
}

func TestFSJournalRecords(t *testing.T) {
	withMockClock(t)
	dir := t.TempDir()

	j, err := OpenFSJournalPath(dir, journal.DisabledEvents{{System: "vm", Event: "apply"}})
	require.NoError(t, err)

	apply := j.RegisterEventType("vm", "apply")
	order := j.RegisterEventType("market", "OrderCompleted")
	require.False(t, apply.Enabled())
	require.True(t, order.Enabled())

	j.RecordEvent(apply, func() interface{} { return "dropped" })
	j.RecordEvent(order, func() interface{} { return map[string]uint64{"total": 3000} })
	j.RecordEvent(order, func() interface{} { panic("supplier failed") })
	require.NoError(t, j.Close())

	evts := readEvents(t, filepath.Join(dir, "journal", currentFile))
	require.Len(t, evts, 1)
	require.Equal(t, "market", evts[0]["System"])
	require.Equal(t, "OrderCompleted", evts[0]["Event"])
	require.Equal(t, float64(3000), evts[0]["Data"].(map[string]interface{})["total"])
}

func TestFSJournalRollsBySize(t *testing.T) {
	withMockClock(t)
	dir := t.TempDir()

	j, err := OpenFSJournalPath(dir, nil, WithMaxSize(1), WithMaxBackups(-1))
	require.NoError(t, err)

	et := j.RegisterEventType("market", "OrderCompleted")
	for i := 0; i < 3; i++ {
		j.RecordEvent(et, func() interface{} { return i })
	}
	require.NoError(t, j.Close())

	// every event exceeds the limit and gets its own file
	rolled := rolledFiles(t, dir)
	require.Len(t, rolled, 3)
	for i, name := range rolled {
		evts := readEvents(t, filepath.Join(dir, "journal", name))
		require.Len(t, evts, 1)
		require.Equal(t, float64(i), evts[0]["Data"])
	}
}

func TestFSJournalPrunesBackups(t *testing.T) {
	mock := withMockClock(t)
	dir := t.TempDir()

	for i := 0; i < 4; i++ {
		j, err := OpenFSJournalPath(dir, nil, WithMaxBackups(2))
		require.NoError(t, err)
		et := j.RegisterEventType("node", "open")
		j.RecordEvent(et, func() interface{} { return i })
		require.NoError(t, j.Close())
		mock.Add(time.Minute)
	}

	j, err := OpenFSJournalPath(dir, nil, WithMaxBackups(2))
	require.NoError(t, err)
	require.NoError(t, j.Close())

	rolled := rolledFiles(t, dir)
	require.Len(t, rolled, 2)
	require.Equal(t, float64(2), readEvents(t, filepath.Join(dir, "journal", rolled[0]))[0]["Data"])
	require.Equal(t, float64(3), readEvents(t, filepath.Join(dir, "journal", rolled[1]))[0]["Data"])
}
