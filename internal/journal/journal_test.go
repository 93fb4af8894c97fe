package journal

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twbaty/winix/internal/harness"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	j1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, j1.Close())

	j2, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, j2.Close())
}

func TestRecordAndLastRun(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()

	started := time.Now().Add(-2 * time.Second)
	rec := RunRecord{
		ID:         NewRunID(),
		StartedAt:  started,
		FinishedAt: time.Now(),
		BuildDir:   "/tmp/build",
		Passed:     41,
		Failed:     1,
		Sections: []harness.SectionResult{
			{Name: "cat", Passed: 3, Failed: 0},
			{Name: "grep", Passed: 5, Failed: 1},
		},
	}
	require.NoError(t, j.Record(ctx, rec))

	got, err := j.LastRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, "/tmp/build", got.BuildDir)
	assert.Equal(t, 41, got.Passed)
	assert.Equal(t, 1, got.Failed)
	assert.WithinDuration(t, started, got.StartedAt, time.Millisecond)
	assert.ElementsMatch(t, rec.Sections, got.Sections)
}

func TestLastRun_PicksMostRecent(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i, passed := range []int{10, 20} {
		require.NoError(t, j.Record(ctx, RunRecord{
			ID:         NewRunID(),
			StartedAt:  base.Add(time.Duration(i) * time.Minute),
			FinishedAt: base.Add(time.Duration(i)*time.Minute + time.Second),
			BuildDir:   "b",
			Passed:     passed,
		}))
	}

	got, err := j.LastRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, got.Passed)
}

func TestLastRun_EmptyJournal(t *testing.T) {
	j := openTestJournal(t)

	_, err := j.LastRun(context.Background())
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestNewRunID_Unique(t *testing.T) {
	assert.NotEqual(t, NewRunID(), NewRunID())
}
