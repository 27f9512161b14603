package history

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/wlan-autoassign-go/internal/domain/entity"
	"github.com/diillson/wlan-autoassign-go/internal/domain/repository"
)

func newTestRepository(t *testing.T) repository.HistoryRepository {
	t.Helper()
	repo, err := NewBoltRepository(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func record(id string, startedAt time.Time) entity.RunRecord {
	return entity.RunRecord{
		RunID:            id,
		Mode:             entity.RunModeAuto,
		ServiceID:        "svc-" + id,
		ServiceName:      "Corp WiFi",
		Sites:            []string{"s1"},
		ProfilesTotal:    3,
		ProfilesAssigned: 2,
		ProfilesFailed:   1,
		Errors:           []string{"assign p3: boom"},
		StartedAt:        startedAt,
		FinishedAt:       startedAt.Add(2 * time.Second),
	}
}

func TestSaveAndGetRun(t *testing.T) {
	repo := newTestRepository(t)
	at := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SaveRun(record("r1", at)))

	got, err := repo.GetRun("r1")
	require.NoError(t, err)
	assert.Equal(t, record("r1", at), got)
}

func TestGetRun_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetRun("missing")

	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestListRuns_NewestFirst(t *testing.T) {
	repo := newTestRepository(t)
	base := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

	// Frações de segundo diferentes não podem quebrar a ordem.
	require.NoError(t, repo.SaveRun(record("r2", base.Add(1500*time.Millisecond))))
	require.NoError(t, repo.SaveRun(record("r1", base)))
	require.NoError(t, repo.SaveRun(record("r3", base.Add(10*time.Second))))
	require.NoError(t, repo.SaveRun(record("r4", base.Add(2*time.Second+time.Nanosecond))))

	all, err := repo.ListRuns(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"r3", "r4", "r2", "r1"}, ids(all))

	limited, err := repo.ListRuns(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"r3", "r4"}, ids(limited))
}

func TestSaveRun_ReplacesSameID(t *testing.T) {
	repo := newTestRepository(t)
	at := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

	rec := record("r1", at)
	require.NoError(t, repo.SaveRun(rec))
	rec.Success = true
	rec.StartedAt = at.Add(time.Minute)
	require.NoError(t, repo.SaveRun(rec))

	all, err := repo.ListRuns(0)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].Success)
}

func TestSaveRun_RequiresID(t *testing.T) {
	repo := newTestRepository(t)
	assert.Error(t, repo.SaveRun(entity.RunRecord{}))
}

func TestHistoryPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	at := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

	repo, err := NewBoltRepository(path)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.SaveRun(record(fmt.Sprintf("r%d", i), at.Add(time.Duration(i)*time.Minute))))
	}
	require.NoError(t, repo.Close())

	reopened, err := NewBoltRepository(path)
	require.NoError(t, err)
	defer reopened.Close()

	all, err := reopened.ListRuns(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"r2", "r1", "r0"}, ids(all))
}

func ids(records []entity.RunRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.RunID
	}
	return out
}
