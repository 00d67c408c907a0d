package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestHistoryRepo_AppendAndList(t *testing.T) {
	st := openTestStore(t)
	repo := st.HistoryRepo()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Append(ctx, HistoryEntry{
			Date:          base.Add(time.Duration(i) * time.Hour),
			Mode:          "hr",
			Score:         70 + i,
			Communication: 80,
			Reasoning:     75,
			Readiness:     78,
		}))
	}

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Newest first.
	require.Equal(t, 72, entries[0].Score)
	require.Equal(t, 70, entries[2].Score)
	require.Equal(t, base.Add(2*time.Hour), entries[0].Date)
}

func TestHistoryRepo_CapEvictsOldest(t *testing.T) {
	st := openTestStore(t)
	repo := st.HistoryRepo()
	ctx := context.Background()

	for i := 0; i < MaxEntries+5; i++ {
		require.NoError(t, repo.Append(ctx, HistoryEntry{
			Date:  time.Now().UTC(),
			Mode:  "hr",
			Score: i,
		}))
	}

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, MaxEntries)

	// The oldest five (scores 0-4) were evicted; newest first order holds.
	require.Equal(t, MaxEntries+4, entries[0].Score)
	require.Equal(t, 5, entries[MaxEntries-1].Score)
}

func TestSetCap_OverridesBound(t *testing.T) {
	st := openTestStore(t)
	st.SetCap(3)
	repo := st.HistoryRepo()
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		require.NoError(t, repo.Append(ctx, HistoryEntry{
			Date:  time.Now().UTC(),
			Mode:  "hr",
			Score: i,
		}))
	}

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, 5, entries[0].Score)

	// Out-of-range values leave the cap alone.
	st.SetCap(0)
	entries, err = st.HistoryRepo().List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
}

func TestReplayRepo_CapAndOrder(t *testing.T) {
	st := openTestStore(t)
	repo := st.ReplayRepo()
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		require.NoError(t, repo.Append(ctx, SessionReplay{
			ID:        fmt.Sprintf("session-%d", i),
			Date:      time.Now().UTC(),
			Mode:      "behavioral",
			Questions: []string{"q"},
			Answers:   []string{"a"},
			Scores:    ScoreSet{Overall: i},
			Analysis: ReplayAnalysis{
				StrongMoments: []string{"Q1: confident, well-grounded answer"},
			},
		}))
	}

	replays, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, replays, 20)

	// 25 submissions, oldest 5 evicted, newest first.
	require.Equal(t, "session-24", replays[0].ID)
	require.Equal(t, "session-5", replays[19].ID)
	require.Equal(t, []string{"Q1: confident, well-grounded answer"}, replays[0].Analysis.StrongMoments)
}

func TestProfileRepo_RoundTripAndMissing(t *testing.T) {
	st := openTestStore(t)
	repo := st.ProfileRepo()
	ctx := context.Background()

	_, err := repo.Load(ctx)
	require.ErrorIs(t, err, ErrNoProfile)

	require.NoError(t, repo.Save(ctx, []byte(`{"inputMethod":"voice"}`)))
	raw, err := repo.Load(ctx)
	require.NoError(t, err)
	require.JSONEq(t, `{"inputMethod":"voice"}`, string(raw))

	// Save is an upsert.
	require.NoError(t, repo.Save(ctx, []byte(`{"inputMethod":"text"}`)))
	raw, err = repo.Load(ctx)
	require.NoError(t, err)
	require.JSONEq(t, `{"inputMethod":"text"}`, string(raw))
}

func TestReset(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.HistoryRepo().Append(ctx, HistoryEntry{Date: time.Now(), Mode: "hr"}))
	require.NoError(t, st.ProfileRepo().Save(ctx, []byte(`{}`)))
	require.NoError(t, st.Reset())

	entries, err := st.HistoryRepo().List(ctx)
	require.NoError(t, err)
	require.Empty(t, entries)

	_, err = st.ProfileRepo().Load(ctx)
	require.ErrorIs(t, err, ErrNoProfile)
}
