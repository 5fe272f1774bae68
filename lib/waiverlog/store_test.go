package waiverlog

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"faabwatch/lib/scrapers/yahoo"
	"faabwatch/lib/telemetry"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) Store {
	sqlite, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { sqlite.Close() })
	_, err = sqlite.Exec(Schema)
	if err != nil {
		t.Fatal(err)
	}
	return NewStore(sqlite)
}

func TestStore(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:waiverlog")
	defer cleanup()

	store := setupStore(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	{
		all, err := store.LoadAll(ctx)
		if err != nil {
			t.Fatal(err)
		}
		require.Len(t, all, 0)
	}

	first := []yahoo.Transaction{
		{
			Player:      "Dontrelle Inman",
			WinningBid:  29,
			Winner:      "Alice",
			RunnerUp:    "Bob",
			RunnerUpBid: 2,
			Difference:  27,
			ID:          "Dontrelle InmanOct 31,9:43 pm",
		},
		{
			Player:      "Chris Doe",
			WinningBid:  15,
			Winner:      "Alice",
			RunnerUp:    yahoo.NoCompetitor,
			RunnerUpBid: yahoo.NoCompetitionBid,
			Difference:  15,
			ID:          "Chris DoeNov 1,8:02 am",
		},
	}
	err := store.Append(ctx, first)
	if err != nil {
		t.Fatal(err)
	}

	all, err := store.LoadAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.ElementsMatch(t, first, all)

	// re-appending the whole batch plus one new record only grows the
	// log by the new record
	second := append(first, yahoo.Transaction{
		Player:      "Jaylen Samuels",
		WinningBid:  14,
		Winner:      "Carol",
		RunnerUp:    "Dave",
		RunnerUpBid: 12,
		Difference:  2,
		ID:          "Jaylen SamuelsNov 2,7:15 am",
	})
	err = store.Append(ctx, second)
	if err != nil {
		t.Fatal(err)
	}

	all, err = store.LoadAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.Len(t, all, 3)
}

func TestOpenMissingFileIsEmptyStore(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:waiverlog")
	defer cleanup()

	dbpath := filepath.Join(t.TempDir(), "waiverlog.db")
	database, err := Open(dbpath)
	if err != nil {
		t.Fatal(err)
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	all, err := NewStore(database).LoadAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.Len(t, all, 0)
}
