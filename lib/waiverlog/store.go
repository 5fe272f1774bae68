package waiverlog

import (
	"context"
	"database/sql"
	"os"

	"faabwatch/lib/scrapers/yahoo"

	_ "embed"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var Schema string

// Open opens the waiver log database at path, creating it if it does
// not exist yet. A store that does not exist is an empty store, not an
// error.
func Open(path string) (*sql.DB, error) {
	_, statErr := os.Stat(path)
	if os.IsNotExist(statErr) {
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		f.Close()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// see this stackoverflow post for information on why the following
	// lines exist: https://stackoverflow.com/questions/35804884/sqlite-concurrent-writing-performance
	db.SetMaxOpenConns(1)
	_, err = db.Exec("PRAGMA journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(Schema)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// Store is the durable log of every transaction ever processed, keyed
// by transaction id. It only ever grows; nothing prunes it.
type Store struct {
	db *sql.DB
}

func NewStore(database *sql.DB) Store {
	return Store{db: database}
}

func (s Store) LoadAll(ctx context.Context) ([]yahoo.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT player, winning_bid, next_highest_bidder, next_highest_bid,
		       winner, transaction_id, difference
		FROM waiver_log
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var all []yahoo.Transaction
	for rows.Next() {
		var t yahoo.Transaction
		err := rows.Scan(
			&t.Player, &t.WinningBid, &t.RunnerUp, &t.RunnerUpBid,
			&t.Winner, &t.ID, &t.Difference,
		)
		if err != nil {
			return nil, err
		}
		all = append(all, t)
	}
	return all, rows.Err()
}

// Append unions the batch onto the log. Re-appending an id that is
// already recorded is a no-op, the recorded version is kept.
func (s Store) Append(ctx context.Context, records []yahoo.Transaction) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, r := range records {
		_, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO waiver_log
			(player, winning_bid, next_highest_bidder, next_highest_bid,
			 winner, transaction_id, difference)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, r.Player, r.WinningBid, r.RunnerUp, r.RunnerUpBid, r.Winner, r.ID, r.Difference)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}
