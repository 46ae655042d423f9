// internal/store/sqlite.go
//
// SQLite-backed Store.
// Responsibilities:
//   - Opening the database file with safe defaults (WAL, busy timeout,
//     foreign keys), creating the parent directory if needed.
//   - Applying embedded migrations in lexical order, recorded in a
//     _migrations table so they are idempotent.
//   - CRUD for the rounds table.

package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// sqliteStore implements Store on a *sql.DB.
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if missing) the database at dsn, applies
// migrations, and returns the Store plus the handle for lifecycle
// management (the caller owns Close).
func OpenSQLite(dsn string) (Store, *sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("set pragmas: %w", err)
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return &sqliteStore{db: db}, db, nil
}

// migrate applies embedded migrations/*.sql in lexical order, skipping
// files already recorded in _migrations.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	var files []string
	if err := fs.WalkDir(migrationsFS, "migrations", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".sql") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("walk migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := migrationsFS.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

func (s *sqliteStore) StartRound(ctx context.Context, r Round) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO rounds (id, player_id, jumble, target_count, words_found, started_at)
        VALUES (?,?,?,?,?,?)`,
		r.ID, r.PlayerID, r.Jumble, r.TargetCount, r.WordsFound,
		r.StartedAt.UTC().Format(time.RFC3339),
	)
	return err
}

func (s *sqliteStore) UpdateProgress(ctx context.Context, id string, wordsFound int, done bool) error {
	var res sql.Result
	var err error
	if done {
		res, err = s.db.ExecContext(ctx, `
            UPDATE rounds SET words_found=?, finished_at=COALESCE(finished_at, ?)
            WHERE id=?`,
			wordsFound, time.Now().UTC().Format(time.RFC3339), id)
	} else {
		res, err = s.db.ExecContext(ctx,
			`UPDATE rounds SET words_found=? WHERE id=?`, wordsFound, id)
	}
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *sqliteStore) Recent(ctx context.Context, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, player_id, jumble, target_count, words_found, started_at, COALESCE(finished_at,'')
        FROM rounds
        ORDER BY started_at DESC
        LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Round, 0, limit)
	for rows.Next() {
		var r Round
		var started, finished string
		if err := rows.Scan(&r.ID, &r.PlayerID, &r.Jumble, &r.TargetCount, &r.WordsFound, &started, &finished); err != nil {
			return nil, err
		}
		r.StartedAt, _ = time.Parse(time.RFC3339, started)
		if finished != "" {
			if t, err := time.Parse(time.RFC3339, finished); err == nil {
				r.FinishedAt = &t
			}
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
