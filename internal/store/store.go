// Package store implements ThinkLock's persistence layer.
//
// A single SQLite file holds the six study-planning tables: think folders,
// think sessions, action items, notes, flashcards and study events. Every
// exported repository method returns its payload plus an error that is
// always a *Error, so callers can map outcomes to a response without
// inspecting driver errors.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// DBFileName is the SQLite file created inside Config.DataDir.
const DBFileName = "thinklock.db"

// timestampLayout is fixed width so that lexical order matches time order.
const timestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// ─── Config ──────────────────────────────────────────────────────────────────

// Config holds store configuration.
type Config struct {
	DataDir string
	// Clock supplies event timestamps. Defaults to time.Now.
	Clock func() time.Time
}

// DefaultConfig returns the default configuration for the store.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		DataDir: filepath.Join(home, ".thinklock"),
		Clock:   time.Now,
	}
}

// ─── Store ───────────────────────────────────────────────────────────────────

// Store is the SQLite-backed repository for every ThinkLock entity.
type Store struct {
	db    *sql.DB
	cfg   Config
	hooks storeHooks
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

type querier interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

type storeHooks struct {
	exec    func(db execer, query string, args ...any) (sql.Result, error)
	beginTx func(db *sql.DB) (*sql.Tx, error)
	commit  func(tx *sql.Tx) error
}

func defaultStoreHooks() storeHooks {
	return storeHooks{
		exec: func(db execer, query string, args ...any) (sql.Result, error) {
			return db.Exec(query, args...)
		},
		beginTx: func(db *sql.DB) (*sql.Tx, error) {
			return db.Begin()
		},
		commit: func(tx *sql.Tx) error {
			return tx.Commit()
		},
	}
}

func (s *Store) execHook(db execer, query string, args ...any) (sql.Result, error) {
	if s.hooks.exec != nil {
		return s.hooks.exec(db, query, args...)
	}
	return db.Exec(query, args...)
}

func (s *Store) beginTxHook() (*sql.Tx, error) {
	if s.hooks.beginTx != nil {
		return s.hooks.beginTx(s.db)
	}
	return s.db.Begin()
}

func (s *Store) commitHook(tx *sql.Tx) error {
	if s.hooks.commit != nil {
		return s.hooks.commit(tx)
	}
	return tx.Commit()
}

// New creates a new Store with the given configuration.
// It creates the data directory if needed, opens SQLite with WAL mode,
// and creates any missing tables.
func New(cfg Config) (*Store, error) {
	if cfg.DataDir == "" {
		return nil, fmt.Errorf("store: empty data dir")
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, fmt.Errorf("store: create data dir: %w", err)
	}

	// Pragmas go in the DSN so every pooled connection gets them, not just
	// the first one. _txlock=immediate makes BEGIN take the write lock.
	dbPath := filepath.Join(cfg.DataDir, DBFileName)
	dsn := "file:" + dbPath + "?_txlock=immediate" +
		"&_pragma=journal_mode(WAL)" +
		"&_pragma=busy_timeout(5000)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=foreign_keys(1)"
	db, err := openDB("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}

	s := &Store{db: db, cfg: cfg, hooks: defaultStoreHooks()}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: migration: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the location of the SQLite file.
func (s *Store) Path() string {
	return filepath.Join(s.cfg.DataDir, DBFileName)
}

// ─── Migrations ──────────────────────────────────────────────────────────────

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS thinkfolder (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			name        TEXT NOT NULL,
			description TEXT,
			color       TEXT NOT NULL,
			icon        TEXT NOT NULL DEFAULT 'folder'
		);

		CREATE TABLE IF NOT EXISTS thinksession (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			thinkfolder_id INTEGER NOT NULL,
			title          TEXT    NOT NULL DEFAULT '',
			location       TEXT    NOT NULL DEFAULT '',
			date           TEXT    NOT NULL DEFAULT '',
			start_time     TEXT    NOT NULL DEFAULT '',
			end_time       TEXT    NOT NULL DEFAULT '',
			layout         TEXT    NOT NULL DEFAULT '[]'
		);

		CREATE INDEX IF NOT EXISTS idx_session_folder ON thinksession(thinkfolder_id);
		CREATE INDEX IF NOT EXISTS idx_session_date   ON thinksession(date);

		CREATE TABLE IF NOT EXISTS actionitem (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			thinksession_id INTEGER,
			thinkfolder_id  INTEGER NOT NULL,
			title           TEXT    NOT NULL DEFAULT '',
			description     TEXT    NOT NULL DEFAULT '',
			completed       INTEGER NOT NULL DEFAULT 0,
			created_at      TEXT    NOT NULL DEFAULT (datetime('now'))
		);

		CREATE INDEX IF NOT EXISTS idx_action_folder  ON actionitem(thinkfolder_id);
		CREATE INDEX IF NOT EXISTS idx_action_session ON actionitem(thinksession_id);

		CREATE TABLE IF NOT EXISTS notes (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			thinksession_id INTEGER NOT NULL UNIQUE,
			content         TEXT    NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS flashcard (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			front           TEXT    NOT NULL DEFAULT '',
			back            TEXT    NOT NULL DEFAULT '',
			status          TEXT    NOT NULL DEFAULT 'new',
			thinksession_id INTEGER NOT NULL,
			thinkfolder_id  INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_flashcard_session ON flashcard(thinksession_id);

		CREATE TABLE IF NOT EXISTS studyevents (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			thinksession_id INTEGER,
			event_type      TEXT    NOT NULL,
			timestamp       TEXT    NOT NULL,
			details         TEXT    NOT NULL DEFAULT '',
			reference_id    INTEGER
		);

		CREATE INDEX IF NOT EXISTS idx_events_session_ts ON studyevents(thinksession_id, timestamp);
	`
	_, err := s.execHook(s.db, schema)
	return err
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

// now returns the store clock formatted for the studyevents table.
func (s *Store) now() string {
	return s.cfg.Clock().UTC().Format(timestampLayout)
}

// exists reports whether a row with the given id is present in table.
// table is always one of the package's constant table names.
func exists(q querier, table string, id int64) (bool, error) {
	var one int
	err := q.QueryRow(`SELECT 1 FROM `+table+` WHERE id = ?`, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// requireRow turns a missing parent row into a not-found error.
func requireRow(q querier, table, entity string, id int64) error {
	ok, err := exists(q, table, id)
	if err != nil {
		return failure("checking "+entity, err)
	}
	if !ok {
		return NewNotFound(entity, id)
	}
	return nil
}
