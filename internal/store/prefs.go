// Package store persists UI preferences between runs: theme, locale,
// initial picker mode, button labels. The picked date itself is never
// stored; each dialog starts fresh within its caller-supplied range.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite"
)

// Known preference keys. Set rejects anything else so a typoed key is an
// error rather than a silently ignored row.
const (
	KeyTheme        = "ui.theme"
	KeyLocale       = "ui.locale"
	KeyFirstWeekday = "ui.first_weekday"
	KeyConfirmLabel = "ui.confirm_label"
	KeyCancelLabel  = "ui.cancel_label"
	KeyInitialMode  = "picker.initial_mode"
)

var knownKeys = map[string][]string{
	KeyTheme:        {"auto", "light", "dark"},
	KeyLocale:       nil, // free-form BCP-47-ish tag; TUI falls back to English
	KeyFirstWeekday: {"monday", "sunday"},
	KeyConfirmLabel: nil,
	KeyCancelLabel:  nil,
	KeyInitialMode:  {"month", "year"},
}

// Keys returns the known preference keys, sorted.
func Keys() []string {
	out := make([]string, 0, len(knownKeys))
	for k := range knownKeys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Prefs is a handle on the preferences database.
type Prefs struct {
	db *sql.DB
}

// DefaultDir resolves the state directory: EASYDATE_STATE_DIR if set,
// otherwise ~/.local/state/easydate.
func DefaultDir() string {
	if dir := strings.TrimSpace(os.Getenv("EASYDATE_STATE_DIR")); dir != "" {
		return dir
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "state", "easydate")
}

// Open opens (creating if needed) the preferences database under dir.
func Open(ctx context.Context, dir string) (*Prefs, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", filepath.Join(dir, "prefs.sqlite"))
	if err != nil {
		return nil, err
	}
	// WAL + busy_timeout keep concurrent `easydate prefs` invocations from
	// tripping over "database is locked".
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Prefs{db: db}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			k TEXT PRIMARY KEY,
			v TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS prefs (
			k TEXT PRIMARY KEY,
			v TEXT NOT NULL
		);`,
		`INSERT OR IGNORE INTO meta(k, v) VALUES('schema_version', '1');`,
	}
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func (p *Prefs) Close() error { return p.db.Close() }

// Get returns the stored value for key and whether it was present.
func (p *Prefs) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := p.db.QueryRowContext(ctx, `SELECT v FROM prefs WHERE k = ?`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Set stores value under key, validating both.
func (p *Prefs) Set(ctx context.Context, key, value string) error {
	allowed, ok := knownKeys[key]
	if !ok {
		return fmt.Errorf("unknown preference key: %q (known: %s)", key, strings.Join(Keys(), ", "))
	}
	if allowed != nil {
		valid := false
		for _, a := range allowed {
			if value == a {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("invalid value %q for %s (want one of: %s)", value, key, strings.Join(allowed, ", "))
		}
	}
	_, err := p.db.ExecContext(ctx, `INSERT OR REPLACE INTO prefs(k, v) VALUES(?, ?)`, key, value)
	return err
}

// Delete removes key; deleting an absent key is not an error.
func (p *Prefs) Delete(ctx context.Context, key string) error {
	_, err := p.db.ExecContext(ctx, `DELETE FROM prefs WHERE k = ?`, key)
	return err
}

// All returns every stored preference.
func (p *Prefs) All(ctx context.Context) (map[string]string, error) {
	rows, err := p.db.QueryContext(ctx, `SELECT k, v FROM prefs`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]string{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, rows.Err()
}
