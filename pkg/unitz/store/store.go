// Package store persists dynamically discovered units in SQLite so a
// registry can be given the same dynamic classes, folded the same way,
// on its next run.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	// SQLite driver (pure Go, no CGO required)
	_ "modernc.org/sqlite"

	"github.com/sambeau/unitz/internal/logger"
	"github.com/sambeau/unitz/pkg/unitz"
)

// DefaultMaxUnits bounds the table when Config.MaxUnits is zero.
const DefaultMaxUnits = 10000

// Unit is one stored spelling.
type Unit struct {
	Unit      string
	Prefix    string
	CreatedAt time.Time
}

// Config holds store settings.
type Config struct {
	Path string
	// MaxUnits caps the number of stored spellings. When exceeded, the
	// oldest TruncatePct percent are deleted.
	MaxUnits    int
	TruncatePct int
}

// Store records dynamic units.
type Store struct {
	mu          sync.Mutex
	db          *sql.DB
	path        string
	maxUnits    int
	truncatePct int
	log         *logger.Logger
}

// Open opens or creates the database at cfg.Path.
func Open(cfg Config, log *logger.Logger) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("store path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	db, err := sql.Open("sqlite", cfg.Path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening unit store: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to unit store: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	s := &Store{
		db:          db,
		path:        cfg.Path,
		maxUnits:    cfg.MaxUnits,
		truncatePct: cfg.TruncatePct,
		log:         logger.OrDiscard(log).Component("store"),
	}
	if s.maxUnits <= 0 {
		s.maxUnits = DefaultMaxUnits
	}
	if s.truncatePct <= 0 || s.truncatePct > 100 {
		s.truncatePct = 25
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating unit store schema: %w", err)
	}
	return s, nil
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS dynamic_units (
			unit TEXT PRIMARY KEY,
			prefix TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_dynamic_units_prefix ON dynamic_units(prefix);
	`)
	return err
}

// Save records unit. Saving a known unit is a no-op.
func (s *Store) Save(ctx context.Context, unit string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO dynamic_units (unit, prefix) VALUES (?, ?)`,
		unit, unitz.DynamicKey(unit))
	if err != nil {
		return fmt.Errorf("saving unit %q: %w", unit, err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		if err := s.maybeTruncate(ctx); err != nil {
			s.log.Warn("unit store truncation failed", "error", err)
		}
	}
	return nil
}

// Attach saves every unit reg synthesizes from now on.
func (s *Store) Attach(reg *unitz.Registry) {
	reg.OnDynamic(func(ev unitz.DynamicEvent) {
		if err := s.Save(context.Background(), ev.Unit); err != nil {
			s.log.Error("failed to save dynamic unit", "unit", ev.Unit, "error", err)
			return
		}
		s.log.Debug("dynamic unit saved", "unit", ev.Unit, "created", ev.Created)
	})
}

// Restore resolves every stored unit through reg in the order they were
// first seen, so spellings fold into the same dynamic groups as before.
// It returns how many units ended up in dynamic groups.
func (s *Store) Restore(ctx context.Context, reg *unitz.Registry) (int, error) {
	units, err := s.Units(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, u := range units {
		if g := reg.Group(u.Unit); g != nil && g.Dynamic() {
			n++
		}
	}
	s.log.Info("restored dynamic units", "units", n)
	return n, nil
}

// Units lists stored units, oldest first.
func (s *Store) Units(ctx context.Context) ([]Unit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT unit, prefix, created_at
		FROM dynamic_units
		ORDER BY created_at ASC, rowid ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying units: %w", err)
	}
	defer rows.Close()

	var out []Unit
	for rows.Next() {
		var u Unit
		var ts string
		if err := rows.Scan(&u.Unit, &u.Prefix, &ts); err != nil {
			return nil, fmt.Errorf("scanning unit: %w", err)
		}
		u.CreatedAt = parseTimestamp(ts)
		out = append(out, u)
	}
	return out, rows.Err()
}

// parseTimestamp accepts the formats SQLite may hand back for DATETIME.
func parseTimestamp(ts string) time.Time {
	for _, layout := range []string{
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05",
		time.RFC3339,
	} {
		if t, err := time.Parse(layout, ts); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Forget removes unit. It does not touch registries the unit was already
// restored into.
func (s *Store) Forget(ctx context.Context, unit string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, `DELETE FROM dynamic_units WHERE unit = ?`, unit)
	return err
}

// Count returns the number of stored units.
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM dynamic_units`).Scan(&n)
	return n, err
}

// maybeTruncate drops the oldest units once the table exceeds maxUnits.
// Must be called with mu held.
func (s *Store) maybeTruncate(ctx context.Context) error {
	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM dynamic_units`).Scan(&total); err != nil {
		return err
	}
	if total <= s.maxUnits {
		return nil
	}

	deleteCount := max(total*s.truncatePct/100, total-s.maxUnits)
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM dynamic_units WHERE rowid IN (
			SELECT rowid FROM dynamic_units ORDER BY created_at ASC, rowid ASC LIMIT ?
		)
	`, deleteCount)
	if err != nil {
		return fmt.Errorf("truncating units: %w", err)
	}
	s.log.Info("unit store truncated", "deleted", deleteCount)
	return nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}
