package progression

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	currency   INTEGER NOT NULL DEFAULT 0,
	updated_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS unlocked_towers (
	profile_id TEXT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
	tower_id   TEXT NOT NULL,
	PRIMARY KEY (profile_id, tower_id)
);
CREATE TABLE IF NOT EXISTS skill_levels (
	profile_id TEXT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
	skill_id   TEXT NOT NULL,
	level      INTEGER NOT NULL,
	PRIMARY KEY (profile_id, skill_id)
);`

// writeTimeout ограничивает одну запись в базу.
const writeTimeout = 5 * time.Second

// SQLiteStore — Store поверх SQLite. Состояние профиля держится в памяти,
// каждая мутация сразу записывается в базу.
type SQLiteStore struct {
	sqlDB     *sql.DB
	profileID string
	cache     *MemoryStore
}

// OpenSQLite opens (or creates) the database at path and loads the named profile.
// A new profile starts with startCurrency.
func OpenSQLite(ctx context.Context, path, profile string, startCurrency int) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if strings.TrimSpace(profile) == "" {
		return nil, fmt.Errorf("profile name is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.ExecContext(ctx, schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	s := &SQLiteStore{sqlDB: sqlDB, cache: NewMemoryStore(0)}
	if err := s.loadProfile(ctx, profile, startCurrency); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the SQLite handle.
func (s *SQLiteStore) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// ProfileID returns the id of the loaded profile.
func (s *SQLiteStore) ProfileID() string { return s.profileID }

func (s *SQLiteStore) loadProfile(ctx context.Context, name string, startCurrency int) error {
	var currency int
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, currency FROM profiles WHERE name = ?`, name,
	).Scan(&s.profileID, &currency)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		s.profileID = uuid.NewString()
		currency = startCurrency
		if _, err := s.sqlDB.ExecContext(ctx,
			`INSERT INTO profiles (id, name, currency, updated_at) VALUES (?, ?, ?, ?)`,
			s.profileID, name, currency, time.Now().UTC().UnixMilli(),
		); err != nil {
			return fmt.Errorf("create profile %q: %w", name, err)
		}
		log.Printf("Progression: created profile %s (%s)", name, s.profileID)
	case err != nil:
		return fmt.Errorf("load profile %q: %w", name, err)
	}
	s.cache.currency = currency

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT tower_id FROM unlocked_towers WHERE profile_id = ?`, s.profileID)
	if err != nil {
		return fmt.Errorf("load unlocks: %w", err)
	}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			_ = rows.Close()
			return fmt.Errorf("scan unlock: %w", err)
		}
		s.cache.Unlock(id)
	}
	if err := rows.Close(); err != nil {
		return fmt.Errorf("load unlocks: %w", err)
	}

	rows, err = s.sqlDB.QueryContext(ctx,
		`SELECT skill_id, level FROM skill_levels WHERE profile_id = ?`, s.profileID)
	if err != nil {
		return fmt.Errorf("load skill levels: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		var level int
		if err := rows.Scan(&id, &level); err != nil {
			return fmt.Errorf("scan skill level: %w", err)
		}
		s.cache.SetLevel(id, level)
	}
	return rows.Err()
}

func (s *SQLiteStore) IsUnlocked(id string) bool { return s.cache.IsUnlocked(id) }

func (s *SQLiteStore) CurrentLevel(id string) int { return s.cache.CurrentLevel(id) }

func (s *SQLiteStore) Currency() int { return s.cache.Currency() }

func (s *SQLiteStore) SpendCurrency(amount int) bool {
	if !s.cache.SpendCurrency(amount) {
		return false
	}
	s.exec("save currency",
		`UPDATE profiles SET currency = ?, updated_at = ? WHERE id = ?`,
		s.cache.currency, time.Now().UTC().UnixMilli(), s.profileID)
	return true
}

func (s *SQLiteStore) AddCurrency(amount int) {
	before := s.cache.currency
	s.cache.AddCurrency(amount)
	if s.cache.currency == before {
		return
	}
	s.exec("save currency",
		`UPDATE profiles SET currency = ?, updated_at = ? WHERE id = ?`,
		s.cache.currency, time.Now().UTC().UnixMilli(), s.profileID)
}

func (s *SQLiteStore) Unlock(id string) {
	s.cache.Unlock(id)
	s.exec("save unlock",
		`INSERT OR IGNORE INTO unlocked_towers (profile_id, tower_id) VALUES (?, ?)`,
		s.profileID, id)
}

func (s *SQLiteStore) SetLevel(id string, level int) {
	s.cache.SetLevel(id, level)
	s.exec("save skill level",
		`INSERT INTO skill_levels (profile_id, skill_id, level) VALUES (?, ?, ?)
		 ON CONFLICT(profile_id, skill_id) DO UPDATE SET level = excluded.level`,
		s.profileID, id, s.cache.levels[id])
}

// exec пишет в базу. Ошибка записи не отменяет изменение в памяти: игра
// продолжается, а ошибка попадает в лог.
func (s *SQLiteStore) exec(what, query string, args ...any) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if _, err := s.sqlDB.ExecContext(ctx, query, args...); err != nil {
		log.Printf("Progression: %s failed: %v", what, err)
	}
}
