// Package store provides the SQLite-backed profile and food diary storage.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/kburn/internal/model"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // register sqlite driver
)

// profileID is the fixed key of the single stored profile.
const profileID = 1

// DB holds the profile row and the append-only food diary.
type DB struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the diary database at the given path.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening diary db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db, now: time.Now}, nil
}

// Close closes the database.
func (s *DB) Close() error {
	return s.db.Close()
}

// HasProfile reports whether a profile has been stored.
func (s *DB) HasProfile(ctx context.Context) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM profile WHERE id = ?", profileID).Scan(&n)
	return n > 0, err
}

// Profile returns the stored profile, creating the default one on first use.
func (s *DB) Profile(ctx context.Context) (model.Profile, error) {
	var p model.Profile
	var gender, level, goal string
	err := s.db.QueryRowContext(ctx, `SELECT gender, age, weight_kg, height_cm, activity_level, goal
		FROM profile WHERE id = ?`, profileID).
		Scan(&gender, &p.Age, &p.Weight, &p.Height, &level, &goal)
	if errors.Is(err, sql.ErrNoRows) {
		p = model.DefaultProfile()
		if err := s.SaveProfile(ctx, p); err != nil {
			return p, err
		}
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("reading profile: %w", err)
	}

	p.Gender = model.Gender(gender)
	p.ActivityLevel = model.ActivityLevel(level)
	p.Goal = model.Goal(goal)
	return p, nil
}

// SaveProfile overwrites the stored profile.
func (s *DB) SaveProfile(ctx context.Context, p model.Profile) error {
	_, err := s.db.ExecContext(ctx, `INSERT OR REPLACE INTO profile
		(id, gender, age, weight_kg, height_cm, activity_level, goal, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		profileID, string(p.Gender), p.Age, p.Weight, p.Height,
		string(p.ActivityLevel), string(p.Goal), s.now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}

// AddEntry appends an entry to the diary, assigning an ID if it has none.
func (s *DB) AddEntry(ctx context.Context, e model.FoodEntry) (model.FoodEntry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	_, err := s.db.ExecContext(ctx, `INSERT INTO food_entries
		(id, name, calories, protein_g, carbs_g, fat_g, entry_date, entry_time, image_url, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Name, e.Calories, e.Protein, e.Carbs, e.Fat, e.Date,
		nullString(e.Time), nullString(e.ImageURL), nullString(e.Source),
		s.now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return e, fmt.Errorf("adding entry: %w", err)
	}
	return e, nil
}

// EntriesBetween returns entries dated from..to inclusive, oldest first.
// Dates use model.DateLayout.
func (s *DB) EntriesBetween(ctx context.Context, from, to string) ([]model.FoodEntry, error) {
	return s.queryEntries(ctx, `WHERE entry_date >= ? AND entry_date <= ?`, from, to)
}

// AllEntries returns the whole diary, oldest first.
func (s *DB) AllEntries(ctx context.Context) ([]model.FoodEntry, error) {
	return s.queryEntries(ctx, "")
}

// HasEntry reports whether an entry with the given ID is already stored.
func (s *DB) HasEntry(ctx context.Context, id string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM food_entries WHERE id = ?", id).Scan(&n)
	return n > 0, err
}

// EntryCount returns the number of diary entries.
func (s *DB) EntryCount(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM food_entries").Scan(&count)
	return count, err
}

func (s *DB) queryEntries(ctx context.Context, where string, args ...any) ([]model.FoodEntry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT
		id, name, calories, protein_g, carbs_g, fat_g, entry_date, entry_time, image_url, source
		FROM food_entries `+where+`
		ORDER BY entry_date, COALESCE(entry_time, ''), created_at`, args...)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []model.FoodEntry
	for rows.Next() {
		var e model.FoodEntry
		var entryTime, imageURL, source sql.NullString
		if err := rows.Scan(&e.ID, &e.Name, &e.Calories, &e.Protein, &e.Carbs, &e.Fat,
			&e.Date, &entryTime, &imageURL, &source); err != nil {
			return nil, err
		}
		e.Time = entryTime.String
		e.ImageURL = imageURL.String
		e.Source = source.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
