package repository

import (
	"context"
	"database/sql"
	"fmt"

	"foodatlas/internal/geo"
	"foodatlas/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteRepository handles database operations over the scraped restaurant
// snapshot. It is read-mostly; writes only happen through the seeder.
type SQLiteRepository struct {
	db *sqlx.DB
}

// NewSQLiteRepository opens (or creates) the SQLite database at path.
// ":memory:" works for tests.
func NewSQLiteRepository(path string) (*SQLiteRepository, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to set journal mode: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// EnsureSchema creates the restaurants table and its indexes if missing.
// Latitude, longitude and rating are TEXT on purpose: the crawler output
// contains empty and malformed values and the matching core parses them
// defensively instead of losing rows at ingest.
func (r *SQLiteRepository) EnsureSchema(ctx context.Context) error {
	const createTable = `
CREATE TABLE IF NOT EXISTS restaurants (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  address TEXT NOT NULL DEFAULT '',
  latitude TEXT NOT NULL DEFAULT '',
  longitude TEXT NOT NULL DEFAULT '',
  rating TEXT NOT NULL DEFAULT '',
  opening_hours TEXT NOT NULL DEFAULT '',
  tags TEXT NOT NULL DEFAULT '',
  price_range TEXT NOT NULL DEFAULT '',
  img TEXT NOT NULL DEFAULT ''
);
`
	if _, err := r.db.ExecContext(ctx, createTable); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if _, err := r.db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_restaurants_name ON restaurants(name);`); err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	return nil
}

// Query fetches restaurants, prefiltered by the bounding box when one is
// given. The coordinate columns are text, so the box comparison casts them;
// rows whose coordinates do not cast to a number fall out of geofiltered
// queries the same way they did for the crawler, but stay visible to
// unfiltered ones.
func (r *SQLiteRepository) Query(ctx context.Context, box *geo.BoundingBox) ([]model.Restaurant, error) {
	query := `
		SELECT id, name, address, latitude, longitude, rating,
		       opening_hours, tags, price_range, img
		FROM restaurants`
	args := []interface{}{}

	if box != nil {
		query += `
		WHERE CAST(latitude AS REAL) BETWEEN ? AND ?
		  AND CAST(longitude AS REAL) BETWEEN ? AND ?`
		args = append(args, box.MinLat, box.MaxLat, box.MinLon, box.MaxLon)
	}
	query += `
		ORDER BY id`

	restaurants := []model.Restaurant{}
	if err := r.db.SelectContext(ctx, &restaurants, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch restaurants: %w", err)
	}
	return restaurants, nil
}

// GetByID retrieves a single restaurant, nil when absent.
func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*model.Restaurant, error) {
	var rest model.Restaurant
	err := r.db.GetContext(ctx, &rest, `
		SELECT id, name, address, latitude, longitude, rating,
		       opening_hours, tags, price_range, img
		FROM restaurants
		WHERE id = ?`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}
	return &rest, nil
}

// Count returns the number of stored restaurants.
func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM restaurants`); err != nil {
		return 0, fmt.Errorf("failed to count restaurants: %w", err)
	}
	return n, nil
}

// InsertMany loads a batch of restaurants in one transaction. Used by the
// seeder; raw field values are stored verbatim.
func (r *SQLiteRepository) InsertMany(ctx context.Context, items []model.Restaurant) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PreparexContext(ctx, `
		INSERT INTO restaurants
		  (name, address, latitude, longitude, rating, opening_hours, tags, price_range, img)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, it := range items {
		if _, err := stmt.ExecContext(ctx,
			it.Name, it.Address, it.Latitude, it.Longitude, it.Rating,
			it.OpeningHours, it.Tags, it.PriceRange, it.ImagePath,
		); err != nil {
			return inserted, fmt.Errorf("failed to insert %q: %w", it.Name, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	return inserted, nil
}
