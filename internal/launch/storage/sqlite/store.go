// Package sqlite provides a SQLite-backed source of launch records.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/louisbranch/launchboard/internal/launch"
	"github.com/louisbranch/launchboard/internal/launch/storage/sqlite/migrations"
	"github.com/louisbranch/launchboard/internal/platform/storage/sqlitemigrate"
	_ "modernc.org/sqlite"
)

// Store reads and seeds launch records in one SQLite file.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the database at path and applies the embedded schema.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS, "."); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// ListLaunchRecords returns every stored row in insertion order.
func (s *Store) ListLaunchRecords(ctx context.Context) ([]launch.LaunchRecord, error) {
	if s == nil || s.sqlDB == nil {
		return nil, errors.New("storage is not configured")
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT
	   flight_number,
	   launch_site,
	   payload_mass_kg,
	   booster_version,
	   booster_version_category,
	   class
	 FROM launch_records
	 ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list launch records: %w", err)
	}
	defer rows.Close()

	var records []launch.LaunchRecord
	for rows.Next() {
		var (
			record  launch.LaunchRecord
			outcome int
		)
		if err := rows.Scan(
			&record.FlightNumber,
			&record.LaunchSite,
			&record.PayloadMassKG,
			&record.BoosterVersion,
			&record.BoosterVersionCategory,
			&outcome,
		); err != nil {
			return nil, fmt.Errorf("scan launch record: %w", err)
		}
		record.Outcome = launch.OutcomeClass(outcome)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate launch records: %w", err)
	}
	return records, nil
}

// ImportLaunchRecords replaces the stored rows with records in one
// transaction. The dashboard never calls it; it seeds databases offline.
func (s *Store) ImportLaunchRecords(ctx context.Context, records []launch.LaunchRecord) error {
	if s == nil || s.sqlDB == nil {
		return errors.New("storage is not configured")
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM launch_records`); err != nil {
		return fmt.Errorf("clear launch records: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO launch_records (
	   flight_number,
	   launch_site,
	   payload_mass_kg,
	   booster_version,
	   booster_version_category,
	   class
	 ) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for idx, record := range records {
		if _, err := stmt.ExecContext(ctx,
			record.FlightNumber,
			record.LaunchSite,
			record.PayloadMassKG,
			record.BoosterVersion,
			record.BoosterVersionCategory,
			int(record.Outcome),
		); err != nil {
			return fmt.Errorf("insert row %d: %w", idx+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

// LoadDataset reads every stored row into an immutable dataset.
func (s *Store) LoadDataset(ctx context.Context) (*launch.Dataset, error) {
	records, err := s.ListLaunchRecords(ctx)
	if err != nil {
		return nil, err
	}
	return launch.NewDataset(records)
}
