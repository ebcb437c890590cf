package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"superdaily/internal/model"
)

// BookingRepository defines booking persistence operations.
type BookingRepository interface {
	Ping(ctx context.Context) error
	Insert(ctx context.Context, row model.BookingRow) (int64, error)
}

type bookingRepository struct {
	db    *gorm.DB
	table string
}

// NewBookingRepository creates a booking repository writing to table.
func NewBookingRepository(db *gorm.DB, table string) BookingRepository {
	return &bookingRepository{db: db, table: table}
}

// Ping checks that the database is reachable.
func (r *bookingRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Insert writes row with a single parameterized statement and returns the
// generated primary key.
func (r *bookingRepository) Insert(ctx context.Context, row model.BookingRow) (int64, error) {
	if len(row) == 0 {
		return 0, fmt.Errorf("insert %s: no columns", r.table)
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return 0, err
	}
	res, err := sqlDB.ExecContext(ctx, BuildInsert(r.table, row.Columns()), row.Args()...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// BuildInsert renders an INSERT statement with one placeholder per column.
// Column names must come from an allow-list; they are quoted, not escaped.
func BuildInsert(table string, columns []string) string {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = "`" + c + "`"
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(columns)), ",")
	return fmt.Sprintf("INSERT INTO `%s` (%s) VALUES (%s)", table, strings.Join(quoted, ","), placeholders)
}
