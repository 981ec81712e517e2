package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	sqlite3 "github.com/mattn/go-sqlite3"

	"weather-entities/internal/model"
)

// sqliteEntityRepository backs the "memory" store type: the same contract as
// the document store, on an embedded SQLite table. Used for local runs and
// for repository tests that need a real store.
type sqliteEntityRepository struct {
	db *sqlx.DB
}

type entityRow struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	StartDate   time.Time `db:"start_date"`
	EndDate     time.Time `db:"end_date"`
	TempMin     float64   `db:"temp_min"`
	TempMax     float64   `db:"temp_max"`
	TempAvg     float64   `db:"temp_avg"`
	CountryName string    `db:"country_name"`
	TownName    string    `db:"town_name"`
}

func (r entityRow) toModel() model.Entity {
	e := model.Entity{
		Name:        r.Name,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		TempMin:     r.TempMin,
		TempMax:     r.TempMax,
		TempAvg:     r.TempAvg,
		CountryName: r.CountryName,
		TownName:    r.TownName,
	}
	if r.ID != 0 {
		e.ID = strconv.FormatInt(r.ID, 10)
	}
	return e
}

func NewSQLiteRepository(db *sqlx.DB) EntityRepository {
	return &sqliteEntityRepository{db: db}
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

func (r *sqliteEntityRepository) Insert(ctx context.Context, e model.Entity) (string, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO entities (name, start_date, end_date, temp_min, temp_max, temp_avg, country_name, town_name)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Name, e.StartDate, e.EndDate, e.TempMin, e.TempMax, e.TempAvg, e.CountryName, e.TownName,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return "", ErrDuplicateName
		}
		return "", err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(id, 10), nil
}

func (r *sqliteEntityRepository) FindByID(ctx context.Context, id string) (*model.Entity, error) {
	numID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, ErrNotFound
	}

	var row entityRow
	if err := r.db.GetContext(ctx, &row, "SELECT * FROM entities WHERE id = ?", numID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	e := row.toModel()
	return &e, nil
}

func (r *sqliteEntityRepository) FindByName(ctx context.Context, name string) (*model.Entity, error) {
	var row entityRow
	if err := r.db.GetContext(ctx, &row, "SELECT * FROM entities WHERE name = ?", name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	e := row.toModel()
	return &e, nil
}

func (r *sqliteEntityRepository) UpdateByName(ctx context.Context, name string, fields map[string]interface{}) (*model.Entity, error) {
	setClauses := make([]string, 0, len(fields))
	args := make([]interface{}, 0, len(fields)+1)
	for field, value := range fields {
		if !sortableFields[field] || field == "name" {
			return nil, fmt.Errorf("field %q is not updatable", field)
		}
		setClauses = append(setClauses, field+" = ?")
		args = append(args, value)
	}
	args = append(args, name)

	// Transaction gives the same merge-then-return-after atomicity as the
	// document store's find-one-and-update.
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"UPDATE entities SET "+strings.Join(setClauses, ", ")+" WHERE name = ?", args...)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	var row entityRow
	if err := tx.GetContext(ctx, &row, "SELECT * FROM entities WHERE name = ?", name); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	e := row.toModel()
	return &e, nil
}

func (r *sqliteEntityRepository) DeleteByName(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM entities WHERE name = ?", name)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sqliteEntityRepository) List(ctx context.Context, q model.ListQuery) ([]model.Entity, error) {
	if !sortableFields[q.SortBy] {
		return nil, ErrBadSortField
	}

	dir := "ASC"
	if q.Order == model.OrderDescending {
		dir = "DESC"
	}

	// Identity is deliberately left out of the select list so list results
	// never expose it.
	query := fmt.Sprintf(`
		SELECT name, start_date, end_date, temp_min, temp_max, temp_avg, country_name, town_name
		FROM entities
		ORDER BY %s %s
		LIMIT ? OFFSET ?`, q.SortBy, dir)

	var rows []entityRow
	if err := r.db.SelectContext(ctx, &rows, query, q.Limit, q.Skip); err != nil {
		return nil, err
	}

	entities := make([]model.Entity, 0, len(rows))
	for _, row := range rows {
		entities = append(entities, row.toModel())
	}
	return entities, nil
}

func (r *sqliteEntityRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM entities"); err != nil {
		return 0, err
	}
	return count, nil
}
