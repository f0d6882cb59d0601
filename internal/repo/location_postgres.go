package repo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/rogerio-castellano/dogfinder/internal/models"
)

type PostgresLocationRepository struct {
	db *sql.DB
}

func NewPostgresLocationRepository(db *sql.DB) *PostgresLocationRepository {
	return &PostgresLocationRepository{db: db}
}

const locationColumns = `zip_code, latitude, longitude, city, state, county`

func (r *PostgresLocationRepository) Create(ctx context.Context, l models.Location) error {
	query := `INSERT INTO locations (` + locationColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, l.ZipCode, l.Latitude, l.Longitude, l.City, l.State, l.County)
	if isUniqueViolation(err) {
		return ErrDuplicatedValueUnique
	}
	return err
}

func (r *PostgresLocationRepository) GetByZipCodes(ctx context.Context, zipCodes []string) ([]models.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT `+locationColumns+` FROM locations WHERE zip_code = ANY($1)`, zipCodes)
	if err != nil {
		return nil, err
	}
	found, err := scanLocations(rows)
	if err != nil {
		return nil, err
	}

	byZip := make(map[string]models.Location, len(found))
	for _, l := range found {
		byZip[l.ZipCode] = l
	}
	locs := make([]models.Location, 0, len(found))
	for _, z := range zipCodes {
		if l, ok := byZip[z]; ok {
			locs = append(locs, l)
		}
	}
	return locs, nil
}

func (r *PostgresLocationRepository) Search(ctx context.Context, f LocationFilter) ([]models.Location, int, error) {
	conditions, args, argIdx := locationFilterConditions(f)

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM locations WHERE 1=1"+conditions, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + locationColumns + ` FROM locations WHERE 1=1` + conditions + ` ORDER BY zip_code`
	if f.Limit != nil && *f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, *f.Limit)
		argIdx++
	}
	if f.Offset != nil && *f.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, *f.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	locs, err := scanLocations(rows)
	return locs, total, err
}

func locationFilterConditions(f LocationFilter) (string, []any, int) {
	var query strings.Builder
	argIdx := 1
	args := []any{}

	if f.City != "" {
		fmt.Fprintf(&query, " AND lower(city) = lower($%d)", argIdx)
		args = append(args, f.City)
		argIdx++
	}
	if len(f.States) > 0 {
		upper := make([]string, len(f.States))
		for i, s := range f.States {
			upper[i] = strings.ToUpper(s)
		}
		fmt.Fprintf(&query, " AND upper(state) = ANY($%d)", argIdx)
		args = append(args, upper)
		argIdx++
	}
	if f.Box != nil {
		fmt.Fprintf(&query, " AND latitude BETWEEN $%d AND $%d AND longitude BETWEEN $%d AND $%d",
			argIdx, argIdx+1, argIdx+2, argIdx+3)
		args = append(args, f.Box.Bottom, f.Box.Top, f.Box.Left, f.Box.Right)
		argIdx += 4
	}
	return query.String(), args, argIdx
}

func scanLocations(rows *sql.Rows) ([]models.Location, error) {
	defer rows.Close()
	locs := []models.Location{}
	for rows.Next() {
		var l models.Location
		if err := rows.Scan(&l.ZipCode, &l.Latitude, &l.Longitude, &l.City, &l.State, &l.County); err != nil {
			return nil, err
		}
		locs = append(locs, l)
	}
	return locs, rows.Err()
}
