package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rogerio-castellano/dogfinder/internal/models"
)

const queryTimeout = 3 * time.Second

type PostgresDogRepository struct {
	db *sql.DB
}

func NewPostgresDogRepository(db *sql.DB) *PostgresDogRepository {
	return &PostgresDogRepository{db: db}
}

func (r *PostgresDogRepository) Create(ctx context.Context, d models.Dog) (models.Dog, error) {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	query := `INSERT INTO dogs (id, img, name, age, zip_code, breed) VALUES ($1, $2, $3, $4, $5, $6)`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, query, d.ID, d.Img, d.Name, d.Age, d.ZipCode, d.Breed); err != nil {
		if isUniqueViolation(err) {
			return models.Dog{}, ErrDuplicatedValueUnique
		}
		return models.Dog{}, err
	}
	return d, nil
}

func (r *PostgresDogRepository) Breeds(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT breed FROM dogs ORDER BY breed`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	breeds := []string{}
	for rows.Next() {
		var b string
		if err := rows.Scan(&b); err != nil {
			return nil, err
		}
		breeds = append(breeds, b)
	}
	return breeds, rows.Err()
}

func (r *PostgresDogRepository) Search(ctx context.Context, f DogFilter) ([]string, int, error) {
	conditions, args, argIdx := dogFilterConditions(f)

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM dogs WHERE 1=1"+conditions, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sortSpec := f.Sort
	if sortSpec.Field == "" {
		sortSpec = DefaultSort
	}
	dir := "ASC"
	if sortSpec.Desc {
		dir = "DESC"
	}
	// field is one of the ParseSort whitelist
	query := "SELECT id FROM dogs WHERE 1=1" + conditions +
		fmt.Sprintf(" ORDER BY %s %s, id ASC", sortSpec.Field, dir)

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
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, 0, err
		}
		ids = append(ids, id)
	}
	return ids, total, rows.Err()
}

func dogFilterConditions(f DogFilter) (string, []any, int) {
	var query strings.Builder
	argIdx := 1
	args := []any{}

	if len(f.Breeds) > 0 {
		fmt.Fprintf(&query, " AND breed = ANY($%d)", argIdx)
		args = append(args, f.Breeds)
		argIdx++
	}
	if len(f.ZipCodes) > 0 {
		fmt.Fprintf(&query, " AND zip_code = ANY($%d)", argIdx)
		args = append(args, f.ZipCodes)
		argIdx++
	}
	if f.AgeMin != nil {
		fmt.Fprintf(&query, " AND age >= $%d", argIdx)
		args = append(args, *f.AgeMin)
		argIdx++
	}
	if f.AgeMax != nil {
		fmt.Fprintf(&query, " AND age <= $%d", argIdx)
		args = append(args, *f.AgeMax)
		argIdx++
	}
	return query.String(), args, argIdx
}

// GetByIDs returns the known dogs among ids, in the order asked.
func (r *PostgresDogRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Dog, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT id, img, name, age, zip_code, breed FROM dogs WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	found := make(map[string]models.Dog, len(ids))
	for rows.Next() {
		var d models.Dog
		if err := rows.Scan(&d.ID, &d.Img, &d.Name, &d.Age, &d.ZipCode, &d.Breed); err != nil {
			return nil, err
		}
		found[d.ID] = d
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	dogs := make([]models.Dog, 0, len(found))
	for _, id := range ids {
		if d, ok := found[id]; ok {
			dogs = append(dogs, d)
		}
	}
	return dogs, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
