package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pet-store/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO pets (name, category, available)
		VALUES ($1, $2, $3)
		RETURNING id
	`,
		p.Name,
		p.Category,
		p.Available,
	).Scan(&p.ID)
	if err != nil {
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, category, available
		FROM pets
		WHERE id = $1
	`, id)

	var p pets.Pet
	if err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}

	return p, nil
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			category = $3,
			available = $4
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Category,
		p.Available,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id int64) error {
	// Idempotente: no nos importa cuántas filas borró.
	_, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	return err
}

func (r *PetsRepo) List(ctx context.Context, f pets.Filter) ([]pets.Pet, error) {
	query := `SELECT id, name, category, available FROM pets`

	var conds []string
	var args []any
	if f.Name != nil {
		args = append(args, *f.Name)
		conds = append(conds, fmt.Sprintf("name = $%d", len(args)))
	}
	if f.Category != nil {
		args = append(args, *f.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.Available != nil {
		args = append(args, *f.Available)
		conds = append(conds, fmt.Sprintf("available = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		var p pets.Pet
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Available); err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}
