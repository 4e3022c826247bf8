package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/jackc/pgx/v5"
)

const selectMenuSQL = `
	SELECT m.id, m.title, m.description,
	       COUNT(DISTINCT s.id) AS submenus_count,
	       COUNT(d.id)          AS dishes_count
	FROM menus m
	LEFT JOIN submenus s ON s.menu_id = m.id
	LEFT JOIN dishes d   ON d.submenu_id = s.id`

// MenuRepository stores menus in PostgreSQL.
type MenuRepository struct {
	db *Postgres
}

// NewMenuRepository creates a new menu repository.
func NewMenuRepository(db *Postgres) *MenuRepository {
	return &MenuRepository{db: db}
}

// List returns every menu with its derived counts, oldest first.
func (r *MenuRepository) List(ctx context.Context) ([]model.Menu, error) {
	rows, err := r.db.Pool.Query(ctx, selectMenuSQL+`
		GROUP BY m.id
		ORDER BY m.created_at, m.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menus := make([]model.Menu, 0)
	for rows.Next() {
		m, err := scanMenu(rows)
		if err != nil {
			return nil, err
		}
		menus = append(menus, *m)
	}
	return menus, rows.Err()
}

// Get returns one menu.
func (r *MenuRepository) Get(ctx context.Context, menuID uuid.UUID) (*model.Menu, error) {
	return getMenu(ctx, r.db.Pool, menuID)
}

// Create inserts a new menu.
func (r *MenuRepository) Create(ctx context.Context, input model.MenuInput) (*model.Menu, error) {
	m := &model.Menu{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
	}
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO menus (id, title, description) VALUES ($1, $2, $3)`,
		m.ID, m.Title, m.Description,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Update replaces the writable fields of a menu.
func (r *MenuRepository) Update(ctx context.Context, menuID uuid.UUID, input model.MenuInput) (*model.Menu, error) {
	var out *model.Menu
	err := inTx(ctx, r.db.Pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE menus SET title = $2, description = $3 WHERE id = $1`,
			menuID, input.Title, input.Description,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return model.NewNotFoundError(model.EntityMenu)
		}
		out, err = getMenu(ctx, tx, menuID)
		return err
	})
	return out, err
}

// Delete removes a menu. Submenus and dishes go with it by cascade.
func (r *MenuRepository) Delete(ctx context.Context, menuID uuid.UUID) (*model.Menu, error) {
	var out *model.Menu
	err := inTx(ctx, r.db.Pool, func(tx pgx.Tx) error {
		var err error
		out, err = getMenu(ctx, tx, menuID)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `DELETE FROM menus WHERE id = $1`, menuID)
		return err
	})
	return out, err
}

func getMenu(ctx context.Context, q querier, menuID uuid.UUID) (*model.Menu, error) {
	row := q.QueryRow(ctx, selectMenuSQL+`
		WHERE m.id = $1
		GROUP BY m.id`, menuID)
	m, err := scanMenu(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.NewNotFoundError(model.EntityMenu)
	}
	return m, err
}

func scanMenu(row pgx.Row) (*model.Menu, error) {
	var m model.Menu
	if err := row.Scan(&m.ID, &m.Title, &m.Description, &m.SubmenusCount, &m.DishesCount); err != nil {
		return nil, err
	}
	return &m, nil
}
