package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/jackc/pgx/v5"
)

const selectSubmenuSQL = `
	SELECT s.id, s.menu_id, s.title, s.description, COUNT(d.id) AS dishes_count
	FROM submenus s
	LEFT JOIN dishes d ON d.submenu_id = s.id`

// SubmenuRepository stores submenus in PostgreSQL.
type SubmenuRepository struct {
	db *Postgres
}

// NewSubmenuRepository creates a new submenu repository.
func NewSubmenuRepository(db *Postgres) *SubmenuRepository {
	return &SubmenuRepository{db: db}
}

// List returns the submenus of a menu. An unknown menu yields an empty list.
func (r *SubmenuRepository) List(ctx context.Context, menuID uuid.UUID) ([]model.Submenu, error) {
	rows, err := r.db.Pool.Query(ctx, selectSubmenuSQL+`
		WHERE s.menu_id = $1
		GROUP BY s.id
		ORDER BY s.created_at, s.id`, menuID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	submenus := make([]model.Submenu, 0)
	for rows.Next() {
		s, err := scanSubmenu(rows)
		if err != nil {
			return nil, err
		}
		submenus = append(submenus, *s)
	}
	return submenus, rows.Err()
}

func (r *SubmenuRepository) Get(ctx context.Context, menuID, submenuID uuid.UUID) (*model.Submenu, error) {
	return getSubmenu(ctx, r.db.Pool, menuID, submenuID)
}

// Create inserts a submenu under menuID.
func (r *SubmenuRepository) Create(ctx context.Context, menuID uuid.UUID, input model.SubmenuInput) (*model.Submenu, error) {
	s := &model.Submenu{
		ID:          uuid.New(),
		MenuID:      menuID,
		Title:       input.Title,
		Description: input.Description,
	}
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO submenus (id, menu_id, title, description) VALUES ($1, $2, $3, $4)`,
		s.ID, s.MenuID, s.Title, s.Description,
	)
	if isForeignKeyViolation(err) {
		return nil, model.NewNotFoundError(model.EntityMenu)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SubmenuRepository) Update(ctx context.Context, menuID, submenuID uuid.UUID, input model.SubmenuInput) (*model.Submenu, error) {
	var out *model.Submenu
	err := inTx(ctx, r.db.Pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE submenus SET title = $3, description = $4 WHERE menu_id = $1 AND id = $2`,
			menuID, submenuID, input.Title, input.Description,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return model.NewNotFoundError(model.EntitySubmenu)
		}
		out, err = getSubmenu(ctx, tx, menuID, submenuID)
		return err
	})
	return out, err
}

// Delete removes a submenu and, by cascade, its dishes.
func (r *SubmenuRepository) Delete(ctx context.Context, menuID, submenuID uuid.UUID) (*model.Submenu, error) {
	var out *model.Submenu
	err := inTx(ctx, r.db.Pool, func(tx pgx.Tx) error {
		var err error
		out, err = getSubmenu(ctx, tx, menuID, submenuID)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `DELETE FROM submenus WHERE menu_id = $1 AND id = $2`, menuID, submenuID)
		return err
	})
	return out, err
}

func getSubmenu(ctx context.Context, q querier, menuID, submenuID uuid.UUID) (*model.Submenu, error) {
	row := q.QueryRow(ctx, selectSubmenuSQL+`
		WHERE s.menu_id = $1 AND s.id = $2
		GROUP BY s.id`, menuID, submenuID)
	s, err := scanSubmenu(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.NewNotFoundError(model.EntitySubmenu)
	}
	return s, err
}

func scanSubmenu(row pgx.Row) (*model.Submenu, error) {
	var s model.Submenu
	if err := row.Scan(&s.ID, &s.MenuID, &s.Title, &s.Description, &s.DishesCount); err != nil {
		return nil, err
	}
	return &s, nil
}
