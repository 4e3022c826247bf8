package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/jackc/pgx/v5"
)

// Dishes are reached through their submenu so the menu id in the path is
// checked as well.
const selectDishSQL = `
	SELECT d.id, d.submenu_id, d.title, d.description, d.price::text
	FROM dishes d
	JOIN submenus s ON s.id = d.submenu_id`

// DishRepository stores dishes in PostgreSQL.
type DishRepository struct {
	db *Postgres
}

// NewDishRepository creates a new dish repository.
func NewDishRepository(db *Postgres) *DishRepository {
	return &DishRepository{db: db}
}

func (r *DishRepository) List(ctx context.Context, menuID, submenuID uuid.UUID) ([]model.Dish, error) {
	rows, err := r.db.Pool.Query(ctx, selectDishSQL+`
		WHERE s.menu_id = $1 AND d.submenu_id = $2
		ORDER BY d.created_at, d.id`, menuID, submenuID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dishes := make([]model.Dish, 0)
	for rows.Next() {
		d, err := scanDish(rows)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, *d)
	}
	return dishes, rows.Err()
}

func (r *DishRepository) Get(ctx context.Context, menuID, submenuID, dishID uuid.UUID) (*model.Dish, error) {
	return getDish(ctx, r.db.Pool, menuID, submenuID, dishID)
}

// Create inserts a dish. The submenu must exist under menuID.
func (r *DishRepository) Create(ctx context.Context, menuID, submenuID uuid.UUID, input model.DishInput) (*model.Dish, error) {
	d := &model.Dish{
		ID:          uuid.New(),
		SubmenuID:   submenuID,
		Title:       input.Title,
		Description: input.Description,
		Price:       model.NewPrice(input.Price.Decimal),
	}

	tag, err := r.db.Pool.Exec(ctx, `
		INSERT INTO dishes (id, submenu_id, title, description, price)
		SELECT $1::uuid, s.id, $3::text, $4::text, $5::numeric
		FROM submenus s
		WHERE s.id = $2 AND s.menu_id = $6`,
		d.ID, submenuID, d.Title, d.Description, d.Price.String(), menuID,
	)
	if isForeignKeyViolation(err) {
		return nil, model.NewNotFoundError(model.EntitySubmenu)
	}
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, model.NewNotFoundError(model.EntitySubmenu)
	}
	return d, nil
}

func (r *DishRepository) Update(ctx context.Context, menuID, submenuID, dishID uuid.UUID, input model.DishInput) (*model.Dish, error) {
	var out *model.Dish
	err := inTx(ctx, r.db.Pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE dishes d
			SET title = $4, description = $5, price = $6::numeric
			FROM submenus s
			WHERE s.id = d.submenu_id AND s.menu_id = $1 AND d.submenu_id = $2 AND d.id = $3`,
			menuID, submenuID, dishID, input.Title, input.Description, model.NewPrice(input.Price.Decimal).String(),
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return model.NewNotFoundError(model.EntityDish)
		}
		out, err = getDish(ctx, tx, menuID, submenuID, dishID)
		return err
	})
	return out, err
}

func (r *DishRepository) Delete(ctx context.Context, menuID, submenuID, dishID uuid.UUID) (*model.Dish, error) {
	var out *model.Dish
	err := inTx(ctx, r.db.Pool, func(tx pgx.Tx) error {
		var err error
		out, err = getDish(ctx, tx, menuID, submenuID, dishID)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `DELETE FROM dishes WHERE id = $1`, dishID)
		return err
	})
	return out, err
}

func getDish(ctx context.Context, q querier, menuID, submenuID, dishID uuid.UUID) (*model.Dish, error) {
	row := q.QueryRow(ctx, selectDishSQL+`
		WHERE s.menu_id = $1 AND d.submenu_id = $2 AND d.id = $3`,
		menuID, submenuID, dishID)
	d, err := scanDish(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.NewNotFoundError(model.EntityDish)
	}
	return d, err
}

func scanDish(row pgx.Row) (*model.Dish, error) {
	var (
		d     model.Dish
		price string
	)
	if err := row.Scan(&d.ID, &d.SubmenuID, &d.Title, &d.Description, &price); err != nil {
		return nil, err
	}
	p, err := model.ParsePrice(price)
	if err != nil {
		return nil, fmt.Errorf("decode price %q: %w", price, err)
	}
	d.Price = p
	return &d, nil
}
