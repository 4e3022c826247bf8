package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/menu-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// dishDocument represents a dish document in MongoDB. MenuID is kept so a
// menu delete can cascade without a join.
type dishDocument struct {
	ID          string               `bson:"_id"`
	MenuID      string               `bson:"menu_id"`
	SubmenuID   string               `bson:"submenu_id"`
	Title       string               `bson:"title"`
	Description string               `bson:"description"`
	Price       primitive.Decimal128 `bson:"price"`
	CreatedAt   time.Time            `bson:"created_at"`
}

// MongoDishRepository stores dishes in MongoDB.
type MongoDishRepository struct {
	db *MongoDB
}

// NewMongoDishRepository creates a new dish repository.
func NewMongoDishRepository(db *MongoDB) *MongoDishRepository {
	return &MongoDishRepository{db: db}
}

func (r *MongoDishRepository) List(ctx context.Context, menuID, submenuID uuid.UUID) ([]model.Dish, error) {
	cursor, err := r.db.Dishes.Find(ctx,
		bson.M{"menu_id": menuID.String(), "submenu_id": submenuID.String()},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []dishDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	dishes := make([]model.Dish, 0, len(docs))
	for _, doc := range docs {
		d, err := dishFromDocument(doc)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, *d)
	}
	return dishes, nil
}

func (r *MongoDishRepository) Get(ctx context.Context, menuID, submenuID, dishID uuid.UUID) (*model.Dish, error) {
	var doc dishDocument
	err := r.db.Dishes.FindOne(ctx, dishFilter(menuID, submenuID, dishID)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.NewNotFoundError(model.EntityDish)
	}
	if err != nil {
		return nil, err
	}
	return dishFromDocument(doc)
}

// Create inserts a dish after checking the submenu exists under menuID.
func (r *MongoDishRepository) Create(ctx context.Context, menuID, submenuID uuid.UUID, input model.DishInput) (*model.Dish, error) {
	n, err := r.db.Submenus.CountDocuments(ctx, submenuFilter(menuID, submenuID))
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, model.NewNotFoundError(model.EntitySubmenu)
	}

	price, err := toDecimal128(input.Price)
	if err != nil {
		return nil, err
	}
	doc := dishDocument{
		ID:          uuid.NewString(),
		MenuID:      menuID.String(),
		SubmenuID:   submenuID.String(),
		Title:       input.Title,
		Description: input.Description,
		Price:       price,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := r.db.Dishes.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return dishFromDocument(doc)
}

func (r *MongoDishRepository) Update(ctx context.Context, menuID, submenuID, dishID uuid.UUID, input model.DishInput) (*model.Dish, error) {
	price, err := toDecimal128(input.Price)
	if err != nil {
		return nil, err
	}

	var doc dishDocument
	err = r.db.Dishes.FindOneAndUpdate(
		ctx,
		dishFilter(menuID, submenuID, dishID),
		bson.M{"$set": bson.M{"title": input.Title, "description": input.Description, "price": price}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.NewNotFoundError(model.EntityDish)
	}
	if err != nil {
		return nil, err
	}
	return dishFromDocument(doc)
}

func (r *MongoDishRepository) Delete(ctx context.Context, menuID, submenuID, dishID uuid.UUID) (*model.Dish, error) {
	var doc dishDocument
	err := r.db.Dishes.FindOneAndDelete(ctx, dishFilter(menuID, submenuID, dishID)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.NewNotFoundError(model.EntityDish)
	}
	if err != nil {
		return nil, err
	}
	return dishFromDocument(doc)
}

func dishFilter(menuID, submenuID, dishID uuid.UUID) bson.M {
	return bson.M{
		"_id":        dishID.String(),
		"menu_id":    menuID.String(),
		"submenu_id": submenuID.String(),
	}
}

func toDecimal128(p model.Price) (primitive.Decimal128, error) {
	d, err := primitive.ParseDecimal128(model.NewPrice(p.Decimal).String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("encode price %s: %w", p, err)
	}
	return d, nil
}

func dishFromDocument(doc dishDocument) (*model.Dish, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, err
	}
	submenuID, err := uuid.Parse(doc.SubmenuID)
	if err != nil {
		return nil, err
	}
	price, err := model.ParsePrice(doc.Price.String())
	if err != nil {
		return nil, fmt.Errorf("decode price %s: %w", doc.Price, err)
	}
	return &model.Dish{
		ID:          id,
		SubmenuID:   submenuID,
		Title:       doc.Title,
		Description: doc.Description,
		Price:       price,
	}, nil
}
