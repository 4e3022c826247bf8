package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/menu-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// menuDocument represents a menu document in MongoDB.
type menuDocument struct {
	ID          string    `bson:"_id"`
	Title       string    `bson:"title"`
	Description string    `bson:"description"`
	CreatedAt   time.Time `bson:"created_at"`
}

// MongoMenuRepository stores menus in MongoDB.
type MongoMenuRepository struct {
	db *MongoDB
}

// NewMongoMenuRepository creates a new menu repository.
func NewMongoMenuRepository(db *MongoDB) *MongoMenuRepository {
	return &MongoMenuRepository{db: db}
}

func (r *MongoMenuRepository) List(ctx context.Context) ([]model.Menu, error) {
	cursor, err := r.db.Menus.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []menuDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	menus := make([]model.Menu, 0, len(docs))
	for _, doc := range docs {
		m, err := r.withCounts(ctx, doc)
		if err != nil {
			return nil, err
		}
		menus = append(menus, *m)
	}
	return menus, nil
}

func (r *MongoMenuRepository) Get(ctx context.Context, menuID uuid.UUID) (*model.Menu, error) {
	doc, err := r.find(ctx, menuID)
	if err != nil {
		return nil, err
	}
	return r.withCounts(ctx, *doc)
}

func (r *MongoMenuRepository) Create(ctx context.Context, input model.MenuInput) (*model.Menu, error) {
	doc := menuDocument{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := r.db.Menus.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return menuFromDocument(doc, 0, 0)
}

func (r *MongoMenuRepository) Update(ctx context.Context, menuID uuid.UUID, input model.MenuInput) (*model.Menu, error) {
	var doc menuDocument
	err := r.db.Menus.FindOneAndUpdate(
		ctx,
		bson.M{"_id": menuID.String()},
		bson.M{"$set": bson.M{"title": input.Title, "description": input.Description}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.NewNotFoundError(model.EntityMenu)
	}
	if err != nil {
		return nil, err
	}
	return r.withCounts(ctx, doc)
}

// Delete removes the menu and cascades to its submenus and dishes.
func (r *MongoMenuRepository) Delete(ctx context.Context, menuID uuid.UUID) (*model.Menu, error) {
	m, err := r.Get(ctx, menuID)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"menu_id": menuID.String()}
	if _, err := r.db.Dishes.DeleteMany(ctx, filter); err != nil {
		return nil, err
	}
	if _, err := r.db.Submenus.DeleteMany(ctx, filter); err != nil {
		return nil, err
	}
	if _, err := r.db.Menus.DeleteOne(ctx, bson.M{"_id": menuID.String()}); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *MongoMenuRepository) find(ctx context.Context, menuID uuid.UUID) (*menuDocument, error) {
	var doc menuDocument
	err := r.db.Menus.FindOne(ctx, bson.M{"_id": menuID.String()}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.NewNotFoundError(model.EntityMenu)
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *MongoMenuRepository) withCounts(ctx context.Context, doc menuDocument) (*model.Menu, error) {
	filter := bson.M{"menu_id": doc.ID}
	submenus, err := r.db.Submenus.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}
	dishes, err := r.db.Dishes.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}
	return menuFromDocument(doc, int(submenus), int(dishes))
}

func menuFromDocument(doc menuDocument, submenus, dishes int) (*model.Menu, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, err
	}
	return &model.Menu{
		ID:            id,
		Title:         doc.Title,
		Description:   doc.Description,
		SubmenusCount: submenus,
		DishesCount:   dishes,
	}, nil
}
