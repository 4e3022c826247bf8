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

// submenuDocument represents a submenu document in MongoDB.
type submenuDocument struct {
	ID          string    `bson:"_id"`
	MenuID      string    `bson:"menu_id"`
	Title       string    `bson:"title"`
	Description string    `bson:"description"`
	CreatedAt   time.Time `bson:"created_at"`
}

// MongoSubmenuRepository stores submenus in MongoDB.
type MongoSubmenuRepository struct {
	db *MongoDB
}

// NewMongoSubmenuRepository creates a new submenu repository.
func NewMongoSubmenuRepository(db *MongoDB) *MongoSubmenuRepository {
	return &MongoSubmenuRepository{db: db}
}

func (r *MongoSubmenuRepository) List(ctx context.Context, menuID uuid.UUID) ([]model.Submenu, error) {
	cursor, err := r.db.Submenus.Find(ctx,
		bson.M{"menu_id": menuID.String()},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []submenuDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	submenus := make([]model.Submenu, 0, len(docs))
	for _, doc := range docs {
		s, err := r.withCount(ctx, doc)
		if err != nil {
			return nil, err
		}
		submenus = append(submenus, *s)
	}
	return submenus, nil
}

func (r *MongoSubmenuRepository) Get(ctx context.Context, menuID, submenuID uuid.UUID) (*model.Submenu, error) {
	var doc submenuDocument
	err := r.db.Submenus.FindOne(ctx, submenuFilter(menuID, submenuID)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.NewNotFoundError(model.EntitySubmenu)
	}
	if err != nil {
		return nil, err
	}
	return r.withCount(ctx, doc)
}

// Create inserts a submenu after checking the menu exists.
func (r *MongoSubmenuRepository) Create(ctx context.Context, menuID uuid.UUID, input model.SubmenuInput) (*model.Submenu, error) {
	n, err := r.db.Menus.CountDocuments(ctx, bson.M{"_id": menuID.String()})
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, model.NewNotFoundError(model.EntityMenu)
	}

	doc := submenuDocument{
		ID:          uuid.NewString(),
		MenuID:      menuID.String(),
		Title:       input.Title,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := r.db.Submenus.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return submenuFromDocument(doc, 0)
}

func (r *MongoSubmenuRepository) Update(ctx context.Context, menuID, submenuID uuid.UUID, input model.SubmenuInput) (*model.Submenu, error) {
	var doc submenuDocument
	err := r.db.Submenus.FindOneAndUpdate(
		ctx,
		submenuFilter(menuID, submenuID),
		bson.M{"$set": bson.M{"title": input.Title, "description": input.Description}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.NewNotFoundError(model.EntitySubmenu)
	}
	if err != nil {
		return nil, err
	}
	return r.withCount(ctx, doc)
}

// Delete removes the submenu and its dishes.
func (r *MongoSubmenuRepository) Delete(ctx context.Context, menuID, submenuID uuid.UUID) (*model.Submenu, error) {
	s, err := r.Get(ctx, menuID, submenuID)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.Dishes.DeleteMany(ctx, bson.M{"submenu_id": submenuID.String()}); err != nil {
		return nil, err
	}
	if _, err := r.db.Submenus.DeleteOne(ctx, submenuFilter(menuID, submenuID)); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *MongoSubmenuRepository) withCount(ctx context.Context, doc submenuDocument) (*model.Submenu, error) {
	dishes, err := r.db.Dishes.CountDocuments(ctx, bson.M{"submenu_id": doc.ID})
	if err != nil {
		return nil, err
	}
	return submenuFromDocument(doc, int(dishes))
}

func submenuFilter(menuID, submenuID uuid.UUID) bson.M {
	return bson.M{"_id": submenuID.String(), "menu_id": menuID.String()}
}

func submenuFromDocument(doc submenuDocument, dishes int) (*model.Submenu, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, err
	}
	menuID, err := uuid.Parse(doc.MenuID)
	if err != nil {
		return nil, err
	}
	return &model.Submenu{
		ID:          id,
		MenuID:      menuID,
		Title:       doc.Title,
		Description: doc.Description,
		DishesCount: dishes,
	}, nil
}
