package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// TemplateStore owns read/write access to the `template` collection.
type TemplateStore struct {
	col *mongo.Collection
}

// NewTemplateStore returns a store bound to the `template` collection.
func NewTemplateStore(db *mongo.Database) *TemplateStore {
	return &TemplateStore{col: db.Collection("template")}
}

// Create inserts a new template document and returns it with the generated
// id filled in.
func (s *TemplateStore) Create(ctx context.Context, tpl Template) (*Template, error) {
	result, err := s.col.InsertOne(ctx, tpl)
	if err != nil {
		return nil, fmt.Errorf("insert template: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		tpl.ID = oid
	}
	return &tpl, nil
}

// FindAll returns every template document.
func (s *TemplateStore) FindAll(ctx context.Context) ([]Template, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find templates: %w", err)
	}
	defer cursor.Close(ctx)

	templates := make([]Template, 0)
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, fmt.Errorf("decode templates: %w", err)
	}
	return templates, nil
}

// FindByID returns the template with the given hex id, or ErrNotFound.
func (s *TemplateStore) FindByID(ctx context.Context, id string) (*Template, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("parse template id %q: %w", id, err)
	}
	var tpl Template
	if err := s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&tpl); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find template: %w", err)
	}
	return &tpl, nil
}

// Update applies a partial $set merge; only the supplied fields change.
func (s *TemplateStore) Update(ctx context.Context, id string, fields bson.M) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("parse template id %q: %w", id, err)
	}
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return nil, fmt.Errorf("update template: %w", err)
	}
	return result, nil
}

// Delete removes the template with the given hex id.
func (s *TemplateStore) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("parse template id %q: %w", id, err)
	}
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("delete template: %w", err)
	}
	return result, nil
}
