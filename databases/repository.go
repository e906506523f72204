package databases

//go generate: mockery --name Repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository provides generic document CRUD against a single collection.
// Absence is reported as a nil document with a nil error; any non-nil error
// is an infrastructure failure and never means "not found".
type Repository interface {
	Create(ctx context.Context, doc bson.M) (bson.M, error)
	GetByID(ctx context.Context, id interface{}) (bson.M, error)
	UpdateByID(ctx context.Context, id interface{}, fields bson.M) (bson.M, error)
	DeleteByID(ctx context.Context, id interface{}) (bool, error)
	List(ctx context.Context, filter bson.M, limit int64) ([]bson.M, error)
}

type repository struct {
	db         DatabaseHelper
	collection string
}

// NewRepository initializes a generic repository over the named collection
func NewRepository(db DatabaseHelper, collection string) Repository {
	return &repository{db: db, collection: collection}
}

func (r *repository) Create(ctx context.Context, doc bson.M) (bson.M, error) {
	res, err := r.db.Collection(r.collection).InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	// read the document back so the caller sees exactly what was persisted,
	// including a store-generated key
	return r.GetByID(ctx, res.Decode())
}

func (r *repository) GetByID(ctx context.Context, id interface{}) (bson.M, error) {
	var doc bson.M
	err := r.db.Collection(r.collection).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *repository) UpdateByID(ctx context.Context, id interface{}, fields bson.M) (bson.M, error) {
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}
	res, err := r.db.Collection(r.collection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

func (r *repository) DeleteByID(ctx context.Context, id interface{}) (bool, error) {
	res, err := r.db.Collection(r.collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}

func (r *repository) List(ctx context.Context, filter bson.M, limit int64) ([]bson.M, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := r.db.Collection(r.collection).Find(ctx, filter, &options.FindOptions{Limit: &limit})
	if err != nil {
		return nil, err
	}
	var docs []bson.M
	if err := cursor.Decode(&docs); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []bson.M{}
	}
	return docs, nil
}
