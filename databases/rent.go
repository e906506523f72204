package databases

//go generate: mockery --name RentDatabase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const rentName = "rents"

// RentDatabase contains the methods to use with the rent collection. Rent
// keys are always store-generated; a client-supplied rentid is discarded.
// Update and Delete filter on (_id AND renter_uid), so only the renter can
// mutate a rent and a non-renter gets the same absent result as a missing
// rent. The vehicle owner's read access is enforced at the handler layer.
type RentDatabase interface {
	Create(ctx context.Context, renterUID, ownerUID string, doc bson.M) (bson.M, error)
	GetByID(ctx context.Context, rentID string) (bson.M, error)
	ListByRenter(ctx context.Context, renterUID string, limit int64) ([]bson.M, error)
	ListByOwner(ctx context.Context, ownerUID string, limit int64) ([]bson.M, error)
	Update(ctx context.Context, renterUID, rentID string, fields bson.M) (bson.M, error)
	Delete(ctx context.Context, renterUID, rentID string) (bool, error)
	ListEnded(ctx context.Context, before string, limit int64) ([]bson.M, error)
	MarkCompleted(ctx context.Context, rentID string) error
}

type rentDatabase struct {
	db   DatabaseHelper
	repo Repository
}

// NewRentDatabase initializes a new instance of rent database with the provided db connection
func NewRentDatabase(db DatabaseHelper) RentDatabase {
	return &rentDatabase{db: db, repo: NewRepository(db, rentName)}
}

func (r *rentDatabase) Create(ctx context.Context, renterUID, ownerUID string, doc bson.M) (bson.M, error) {
	out := stripFields(doc, "rentid", "_id")
	out["renter_uid"] = renterUID
	out["owner_uid"] = ownerUID
	created, err := r.repo.Create(ctx, out)
	if err != nil {
		return nil, err
	}
	return stringifyID(created), nil
}

func (r *rentDatabase) GetByID(ctx context.Context, rentID string) (bson.M, error) {
	doc, err := r.repo.GetByID(ctx, idValue(rentID))
	if err != nil {
		return nil, err
	}
	return stringifyID(doc), nil
}

func (r *rentDatabase) ListByRenter(ctx context.Context, renterUID string, limit int64) ([]bson.M, error) {
	docs, err := r.repo.List(ctx, bson.M{"renter_uid": renterUID}, limit)
	if err != nil {
		return nil, err
	}
	return stringifyIDs(docs), nil
}

func (r *rentDatabase) ListByOwner(ctx context.Context, ownerUID string, limit int64) ([]bson.M, error) {
	docs, err := r.repo.List(ctx, bson.M{"owner_uid": ownerUID}, limit)
	if err != nil {
		return nil, err
	}
	return stringifyIDs(docs), nil
}

func (r *rentDatabase) Update(ctx context.Context, renterUID, rentID string, fields bson.M) (bson.M, error) {
	// ownership and linkage fields are write-once
	fields = stripFields(fields, "_id", "renter_uid", "owner_uid", "vehicle_id", "rentid")
	filter := bson.M{"_id": idValue(rentID), "renter_uid": renterUID}
	if len(fields) == 0 {
		return r.findOne(ctx, filter)
	}
	res, err := r.db.Collection(rentName).UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, rentID)
}

func (r *rentDatabase) Delete(ctx context.Context, renterUID, rentID string) (bool, error) {
	res, err := r.db.Collection(rentName).DeleteOne(ctx, bson.M{"_id": idValue(rentID), "renter_uid": renterUID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}

// ListEnded returns rents whose end date is before the given day and which
// have not been completed yet. Dates are stored as YYYY-MM-DD strings, so the
// comparison is lexicographic.
func (r *rentDatabase) ListEnded(ctx context.Context, before string, limit int64) ([]bson.M, error) {
	docs, err := r.repo.List(ctx, bson.M{
		"end_date":  bson.M{"$lt": before},
		"completed": bson.M{"$ne": true},
	}, limit)
	if err != nil {
		return nil, err
	}
	return stringifyIDs(docs), nil
}

func (r *rentDatabase) MarkCompleted(ctx context.Context, rentID string) error {
	_, err := r.db.Collection(rentName).UpdateOne(ctx,
		bson.M{"_id": idValue(rentID)},
		bson.M{"$set": bson.M{"completed": true}})
	return err
}

func (r *rentDatabase) findOne(ctx context.Context, filter bson.M) (bson.M, error) {
	var doc bson.M
	err := r.db.Collection(rentName).FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return stringifyID(doc), nil
}
