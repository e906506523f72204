package databases

//go generate: mockery --name VehicleDatabase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const vehicleName = "vehicles"

// VehicleDatabase contains the methods to use with the vehicle collection.
// Update and Delete filter on (_id AND owner_uid): a non-owner gets the same
// absent result as a missing vehicle, so the existence of someone else's
// listing is never disclosed through a different status.
type VehicleDatabase interface {
	Create(ctx context.Context, ownerUID string, doc bson.M) (bson.M, error)
	GetByID(ctx context.Context, vehicleID string) (bson.M, error)
	ListAll(ctx context.Context, limit int64) ([]bson.M, error)
	ListByOwner(ctx context.Context, ownerUID string, limit int64) ([]bson.M, error)
	Update(ctx context.Context, ownerUID, vehicleID string, fields bson.M) (bson.M, error)
	Delete(ctx context.Context, ownerUID, vehicleID string) (bool, error)
	SetAvailability(ctx context.Context, vehicleID string, available bool) error
}

type vehicleDatabase struct {
	db   DatabaseHelper
	repo Repository
}

// NewVehicleDatabase initializes a new instance of vehicle database with the provided db connection
func NewVehicleDatabase(db DatabaseHelper) VehicleDatabase {
	return &vehicleDatabase{db: db, repo: NewRepository(db, vehicleName)}
}

func (v *vehicleDatabase) Create(ctx context.Context, ownerUID string, doc bson.M) (bson.M, error) {
	out := stripFields(doc, "vehicleid")
	out["owner_uid"] = ownerUID
	// an optional client-supplied key becomes the primary key; the input
	// field itself never lands in the stored attributes
	if id, ok := doc["vehicleid"].(string); ok && id != "" {
		out["_id"] = id
	}
	created, err := v.repo.Create(ctx, out)
	if err != nil {
		return nil, err
	}
	return stringifyID(created), nil
}

func (v *vehicleDatabase) GetByID(ctx context.Context, vehicleID string) (bson.M, error) {
	doc, err := v.repo.GetByID(ctx, idValue(vehicleID))
	if err != nil {
		return nil, err
	}
	return stringifyID(doc), nil
}

func (v *vehicleDatabase) ListAll(ctx context.Context, limit int64) ([]bson.M, error) {
	docs, err := v.repo.List(ctx, bson.M{}, limit)
	if err != nil {
		return nil, err
	}
	return stringifyIDs(docs), nil
}

func (v *vehicleDatabase) ListByOwner(ctx context.Context, ownerUID string, limit int64) ([]bson.M, error) {
	docs, err := v.repo.List(ctx, bson.M{"owner_uid": ownerUID}, limit)
	if err != nil {
		return nil, err
	}
	return stringifyIDs(docs), nil
}

func (v *vehicleDatabase) Update(ctx context.Context, ownerUID, vehicleID string, fields bson.M) (bson.M, error) {
	fields = stripFields(fields, "_id", "owner_uid", "vehicleid")
	filter := bson.M{"_id": idValue(vehicleID), "owner_uid": ownerUID}
	if len(fields) == 0 {
		// nothing to apply; ownership still decides between the current
		// document and absent
		return v.findOne(ctx, filter)
	}
	res, err := v.db.Collection(vehicleName).UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, nil
	}
	return v.GetByID(ctx, vehicleID)
}

func (v *vehicleDatabase) Delete(ctx context.Context, ownerUID, vehicleID string) (bool, error) {
	res, err := v.db.Collection(vehicleName).DeleteOne(ctx, bson.M{"_id": idValue(vehicleID), "owner_uid": ownerUID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}

// SetAvailability flips the availability flag without an ownership filter. It
// is reserved for server-internal callers such as the rent sweep.
func (v *vehicleDatabase) SetAvailability(ctx context.Context, vehicleID string, available bool) error {
	_, err := v.db.Collection(vehicleName).UpdateOne(ctx,
		bson.M{"_id": idValue(vehicleID)},
		bson.M{"$set": bson.M{"availability": available}})
	return err
}

func (v *vehicleDatabase) findOne(ctx context.Context, filter bson.M) (bson.M, error) {
	var doc bson.M
	err := v.db.Collection(vehicleName).FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return stringifyID(doc), nil
}
