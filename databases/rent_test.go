package databases_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ChamilkaMihiraj2002/AutoShare/databases"
	"github.com/ChamilkaMihiraj2002/AutoShare/databases/mocks"
)

func TestRentDatabase_CreateDiscardsClientKeyAndAttachesParties(t *testing.T) {

	// define variables for interfaces
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var insertResult databases.InsertOneResultHelper
	var srHelper databases.SingleResultHelper

	// set interfaces implementation to mocked structures
	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	insertResult = &mocks.InsertOneResultHelper{}
	srHelper = &mocks.SingleResultHelper{}

	insertResult.(*mocks.InsertOneResultHelper).
		On("Decode").Return("rent-1")

	srHelper.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*bson.M)
		*arg = bson.M{"_id": "rent-1", "renter_uid": "renter-1", "owner_uid": "owner-1", "vehicle_id": "veh-1"}
	})

	// a client-supplied rentid or _id never reaches the store; renter and
	// owner are attached server-side
	collectionHelper.(*mocks.CollectionHelper).
		On("InsertOne", context.Background(), bson.M{
			"renter_uid": "renter-1",
			"owner_uid":  "owner-1",
			"vehicle_id": "veh-1",
			"start_date": "2026-09-01",
			"end_date":   "2026-09-05",
		}).
		Return(insertResult, nil)

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"_id": "rent-1"}).
		Return(srHelper)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "rents").Return(collectionHelper)

	rentDba := databases.NewRentDatabase(dbHelper)

	created, err := rentDba.Create(context.Background(), "renter-1", "owner-1", bson.M{
		"rentid":     "my-rent-key",
		"_id":        "spoofed",
		"vehicle_id": "veh-1",
		"start_date": "2026-09-01",
		"end_date":   "2026-09-05",
	})

	assert.NoError(t, err)
	assert.Equal(t, "rent-1", created["_id"])
	assert.Equal(t, "renter-1", created["renter_uid"])
}

func TestRentDatabase_UpdateFiltersOnRenterAndStripsLinkage(t *testing.T) {
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var srHelper databases.SingleResultHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	srHelper = &mocks.SingleResultHelper{}

	srHelper.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*bson.M)
		*arg = bson.M{"_id": "rent-1", "renter_uid": "renter-1", "end_date": "2026-09-07"}
	})

	collectionHelper.(*mocks.CollectionHelper).
		On("UpdateOne", context.Background(),
			bson.M{"_id": "rent-1", "renter_uid": "renter-1"},
			bson.M{"$set": bson.M{"end_date": "2026-09-07"}}).
		Return(&mongo.UpdateResult{MatchedCount: 1}, nil)

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"_id": "rent-1"}).
		Return(srHelper)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "rents").Return(collectionHelper)

	rentDba := databases.NewRentDatabase(dbHelper)

	rent, err := rentDba.Update(context.Background(), "renter-1", "rent-1", bson.M{
		"renter_uid": "someone-else",
		"owner_uid":  "someone-else",
		"vehicle_id": "other-vehicle",
		"end_date":   "2026-09-07",
	})

	assert.NoError(t, err)
	assert.Equal(t, "2026-09-07", rent["end_date"])
}

func TestRentDatabase_UpdateNonRenterLooksAbsent(t *testing.T) {
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}

	collectionHelper.(*mocks.CollectionHelper).
		On("UpdateOne", context.Background(),
			bson.M{"_id": "rent-1", "renter_uid": "stranger"},
			bson.M{"$set": bson.M{"end_date": "2026-09-07"}}).
		Return(&mongo.UpdateResult{MatchedCount: 0}, nil)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "rents").Return(collectionHelper)

	rentDba := databases.NewRentDatabase(dbHelper)

	rent, err := rentDba.Update(context.Background(), "stranger", "rent-1", bson.M{"end_date": "2026-09-07"})

	assert.Nil(t, rent)
	assert.NoError(t, err)
}

func TestRentDatabase_DeleteFiltersOnRenter(t *testing.T) {
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}

	collectionHelper.(*mocks.CollectionHelper).
		On("DeleteOne", context.Background(), bson.M{"_id": "rent-1", "renter_uid": "renter-1"}).
		Return(&mongo.DeleteResult{DeletedCount: 1}, nil)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "rents").Return(collectionHelper)

	rentDba := databases.NewRentDatabase(dbHelper)

	deleted, err := rentDba.Delete(context.Background(), "renter-1", "rent-1")

	assert.NoError(t, err)
	assert.True(t, deleted)
}

func TestRentDatabase_ListEnded(t *testing.T) {
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var cursor databases.CursorHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	cursor = &mocks.CursorHelper{}

	cursor.(*mocks.CursorHelper).
		On("Decode", mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]bson.M)
		*arg = []bson.M{{"_id": "rent-1", "vehicle_id": "veh-1", "end_date": "2026-08-30"}}
	})

	// only rents that ended before the given day and were not swept yet
	collectionHelper.(*mocks.CollectionHelper).
		On("Find", context.Background(), bson.M{
			"end_date":  bson.M{"$lt": "2026-09-01"},
			"completed": bson.M{"$ne": true},
		}, mock.Anything).
		Return(cursor, nil)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "rents").Return(collectionHelper)

	rentDba := databases.NewRentDatabase(dbHelper)

	rents, err := rentDba.ListEnded(context.Background(), "2026-09-01", 500)

	assert.NoError(t, err)
	assert.Len(t, rents, 1)
	assert.Equal(t, "rent-1", rents[0]["_id"])
}

func TestRentDatabase_MarkCompleted(t *testing.T) {
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}

	collectionHelper.(*mocks.CollectionHelper).
		On("UpdateOne", context.Background(),
			bson.M{"_id": "rent-1"},
			bson.M{"$set": bson.M{"completed": true}}).
		Return(&mongo.UpdateResult{MatchedCount: 1}, nil)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "rents").Return(collectionHelper)

	rentDba := databases.NewRentDatabase(dbHelper)

	err := rentDba.MarkCompleted(context.Background(), "rent-1")

	assert.NoError(t, err)
}
