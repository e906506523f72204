package databases

//go generate: mockery --name UserDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

const userName = "users"

// defaultRole is attached to profiles created without an explicit role
const defaultRole = "user"

// UserDatabase contains the methods to use with the user profile collection.
// The primary key is the identity provider's subject id, so no ownership
// filter is needed: the key is the identity.
type UserDatabase interface {
	CreateProfile(ctx context.Context, uid, email string, profile bson.M) (bson.M, error)
	GetByUID(ctx context.Context, uid string) (bson.M, error)
	UpdateByUID(ctx context.Context, uid string, fields bson.M) (bson.M, error)
	DeleteByUID(ctx context.Context, uid string) (bool, error)
}

type userDatabase struct {
	repo Repository
}

// NewUserDatabase initializes a new instance of user database with the provided db connection
func NewUserDatabase(db DatabaseHelper) UserDatabase {
	return &userDatabase{repo: NewRepository(db, userName)}
}

func (u *userDatabase) CreateProfile(ctx context.Context, uid, email string, profile bson.M) (bson.M, error) {
	doc := stripFields(profile, "_id", "email")
	doc["_id"] = uid
	doc["email"] = email
	if _, ok := doc["role"]; !ok {
		doc["role"] = defaultRole
	}
	created, err := u.repo.Create(ctx, doc)
	if err != nil {
		return nil, err
	}
	return stringifyID(created), nil
}

func (u *userDatabase) GetByUID(ctx context.Context, uid string) (bson.M, error) {
	doc, err := u.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return stringifyID(doc), nil
}

func (u *userDatabase) UpdateByUID(ctx context.Context, uid string, fields bson.M) (bson.M, error) {
	// identity key and email are immutable
	doc, err := u.repo.UpdateByID(ctx, uid, stripFields(fields, "_id", "email"))
	if err != nil {
		return nil, err
	}
	return stringifyID(doc), nil
}

func (u *userDatabase) DeleteByUID(ctx context.Context, uid string) (bool, error) {
	return u.repo.DeleteByID(ctx, uid)
}
