package databases

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stringifyID renders the document's primary key as a string. Clients always
// see string keys, whatever the stored representation is.
func stringifyID(doc bson.M) bson.M {
	if doc == nil {
		return nil
	}
	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		doc["_id"] = oid.Hex()
	}
	return doc
}

func stringifyIDs(docs []bson.M) []bson.M {
	for i := range docs {
		docs[i] = stringifyID(docs[i])
	}
	return docs
}

// idValue builds the _id match for a path id. Keys may be stored either as the
// raw string the client supplied or as a store-generated ObjectID, so a valid
// hex id matches both forms.
func idValue(id string) interface{} {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"$in": bson.A{oid, id}}
	}
	return id
}

// stripFields copies fields, dropping the named keys
func stripFields(fields bson.M, keys ...string) bson.M {
	out := bson.M{}
	for k, v := range fields {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}
