package models

import "go.mongodb.org/mongo-driver/bson"

// UserProfile holds the profile fields stored alongside a user's identity.
// The identity key (Firebase UID) and email are attached by the repository,
// never supplied here.
type UserProfile struct {
	Address string `json:"address" bson:"address" validate:"required"`
	NIC     string `json:"nic" bson:"nic" validate:"required"`
	Phone   string `json:"phone" bson:"phone" validate:"required"`
	Role    string `json:"role,omitempty" bson:"role,omitempty"`
}

// Validate checks the profile payload
func (u UserProfile) Validate() error {
	return validate.Struct(u)
}

// Document returns the profile as a mongo document. Role is omitted when
// empty so the repository can apply its default.
func (u UserProfile) Document() bson.M {
	doc := bson.M{
		"address": u.Address,
		"nic":     u.NIC,
		"phone":   u.Phone,
	}
	if u.Role != "" {
		doc["role"] = u.Role
	}
	return doc
}

// UserProfileUpdate is the partial-update payload for /users/me
type UserProfileUpdate struct {
	Address *string `json:"address,omitempty"`
	NIC     *string `json:"nic,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Role    *string `json:"role,omitempty"`
}

// Validate rejects a payload carrying no updatable fields
func (u UserProfileUpdate) Validate() error {
	if len(u.Fields()) == 0 {
		return ErrEmptyUpdate
	}
	return nil
}

// Fields returns only the fields present in the payload
func (u UserProfileUpdate) Fields() bson.M {
	fields := bson.M{}
	if u.Address != nil {
		fields["address"] = *u.Address
	}
	if u.NIC != nil {
		fields["nic"] = *u.NIC
	}
	if u.Phone != nil {
		fields["phone"] = *u.Phone
	}
	if u.Role != nil {
		fields["role"] = *u.Role
	}
	return fields
}
