package models

import "go.mongodb.org/mongo-driver/bson"

// RentCreate is the payload for booking a vehicle. RentID is accepted for
// wire compatibility but always discarded; rent primary keys are
// store-generated.
type RentCreate struct {
	RentID    string  `json:"rentid,omitempty"`
	VehicleID string  `json:"vehicle_id" validate:"required"`
	StartDate string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	Price     float64 `json:"price" validate:"gte=0"`
}

// Validate checks the create payload
func (r RentCreate) Validate() error {
	return validate.Struct(r)
}

// Document returns the payload as a mongo document
func (r RentCreate) Document() bson.M {
	doc := bson.M{
		"vehicle_id": r.VehicleID,
		"start_date": r.StartDate,
		"end_date":   r.EndDate,
		"price":      r.Price,
	}
	if r.RentID != "" {
		doc["rentid"] = r.RentID
	}
	return doc
}

// RentUpdate is the partial-update payload for a rent. Ownership and linkage
// fields (renter, owner, vehicle reference) are write-once and not accepted.
type RentUpdate struct {
	StartDate *string  `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string  `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Price     *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
}

// Validate rejects a payload carrying no updatable fields
func (r RentUpdate) Validate() error {
	if len(r.Fields()) == 0 {
		return ErrEmptyUpdate
	}
	return validate.Struct(r)
}

// Fields returns only the fields present in the payload
func (r RentUpdate) Fields() bson.M {
	fields := bson.M{}
	if r.StartDate != nil {
		fields["start_date"] = *r.StartDate
	}
	if r.EndDate != nil {
		fields["end_date"] = *r.EndDate
	}
	if r.Price != nil {
		fields["price"] = *r.Price
	}
	return fields
}
