package models

import "go.mongodb.org/mongo-driver/bson"

// VehicleCreate is the payload for listing a vehicle. VehicleID may be
// supplied by the client to use as the primary key; when omitted the store
// generates one.
type VehicleCreate struct {
	VehicleID    string  `json:"vehicleid,omitempty"`
	Type         string  `json:"type" validate:"required"`
	Fuel         string  `json:"fuel" validate:"required"`
	Transmission string  `json:"transmission" validate:"required"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	Availability *bool   `json:"availability" validate:"required"`
	Location     string  `json:"location" validate:"required"`
	Brand        string  `json:"brand" validate:"required"`
	Year         int     `json:"year" validate:"required,gte=1900,lte=2100"`
	Model        string  `json:"model" validate:"required"`
}

// Validate checks the create payload
func (v VehicleCreate) Validate() error {
	return validate.Struct(v)
}

// Document returns the payload as a mongo document. The vehicleid key is kept
// here; the repository turns it into the primary key and strips it so it never
// lands in the stored attributes.
func (v VehicleCreate) Document() bson.M {
	doc := bson.M{
		"type":         v.Type,
		"fuel":         v.Fuel,
		"transmission": v.Transmission,
		"price":        v.Price,
		"availability": *v.Availability,
		"location":     v.Location,
		"brand":        v.Brand,
		"year":         v.Year,
		"model":        v.Model,
	}
	if v.VehicleID != "" {
		doc["vehicleid"] = v.VehicleID
	}
	return doc
}

// VehicleUpdate is the partial-update payload for a vehicle
type VehicleUpdate struct {
	Type         *string  `json:"type,omitempty"`
	Fuel         *string  `json:"fuel,omitempty"`
	Transmission *string  `json:"transmission,omitempty"`
	Price        *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Availability *bool    `json:"availability,omitempty"`
	Location     *string  `json:"location,omitempty"`
	Brand        *string  `json:"brand,omitempty"`
	Year         *int     `json:"year,omitempty" validate:"omitempty,gte=1900,lte=2100"`
	Model        *string  `json:"model,omitempty"`
}

// Validate rejects a payload carrying no updatable fields
func (v VehicleUpdate) Validate() error {
	if len(v.Fields()) == 0 {
		return ErrEmptyUpdate
	}
	return validate.Struct(v)
}

// Fields returns only the fields present in the payload
func (v VehicleUpdate) Fields() bson.M {
	fields := bson.M{}
	if v.Type != nil {
		fields["type"] = *v.Type
	}
	if v.Fuel != nil {
		fields["fuel"] = *v.Fuel
	}
	if v.Transmission != nil {
		fields["transmission"] = *v.Transmission
	}
	if v.Price != nil {
		fields["price"] = *v.Price
	}
	if v.Availability != nil {
		fields["availability"] = *v.Availability
	}
	if v.Location != nil {
		fields["location"] = *v.Location
	}
	if v.Brand != nil {
		fields["brand"] = *v.Brand
	}
	if v.Year != nil {
		fields["year"] = *v.Year
	}
	if v.Model != nil {
		fields["model"] = *v.Model
	}
	return fields
}
