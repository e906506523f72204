package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/ChamilkaMihiraj2002/AutoShare/config"
	"github.com/ChamilkaMihiraj2002/AutoShare/databases"
	"github.com/ChamilkaMihiraj2002/AutoShare/models"
)

// Rent exported for testing purposes
type Rent struct {
	DB        databases.RentDatabase
	VDB       databases.VehicleDatabase
	ListLimit int64
	MaxLimit  int64
}

// CreateRentHandler books a vehicle for the caller. The rent's owner uid is
// resolved server-side from the referenced vehicle, never taken from the
// payload.
func (rt Rent) CreateRentHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}

	var payload models.RentCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := payload.Validate(); err != nil {
		config.ErrorStatus("invalid rent payload", http.StatusBadRequest, w, err)
		return
	}

	vehicle, err := rt.VDB.GetByID(r.Context(), payload.VehicleID)
	if err != nil {
		config.ErrorStatus("failed to get vehicle", http.StatusInternalServerError, w, err)
		return
	}
	if vehicle == nil {
		config.ErrorStatus("vehicle not found", http.StatusBadRequest, w, errors.New("referenced vehicle does not exist"))
		return
	}
	ownerUID, _ := vehicle["owner_uid"].(string)

	created, err := rt.DB.Create(r.Context(), claims.UID, ownerUID, payload.Document())
	if err != nil {
		config.ErrorStatus("failed to create rent", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(created)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// RentListHandler lists the caller's rents. By default the caller is the
// renter; ?role=owner lists rents taken on the caller's vehicles instead.
func (rt Rent) RentListHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}

	var (
		rents []bson.M
		err   error
	)
	if r.URL.Query().Get("role") == "owner" {
		rents, err = rt.DB.ListByOwner(r.Context(), claims.UID, rt.listLimit(r))
	} else {
		rents, err = rt.DB.ListByRenter(r.Context(), claims.UID, rt.listLimit(r))
	}
	if err != nil {
		config.ErrorStatus("failed to get rents", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(rents)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// RentByIDHandler returns a rent by ID; readable by its renter and by the
// owner of the rented vehicle
func (rt Rent) RentByIDHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	rentID := mux.Vars(r)["rent_id"]

	rent, err := rt.DB.GetByID(r.Context(), rentID)
	if err != nil {
		config.ErrorStatus("failed to get rent", http.StatusInternalServerError, w, err)
		return
	}
	if rent == nil {
		config.ErrorStatus("rent not found", http.StatusNotFound, w, errors.New("no rent with the given id"))
		return
	}
	renter, _ := rent["renter_uid"].(string)
	owner, _ := rent["owner_uid"].(string)
	if claims.UID != renter && claims.UID != owner {
		config.ErrorStatus("not allowed", http.StatusForbidden, w, errors.New("rent belongs to another user"))
		return
	}

	b, err := json.Marshal(rent)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// UpdateRentHandler applies a partial update; renter only, a mismatch is
// reported as not-found
func (rt Rent) UpdateRentHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	rentID := mux.Vars(r)["rent_id"]

	var payload models.RentUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := payload.Validate(); err != nil {
		config.ErrorStatus("invalid update payload", http.StatusBadRequest, w, err)
		return
	}

	rent, err := rt.DB.Update(r.Context(), claims.UID, rentID, payload.Fields())
	if err != nil {
		config.ErrorStatus("failed to update rent", http.StatusInternalServerError, w, err)
		return
	}
	if rent == nil {
		config.ErrorStatus("rent not found", http.StatusNotFound, w, errors.New("no rent with the given id rented by you"))
		return
	}

	b, err := json.Marshal(rent)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DeleteRentHandler cancels a rent; renter only, a mismatch is a 404
func (rt Rent) DeleteRentHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	rentID := mux.Vars(r)["rent_id"]

	deleted, err := rt.DB.Delete(r.Context(), claims.UID, rentID)
	if err != nil {
		config.ErrorStatus("failed to delete rent", http.StatusInternalServerError, w, err)
		return
	}
	if !deleted {
		config.ErrorStatus("rent not found", http.StatusNotFound, w, errors.New("no rent with the given id rented by you"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (rt Rent) listLimit(r *http.Request) int64 {
	limit, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
	if err != nil || limit <= 0 {
		zap.S().Debugf("limit not set, using default of %v", rt.ListLimit)
		return rt.ListLimit
	}
	if limit > rt.MaxLimit {
		return rt.MaxLimit
	}
	return limit
}
