package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/ChamilkaMihiraj2002/AutoShare/config"
	"github.com/ChamilkaMihiraj2002/AutoShare/databases"
	"github.com/ChamilkaMihiraj2002/AutoShare/models"
)

// Vehicle exported for testing purposes
type Vehicle struct {
	DB        databases.VehicleDatabase
	ListLimit int64
	MaxLimit  int64
}

// CreateVehicleHandler lists a new vehicle owned by the caller
func (v Vehicle) CreateVehicleHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}

	var payload models.VehicleCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := payload.Validate(); err != nil {
		config.ErrorStatus("invalid vehicle payload", http.StatusBadRequest, w, err)
		return
	}

	created, err := v.DB.Create(r.Context(), claims.UID, payload.Document())
	if err != nil {
		config.ErrorStatus("failed to create vehicle", http.StatusInternalServerError, w, err)
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

// VehicleListHandler returns the public vehicle listing
func (v Vehicle) VehicleListHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	vehicles, err := v.DB.ListAll(r.Context(), v.listLimit(r))
	if err != nil {
		config.ErrorStatus("failed to get vehicles", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(vehicles)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// MyVehiclesHandler returns the caller's own vehicles
func (v Vehicle) MyVehiclesHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}

	vehicles, err := v.DB.ListByOwner(r.Context(), claims.UID, v.listLimit(r))
	if err != nil {
		config.ErrorStatus("failed to get vehicles", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(vehicles)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// VehicleByIDHandler returns a vehicle by ID. Reads of someone else's
// vehicle are an explicit 403; the public listing already discloses
// existence, so there is nothing to hide here.
func (v Vehicle) VehicleByIDHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	vehicleID := mux.Vars(r)["vehicle_id"]

	vehicle, err := v.DB.GetByID(r.Context(), vehicleID)
	if err != nil {
		config.ErrorStatus("failed to get vehicle", http.StatusInternalServerError, w, err)
		return
	}
	if vehicle == nil {
		config.ErrorStatus("vehicle not found", http.StatusNotFound, w, errors.New("no vehicle with the given id"))
		return
	}
	if owner, _ := vehicle["owner_uid"].(string); owner != claims.UID {
		config.ErrorStatus("not allowed", http.StatusForbidden, w, errors.New("vehicle belongs to another user"))
		return
	}

	b, err := json.Marshal(vehicle)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// UpdateVehicleHandler applies a partial update to an owned vehicle. An
// ownership mismatch is reported as not-found on purpose.
func (v Vehicle) UpdateVehicleHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	vehicleID := mux.Vars(r)["vehicle_id"]

	var payload models.VehicleUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := payload.Validate(); err != nil {
		config.ErrorStatus("invalid update payload", http.StatusBadRequest, w, err)
		return
	}

	vehicle, err := v.DB.Update(r.Context(), claims.UID, vehicleID, payload.Fields())
	if err != nil {
		config.ErrorStatus("failed to update vehicle", http.StatusInternalServerError, w, err)
		return
	}
	if vehicle == nil {
		config.ErrorStatus("vehicle not found", http.StatusNotFound, w, errors.New("no vehicle with the given id owned by you"))
		return
	}

	b, err := json.Marshal(vehicle)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DeleteVehicleHandler removes an owned vehicle; a mismatch is a 404
func (v Vehicle) DeleteVehicleHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	vehicleID := mux.Vars(r)["vehicle_id"]

	deleted, err := v.DB.Delete(r.Context(), claims.UID, vehicleID)
	if err != nil {
		config.ErrorStatus("failed to delete vehicle", http.StatusInternalServerError, w, err)
		return
	}
	if !deleted {
		config.ErrorStatus("vehicle not found", http.StatusNotFound, w, errors.New("no vehicle with the given id owned by you"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (v Vehicle) listLimit(r *http.Request) int64 {
	limit, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
	if err != nil || limit <= 0 {
		zap.S().Debugf("limit not set, using default of %v", v.ListLimit)
		return v.ListLimit
	}
	if limit > v.MaxLimit {
		return v.MaxLimit
	}
	return limit
}
