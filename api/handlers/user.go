package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ChamilkaMihiraj2002/AutoShare/config"
	"github.com/ChamilkaMihiraj2002/AutoShare/databases"
	"github.com/ChamilkaMihiraj2002/AutoShare/models"
)

// User exported for testing purposes
type User struct {
	DB databases.UserDatabase
}

// MeHandler returns the caller's profile
func (u User) MeHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}

	profile, err := u.DB.GetByUID(r.Context(), claims.UID)
	if err != nil {
		config.ErrorStatus("failed to get user profile", http.StatusInternalServerError, w, err)
		return
	}
	if profile == nil {
		config.ErrorStatus("user profile not found", http.StatusNotFound, w, errors.New("no profile registered for this account"))
		return
	}

	b, err := json.Marshal(profile)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// UpdateMeHandler applies a partial update to the caller's profile
func (u User) UpdateMeHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}

	var payload models.UserProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := payload.Validate(); err != nil {
		config.ErrorStatus("invalid update payload", http.StatusBadRequest, w, err)
		return
	}

	profile, err := u.DB.UpdateByUID(r.Context(), claims.UID, payload.Fields())
	if err != nil {
		config.ErrorStatus("failed to update user profile", http.StatusInternalServerError, w, err)
		return
	}
	if profile == nil {
		config.ErrorStatus("user profile not found", http.StatusNotFound, w, errors.New("no profile registered for this account"))
		return
	}

	b, err := json.Marshal(profile)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DeleteMeHandler removes the caller's profile document. The provider
// account is untouched; deleting it is a separate step.
func (u User) DeleteMeHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}

	deleted, err := u.DB.DeleteByUID(r.Context(), claims.UID)
	if err != nil {
		config.ErrorStatus("failed to delete user profile", http.StatusInternalServerError, w, err)
		return
	}
	if !deleted {
		config.ErrorStatus("user profile not found", http.StatusNotFound, w, errors.New("no profile registered for this account"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
