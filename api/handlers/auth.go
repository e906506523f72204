package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/ChamilkaMihiraj2002/AutoShare/auth"
	"github.com/ChamilkaMihiraj2002/AutoShare/config"
	"github.com/ChamilkaMihiraj2002/AutoShare/databases"
	"github.com/ChamilkaMihiraj2002/AutoShare/models"
)

// Auth exported for testing purposes
type Auth struct {
	Provider auth.Provider
	UDB      databases.UserDatabase
}

// RegisterEmailHandler creates an identity-provider account and the matching
// profile document. The two writes are not atomic: when the profile insert
// fails, the provider account is deleted best-effort, and a failed rollback
// leaves a permanent inconsistency that is only logged.
func (h Auth) RegisterEmailHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := req.Validate(); err != nil {
		config.ErrorStatus("invalid registration payload", http.StatusBadRequest, w, err)
		return
	}
	if h.Provider == nil {
		config.ErrorStatus("identity provider not configured", http.StatusInternalServerError, w, auth.ErrNotConfigured)
		return
	}

	uid, err := h.Provider.CreateUser(r.Context(), req.Email, req.Password)
	if err != nil {
		config.ErrorStatus("identity provider rejected registration", http.StatusBadRequest, w, err)
		return
	}

	profile, err := h.UDB.CreateProfile(r.Context(), uid, req.Email, req.UserProfile.Document())
	if err != nil {
		if derr := h.Provider.DeleteUser(r.Context(), uid); derr != nil {
			zap.S().Errorw("unresolved registration inconsistency: provider account exists without a profile",
				"uid", uid,
				"profileError", err,
				"rollbackError", derr)
		} else {
			zap.S().Infow("rolled back provider account after profile creation failure",
				"uid", uid)
		}
		config.ErrorStatus("failed to create user profile", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(models.AuthResponse{UID: uid, Email: req.Email, Profile: profile})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// RegisterSocialHandler completes registration for a caller whose provider
// account already exists (social sign-in); it only creates the profile
func (h Auth) RegisterSocialHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}

	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := profile.Validate(); err != nil {
		config.ErrorStatus("invalid profile payload", http.StatusBadRequest, w, err)
		return
	}

	existing, err := h.UDB.GetByUID(r.Context(), claims.UID)
	if err != nil {
		config.ErrorStatus("failed to check existing profile", http.StatusInternalServerError, w, err)
		return
	}
	if existing != nil {
		config.ErrorStatus("profile already exists", http.StatusBadRequest, w, errors.New("a profile is already registered for this account"))
		return
	}

	created, err := h.UDB.CreateProfile(r.Context(), claims.UID, claims.Email, profile.Document())
	if err != nil {
		config.ErrorStatus("failed to create user profile", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(models.AuthResponse{UID: claims.UID, Email: claims.Email, Profile: created})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// LoginHandler signs a user in with email/password and returns an ID token
func (h Auth) LoginHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := req.Validate(); err != nil {
		config.ErrorStatus("invalid login payload", http.StatusBadRequest, w, err)
		return
	}
	if h.Provider == nil {
		config.ErrorStatus("identity provider not configured", http.StatusInternalServerError, w, auth.ErrNotConfigured)
		return
	}

	sess, err := h.Provider.SignInWithPassword(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrNotConfigured):
			config.ErrorStatus("identity provider not configured", http.StatusInternalServerError, w, err)
		case errors.Is(err, auth.ErrProviderUnavailable):
			config.ErrorStatus("identity provider unreachable", http.StatusBadGateway, w, err)
		default:
			config.ErrorStatus("login failed", http.StatusUnauthorized, w, err)
		}
		return
	}

	b, err := json.Marshal(models.AuthResponse{UID: sess.UID, Email: sess.Email, IDToken: sess.IDToken})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// LoginSocialHandler resolves the caller's stored profile after a social
// sign-in; a 404 tells the client to go through registration first
func (h Auth) LoginSocialHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}

	profile, err := h.UDB.GetByUID(r.Context(), claims.UID)
	if err != nil {
		config.ErrorStatus("failed to get user profile", http.StatusInternalServerError, w, err)
		return
	}
	if profile == nil {
		config.ErrorStatus("profile not found", http.StatusNotFound, w, errors.New("no profile registered for this account"))
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
