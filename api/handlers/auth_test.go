package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/ChamilkaMihiraj2002/AutoShare/api"
	"github.com/ChamilkaMihiraj2002/AutoShare/api/handlers"
	"github.com/ChamilkaMihiraj2002/AutoShare/auth"
	authmocks "github.com/ChamilkaMihiraj2002/AutoShare/auth/mocks"
	dbmocks "github.com/ChamilkaMihiraj2002/AutoShare/databases/mocks"
	"github.com/ChamilkaMihiraj2002/AutoShare/models"
)

// authedRequest builds a request carrying verified claims, as the auth
// middleware would have injected them
func authedRequest(method, target string, body []byte, claims *auth.Claims) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if claims != nil {
		req = req.WithContext(api.WithClaims(req.Context(), claims))
	}
	return req
}

func TestAuth_RegisterEmailHandler(t *testing.T) {
	provider := &authmocks.Provider{}
	udb := &dbmocks.UserDatabase{}

	provider.On("CreateUser", mock.Anything, "a@b.com", "secret123").
		Return("uid-1", nil)
	udb.On("CreateProfile", mock.Anything, "uid-1", "a@b.com",
		bson.M{"address": "Colombo", "nic": "991234567v", "phone": "0771234567"}).
		Return(bson.M{"_id": "uid-1", "email": "a@b.com", "role": "user"}, nil)

	body := []byte(`{"email":"a@b.com","password":"secret123","address":"Colombo","nic":"991234567v","phone":"0771234567"}`)
	req := httptest.NewRequest("POST", "/auth/register/email", bytes.NewReader(body))

	h := handlers.Auth{Provider: provider, UDB: udb}
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.RegisterEmailHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp models.AuthResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "uid-1", resp.UID)
	assert.Equal(t, "a@b.com", resp.Email)
	assert.Equal(t, "user", resp.Profile["role"])
	provider.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
}

func TestAuth_RegisterEmailHandlerInvalidPayload(t *testing.T) {
	provider := &authmocks.Provider{}
	udb := &dbmocks.UserDatabase{}

	// password too short and no profile fields
	body := []byte(`{"email":"a@b.com","password":"123"}`)
	req := httptest.NewRequest("POST", "/auth/register/email", bytes.NewReader(body))

	h := handlers.Auth{Provider: provider, UDB: udb}
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.RegisterEmailHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	provider.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuth_RegisterEmailHandlerProviderRejects(t *testing.T) {
	provider := &authmocks.Provider{}
	udb := &dbmocks.UserDatabase{}

	provider.On("CreateUser", mock.Anything, "a@b.com", "secret123").
		Return("", errors.New("EMAIL_EXISTS"))

	body := []byte(`{"email":"a@b.com","password":"secret123","address":"Colombo","nic":"991234567v","phone":"0771234567"}`)
	req := httptest.NewRequest("POST", "/auth/register/email", bytes.NewReader(body))

	h := handlers.Auth{Provider: provider, UDB: udb}
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.RegisterEmailHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	udb.AssertNotCalled(t, "CreateProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuth_RegisterEmailHandlerRollsBackProviderAccount(t *testing.T) {
	provider := &authmocks.Provider{}
	udb := &dbmocks.UserDatabase{}

	provider.On("CreateUser", mock.Anything, "a@b.com", "secret123").
		Return("uid-1", nil)
	udb.On("CreateProfile", mock.Anything, "uid-1", "a@b.com", mock.Anything).
		Return(nil, errors.New("mocked-error"))
	provider.On("DeleteUser", mock.Anything, "uid-1").
		Return(nil)

	body := []byte(`{"email":"a@b.com","password":"secret123","address":"Colombo","nic":"991234567v","phone":"0771234567"}`)
	req := httptest.NewRequest("POST", "/auth/register/email", bytes.NewReader(body))

	h := handlers.Auth{Provider: provider, UDB: udb}
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.RegisterEmailHandler).ServeHTTP(rr, req)

	// the profile insert failed, so the provider account must be gone too
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	provider.AssertCalled(t, "DeleteUser", mock.Anything, "uid-1")
}

func TestAuth_RegisterEmailHandlerRollbackFailureStillErrors(t *testing.T) {
	provider := &authmocks.Provider{}
	udb := &dbmocks.UserDatabase{}

	provider.On("CreateUser", mock.Anything, "a@b.com", "secret123").
		Return("uid-1", nil)
	udb.On("CreateProfile", mock.Anything, "uid-1", "a@b.com", mock.Anything).
		Return(nil, errors.New("mocked-error"))
	provider.On("DeleteUser", mock.Anything, "uid-1").
		Return(errors.New("provider down"))

	body := []byte(`{"email":"a@b.com","password":"secret123","address":"Colombo","nic":"991234567v","phone":"0771234567"}`)
	req := httptest.NewRequest("POST", "/auth/register/email", bytes.NewReader(body))

	h := handlers.Auth{Provider: provider, UDB: udb}
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.RegisterEmailHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestAuth_RegisterSocialHandler(t *testing.T) {
	udb := &dbmocks.UserDatabase{}

	udb.On("GetByUID", mock.Anything, "uid-1").
		Return(nil, nil)
	udb.On("CreateProfile", mock.Anything, "uid-1", "a@b.com",
		bson.M{"address": "Colombo", "nic": "991234567v", "phone": "0771234567"}).
		Return(bson.M{"_id": "uid-1", "email": "a@b.com", "role": "user"}, nil)

	body := []byte(`{"address":"Colombo","nic":"991234567v","phone":"0771234567"}`)
	req := authedRequest("POST", "/auth/register/social", body, &auth.Claims{UID: "uid-1", Email: "a@b.com"})

	h := handlers.Auth{UDB: udb}
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.RegisterSocialHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestAuth_RegisterSocialHandlerExistingProfile(t *testing.T) {
	udb := &dbmocks.UserDatabase{}

	udb.On("GetByUID", mock.Anything, "uid-1").
		Return(bson.M{"_id": "uid-1"}, nil)

	body := []byte(`{"address":"Colombo","nic":"991234567v","phone":"0771234567"}`)
	req := authedRequest("POST", "/auth/register/social", body, &auth.Claims{UID: "uid-1", Email: "a@b.com"})

	h := handlers.Auth{UDB: udb}
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.RegisterSocialHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	udb.AssertNotCalled(t, "CreateProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuth_RegisterSocialHandlerNoClaims(t *testing.T) {
	h := handlers.Auth{UDB: &dbmocks.UserDatabase{}}

	body := []byte(`{"address":"Colombo","nic":"991234567v","phone":"0771234567"}`)
	req := authedRequest("POST", "/auth/register/social", body, nil)
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.RegisterSocialHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error": "unauthorized"}`, rr.Body.String())
}

func TestAuth_LoginHandler(t *testing.T) {
	provider := &authmocks.Provider{}

	provider.On("SignInWithPassword", mock.Anything, "a@b.com", "secret123").
		Return(&auth.Session{UID: "uid-1", Email: "a@b.com", IDToken: "tok-1"}, nil)

	body := []byte(`{"email":"a@b.com","password":"secret123"}`)
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader(body))

	h := handlers.Auth{Provider: provider}
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.LoginHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp models.AuthResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "tok-1", resp.IDToken)
}

func TestAuth_LoginHandlerErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"rejected credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"provider unreachable", auth.ErrProviderUnavailable, http.StatusBadGateway},
		{"provider not configured", auth.ErrNotConfigured, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			provider := &authmocks.Provider{}
			provider.On("SignInWithPassword", mock.Anything, "a@b.com", "secret123").
				Return(nil, tc.err)

			body := []byte(`{"email":"a@b.com","password":"secret123"}`)
			req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader(body))

			h := handlers.Auth{Provider: provider}
			rr := httptest.NewRecorder()

			http.HandlerFunc(h.LoginHandler).ServeHTTP(rr, req)

			assert.Equal(t, tc.code, rr.Code)
		})
	}
}

func TestAuth_LoginSocialHandler(t *testing.T) {
	udb := &dbmocks.UserDatabase{}

	udb.On("GetByUID", mock.Anything, "uid-1").
		Return(bson.M{"_id": "uid-1", "email": "a@b.com", "role": "user"}, nil)

	req := authedRequest("POST", "/auth/login/social", nil, &auth.Claims{UID: "uid-1", Email: "a@b.com"})

	h := handlers.Auth{UDB: udb}
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.LoginSocialHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var profile bson.M
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &profile))
	assert.Equal(t, "uid-1", profile["_id"])
}

func TestAuth_LoginSocialHandlerNoProfile(t *testing.T) {
	udb := &dbmocks.UserDatabase{}

	udb.On("GetByUID", mock.Anything, "uid-1").
		Return(nil, nil)

	req := authedRequest("POST", "/auth/login/social", nil, &auth.Claims{UID: "uid-1"})

	h := handlers.Auth{UDB: udb}
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.LoginSocialHandler).ServeHTTP(rr, req)

	// no profile yet means the client must register first
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
