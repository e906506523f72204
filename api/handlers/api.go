package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/ChamilkaMihiraj2002/AutoShare/api"
	"github.com/ChamilkaMihiraj2002/AutoShare/api/scheduler"
	"github.com/ChamilkaMihiraj2002/AutoShare/auth"
	"github.com/ChamilkaMihiraj2002/AutoShare/config"
	"github.com/ChamilkaMihiraj2002/AutoShare/databases"
)

const requestTimeout = 30 * time.Second

// App stores the router, db connection and identity-provider handle, so it
// can be reused
type App struct {
	Router   *mux.Router
	Config   config.Config
	Verifier auth.Verifier
	Provider auth.Provider
	Sweeper  *scheduler.Scheduler
	dbHelper databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	m := api.Middleware{Verifier: a.Verifier}

	udb := databases.NewUserDatabase(a.dbHelper)
	vdb := databases.NewVehicleDatabase(a.dbHelper)
	rdb := databases.NewRentDatabase(a.dbHelper)

	au := Auth{Provider: a.Provider, UDB: udb}
	u := User{DB: udb}
	v := Vehicle{DB: vdb, ListLimit: a.Config.ListLimit, MaxLimit: a.Config.MaxListLimit}
	rent := Rent{DB: rdb, VDB: vdb, ListLimit: a.Config.ListLimit, MaxLimit: a.Config.MaxListLimit}

	r := mux.NewRouter()
	r.Use(api.RequestID)
	r.Use(api.TimeoutMiddleware(requestTimeout))

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	r.Handle("/auth/register/email", http.HandlerFunc(au.RegisterEmailHandler)).Methods("POST")
	r.Handle("/auth/register/social", m.Authenticated(http.HandlerFunc(au.RegisterSocialHandler))).Methods("POST")
	r.Handle("/auth/login", http.HandlerFunc(au.LoginHandler)).Methods("POST")
	r.Handle("/auth/login/social", m.Authenticated(http.HandlerFunc(au.LoginSocialHandler))).Methods("POST")

	r.Handle("/users/me", m.Authenticated(http.HandlerFunc(u.MeHandler))).Methods("GET")
	r.Handle("/users/me", m.Authenticated(http.HandlerFunc(u.UpdateMeHandler))).Methods("PATCH")
	r.Handle("/users/me", m.Authenticated(http.HandlerFunc(u.DeleteMeHandler))).Methods("DELETE")

	// the collection listing is the one public read; /vehicles/me must be
	// registered before the {vehicle_id} routes
	r.Handle("/vehicles", http.HandlerFunc(v.VehicleListHandler)).Methods("GET")
	r.Handle("/vehicles", m.Authenticated(http.HandlerFunc(v.CreateVehicleHandler))).Methods("POST")
	r.Handle("/vehicles/me", m.Authenticated(http.HandlerFunc(v.MyVehiclesHandler))).Methods("GET")
	r.Handle("/vehicles/{vehicle_id}", m.Authenticated(http.HandlerFunc(v.VehicleByIDHandler))).Methods("GET")
	r.Handle("/vehicles/{vehicle_id}", m.Authenticated(http.HandlerFunc(v.UpdateVehicleHandler))).Methods("PATCH")
	r.Handle("/vehicles/{vehicle_id}", m.Authenticated(http.HandlerFunc(v.DeleteVehicleHandler))).Methods("DELETE")

	r.Handle("/rents", m.Authenticated(http.HandlerFunc(rent.CreateRentHandler))).Methods("POST")
	r.Handle("/rents", m.Authenticated(http.HandlerFunc(rent.RentListHandler))).Methods("GET")
	r.Handle("/rents/{rent_id}", m.Authenticated(http.HandlerFunc(rent.RentByIDHandler))).Methods("GET")
	r.Handle("/rents/{rent_id}", m.Authenticated(http.HandlerFunc(rent.UpdateRentHandler))).Methods("PATCH")
	r.Handle("/rents/{rent_id}", m.Authenticated(http.HandlerFunc(rent.DeleteRentHandler))).Methods("DELETE")

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx); err != nil {
		zap.S().With(err).Error("failed to ping database")
		return err
	}
	zap.S().Info("autoshare-api has connected to the database")

	if err := a.initializeAuth(); err != nil {
		zap.S().With(err).Error("failed to initialize identity provider")
		return err
	}

	// initialize api router
	a.Router = a.New()

	// background sweep for ended rents
	a.Sweeper = scheduler.New(
		databases.NewRentDatabase(a.dbHelper),
		databases.NewVehicleDatabase(a.dbHelper),
	)
	a.Sweeper.Start()

	return nil
}

func (a *App) initializeAuth() error {
	if a.Verifier != nil {
		// injected, nothing to build
		return nil
	}
	if a.Config.FirebaseCredentialFile != "" {
		fb, err := auth.NewFirebase(context.Background(), &a.Config)
		if err != nil {
			return err
		}
		a.Provider = fb
		a.Verifier = fb
		return nil
	}
	if a.Config.JWTSecret != "" {
		zap.S().Warn("no firebase credential configured; using the HS256 verifier, registration and password login are disabled")
		a.Verifier = &auth.JWTVerifier{Secret: []byte(a.Config.JWTSecret)}
		return nil
	}
	return errors.New("no identity provider configured: set FIREBASE_CREDENTIAL_FILE or JWT_SECRET")
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, `{"alive": true}`)
}

// callerClaims pulls the verified identity injected by the auth middleware.
// Routes behind the middleware always carry it; the fallback mirrors the
// middleware's fixed 401 body.
func callerClaims(w http.ResponseWriter, r *http.Request) (*auth.Claims, bool) {
	claims, ok := api.ClaimsFrom(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "unauthorized"}`))
		return nil, false
	}
	return claims, true
}
