package config

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ChamilkaMihiraj2002/AutoShare/models"
)

const (
	defaultListLimit    = 20
	defaultMaxListLimit = 200
)

// Config holds the project config values
type Config struct {
	URL          string
	DatabaseName string
	BaseURL      string
	Port         string

	// Identity provider settings. FirebaseCredentialFile points at a service
	// account json; FirebaseAPIKey is the web API key used for password login.
	// JWTSecret enables the HS256 fallback verifier for local development.
	FirebaseCredentialFile string
	FirebaseAPIKey         string
	JWTSecret              string

	// Bounds for public collection listings.
	ListLimit    int64
	MaxListLimit int64
}

// New sets up all config related services
func New() *Config {

	// optional .env for local development; real env vars win
	_ = godotenv.Load()

	//setup zap logger and replace default logger
	logger := zap.NewExample()
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		URL:                    os.Getenv("DB_URI"),
		DatabaseName:           os.Getenv("DB_NAME"),
		BaseURL:                os.Getenv("BASE_URL"),
		Port:                   os.Getenv("PORT"),
		FirebaseCredentialFile: os.Getenv("FIREBASE_CREDENTIAL_FILE"),
		FirebaseAPIKey:         os.Getenv("FIREBASE_API_KEY"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		ListLimit:              envInt64("LIST_LIMIT", defaultListLimit),
		MaxListLimit:           envInt64("MAX_LIST_LIMIT", defaultMaxListLimit),
	}
}

func envInt64(key string, fallback int64) int64 {
	v, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	b, _ := json.Marshal(models.ErrorMessageResponse{Response: models.MessageError{Message: message, Error: err.Error()}})
	w.Write(b)
}
