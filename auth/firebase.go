package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/ChamilkaMihiraj2002/AutoShare/config"
)

const signInURL = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

// the password sign-in call is the only place with an explicit network
// timeout; everything else rides on the request context
const signInTimeout = 10 * time.Second

// Firebase implements Provider on top of the Firebase Admin SDK. Password
// sign-in is not part of the Admin SDK, so it goes through the Identity
// Toolkit REST endpoint using the web API key.
type Firebase struct {
	client *fbauth.Client
	apiKey string
	http   *http.Client
}

var _ Provider = (*Firebase)(nil)

// NewFirebase builds the provider handle from the configured service account
func NewFirebase(ctx context.Context, conf *config.Config) (*Firebase, error) {
	var opts []option.ClientOption
	if conf.FirebaseCredentialFile != "" {
		opts = append(opts, option.WithCredentialsFile(conf.FirebaseCredentialFile))
	}
	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("initializing firebase auth client: %w", err)
	}
	return &Firebase{
		client: client,
		apiKey: conf.FirebaseAPIKey,
		http:   &http.Client{Timeout: signInTimeout},
	}, nil
}

// VerifyIDToken verifies a bearer ID token and extracts the caller's claims
func (f *Firebase) VerifyIDToken(ctx context.Context, idToken string) (*Claims, error) {
	tok, err := f.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims := &Claims{UID: tok.UID}
	if email, ok := tok.Claims["email"].(string); ok {
		claims.Email = email
	}
	return claims, nil
}

// CreateUser creates an email/password account and returns its uid
func (f *Firebase) CreateUser(ctx context.Context, email, password string) (string, error) {
	user, err := f.client.CreateUser(ctx, (&fbauth.UserToCreate{}).
		Email(email).
		Password(password))
	if err != nil {
		return "", err
	}
	return user.UID, nil
}

// DeleteUser removes the provider account; used as the compensating step of
// the registration saga
func (f *Firebase) DeleteUser(ctx context.Context, uid string) error {
	return f.client.DeleteUser(ctx, uid)
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
	IDToken string `json:"idToken"`
}

// SignInWithPassword exchanges email/password for an ID token
func (f *Firebase) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	if f.apiKey == "" {
		return nil, fmt.Errorf("%w: web API key not set", ErrNotConfigured)
	}

	body, err := json.Marshal(signInRequest{Email: email, Password: password, ReturnSecureToken: true})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s?key=%s", signInURL, url.QueryEscape(f.apiKey)),
		bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var provErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&provErr)
		return nil, fmt.Errorf("%w: %s", ErrInvalidCredentials, provErr.Error.Message)
	}

	var out signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	return &Session{UID: out.LocalID, Email: email, IDToken: out.IDToken}, nil
}
