package authsession

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Slymcode/cipmn-crm/pkg/apierr"
	"github.com/Slymcode/cipmn-crm/pkg/logger"
	"github.com/Slymcode/cipmn-crm/pkg/sessionstore"
)

// Auth endpoint paths, relative to the configured base URL.
const (
	loginPath          = "/auth/login"
	registerPath       = "/auth/register"
	forgotPasswordPath = "/auth/forgot-password"
	resetPasswordPath  = "/auth/reset-password"
	identityPath       = "/auth/me"
)

// Redirect targets handed back to the routing layer.
const (
	redirectDefault = "/"
	redirectLogin   = "/login"
	redirectProfile = "/profile"
)

// Result is the outcome of a credential-changing operation.
type Result struct {
	Success    bool
	RedirectTo string
}

// Check is the outcome of a local authentication check.
type Check struct {
	Authenticated bool
	RedirectTo    string

	// Restricted is the advisory guest marker carried on the session.
	Restricted bool
}

// Registration is the input for the register operation.
type Registration struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	UserType        string `json:"userType"`
}

// Identity is the best-effort identity object from the backend.
type Identity struct {
	ID    json.Number `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
}

// Manager owns the credential lifecycle. Zero value is not usable; use New.
type Manager struct {
	cfg    Config
	store  sessionstore.Store
	client *http.Client
	log    *slog.Logger
}

// Option configures a Manager at construction time.
type Option func(*Manager)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(m *Manager) {
		if client != nil {
			m.client = client
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// New creates a session manager over the given backend and store.
func New(cfg Config, store sessionstore.Store, opts ...Option) (*Manager, error) {
	if cfg.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if store == nil {
		return nil, ErrMissingStore
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	m := &Manager{
		cfg:   cfg,
		store: store,
		client: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		log: logger.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Login exchanges credentials for a bearer token and persists it. The
// designated guest email lands on the restricted profile view; everyone
// else goes to the dashboard.
func (m *Manager) Login(ctx context.Context, email, password string) (Result, error) {
	if email == "" {
		return Result{}, ErrMissingEmail
	}
	if password == "" {
		return Result{}, ErrMissingPassword
	}

	raw, err := m.post(ctx, loginPath, map[string]string{
		"email":    email,
		"password": password,
	}, "Login failed")
	if err != nil {
		return Result{}, err
	}

	// The backend has shipped both a bare {accessToken} body and a
	// {data:{accessToken}} envelope; accept either.
	var parsed struct {
		AccessToken string `json:"accessToken"`
		Data        struct {
			AccessToken string `json:"accessToken"`
		} `json:"data"`
	}
	_ = json.Unmarshal(raw, &parsed)

	token := parsed.Data.AccessToken
	if token == "" {
		token = parsed.AccessToken
	}
	if token == "" {
		return Result{}, apierr.New("Login failed", http.StatusInternalServerError)
	}

	guest := m.cfg.GuestEmail != "" && strings.EqualFold(email, m.cfg.GuestEmail)
	if err := m.store.Set(ctx, &sessionstore.Session{
		AccessToken: token,
		Restricted:  guest,
	}); err != nil {
		return Result{}, apierr.Transport(err)
	}

	m.log.InfoContext(ctx, "login succeeded", slog.Bool("guest", guest))

	redirect := redirectDefault
	if guest {
		redirect = redirectProfile
	}
	return Result{Success: true, RedirectTo: redirect}, nil
}

// Check reports whether the current caller is authenticated without any
// server round trip. An expired or undecodable credential is evicted from
// the store as a side effect.
func (m *Manager) Check(ctx context.Context) Check {
	sess, err := m.store.Get(ctx)
	if err != nil || sess.AccessToken == "" {
		return Check{RedirectTo: redirectLogin}
	}

	exp, err := tokenExpiry(sess.AccessToken)
	if err != nil || !exp.After(time.Now()) {
		_ = m.store.Clear(ctx)
		m.log.DebugContext(ctx, "stored credential invalid or expired, evicted")
		return Check{RedirectTo: redirectLogin}
	}

	return Check{Authenticated: true, Restricted: sess.Restricted}
}

// Logout unconditionally destroys the stored credential.
func (m *Manager) Logout(ctx context.Context) (Result, error) {
	if err := m.store.Clear(ctx); err != nil {
		return Result{}, apierr.Transport(err)
	}
	return Result{Success: true, RedirectTo: redirectLogin}, nil
}

// Register creates an account. No credential is persisted; the caller is
// redirected to the login screen on success.
func (m *Manager) Register(ctx context.Context, reg Registration) (Result, error) {
	if reg.Email == "" {
		return Result{}, ErrMissingEmail
	}
	if reg.Password == "" {
		return Result{}, ErrMissingPassword
	}

	if _, err := m.post(ctx, registerPath, reg, "Registration failed"); err != nil {
		return Result{}, err
	}
	return Result{Success: true, RedirectTo: redirectLogin}, nil
}

// ForgotPassword requests a reset email. No credential side effects.
func (m *Manager) ForgotPassword(ctx context.Context, email string) (Result, error) {
	if email == "" {
		return Result{}, ErrMissingEmail
	}

	if _, err := m.post(ctx, forgotPasswordPath, map[string]string{
		"email": email,
	}, "Forgot password failed"); err != nil {
		return Result{}, err
	}
	return Result{Success: true}, nil
}

// UpdatePassword completes a password reset using the emailed token.
func (m *Manager) UpdatePassword(ctx context.Context, token, newPassword string) (Result, error) {
	if token == "" {
		return Result{}, ErrMissingResetToken
	}
	if newPassword == "" {
		return Result{}, ErrMissingPassword
	}

	if _, err := m.post(ctx, resetPasswordPath, map[string]string{
		"token":       token,
		"newPassword": newPassword,
	}, "Update password failed"); err != nil {
		return Result{}, err
	}
	return Result{Success: true, RedirectTo: redirectLogin}, nil
}

// Permissions returns the fixed capability set: {"user"} when a
// credential is present, empty otherwise. There is no server-side role
// resolution.
func (m *Manager) Permissions(ctx context.Context) []string {
	sess, err := m.store.Get(ctx)
	if err != nil || sess.AccessToken == "" {
		return nil
	}
	return []string{"user"}
}

// Identity fetches the current user from the backend. Lookup is
// best-effort: any failure — no credential, transport fault, non-2xx,
// malformed body — yields nil rather than an error.
func (m *Manager) Identity(ctx context.Context) *Identity {
	sess, err := m.store.Get(ctx)
	if err != nil || sess.AccessToken == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.cfg.BaseURL+identityPath, http.NoBody)
	if err != nil {
		return nil
	}
	req.Header.Set("Authorization", "Bearer "+sess.AccessToken)

	resp, err := m.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil
	}

	var identity Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil
	}
	return &identity
}

// post sends a JSON payload to an auth endpoint and normalizes every
// failure, substituting the operation-specific fallback message when the
// backend provides none.
func (m *Manager) post(ctx context.Context, path string, payload any, fallback string) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, apierr.Transport(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, apierr.Transport(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, apierr.Transport(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierr.Transport(err)
	}

	if apiErr := apierr.Normalize(resp.StatusCode, raw); apiErr != nil {
		return nil, withFallback(apiErr, fallback)
	}
	return raw, nil
}

// withFallback swaps the generic unknown-error text for the operation's
// own displayable message; backend-provided messages pass through.
func withFallback(e *apierr.Error, fallback string) *apierr.Error {
	if e.Message == "" || e.Message == "Unknown error" {
		return apierr.New(fallback, e.StatusCode)
	}
	return e
}
