package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2/google"

	"adrecon/internal/core/domain"
	"adrecon/internal/core/port"
	"adrecon/internal/monitoring"
)

// refreshWindow is how long before the stored expiry a refresh is attempted.
const refreshWindow = 5 * time.Minute

// expiryMargin is subtracted from the server-reported lifetime when the new
// expiry is persisted, so a token is never handed out moments before it dies.
const expiryMargin = time.Minute

// GoogleTokenManager keeps a valid bearer token for the Google-style
// platform, refreshing proactively before expiry and writing the refreshed
// token back to the credential store. Safe for concurrent use; overlapping
// refreshes near the expiry boundary are tolerated (last write wins, refresh
// is idempotent from the platform's perspective).
type GoogleTokenManager struct {
	mu         sync.Mutex
	creds      port.CredentialRepository
	httpClient *http.Client
	logger     *slog.Logger
	tokenURL   string
	now        func() time.Time

	// cached token from the last refresh, consulted before the values the
	// caller loaded at batch start, which may be stale within a run.
	token     string
	expiresAt time.Time
}

// NewGoogleTokenManager returns a manager persisting refreshed tokens through
// creds. The token endpoint defaults to Google's public OAuth2 endpoint.
func NewGoogleTokenManager(creds port.CredentialRepository, logger *slog.Logger) *GoogleTokenManager {
	return &GoogleTokenManager{
		creds:      creds,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
		tokenURL:   google.Endpoint.TokenURL,
		now:        time.Now,
	}
}

// tokenResponse is the OAuth token refresh response body.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// ValidAccessToken returns a bearer token valid for at least the refresh
// window, refreshing via the refresh-token grant when needed. The common path
// returns the stored token with no network call. Refresh failures return
// port.ErrRefreshFailed wrapped with the upstream description; missing
// client credentials or refresh token return port.ErrTokenConfigMissing.
func (m *GoogleTokenManager) ValidAccessToken(ctx context.Context, stored domain.PlatformCredentials) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	token, expiresAt := stored.GoogleAccessToken, stored.GoogleTokenExpiresAt
	if m.token != "" && m.expiresAt.After(expiresAt) {
		token, expiresAt = m.token, m.expiresAt
	}

	now := m.now()
	if token != "" && now.Add(refreshWindow).Before(expiresAt) {
		return token, nil
	}

	if stored.GoogleClientID == "" || stored.GoogleClientSecret == "" || stored.GoogleRefreshToken == "" {
		return "", fmt.Errorf("%w: google client credentials or refresh token not configured", port.ErrTokenConfigMissing)
	}

	m.logger.Info("refreshing google ads access token", slog.Time("stored_expiry", expiresAt))

	refreshed, expiresIn, err := m.refresh(ctx, stored)
	if err != nil {
		monitoring.TokenRefreshTotal.WithLabelValues("error").Inc()
		return "", err
	}

	newExpiry := m.now().Add(time.Duration(expiresIn)*time.Second - expiryMargin)
	if err = m.creds.SaveGoogleToken(ctx, refreshed, newExpiry); err != nil {
		monitoring.TokenRefreshTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("persist refreshed token: %w", err)
	}

	m.token = refreshed
	m.expiresAt = newExpiry
	monitoring.TokenRefreshTotal.WithLabelValues("success").Inc()
	m.logger.Info("google ads access token refreshed", slog.Time("expires_at", newExpiry))
	return refreshed, nil
}

// refresh posts a refresh-token grant per RFC 6749 and returns the new access
// token and its server-reported lifetime in seconds.
func (m *GoogleTokenManager) refresh(ctx context.Context, stored domain.PlatformCredentials) (string, int, error) {
	form := url.Values{}
	form.Set("client_id", stored.GoogleClientID)
	form.Set("client_secret", stored.GoogleClientSecret)
	form.Set("refresh_token", stored.GoogleRefreshToken)
	form.Set("grant_type", "refresh_token")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", port.ErrRefreshFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", port.ErrRefreshFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", 0, fmt.Errorf("%w: token endpoint returned %d: %s", port.ErrRefreshFailed, resp.StatusCode, string(body))
	}

	var tr tokenResponse
	if err = json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", 0, fmt.Errorf("%w: decode token response: %v", port.ErrRefreshFailed, err)
	}
	if tr.AccessToken == "" {
		return "", 0, fmt.Errorf("%w: token endpoint returned no access token", port.ErrRefreshFailed)
	}
	return tr.AccessToken, tr.ExpiresIn, nil
}
