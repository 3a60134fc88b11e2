package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"adrecon/internal/core/domain"
)

// Setting keys in platform_settings. The engine reads all of them and writes
// back only the two Google token fields after a refresh.
const (
	keyMetaAccessToken      = "meta_access_token"
	keyGoogleAccessToken    = "google_ads_access_token"
	keyGoogleRefreshToken   = "google_ads_refresh_token"
	keyGoogleTokenExpiresAt = "google_ads_token_expires_at"
	keyGoogleClientID       = "google_ads_client_id"
	keyGoogleClientSecret   = "google_ads_client_secret"
	keyGoogleDeveloperToken = "google_ads_developer_token"
	keyGoogleManagerID      = "google_ads_manager_id"
)

// CredentialRepository maps the flat platform_settings key/value rows onto
// the PlatformCredentials value object.
type CredentialRepository struct {
	pool *pgxpool.Pool
}

// NewCredentialRepository returns a new repository instance.
func NewCredentialRepository(pool *pgxpool.Pool) *CredentialRepository {
	return &CredentialRepository{pool: pool}
}

// Credentials loads every known setting row. Absent keys leave their fields
// zero; validation happens where the values are used.
func (r *CredentialRepository) Credentials(ctx context.Context) (domain.PlatformCredentials, error) {
	var creds domain.PlatformCredentials

	rows, err := r.pool.Query(ctx, `SELECT key, value FROM platform_settings`)
	if err != nil {
		return creds, fmt.Errorf("load platform settings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			return creds, err
		}
		switch key {
		case keyMetaAccessToken:
			creds.MetaAccessToken = value
		case keyGoogleAccessToken:
			creds.GoogleAccessToken = value
		case keyGoogleRefreshToken:
			creds.GoogleRefreshToken = value
		case keyGoogleTokenExpiresAt:
			if value != "" {
				t, perr := time.Parse(time.RFC3339, value)
				if perr == nil {
					creds.GoogleTokenExpiresAt = t
				}
			}
		case keyGoogleClientID:
			creds.GoogleClientID = value
		case keyGoogleClientSecret:
			creds.GoogleClientSecret = value
		case keyGoogleDeveloperToken:
			creds.GoogleDeveloperToken = value
		case keyGoogleManagerID:
			creds.GoogleManagerID = value
		}
	}
	return creds, rows.Err()
}

// SaveGoogleToken persists a refreshed access token and its expiry. Both
// keys are written in one transaction; concurrent refreshes from overlapping
// runs are tolerated, last write wins.
func (r *CredentialRepository) SaveGoogleToken(ctx context.Context, accessToken string, expiresAt time.Time) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	const upsert = `INSERT INTO platform_settings (key, value, updated_at) VALUES ($1, $2, now())
        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	if _, err = tx.Exec(ctx, upsert, keyGoogleAccessToken, accessToken); err != nil {
		return fmt.Errorf("save access token: %w", err)
	}
	if _, err = tx.Exec(ctx, upsert, keyGoogleTokenExpiresAt, expiresAt.UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("save token expiry: %w", err)
	}
	return nil
}
