package domain

import "time"

// PlatformCredentials carries the persisted platform secrets and tokens as
// one value object. It is loaded once per batch run and passed explicitly to
// the token manager and fetchers instead of being read ad hoc from config.
// The two Google token fields are the only values this engine writes back.
type PlatformCredentials struct {
	MetaAccessToken string

	GoogleAccessToken    string
	GoogleRefreshToken   string
	GoogleTokenExpiresAt time.Time
	GoogleClientID       string
	GoogleClientSecret   string
	GoogleDeveloperToken string
	GoogleManagerID      string
}
