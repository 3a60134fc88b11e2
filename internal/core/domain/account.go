package domain

import "time"

// Platform identifies which advertising platform an account belongs to.
type Platform string

const (
	PlatformMeta   Platform = "meta"
	PlatformGoogle Platform = "google"
)

// Client represents an agency client that owns advertising accounts.
type Client struct {
	ID        int64
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AdvertisingAccount is a platform-specific billing/campaign container owned
// by exactly one client. At most one account per (client, platform) is marked
// primary; only primary accounts participate in reconciliation.
type AdvertisingAccount struct {
	ID          int64
	ClientID    int64
	Platform    Platform
	AccountID   string // platform-side identifier, empty when not configured
	AccountName string
	IsPrimary   bool
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
