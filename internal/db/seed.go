package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data for local runs: a few clients with primary
// advertising accounts on both platforms, sandbox credentials and one custom
// budget override. Safe to run repeatedly.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	for i := 1; i <= 5; i++ {
		name := fmt.Sprintf("Client %d", i)
		_, err := db.Exec(ctx, `INSERT INTO clients (id, name, is_active, created_at, updated_at)
VALUES ($1, $2, TRUE, now(), now()) ON CONFLICT DO NOTHING`, i, name)
		if err != nil {
			return err
		}

		metaAccountID := fmt.Sprintf("10000000%d", i)
		_, err = db.Exec(ctx, `INSERT INTO advertising_accounts
(client_id, platform, account_id, account_name, is_primary, is_active, created_at, updated_at)
VALUES ($1, 'meta', $2, $3, TRUE, TRUE, now(), now()) ON CONFLICT DO NOTHING`,
			i, metaAccountID, name+" Meta")
		if err != nil {
			return err
		}

		// one client is left without a configured google account id so the
		// skip path shows up in demo runs
		googleAccountID := fmt.Sprintf("200000000%d", i)
		if i == 5 {
			googleAccountID = ""
		}
		_, err = db.Exec(ctx, `INSERT INTO advertising_accounts
(client_id, platform, account_id, account_name, is_primary, is_active, created_at, updated_at)
VALUES ($1, 'google', $2, $3, TRUE, TRUE, now(), now()) ON CONFLICT DO NOTHING`,
			i, googleAccountID, name+" Google")
		if err != nil {
			return err
		}
	}

	settings := map[string]string{
		"meta_access_token":           "demo-meta-token",
		"google_ads_access_token":     "demo-google-token",
		"google_ads_refresh_token":    "demo-google-refresh",
		"google_ads_token_expires_at": time.Now().Add(time.Hour).UTC().Format(time.RFC3339),
		"google_ads_client_id":        "demo-client-id",
		"google_ads_client_secret":    "demo-client-secret",
		"google_ads_developer_token":  "demo-developer-token",
		"google_ads_manager_id":       "",
	}
	for key, value := range settings {
		_, err := db.Exec(ctx, `INSERT INTO platform_settings (key, value, updated_at)
VALUES ($1, $2, now()) ON CONFLICT DO NOTHING`, key, value)
		if err != nil {
			return err
		}
	}

	// active override for client 1 on meta, covering the current week
	start := time.Now().AddDate(0, 0, -3)
	end := time.Now().AddDate(0, 0, 4)
	_, err := db.Exec(ctx, `INSERT INTO custom_budget_overrides
(client_id, platform, budget_amount, start_date, end_date, is_active, created_at)
VALUES (1, 'meta', 50000, $1, $2, TRUE, now()) ON CONFLICT DO NOTHING`, start, end)
	return err
}
