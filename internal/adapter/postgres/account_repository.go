package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adrecon/internal/core/port"
)

// AccountRepository enumerates reconciliation units from the client and
// advertising-account tables.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository returns a new repository instance.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// EligibleUnits returns every active client paired with each of its active
// primary accounts, ordered for stable progress accounting.
func (r *AccountRepository) EligibleUnits(ctx context.Context) ([]port.ReconcileUnit, error) {
	rows, err := r.pool.Query(ctx, `SELECT
            c.id, c.name, c.is_active, c.created_at, c.updated_at,
            a.id, a.client_id, a.platform, a.account_id, a.account_name,
            a.is_primary, a.is_active, a.created_at, a.updated_at
        FROM clients c
        JOIN advertising_accounts a ON a.client_id = c.id
        WHERE c.is_active AND a.is_active AND a.is_primary
        ORDER BY c.id, a.platform`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.ReconcileUnit, error) {
		var u port.ReconcileUnit
		err := row.Scan(
			&u.Client.ID, &u.Client.Name, &u.Client.IsActive, &u.Client.CreatedAt, &u.Client.UpdatedAt,
			&u.Account.ID, &u.Account.ClientID, &u.Account.Platform, &u.Account.AccountID, &u.Account.AccountName,
			&u.Account.IsPrimary, &u.Account.IsActive, &u.Account.CreatedAt, &u.Account.UpdatedAt,
		)
		return u, err
	})
}

// UpdateAccountName stores a display name change reported by the platform.
func (r *AccountRepository) UpdateAccountName(ctx context.Context, accountRowID int64, name string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE advertising_accounts SET account_name = $1, updated_at = now() WHERE id = $2`,
		name, accountRowID)
	return err
}
