package purchaserepo

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/avolkov/lotomart/internal/domain"
	"github.com/avolkov/lotomart/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const purchaseColumns = `id, account_id, game_id, selections, status, win_amount, is_processed, forced_win_tier, created_at`

func scanPurchase(row pgx.Row) (*domain.Purchase, error) {
	var p domain.Purchase
	var selections []byte
	err := row.Scan(
		&p.ID, &p.AccountID, &p.GameID, &selections, &p.Status,
		&p.WinAmount, &p.IsProcessed, &p.ForcedWinTier, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(selections, &p.Selections); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Create(ctx context.Context, purchase *domain.Purchase) error {
	selections, err := json.Marshal(purchase.Selections)
	if err != nil {
		return err
	}
	query := `
        INSERT INTO purchases (id, account_id, game_id, selections, status, win_amount, is_processed)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at
    `
	err = r.db.QueryRow(ctx, query,
		purchase.ID, purchase.AccountID, purchase.GameID, selections,
		purchase.Status, purchase.WinAmount, purchase.IsProcessed,
	).Scan(&purchase.CreatedAt)
	if err != nil {
		zap.L().Error("can't save purchase", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Purchase, error) {
	query := `
        SELECT ` + purchaseColumns + `
        FROM purchases
        WHERE id = $1
    `
	purchase, err := scanPurchase(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find purchase", zap.Error(err))
		return nil, err
	}
	return purchase, nil
}

func (r *Repository) FindByAccountID(ctx context.Context, accountID string) ([]domain.Purchase, error) {
	query := `
        SELECT ` + purchaseColumns + `
        FROM purchases
        WHERE account_id = $1
        ORDER BY created_at DESC
    `
	return r.queryMany(ctx, query, accountID)
}

func (r *Repository) FindUnprocessed(ctx context.Context, gameID string) ([]domain.Purchase, error) {
	query := `
        SELECT ` + purchaseColumns + `
        FROM purchases
        WHERE game_id = $1 AND is_processed = FALSE
        ORDER BY created_at ASC
    `
	return r.queryMany(ctx, query, gameID)
}

func (r *Repository) FindAll(ctx context.Context, limit int) ([]domain.Purchase, error) {
	query := `
        SELECT ` + purchaseColumns + `
        FROM purchases
        ORDER BY created_at DESC
        LIMIT $1
    `
	return r.queryMany(ctx, query, limit)
}

// Settle writes the outcome of one purchase. The is_processed guard makes
// it at-most-once: a purchase that was already settled, even by a raced
// concurrent run, is left untouched and false is returned.
func (r *Repository) Settle(ctx context.Context, id, status string, winAmount int64) (bool, error) {
	query := `
        UPDATE purchases
        SET status = $2, win_amount = $3, is_processed = TRUE
        WHERE id = $1 AND is_processed = FALSE
    `
	tag, err := r.db.Exec(ctx, query, id, status, winAmount)
	if err != nil {
		zap.L().Error("failed to settle purchase", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// SetForcedTier stores the override; processed purchases are immutable so
// the guard reports whether anything changed.
func (r *Repository) SetForcedTier(ctx context.Context, id string, tier int) (bool, error) {
	query := `
        UPDATE purchases
        SET forced_win_tier = $2
        WHERE id = $1 AND is_processed = FALSE
    `
	tag, err := r.db.Exec(ctx, query, id, tier)
	if err != nil {
		zap.L().Error("failed to set forced tier", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) queryMany(ctx context.Context, query string, args ...any) ([]domain.Purchase, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get purchases", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		purchase, err := scanPurchase(rows)
		if err != nil {
			zap.L().Error("can't scan purchase row", zap.Error(err))
			return nil, err
		}
		purchases = append(purchases, *purchase)
	}
	return purchases, nil
}
