package transactionrepo

import (
	"context"
	"errors"
	"time"

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

const transactionColumns = `id, account_id, type, amount, status, bank_name, branch_name, account_number, account_name, created_at, processed_at`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	var bankName, branchName, accountNumber, accountName *string
	err := row.Scan(
		&t.ID, &t.AccountID, &t.Type, &t.Amount, &t.Status,
		&bankName, &branchName, &accountNumber, &accountName,
		&t.CreatedAt, &t.ProcessedAt,
	)
	if err != nil {
		return nil, err
	}
	if bankName != nil {
		t.Bank = &domain.BankDetails{
			BankName:      *bankName,
			BranchName:    deref(branchName),
			AccountNumber: deref(accountNumber),
			AccountName:   deref(accountName),
		}
	}
	return &t, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (r *Repository) Create(ctx context.Context, transaction *domain.Transaction) error {
	query := `
        INSERT INTO transactions (id, account_id, type, amount, status, bank_name, branch_name, account_number, account_name)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING created_at
    `
	var bankName, branchName, accountNumber, accountName *string
	if transaction.Bank != nil {
		bankName = &transaction.Bank.BankName
		branchName = &transaction.Bank.BranchName
		accountNumber = &transaction.Bank.AccountNumber
		accountName = &transaction.Bank.AccountName
	}
	err := r.db.QueryRow(ctx, query,
		transaction.ID, transaction.AccountID, transaction.Type, transaction.Amount, transaction.Status,
		bankName, branchName, accountNumber, accountName,
	).Scan(&transaction.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE id = $1
    `
	transaction, err := scanTransaction(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find transaction", zap.Error(err))
		return nil, err
	}
	return transaction, nil
}

func (r *Repository) FindByAccountID(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE account_id = $1
        ORDER BY created_at DESC
    `
	return r.queryMany(ctx, query, accountID)
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        ORDER BY created_at DESC
    `
	return r.queryMany(ctx, query)
}

// MarkResolved moves a transaction out of pending. The status guard makes
// resolution exactly-once: a transaction that is already approved or
// rejected is not touched and false is returned.
func (r *Repository) MarkResolved(ctx context.Context, id, status string, processedAt time.Time) (bool, error) {
	query := `
        UPDATE transactions
        SET status = $2, processed_at = $3
        WHERE id = $1 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, id, status, processedAt)
	if err != nil {
		zap.L().Error("failed to resolve transaction", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) queryMany(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, *transaction)
	}
	return transactions, nil
}
