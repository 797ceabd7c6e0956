package accountrepo

import (
	"context"
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

const accountColumns = `id, username, email, password_hash, balance, is_admin, bank_name, branch_name, account_number, account_name, created_at`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.Balance, &a.IsAdmin,
		&a.Bank.BankName, &a.Bank.BranchName, &a.Bank.AccountNumber, &a.Bank.AccountName,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE email = $1
    `
	account, err := scanAccount(r.db.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find account by email", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE id = $1
    `
	account, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query := `
        INSERT INTO accounts (id, username, email, password_hash, balance, is_admin, bank_name, branch_name, account_number, account_name)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING created_at
    `
	err := r.db.QueryRow(ctx, query,
		account.ID, account.Username, account.Email, account.PasswordHash, account.Balance, account.IsAdmin,
		account.Bank.BankName, account.Bank.BranchName, account.Bank.AccountNumber, account.Bank.AccountName,
	).Scan(&account.CreatedAt)
	if err != nil {
		zap.L().Error("can't create account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// CreditBalance adds amount to the account balance in a single statement,
// so concurrent settlements of the same account never lose an update.
func (r *Repository) CreditBalance(ctx context.Context, id string, amount int64) error {
	query := `
        UPDATE accounts
        SET balance = balance + $2
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query, id, amount)
	if err != nil {
		zap.L().Error("can't credit balance", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DebitBalance subtracts amount only when the balance covers it and
// reports whether the debit happened.
func (r *Repository) DebitBalance(ctx context.Context, id string, amount int64) (bool, error) {
	query := `
        UPDATE accounts
        SET balance = balance - $2
        WHERE id = $1 AND balance >= $2
    `
	tag, err := r.db.Exec(ctx, query, id, amount)
	if err != nil {
		zap.L().Error("can't debit balance", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) UpdateBankDetails(ctx context.Context, id string, bank domain.BankDetails) error {
	query := `
        UPDATE accounts
        SET bank_name = $2, branch_name = $3, account_number = $4, account_name = $5
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query, id, bank.BankName, bank.BranchName, bank.AccountNumber, bank.AccountName)
	if err != nil {
		zap.L().Error("can't update bank details", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			zap.L().Error("can't scan account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, *account)
	}
	return accounts, nil
}
