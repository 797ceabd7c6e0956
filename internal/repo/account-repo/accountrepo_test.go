package accountrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avolkov/lotomart/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func accountRows(a domain.Account) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "username", "email", "password_hash", "balance", "is_admin",
		"bank_name", "branch_name", "account_number", "account_name", "created_at",
	}).AddRow(
		a.ID, a.Username, a.Email, a.PasswordHash, a.Balance, a.IsAdmin,
		a.Bank.BankName, a.Bank.BranchName, a.Bank.AccountNumber, a.Bank.AccountName, a.CreatedAt,
	)
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)

	account := domain.Account{
		ID:           "736450192837",
		Username:     "taro",
		Email:        "taro@example.com",
		PasswordHash: "hashed_password",
		Balance:      5000,
		CreatedAt:    time.Date(2024, 12, 9, 16, 9, 57, 0, time.UTC),
	}

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		result    *domain.Account
	}{
		{
			name:  "Account found",
			email: "taro@example.com",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT (.+) FROM accounts\s+WHERE email = \$1`).
					WithArgs("taro@example.com").
					WillReturnRows(accountRows(account))
			},
			expectErr: false,
			result:    &account,
		},
		{
			name:  "Account not found",
			email: "nobody@example.com",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT (.+) FROM accounts\s+WHERE email = \$1`).
					WithArgs("nobody@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Database error",
			email: "taro@example.com",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT (.+) FROM accounts\s+WHERE email = \$1`).
					WithArgs("taro@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), tt.email)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	account := &domain.Account{
		ID:           "736450192837",
		Username:     "taro",
		Email:        "taro@example.com",
		PasswordHash: "hashed_password",
	}

	createdAt := time.Date(2024, 12, 9, 16, 9, 57, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO accounts (.+) RETURNING created_at`).
		WithArgs(
			account.ID, account.Username, account.Email, account.PasswordHash, account.Balance, account.IsAdmin,
			"", "", "", "",
		).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	created, err := repo.Create(context.Background(), account)
	assert.NoError(t, err)
	assert.Equal(t, createdAt, created.CreatedAt)

	mock.ExpectQuery(`INSERT INTO accounts (.+) RETURNING created_at`).
		WithArgs(
			account.ID, account.Username, account.Email, account.PasswordHash, account.Balance, account.IsAdmin,
			"", "", "", "",
		).
		WillReturnError(errors.New("duplicate key"))

	_, err = repo.Create(context.Background(), account)
	assert.Error(t, err)
}

func TestRepository_CreditBalance(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(`UPDATE accounts\s+SET balance = balance \+ \$2\s+WHERE id = \$1`).
		WithArgs("736450192837", int64(10000)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.CreditBalance(context.Background(), "736450192837", 10000))

	mock.ExpectExec(`UPDATE accounts\s+SET balance = balance \+ \$2\s+WHERE id = \$1`).
		WithArgs("999999999999", int64(10000)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.ErrorIs(t, repo.CreditBalance(context.Background(), "999999999999", 10000), pgx.ErrNoRows)
}

func TestRepository_DebitBalance(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		amount    int64
		mockSetup func()
		debited   bool
		expectErr bool
	}{
		{
			name:   "Balance covers the debit",
			amount: 300,
			mockSetup: func() {
				mock.ExpectExec(`UPDATE accounts\s+SET balance = balance - \$2\s+WHERE id = \$1 AND balance >= \$2`).
					WithArgs("736450192837", int64(300)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			debited: true,
		},
		{
			name:   "Balance too low leaves the row untouched",
			amount: 300,
			mockSetup: func() {
				mock.ExpectExec(`UPDATE accounts\s+SET balance = balance - \$2\s+WHERE id = \$1 AND balance >= \$2`).
					WithArgs("736450192837", int64(300)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			debited: false,
		},
		{
			name:   "Database error",
			amount: 300,
			mockSetup: func() {
				mock.ExpectExec(`UPDATE accounts\s+SET balance = balance - \$2\s+WHERE id = \$1 AND balance >= \$2`).
					WithArgs("736450192837", int64(300)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			debited, err := repo.DebitBalance(context.Background(), "736450192837", tt.amount)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.debited, debited)
		})
	}
}

func TestRepository_UpdateBankDetails(t *testing.T) {
	repo, mock := NewMock(t)

	bank := domain.BankDetails{BankName: "Mizuho", BranchName: "Shibuya", AccountNumber: "1234567", AccountName: "TARO"}

	mock.ExpectExec(`UPDATE accounts\s+SET bank_name = \$2`).
		WithArgs("736450192837", bank.BankName, bank.BranchName, bank.AccountNumber, bank.AccountName).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.UpdateBankDetails(context.Background(), "736450192837", bank))

	mock.ExpectExec(`UPDATE accounts\s+SET bank_name = \$2`).
		WithArgs("999999999999", bank.BankName, bank.BranchName, bank.AccountNumber, bank.AccountName).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.ErrorIs(t, repo.UpdateBankDetails(context.Background(), "999999999999", bank), pgx.ErrNoRows)
}

func TestRepository_FindAll(t *testing.T) {
	repo, mock := NewMock(t)

	account := domain.Account{
		ID:        "736450192837",
		Username:  "taro",
		Email:     "taro@example.com",
		Balance:   5000,
		CreatedAt: time.Date(2024, 12, 9, 16, 9, 57, 0, time.UTC),
	}

	mock.ExpectQuery(`SELECT (.+) FROM accounts\s+ORDER BY created_at DESC`).
		WillReturnRows(accountRows(account))

	accounts, err := repo.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []domain.Account{account}, accounts)
}
