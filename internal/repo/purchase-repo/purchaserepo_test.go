package purchaserepo

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

func purchaseRows(p domain.Purchase, selectionsJSON string) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "account_id", "game_id", "selections", "status",
		"win_amount", "is_processed", "forced_win_tier", "created_at",
	}).AddRow(
		p.ID, p.AccountID, p.GameID, []byte(selectionsJSON), p.Status,
		p.WinAmount, p.IsProcessed, p.ForcedWinTier, p.CreatedAt,
	)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	purchase := &domain.Purchase{
		ID:         "924856741350",
		AccountID:  "736450192837",
		GameID:     "loto7",
		Selections: [][]int{{1, 2, 3, 4, 5, 6, 7}},
		Status:     domain.PurchaseStatusPending,
	}

	createdAt := time.Date(2024, 12, 9, 16, 9, 57, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO purchases (.+) RETURNING created_at`).
		WithArgs(
			purchase.ID, purchase.AccountID, purchase.GameID, []byte(`[[1,2,3,4,5,6,7]]`),
			purchase.Status, purchase.WinAmount, purchase.IsProcessed,
		).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	assert.NoError(t, repo.Create(context.Background(), purchase))
	assert.Equal(t, createdAt, purchase.CreatedAt)
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	purchase := domain.Purchase{
		ID:         "924856741350",
		AccountID:  "736450192837",
		GameID:     "loto7",
		Status:     domain.PurchaseStatusPending,
		Selections: [][]int{{1, 2, 3, 4, 5, 6, 7}},
		CreatedAt:  time.Date(2024, 12, 9, 16, 9, 57, 0, time.UTC),
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Purchase
	}{
		{
			name: "Purchase found",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT (.+) FROM purchases\s+WHERE id = \$1`).
					WithArgs("924856741350").
					WillReturnRows(purchaseRows(purchase, `[[1,2,3,4,5,6,7]]`))
			},
			result: &purchase,
		},
		{
			name: "Purchase not found",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT (.+) FROM purchases\s+WHERE id = \$1`).
					WithArgs("924856741350").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT (.+) FROM purchases\s+WHERE id = \$1`).
					WithArgs("924856741350").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), "924856741350")
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindUnprocessed(t *testing.T) {
	repo, mock := NewMock(t)

	purchase := domain.Purchase{
		ID:         "924856741350",
		AccountID:  "736450192837",
		GameID:     "loto7",
		Status:     domain.PurchaseStatusPending,
		Selections: [][]int{{1, 2, 3, 4, 5, 6, 7}},
		CreatedAt:  time.Date(2024, 12, 9, 16, 9, 57, 0, time.UTC),
	}

	mock.ExpectQuery(`SELECT (.+) FROM purchases\s+WHERE game_id = \$1 AND is_processed = FALSE`).
		WithArgs("loto7").
		WillReturnRows(purchaseRows(purchase, `[[1,2,3,4,5,6,7]]`))

	purchases, err := repo.FindUnprocessed(context.Background(), "loto7")
	assert.NoError(t, err)
	assert.Equal(t, []domain.Purchase{purchase}, purchases)
}

func TestRepository_Settle(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		settled   bool
		expectErr bool
	}{
		{
			name: "Unprocessed purchase is settled",
			mockSetup: func() {
				mock.ExpectExec(`UPDATE purchases\s+SET status = \$2, win_amount = \$3, is_processed = TRUE\s+WHERE id = \$1 AND is_processed = FALSE`).
					WithArgs("924856741350", domain.PurchaseStatusWon, int64(500000)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			settled: true,
		},
		{
			name: "Processed purchase is left untouched",
			mockSetup: func() {
				mock.ExpectExec(`UPDATE purchases\s+SET status = \$2, win_amount = \$3, is_processed = TRUE\s+WHERE id = \$1 AND is_processed = FALSE`).
					WithArgs("924856741350", domain.PurchaseStatusWon, int64(500000)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			settled: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(`UPDATE purchases\s+SET status = \$2, win_amount = \$3, is_processed = TRUE\s+WHERE id = \$1 AND is_processed = FALSE`).
					WithArgs("924856741350", domain.PurchaseStatusWon, int64(500000)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			settled, err := repo.Settle(context.Background(), "924856741350", domain.PurchaseStatusWon, 500000)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.settled, settled)
		})
	}
}

func TestRepository_SetForcedTier(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(`UPDATE purchases\s+SET forced_win_tier = \$2\s+WHERE id = \$1 AND is_processed = FALSE`).
		WithArgs("924856741350", 2).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	updated, err := repo.SetForcedTier(context.Background(), "924856741350", 2)
	assert.NoError(t, err)
	assert.True(t, updated)

	mock.ExpectExec(`UPDATE purchases\s+SET forced_win_tier = \$2\s+WHERE id = \$1 AND is_processed = FALSE`).
		WithArgs("924856741350", 2).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	updated, err = repo.SetForcedTier(context.Background(), "924856741350", 2)
	assert.NoError(t, err)
	assert.False(t, updated)
}
