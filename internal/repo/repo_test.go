package repo

import (
	"testing"

	accountrepo "github.com/avolkov/lotomart/internal/repo/account-repo"
	drawrepo "github.com/avolkov/lotomart/internal/repo/draw-repo"
	purchaserepo "github.com/avolkov/lotomart/internal/repo/purchase-repo"
	transactionrepo "github.com/avolkov/lotomart/internal/repo/transaction-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.AccountRepo)
	assert.NotNil(t, repo.PurchaseRepo)
	assert.NotNil(t, repo.TransactionRepo)
	assert.NotNil(t, repo.DrawRepo)

	assert.IsType(t, &accountrepo.Repository{}, repo.AccountRepo)
	assert.IsType(t, &purchaserepo.Repository{}, repo.PurchaseRepo)
	assert.IsType(t, &transactionrepo.Repository{}, repo.TransactionRepo)
	assert.IsType(t, &drawrepo.Repository{}, repo.DrawRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
