package purchaseservice

import (
	"context"
	"errors"
	"testing"

	"github.com/avolkov/lotomart/internal/domain"
	"github.com/avolkov/lotomart/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

var loto7 = domain.Game{ID: "loto7", Name: "LOTO 7", Price: 300, MaxNumber: 37, PickCount: 7}

func NewMock(t *testing.T) (*Service, *MockAccountRepo, *MockPurchaseRepo, *MockCatalog, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	accountRepo := NewMockAccountRepo(ctrl)
	purchaseRepo := NewMockPurchaseRepo(ctrl)
	catalog := NewMockCatalog(ctrl)
	txManager := pg.NewMockTXManager(ctrl)

	service := New(accountRepo, purchaseRepo, catalog, txManager)
	defer ctrl.Finish()
	return service, accountRepo, purchaseRepo, catalog, txManager
}

func passThroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().
		Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestPurchase(t *testing.T) {
	service, accountRepo, purchaseRepo, catalog, txManager := NewMock(t)

	account := &domain.Account{ID: "736450192837", Balance: 1000}

	tests := []struct {
		name          string
		gameID        string
		selections    [][]int
		prepareMock   func()
		expectedCost  int64
		expectedLines int
		expectedError error
	}{
		{
			name:   "Single line ticket",
			gameID: "loto7",
			selections: [][]int{
				{7, 3, 1, 5, 2, 6, 4},
			},
			prepareMock: func() {
				catalog.EXPECT().Game("loto7").Return(loto7, true)
				passThroughTx(txManager)
				accountRepo.EXPECT().FindByID(gomock.Any(), "736450192837").Return(account, nil)
				accountRepo.EXPECT().DebitBalance(gomock.Any(), "736450192837", int64(300)).Return(true, nil)
				purchaseRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedCost:  300,
			expectedLines: 1,
			expectedError: nil,
		},
		{
			name:   "Empty lines are skipped and not charged",
			gameID: "loto7",
			selections: [][]int{
				{1, 2, 3, 4, 5, 6, 7},
				{},
				{8, 9, 10, 11, 12, 13, 14},
				nil,
			},
			prepareMock: func() {
				catalog.EXPECT().Game("loto7").Return(loto7, true)
				passThroughTx(txManager)
				accountRepo.EXPECT().FindByID(gomock.Any(), "736450192837").Return(account, nil)
				accountRepo.EXPECT().DebitBalance(gomock.Any(), "736450192837", int64(600)).Return(true, nil)
				purchaseRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedCost:  600,
			expectedLines: 2,
			expectedError: nil,
		},
		{
			name:   "Unknown game",
			gameID: "loto9",
			selections: [][]int{
				{1, 2, 3, 4, 5, 6, 7},
			},
			prepareMock: func() {
				catalog.EXPECT().Game("loto9").Return(domain.Game{}, false)
			},
			expectedError: ErrGameNotFound,
		},
		{
			name:   "Invalid line rejects the whole ticket",
			gameID: "loto7",
			selections: [][]int{
				{1, 2, 3, 4, 5, 6, 7},
				{1, 2, 3, 4, 5, 6, 38},
			},
			prepareMock: func() {
				catalog.EXPECT().Game("loto7").Return(loto7, true)
			},
			expectedError: ErrInvalidSelection,
		},
		{
			name:       "All empty lines",
			gameID:     "loto7",
			selections: [][]int{{}, {}},
			prepareMock: func() {
				catalog.EXPECT().Game("loto7").Return(loto7, true)
			},
			expectedError: ErrInvalidSelection,
		},
		{
			name:   "Account not found",
			gameID: "loto7",
			selections: [][]int{
				{1, 2, 3, 4, 5, 6, 7},
			},
			prepareMock: func() {
				catalog.EXPECT().Game("loto7").Return(loto7, true)
				passThroughTx(txManager)
				accountRepo.EXPECT().FindByID(gomock.Any(), "736450192837").Return(nil, nil)
			},
			expectedError: ErrAccountNotFound,
		},
		{
			name:   "Insufficient balance",
			gameID: "loto7",
			selections: [][]int{
				{1, 2, 3, 4, 5, 6, 7},
			},
			prepareMock: func() {
				catalog.EXPECT().Game("loto7").Return(loto7, true)
				passThroughTx(txManager)
				accountRepo.EXPECT().FindByID(gomock.Any(), "736450192837").Return(account, nil)
				accountRepo.EXPECT().DebitBalance(gomock.Any(), "736450192837", int64(300)).Return(false, nil)
			},
			expectedError: ErrInsufficientBalance,
		},
		{
			name:   "Create failure returns error",
			gameID: "loto7",
			selections: [][]int{
				{1, 2, 3, 4, 5, 6, 7},
			},
			prepareMock: func() {
				catalog.EXPECT().Game("loto7").Return(loto7, true)
				passThroughTx(txManager)
				accountRepo.EXPECT().FindByID(gomock.Any(), "736450192837").Return(account, nil)
				accountRepo.EXPECT().DebitBalance(gomock.Any(), "736450192837", int64(300)).Return(true, nil)
				purchaseRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
			},
			expectedError: errors.New("insert failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			purchase, cost, err := service.Purchase(context.Background(), "736450192837", tt.gameID, tt.selections)
			if tt.expectedError != nil {
				assert.Nil(t, purchase)
				assert.Zero(t, cost)
				assert.EqualError(t, err, tt.expectedError.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCost, cost)
			assert.Len(t, purchase.Selections, tt.expectedLines)
			assert.Equal(t, domain.PurchaseStatusPending, purchase.Status)
			assert.NotEmpty(t, purchase.ID)
			for _, line := range purchase.Selections {
				assert.IsIncreasing(t, line)
			}
		})
	}
}

func TestGetPurchases(t *testing.T) {
	service, _, purchaseRepo, _, _ := NewMock(t)

	expected := []domain.Purchase{
		{ID: "924856741350", GameID: "loto7", Status: domain.PurchaseStatusWon, WinAmount: 500000},
	}
	purchaseRepo.EXPECT().FindByAccountID(context.Background(), "736450192837").Return(expected, nil)

	purchases, err := service.GetPurchases(context.Background(), "736450192837")
	assert.NoError(t, err)
	assert.Equal(t, expected, purchases)

	purchaseRepo.EXPECT().FindByAccountID(context.Background(), "736450192837").Return(nil, errors.New("database error"))

	purchases, err = service.GetPurchases(context.Background(), "736450192837")
	assert.Error(t, err)
	assert.Nil(t, purchases)
}

func TestQuickPick(t *testing.T) {
	service, _, _, catalog, _ := NewMock(t)

	catalog.EXPECT().Game("loto7").Return(loto7, true)

	numbers, err := service.QuickPick("loto7")
	assert.NoError(t, err)
	assert.Len(t, numbers, 7)
	assert.True(t, domain.ValidateSelection(numbers, loto7.PickCount, loto7.MaxNumber))
	assert.IsIncreasing(t, numbers)

	catalog.EXPECT().Game("loto9").Return(domain.Game{}, false)

	numbers, err = service.QuickPick("loto9")
	assert.ErrorIs(t, err, ErrGameNotFound)
	assert.Nil(t, numbers)
}
