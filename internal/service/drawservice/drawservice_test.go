package drawservice

import (
	"context"
	"errors"
	"testing"

	"github.com/avolkov/lotomart/internal/domain"
	"github.com/avolkov/lotomart/internal/events"
	"github.com/avolkov/lotomart/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

var (
	loto7       = domain.Game{ID: "loto7", Name: "LOTO 7", Price: 300, MaxNumber: 37, PickCount: 7}
	loto7Prizes = domain.PrizeTable{GameID: "loto7", Tier1: 600000000, Tier2: 10000000, Tier3: 500000}
)

type mocks struct {
	drawRepo     *MockDrawRepo
	purchaseRepo *MockPurchaseRepo
	accountRepo  *MockAccountRepo
	catalog      *MockCatalog
	txManager    *pg.MockTXManager
	cache        *MockCache
	publisher    *MockPublisher
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		drawRepo:     NewMockDrawRepo(ctrl),
		purchaseRepo: NewMockPurchaseRepo(ctrl),
		accountRepo:  NewMockAccountRepo(ctrl),
		catalog:      NewMockCatalog(ctrl),
		txManager:    pg.NewMockTXManager(ctrl),
		cache:        NewMockCache(ctrl),
		publisher:    NewMockPublisher(ctrl),
	}

	service := New(m.drawRepo, m.purchaseRepo, m.accountRepo, m.catalog, m.txManager, m.cache, m.publisher)
	defer ctrl.Finish()
	return service, m
}

func passThroughTx(txManager *pg.MockTXManager) *gomock.Call {
	return txManager.EXPECT().
		Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func intPtr(n int) *int { return &n }

func TestResolve(t *testing.T) {
	winning := &domain.WinningNumbers{GameID: "loto7", DrawDate: "2024-12-09", Numbers: []int{1, 2, 3, 4, 5, 6, 7}}

	t.Run("Cache hit skips the database", func(t *testing.T) {
		service, m := NewMock(t)

		m.cache.EXPECT().GetWinningNumbers(context.Background(), "loto7", "2024-12-09").Return(winning, nil)

		wn, err := service.Resolve(context.Background(), loto7, "2024-12-09")
		assert.NoError(t, err)
		assert.Equal(t, winning, wn)
	})

	t.Run("Stored numbers are reused", func(t *testing.T) {
		service, m := NewMock(t)

		m.cache.EXPECT().GetWinningNumbers(context.Background(), "loto7", "2024-12-09").Return(nil, nil)
		m.drawRepo.EXPECT().GetWinningNumbers(context.Background(), "loto7", "2024-12-09").Return(winning, nil)
		m.cache.EXPECT().SetWinningNumbers(context.Background(), winning).Return(nil)

		wn, err := service.Resolve(context.Background(), loto7, "2024-12-09")
		assert.NoError(t, err)
		assert.Equal(t, winning, wn)
	})

	t.Run("First draw generates and stores numbers", func(t *testing.T) {
		service, m := NewMock(t)

		m.cache.EXPECT().GetWinningNumbers(context.Background(), "loto7", "2024-12-09").Return(nil, nil)
		m.drawRepo.EXPECT().GetWinningNumbers(context.Background(), "loto7", "2024-12-09").Return(nil, nil)
		m.drawRepo.EXPECT().
			StoreWinningNumbersOnce(context.Background(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, wn *domain.WinningNumbers) (*domain.WinningNumbers, error) {
				assert.True(t, domain.ValidateSelection(wn.Numbers, loto7.PickCount, loto7.MaxNumber))
				return wn, nil
			})
		m.cache.EXPECT().SetWinningNumbers(context.Background(), gomock.Any()).Return(nil)

		wn, err := service.Resolve(context.Background(), loto7, "2024-12-09")
		assert.NoError(t, err)
		assert.Len(t, wn.Numbers, 7)
	})

	t.Run("Cache failures are non fatal", func(t *testing.T) {
		service, m := NewMock(t)

		m.cache.EXPECT().GetWinningNumbers(context.Background(), "loto7", "2024-12-09").Return(nil, errors.New("redis down"))
		m.drawRepo.EXPECT().GetWinningNumbers(context.Background(), "loto7", "2024-12-09").Return(winning, nil)
		m.cache.EXPECT().SetWinningNumbers(context.Background(), winning).Return(errors.New("redis down"))

		wn, err := service.Resolve(context.Background(), loto7, "2024-12-09")
		assert.NoError(t, err)
		assert.Equal(t, winning, wn)
	})
}

func TestExecuteDraw(t *testing.T) {
	winning := &domain.WinningNumbers{GameID: "loto7", DrawDate: "2024-12-09", Numbers: []int{1, 2, 3, 4, 5, 6, 7}}

	resolveStored := func(m mocks) {
		m.cache.EXPECT().GetWinningNumbers(gomock.Any(), "loto7", "2024-12-09").Return(winning, nil)
	}

	t.Run("Winning ticket is settled and paid once", func(t *testing.T) {
		service, m := NewMock(t)

		purchase := domain.Purchase{
			ID:         "924856741350",
			AccountID:  "736450192837",
			GameID:     "loto7",
			Selections: [][]int{{1, 2, 3, 4, 5, 6, 20}},
		}

		m.catalog.EXPECT().Game("loto7").Return(loto7, true)
		resolveStored(m)
		m.drawRepo.EXPECT().GetPrizeTable(gomock.Any(), "loto7").Return(&loto7Prizes, nil)
		m.purchaseRepo.EXPECT().FindUnprocessed(gomock.Any(), "loto7").Return([]domain.Purchase{purchase}, nil)
		passThroughTx(m.txManager)
		m.purchaseRepo.EXPECT().Settle(gomock.Any(), "924856741350", domain.PurchaseStatusWon, int64(10000000)).Return(true, nil)
		m.accountRepo.EXPECT().CreditBalance(gomock.Any(), "736450192837", int64(10000000)).Return(nil)
		m.publisher.EXPECT().
			PublishSettlement(gomock.Any(), events.PurchaseSettled{
				PurchaseID: "924856741350",
				AccountID:  "736450192837",
				GameID:     "loto7",
				DrawDate:   "2024-12-09",
				Status:     domain.PurchaseStatusWon,
				WinAmount:  10000000,
			}).
			Return(nil)

		wn, err := service.ExecuteDraw(context.Background(), "loto7", "2024-12-09")
		assert.NoError(t, err)
		assert.Equal(t, winning, wn)
	})

	t.Run("Losing ticket settles without payout", func(t *testing.T) {
		service, m := NewMock(t)

		purchase := domain.Purchase{
			ID:         "924856741350",
			AccountID:  "736450192837",
			GameID:     "loto7",
			Selections: [][]int{{10, 11, 12, 13, 14, 15, 16}},
		}

		m.catalog.EXPECT().Game("loto7").Return(loto7, true)
		resolveStored(m)
		m.drawRepo.EXPECT().GetPrizeTable(gomock.Any(), "loto7").Return(&loto7Prizes, nil)
		m.purchaseRepo.EXPECT().FindUnprocessed(gomock.Any(), "loto7").Return([]domain.Purchase{purchase}, nil)
		passThroughTx(m.txManager)
		m.purchaseRepo.EXPECT().Settle(gomock.Any(), "924856741350", domain.PurchaseStatusLost, int64(0)).Return(true, nil)
		m.publisher.EXPECT().PublishSettlement(gomock.Any(), gomock.Any()).Return(nil)

		_, err := service.ExecuteDraw(context.Background(), "loto7", "2024-12-09")
		assert.NoError(t, err)
	})

	t.Run("Forced tier overrides the matching outcome", func(t *testing.T) {
		service, m := NewMock(t)

		purchase := domain.Purchase{
			ID:            "924856741350",
			AccountID:     "736450192837",
			GameID:        "loto7",
			Selections:    [][]int{{30, 31, 32, 33, 34, 35, 36}},
			ForcedWinTier: intPtr(1),
		}

		m.catalog.EXPECT().Game("loto7").Return(loto7, true)
		resolveStored(m)
		m.drawRepo.EXPECT().GetPrizeTable(gomock.Any(), "loto7").Return(&loto7Prizes, nil)
		m.purchaseRepo.EXPECT().FindUnprocessed(gomock.Any(), "loto7").Return([]domain.Purchase{purchase}, nil)
		passThroughTx(m.txManager)
		m.purchaseRepo.EXPECT().Settle(gomock.Any(), "924856741350", domain.PurchaseStatusWon, int64(600000000)).Return(true, nil)
		m.accountRepo.EXPECT().CreditBalance(gomock.Any(), "736450192837", int64(600000000)).Return(nil)
		m.publisher.EXPECT().PublishSettlement(gomock.Any(), gomock.Any()).Return(nil)

		_, err := service.ExecuteDraw(context.Background(), "loto7", "2024-12-09")
		assert.NoError(t, err)
	})

	t.Run("Concurrently settled ticket is not paid again", func(t *testing.T) {
		service, m := NewMock(t)

		purchase := domain.Purchase{
			ID:         "924856741350",
			AccountID:  "736450192837",
			GameID:     "loto7",
			Selections: [][]int{{1, 2, 3, 4, 5, 6, 7}},
		}

		m.catalog.EXPECT().Game("loto7").Return(loto7, true)
		resolveStored(m)
		m.drawRepo.EXPECT().GetPrizeTable(gomock.Any(), "loto7").Return(&loto7Prizes, nil)
		m.purchaseRepo.EXPECT().FindUnprocessed(gomock.Any(), "loto7").Return([]domain.Purchase{purchase}, nil)
		passThroughTx(m.txManager)
		m.purchaseRepo.EXPECT().Settle(gomock.Any(), "924856741350", domain.PurchaseStatusWon, int64(600000000)).Return(false, nil)

		_, err := service.ExecuteDraw(context.Background(), "loto7", "2024-12-09")
		assert.NoError(t, err)
	})

	t.Run("One failing ticket does not abort the rest", func(t *testing.T) {
		service, m := NewMock(t)

		purchases := []domain.Purchase{
			{ID: "924856741350", AccountID: "736450192837", GameID: "loto7", Selections: [][]int{{10, 11, 12, 13, 14, 15, 16}}},
			{ID: "924856741368", AccountID: "736450192837", GameID: "loto7", Selections: [][]int{{20, 21, 22, 23, 24, 25, 26}}},
		}

		m.catalog.EXPECT().Game("loto7").Return(loto7, true)
		resolveStored(m)
		m.drawRepo.EXPECT().GetPrizeTable(gomock.Any(), "loto7").Return(&loto7Prizes, nil)
		m.purchaseRepo.EXPECT().FindUnprocessed(gomock.Any(), "loto7").Return(purchases, nil)
		passThroughTx(m.txManager).Times(2)
		m.purchaseRepo.EXPECT().Settle(gomock.Any(), "924856741350", domain.PurchaseStatusLost, int64(0)).Return(false, errors.New("deadlock"))
		m.purchaseRepo.EXPECT().Settle(gomock.Any(), "924856741368", domain.PurchaseStatusLost, int64(0)).Return(true, nil)
		m.publisher.EXPECT().PublishSettlement(gomock.Any(), gomock.Any()).Return(nil)

		_, err := service.ExecuteDraw(context.Background(), "loto7", "2024-12-09")
		assert.NoError(t, err)
	})

	t.Run("Missing prize table aborts the draw", func(t *testing.T) {
		service, m := NewMock(t)

		m.catalog.EXPECT().Game("loto7").Return(loto7, true)
		resolveStored(m)
		m.drawRepo.EXPECT().GetPrizeTable(gomock.Any(), "loto7").Return(nil, nil)

		_, err := service.ExecuteDraw(context.Background(), "loto7", "2024-12-09")
		assert.ErrorIs(t, err, ErrPrizeTableMissing)
	})

	t.Run("Unknown game", func(t *testing.T) {
		service, m := NewMock(t)

		m.catalog.EXPECT().Game("loto9").Return(domain.Game{}, false)

		_, err := service.ExecuteDraw(context.Background(), "loto9", "2024-12-09")
		assert.ErrorIs(t, err, ErrGameNotFound)
	})
}

func TestPresetWinningNumbers(t *testing.T) {
	t.Run("Preset stores sorted numbers", func(t *testing.T) {
		service, m := NewMock(t)

		m.catalog.EXPECT().Game("loto7").Return(loto7, true)
		m.drawRepo.EXPECT().GetWinningNumbers(context.Background(), "loto7", "2024-12-10").Return(nil, nil)
		m.drawRepo.EXPECT().
			StoreWinningNumbersOnce(context.Background(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, wn *domain.WinningNumbers) (*domain.WinningNumbers, error) {
				assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, wn.Numbers)
				return wn, nil
			})
		m.cache.EXPECT().SetWinningNumbers(context.Background(), gomock.Any()).Return(nil)

		wn, err := service.PresetWinningNumbers(context.Background(), "loto7", "2024-12-10", []int{7, 3, 1, 5, 2, 6, 4})
		assert.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, wn.Numbers)
	})

	t.Run("Already drawn date is rejected", func(t *testing.T) {
		service, m := NewMock(t)

		m.catalog.EXPECT().Game("loto7").Return(loto7, true)
		m.drawRepo.EXPECT().
			GetWinningNumbers(context.Background(), "loto7", "2024-12-09").
			Return(&domain.WinningNumbers{GameID: "loto7", DrawDate: "2024-12-09", Numbers: []int{1, 2, 3, 4, 5, 6, 7}}, nil)

		_, err := service.PresetWinningNumbers(context.Background(), "loto7", "2024-12-09", []int{8, 9, 10, 11, 12, 13, 14})
		assert.ErrorIs(t, err, ErrAlreadyProcessed)
	})

	t.Run("Losing the store race is rejected", func(t *testing.T) {
		service, m := NewMock(t)

		m.catalog.EXPECT().Game("loto7").Return(loto7, true)
		m.drawRepo.EXPECT().GetWinningNumbers(context.Background(), "loto7", "2024-12-10").Return(nil, nil)
		m.drawRepo.EXPECT().
			StoreWinningNumbersOnce(context.Background(), gomock.Any()).
			Return(&domain.WinningNumbers{GameID: "loto7", DrawDate: "2024-12-10", Numbers: []int{30, 31, 32, 33, 34, 35, 36}}, nil)

		_, err := service.PresetWinningNumbers(context.Background(), "loto7", "2024-12-10", []int{1, 2, 3, 4, 5, 6, 7})
		assert.ErrorIs(t, err, ErrAlreadyProcessed)
	})

	t.Run("Invalid numbers", func(t *testing.T) {
		service, m := NewMock(t)

		m.catalog.EXPECT().Game("loto7").Return(loto7, true)

		_, err := service.PresetWinningNumbers(context.Background(), "loto7", "2024-12-10", []int{1, 2, 3})
		assert.ErrorIs(t, err, ErrInvalidNumbers)
	})
}

func TestSetForcedWinTier(t *testing.T) {
	pending := &domain.Purchase{
		ID:        "924856741350",
		AccountID: "736450192837",
		GameID:    "loto7",
	}

	t.Run("Override is stored and audited", func(t *testing.T) {
		service, m := NewMock(t)

		m.purchaseRepo.EXPECT().FindByID(context.Background(), "924856741350").Return(pending, nil)
		m.purchaseRepo.EXPECT().SetForcedTier(context.Background(), "924856741350", 2).Return(true, nil)
		m.publisher.EXPECT().
			PublishForcedTier(context.Background(), events.ForcedTierSet{
				PurchaseID: "924856741350",
				AccountID:  "736450192837",
				Tier:       2,
			}).
			Return(nil)

		assert.NoError(t, service.SetForcedWinTier(context.Background(), "736450192837", "924856741350", 2))
	})

	t.Run("Tier out of range", func(t *testing.T) {
		service, _ := NewMock(t)

		assert.ErrorIs(t, service.SetForcedWinTier(context.Background(), "736450192837", "924856741350", 4), ErrInvalidTier)
		assert.ErrorIs(t, service.SetForcedWinTier(context.Background(), "736450192837", "924856741350", -1), ErrInvalidTier)
	})

	t.Run("Wrong owner looks like a missing purchase", func(t *testing.T) {
		service, m := NewMock(t)

		m.purchaseRepo.EXPECT().FindByID(context.Background(), "924856741350").Return(pending, nil)

		assert.ErrorIs(t, service.SetForcedWinTier(context.Background(), "999999999999", "924856741350", 1), ErrPurchaseNotFound)
	})

	t.Run("Settled purchase cannot be overridden", func(t *testing.T) {
		service, m := NewMock(t)

		m.purchaseRepo.EXPECT().FindByID(context.Background(), "924856741350").Return(pending, nil)
		m.purchaseRepo.EXPECT().SetForcedTier(context.Background(), "924856741350", 1).Return(false, nil)

		assert.ErrorIs(t, service.SetForcedWinTier(context.Background(), "736450192837", "924856741350", 1), ErrAlreadyProcessed)
	})
}

func TestGetDrawHistory(t *testing.T) {
	service, m := NewMock(t)

	history := []domain.WinningNumbers{
		{GameID: "loto7", DrawDate: "2024-12-09", Numbers: []int{1, 2, 3, 4, 5, 6, 7}},
	}

	m.catalog.EXPECT().Game("loto7").Return(loto7, true)
	m.drawRepo.EXPECT().ListWinningNumbers(context.Background(), "loto7", 30).Return(history, nil)

	got, err := service.GetDrawHistory(context.Background(), "loto7", 30)
	assert.NoError(t, err)
	assert.Equal(t, history, got)

	m.catalog.EXPECT().Game("loto9").Return(domain.Game{}, false)

	_, err = service.GetDrawHistory(context.Background(), "loto9", 30)
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestUpdatePrizeTable(t *testing.T) {
	service, m := NewMock(t)

	m.catalog.EXPECT().Game("loto7").Return(loto7, true)
	m.drawRepo.EXPECT().UpsertPrizeTable(context.Background(), &loto7Prizes).Return(nil)

	assert.NoError(t, service.UpdatePrizeTable(context.Background(), loto7Prizes))

	m.catalog.EXPECT().Game("loto9").Return(domain.Game{}, false)

	err := service.UpdatePrizeTable(context.Background(), domain.PrizeTable{GameID: "loto9"})
	assert.ErrorIs(t, err, ErrGameNotFound)
}
