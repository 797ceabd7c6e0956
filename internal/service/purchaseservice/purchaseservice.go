package purchaseservice

import (
	"context"
	"errors"
	"math/rand"
	"sort"

	"github.com/avolkov/lotomart/internal/domain"
	"github.com/avolkov/lotomart/internal/metrics"
	"github.com/avolkov/lotomart/internal/pg"
	"github.com/avolkov/lotomart/pkg/validate"
	"go.uber.org/zap"
)

type AccountRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	DebitBalance(ctx context.Context, id string, amount int64) (bool, error)
}

type PurchaseRepo interface {
	Create(ctx context.Context, purchase *domain.Purchase) error
	FindByAccountID(ctx context.Context, accountID string) ([]domain.Purchase, error)
}

type Catalog interface {
	Game(id string) (domain.Game, bool)
	Games() []domain.Game
}

type Service struct {
	accountRepo  AccountRepo
	purchaseRepo PurchaseRepo
	catalog      Catalog
	txManager    pg.TXManager
}

func New(accountRepo AccountRepo, purchaseRepo PurchaseRepo, catalog Catalog, txManager pg.TXManager) *Service {
	return &Service{
		accountRepo:  accountRepo,
		purchaseRepo: purchaseRepo,
		catalog:      catalog,
		txManager:    txManager,
	}
}

var (
	ErrGameNotFound        = errors.New("game not found")
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidSelection    = errors.New("invalid selection")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Purchase validates the selections, debits the ticket cost and records a
// pending purchase, all in one transaction. Empty selection lines are not
// charged; a ticket with only empty lines is rejected. Returns the stored
// purchase and the amount debited.
func (s *Service) Purchase(ctx context.Context, accountID, gameID string, selections [][]int) (*domain.Purchase, int64, error) {
	game, ok := s.catalog.Game(gameID)
	if !ok {
		return nil, 0, ErrGameNotFound
	}

	valid := make([][]int, 0, len(selections))
	for _, selection := range selections {
		if len(selection) == 0 {
			continue
		}
		if !domain.ValidateSelection(selection, game.PickCount, game.MaxNumber) {
			return nil, 0, ErrInvalidSelection
		}
		sorted := make([]int, len(selection))
		copy(sorted, selection)
		sort.Ints(sorted)
		valid = append(valid, sorted)
	}
	if len(valid) == 0 {
		return nil, 0, ErrInvalidSelection
	}

	cost := int64(len(valid)) * game.Price

	id, err := validate.NewTicketNumber()
	if err != nil {
		zap.L().Error("can't issue ticket number: ", zap.Error(err))
		return nil, 0, err
	}
	purchase := &domain.Purchase{
		ID:         id,
		AccountID:  accountID,
		GameID:     game.ID,
		Selections: valid,
		Status:     domain.PurchaseStatusPending,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.FindByID(ctx, accountID)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrAccountNotFound
		}

		debited, err := s.accountRepo.DebitBalance(ctx, accountID, cost)
		if err != nil {
			return err
		}
		if !debited {
			return ErrInsufficientBalance
		}

		return s.purchaseRepo.Create(ctx, purchase)
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientBalance) && !errors.Is(err, ErrAccountNotFound) {
			zap.L().Error("can't process purchase", zap.Error(err))
		}
		return nil, 0, err
	}

	metrics.PurchasesTotal.WithLabelValues(game.ID).Inc()
	zap.L().Info("purchase recorded",
		zap.String("purchaseID", purchase.ID),
		zap.String("gameID", game.ID),
		zap.Int64("cost", cost),
	)
	return purchase, cost, nil
}

func (s *Service) GetPurchases(ctx context.Context, accountID string) ([]domain.Purchase, error) {
	purchases, err := s.purchaseRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to get purchases", zap.Error(err))
		return nil, err
	}
	return purchases, nil
}

// QuickPick returns one random valid selection line for the game.
func (s *Service) QuickPick(gameID string) ([]int, error) {
	game, ok := s.catalog.Game(gameID)
	if !ok {
		return nil, ErrGameNotFound
	}
	numbers := rand.Perm(game.MaxNumber)[:game.PickCount]
	for i := range numbers {
		numbers[i]++
	}
	sort.Ints(numbers)
	return numbers, nil
}
