package drawservice

import (
	"context"
	"errors"
	"math/rand"
	"sort"

	"github.com/avolkov/lotomart/internal/domain"
	"github.com/avolkov/lotomart/internal/events"
	"github.com/avolkov/lotomart/internal/metrics"
	"github.com/avolkov/lotomart/internal/pg"
	"go.uber.org/zap"
)

type DrawRepo interface {
	GetWinningNumbers(ctx context.Context, gameID, date string) (*domain.WinningNumbers, error)
	StoreWinningNumbersOnce(ctx context.Context, wn *domain.WinningNumbers) (*domain.WinningNumbers, error)
	ListWinningNumbers(ctx context.Context, gameID string, limit int) ([]domain.WinningNumbers, error)
	GetPrizeTable(ctx context.Context, gameID string) (*domain.PrizeTable, error)
	UpsertPrizeTable(ctx context.Context, pt *domain.PrizeTable) error
	ListPrizeTables(ctx context.Context) ([]domain.PrizeTable, error)
}

type PurchaseRepo interface {
	FindUnprocessed(ctx context.Context, gameID string) ([]domain.Purchase, error)
	Settle(ctx context.Context, id, status string, winAmount int64) (bool, error)
	FindByID(ctx context.Context, id string) (*domain.Purchase, error)
	SetForcedTier(ctx context.Context, id string, tier int) (bool, error)
	FindAll(ctx context.Context, limit int) ([]domain.Purchase, error)
}

type AccountRepo interface {
	CreditBalance(ctx context.Context, id string, amount int64) error
}

type Catalog interface {
	Game(id string) (domain.Game, bool)
	Games() []domain.Game
}

// Cache and Publisher are optional collaborators; a nil value disables
// them.
type Cache interface {
	GetWinningNumbers(ctx context.Context, gameID, date string) (*domain.WinningNumbers, error)
	SetWinningNumbers(ctx context.Context, wn *domain.WinningNumbers) error
}

type Publisher interface {
	PublishSettlement(ctx context.Context, e events.PurchaseSettled) error
	PublishForcedTier(ctx context.Context, e events.ForcedTierSet) error
}

type Service struct {
	drawRepo     DrawRepo
	purchaseRepo PurchaseRepo
	accountRepo  AccountRepo
	catalog      Catalog
	txManager    pg.TXManager
	cache        Cache
	publisher    Publisher
}

func New(drawRepo DrawRepo, purchaseRepo PurchaseRepo, accountRepo AccountRepo, catalog Catalog, txManager pg.TXManager, cache Cache, publisher Publisher) *Service {
	return &Service{
		drawRepo:     drawRepo,
		purchaseRepo: purchaseRepo,
		accountRepo:  accountRepo,
		catalog:      catalog,
		txManager:    txManager,
		cache:        cache,
		publisher:    publisher,
	}
}

var (
	ErrGameNotFound      = errors.New("game not found")
	ErrPurchaseNotFound  = errors.New("purchase not found")
	ErrInvalidNumbers    = errors.New("invalid winning numbers")
	ErrInvalidTier       = errors.New("invalid forced win tier")
	ErrAlreadyProcessed  = errors.New("already processed")
	ErrPrizeTableMissing = errors.New("prize table missing")
)

// Resolve returns the winning numbers for a game and date, generating and
// storing a set when none exists yet. A stored set always wins, so presets
// and earlier draws are never regenerated.
func (s *Service) Resolve(ctx context.Context, game domain.Game, date string) (*domain.WinningNumbers, error) {
	if s.cache != nil {
		if wn, err := s.cache.GetWinningNumbers(ctx, game.ID, date); err != nil {
			zap.L().Warn("winning numbers cache read failed", zap.Error(err))
		} else if wn != nil {
			return wn, nil
		}
	}

	wn, err := s.drawRepo.GetWinningNumbers(ctx, game.ID, date)
	if err != nil {
		return nil, err
	}
	if wn == nil {
		wn, err = s.drawRepo.StoreWinningNumbersOnce(ctx, &domain.WinningNumbers{
			GameID:   game.ID,
			DrawDate: date,
			Numbers:  generateNumbers(game.PickCount, game.MaxNumber),
		})
		if err != nil {
			return nil, err
		}
		zap.L().Info("winning numbers drawn",
			zap.String("gameID", game.ID),
			zap.String("date", date),
			zap.Ints("numbers", wn.Numbers),
		)
	}

	if s.cache != nil {
		if err := s.cache.SetWinningNumbers(ctx, wn); err != nil {
			zap.L().Warn("winning numbers cache write failed", zap.Error(err))
		}
	}
	return wn, nil
}

// ExecuteDraw resolves the winning numbers for the game and date, then
// settles every purchase of the game that has not been processed yet. Each
// purchase is settled in its own transaction and at most once: the
// repository guard skips purchases another run already settled, so the
// whole operation is safe to re-invoke. One failing purchase does not
// abort the rest of the run.
func (s *Service) ExecuteDraw(ctx context.Context, gameID, date string) (*domain.WinningNumbers, error) {
	game, ok := s.catalog.Game(gameID)
	if !ok {
		return nil, ErrGameNotFound
	}

	wn, err := s.Resolve(ctx, game, date)
	if err != nil {
		return nil, err
	}

	prizes, err := s.drawRepo.GetPrizeTable(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if prizes == nil {
		return nil, ErrPrizeTableMissing
	}

	purchases, err := s.purchaseRepo.FindUnprocessed(ctx, gameID)
	if err != nil {
		return nil, err
	}

	for _, p := range purchases {
		outcome := domain.Evaluate(p, wn.Numbers, game.PickCount, *prizes)

		var settled bool
		err := s.txManager.Begin(ctx, func(ctx context.Context) error {
			var err error
			settled, err = s.purchaseRepo.Settle(ctx, p.ID, outcome.Status, outcome.WinAmount)
			if err != nil {
				return err
			}
			if settled && outcome.WinAmount > 0 {
				return s.accountRepo.CreditBalance(ctx, p.AccountID, outcome.WinAmount)
			}
			return nil
		})
		if err != nil {
			zap.L().Error("failed to settle purchase",
				zap.String("purchaseID", p.ID),
				zap.Error(err),
			)
			continue
		}
		if !settled {
			continue
		}

		metrics.SettledTotal.WithLabelValues(gameID, outcome.Status).Inc()
		if outcome.WinAmount > 0 {
			metrics.PayoutTotal.WithLabelValues(gameID).Add(float64(outcome.WinAmount))
		}
		s.publishSettlement(ctx, p, date, outcome)
	}

	return wn, nil
}

func (s *Service) publishSettlement(ctx context.Context, p domain.Purchase, date string, outcome domain.Outcome) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishSettlement(ctx, events.PurchaseSettled{
		PurchaseID: p.ID,
		AccountID:  p.AccountID,
		GameID:     p.GameID,
		DrawDate:   date,
		Status:     outcome.Status,
		WinAmount:  outcome.WinAmount,
	})
	if err != nil {
		zap.L().Warn("failed to publish settlement event", zap.Error(err))
	}
}

// PresetWinningNumbers fixes the numbers for a future draw. Stored numbers
// are immutable, so presetting an already-drawn date fails.
func (s *Service) PresetWinningNumbers(ctx context.Context, gameID, date string, numbers []int) (*domain.WinningNumbers, error) {
	game, ok := s.catalog.Game(gameID)
	if !ok {
		return nil, ErrGameNotFound
	}
	if !domain.ValidateSelection(numbers, game.PickCount, game.MaxNumber) {
		return nil, ErrInvalidNumbers
	}

	existing, err := s.drawRepo.GetWinningNumbers(ctx, gameID, date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyProcessed
	}

	sorted := make([]int, len(numbers))
	copy(sorted, numbers)
	sort.Ints(sorted)

	stored, err := s.drawRepo.StoreWinningNumbersOnce(ctx, &domain.WinningNumbers{
		GameID:   gameID,
		DrawDate: date,
		Numbers:  sorted,
	})
	if err != nil {
		return nil, err
	}
	if !equalNumbers(stored.Numbers, sorted) {
		// lost the race against a concurrent draw; first write wins
		return nil, ErrAlreadyProcessed
	}

	if s.cache != nil {
		if err := s.cache.SetWinningNumbers(ctx, stored); err != nil {
			zap.L().Warn("winning numbers cache write failed", zap.Error(err))
		}
	}
	zap.L().Info("winning numbers preset",
		zap.String("gameID", gameID),
		zap.String("date", date),
		zap.Ints("numbers", stored.Numbers),
	)
	return stored, nil
}

// SetForcedWinTier stores an outcome override on a pending purchase. Tier
// 1..3 forces that prize at settlement, tier 0 forces a loss. The override
// bypasses fair matching, so every call is published to the audit stream.
func (s *Service) SetForcedWinTier(ctx context.Context, accountID, purchaseID string, tier int) error {
	if tier < 0 || tier > 3 {
		return ErrInvalidTier
	}

	purchase, err := s.purchaseRepo.FindByID(ctx, purchaseID)
	if err != nil {
		return err
	}
	if purchase == nil || purchase.AccountID != accountID {
		return ErrPurchaseNotFound
	}

	updated, err := s.purchaseRepo.SetForcedTier(ctx, purchaseID, tier)
	if err != nil {
		return err
	}
	if !updated {
		return ErrAlreadyProcessed
	}

	if s.publisher != nil {
		err := s.publisher.PublishForcedTier(ctx, events.ForcedTierSet{
			PurchaseID: purchaseID,
			AccountID:  accountID,
			Tier:       tier,
		})
		if err != nil {
			zap.L().Warn("failed to publish override audit event", zap.Error(err))
		}
	}
	zap.L().Info("forced win tier set",
		zap.String("purchaseID", purchaseID),
		zap.String("accountID", accountID),
		zap.Int("tier", tier),
	)
	return nil
}

func (s *Service) GetDrawHistory(ctx context.Context, gameID string, limit int) ([]domain.WinningNumbers, error) {
	if _, ok := s.catalog.Game(gameID); !ok {
		return nil, ErrGameNotFound
	}
	history, err := s.drawRepo.ListWinningNumbers(ctx, gameID, limit)
	if err != nil {
		zap.L().Error("failed to get draw history", zap.Error(err))
		return nil, err
	}
	return history, nil
}

func (s *Service) GetPrizeTables(ctx context.Context) ([]domain.PrizeTable, error) {
	tables, err := s.drawRepo.ListPrizeTables(ctx)
	if err != nil {
		zap.L().Error("failed to get prize tables", zap.Error(err))
		return nil, err
	}
	return tables, nil
}

func (s *Service) UpdatePrizeTable(ctx context.Context, pt domain.PrizeTable) error {
	if _, ok := s.catalog.Game(pt.GameID); !ok {
		return ErrGameNotFound
	}
	if err := s.drawRepo.UpsertPrizeTable(ctx, &pt); err != nil {
		zap.L().Error("failed to update prize table", zap.Error(err))
		return err
	}
	zap.L().Info("prize table updated", zap.String("gameID", pt.GameID))
	return nil
}

func (s *Service) GetAllPurchases(ctx context.Context, limit int) ([]domain.Purchase, error) {
	purchases, err := s.purchaseRepo.FindAll(ctx, limit)
	if err != nil {
		zap.L().Error("failed to get purchases", zap.Error(err))
		return nil, err
	}
	return purchases, nil
}

func generateNumbers(pickCount, maxNumber int) []int {
	numbers := rand.Perm(maxNumber)[:pickCount]
	for i := range numbers {
		numbers[i]++
	}
	sort.Ints(numbers)
	return numbers
}

func equalNumbers(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
