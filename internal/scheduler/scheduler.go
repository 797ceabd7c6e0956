package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/avolkov/lotomart/internal/config"
	"github.com/avolkov/lotomart/internal/domain"
	"github.com/avolkov/lotomart/internal/service/drawservice"
)

const dateLayout = "2006-01-02"

// runningDraws guards against a tick firing while the previous draw for
// the same (game, date) is still settling.
var runningDraws sync.Map

type DrawService interface {
	ExecuteDraw(ctx context.Context, gameID, date string) (*domain.WinningNumbers, error)
}

type Catalog interface {
	Games() []domain.Game
}

type Service struct {
	drawService  DrawService
	catalog      Catalog
	workerPool   WorkerPoolI
	drawInterval time.Duration
}

func New(cfg *config.Config, drawService DrawService, catalog Catalog) *Service {
	return &Service{
		drawService:  drawService,
		catalog:      catalog,
		workerPool:   NewWorkerPool(4),
		drawInterval: cfg.DrawInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Draw scheduler started", zap.Duration("interval", s.drawInterval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.drawInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping scheduler")
			s.workerPool.Close()
			return
		case <-ticker.C:
			s.runDraws(ctx)
		}
	}
}

func (s *Service) runDraws(ctx context.Context) {
	date := time.Now().Format(dateLayout)

	var g errgroup.Group
	for _, game := range s.catalog.Games() {
		game := game
		key := game.ID + ":" + date

		if _, loaded := runningDraws.LoadOrStore(key, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer runningDraws.Delete(key)
				return s.executeDraw(ctx, game, date)
			})
			if err != nil {
				runningDraws.Delete(key)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error scheduling draws", zap.Error(err))
	}
}

func (s *Service) executeDraw(ctx context.Context, game domain.Game, date string) error {
	winning, err := s.drawService.ExecuteDraw(ctx, game.ID, date)
	if err != nil {
		if errors.Is(err, drawservice.ErrPrizeTableMissing) {
			zap.L().Warn("Skipping draw without prize table", zap.String("gameID", game.ID))
			return nil
		}
		return err
	}

	zap.L().Info("Draw settled",
		zap.String("gameID", winning.GameID),
		zap.String("drawDate", winning.DrawDate),
		zap.Ints("numbers", winning.Numbers),
	)
	return nil
}
