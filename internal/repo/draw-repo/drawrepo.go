package drawrepo

import (
	"context"
	"encoding/json"
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

func scanWinningNumbers(row pgx.Row) (*domain.WinningNumbers, error) {
	var wn domain.WinningNumbers
	var numbers []byte
	if err := row.Scan(&wn.GameID, &wn.DrawDate, &numbers, &wn.DrawnAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(numbers, &wn.Numbers); err != nil {
		return nil, err
	}
	return &wn, nil
}

func (r *Repository) GetWinningNumbers(ctx context.Context, gameID, date string) (*domain.WinningNumbers, error) {
	query := `
        SELECT game_id, draw_date, numbers, drawn_at
        FROM winning_numbers
        WHERE game_id = $1 AND draw_date = $2
    `
	wn, err := scanWinningNumbers(r.db.QueryRow(ctx, query, gameID, date))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get winning numbers", zap.Error(err))
		return nil, err
	}
	return wn, nil
}

// StoreWinningNumbersOnce inserts the set unless one already exists for the
// (game, date) key and returns whichever set won the race. The unique key
// plus ON CONFLICT DO NOTHING is the compare-and-set that keeps generation
// at-most-once under concurrent draws.
func (r *Repository) StoreWinningNumbersOnce(ctx context.Context, wn *domain.WinningNumbers) (*domain.WinningNumbers, error) {
	numbers, err := json.Marshal(wn.Numbers)
	if err != nil {
		return nil, err
	}
	query := `
        INSERT INTO winning_numbers (game_id, draw_date, numbers)
        VALUES ($1, $2, $3)
        ON CONFLICT (game_id, draw_date) DO NOTHING
    `
	if _, err := r.db.Exec(ctx, query, wn.GameID, wn.DrawDate, numbers); err != nil {
		zap.L().Error("can't store winning numbers", zap.Error(err))
		return nil, err
	}

	stored, err := r.GetWinningNumbers(ctx, wn.GameID, wn.DrawDate)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, errors.New("winning numbers missing after store")
	}
	return stored, nil
}

func (r *Repository) ListWinningNumbers(ctx context.Context, gameID string, limit int) ([]domain.WinningNumbers, error) {
	query := `
        SELECT game_id, draw_date, numbers, drawn_at
        FROM winning_numbers
        WHERE game_id = $1
        ORDER BY draw_date DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, gameID, limit)
	if err != nil {
		zap.L().Error("can't get draw history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var results []domain.WinningNumbers
	for rows.Next() {
		wn, err := scanWinningNumbers(rows)
		if err != nil {
			zap.L().Error("can't scan winning numbers row", zap.Error(err))
			return nil, err
		}
		results = append(results, *wn)
	}
	return results, nil
}

func (r *Repository) GetPrizeTable(ctx context.Context, gameID string) (*domain.PrizeTable, error) {
	query := `
        SELECT game_id, tier1, tier2, tier3
        FROM prize_tables
        WHERE game_id = $1
    `
	var pt domain.PrizeTable
	err := r.db.QueryRow(ctx, query, gameID).Scan(&pt.GameID, &pt.Tier1, &pt.Tier2, &pt.Tier3)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get prize table", zap.Error(err))
		return nil, err
	}
	return &pt, nil
}

func (r *Repository) UpsertPrizeTable(ctx context.Context, pt *domain.PrizeTable) error {
	query := `
        INSERT INTO prize_tables (game_id, tier1, tier2, tier3)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (game_id) DO UPDATE SET tier1 = $2, tier2 = $3, tier3 = $4
    `
	if _, err := r.db.Exec(ctx, query, pt.GameID, pt.Tier1, pt.Tier2, pt.Tier3); err != nil {
		zap.L().Error("can't upsert prize table", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListPrizeTables(ctx context.Context) ([]domain.PrizeTable, error) {
	query := `
        SELECT game_id, tier1, tier2, tier3
        FROM prize_tables
        ORDER BY game_id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get prize tables", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tables []domain.PrizeTable
	for rows.Next() {
		var pt domain.PrizeTable
		if err := rows.Scan(&pt.GameID, &pt.Tier1, &pt.Tier2, &pt.Tier3); err != nil {
			zap.L().Error("can't scan prize table row", zap.Error(err))
			return nil, err
		}
		tables = append(tables, pt)
	}
	return tables, nil
}
