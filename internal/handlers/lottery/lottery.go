package lottery

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/avolkov/lotomart/internal/domain"
	"github.com/avolkov/lotomart/internal/dto"
	"github.com/avolkov/lotomart/internal/service/purchaseservice"
	"github.com/avolkov/lotomart/pkg/auth"
	"github.com/avolkov/lotomart/pkg/utils"
)

const drawHistoryLimit = 30

type PurchaseService interface {
	Purchase(ctx context.Context, accountID, gameID string, selections [][]int) (*domain.Purchase, int64, error)
	GetPurchases(ctx context.Context, accountID string) ([]domain.Purchase, error)
	QuickPick(gameID string) ([]int, error)
}

type DrawService interface {
	GetDrawHistory(ctx context.Context, gameID string, limit int) ([]domain.WinningNumbers, error)
}

type Catalog interface {
	Games() []domain.Game
}

type LotteryHandler struct {
	purchaseService PurchaseService
	drawService     DrawService
	catalog         Catalog
}

func New(purchaseService PurchaseService, drawService DrawService, catalog Catalog) *LotteryHandler {
	return &LotteryHandler{
		purchaseService: purchaseService,
		drawService:     drawService,
		catalog:         catalog,
	}
}

// GetGames godoc
//
//	@Summary	List available games
//	@Tags		Lottery
//	@Produce	json
//	@Success	200	{array}	domain.Game
//	@Router		/api/games [get]
func (h *LotteryHandler) GetGames(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, h.catalog.Games())
}

// QuickPick godoc
//
//	@Summary	Generate a random selection for a game
//	@Tags		Lottery
//	@Produce	json
//	@Param		gameID	path		string	true	"Game id"
//	@Success	200		{object}	dto.QuickPickResponseDTO
//	@Failure	404		{object}	utils.Response	"Unknown game"
//	@Router		/api/games/{gameID}/quickpick [get]
func (h *LotteryHandler) QuickPick(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")
	numbers, err := h.purchaseService.QuickPick(gameID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Unknown game")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.QuickPickResponseDTO{
		GameID:  gameID,
		Numbers: numbers,
	})
}

// GetDrawHistory godoc
//
//	@Summary	Winning numbers history for a game
//	@Tags		Lottery
//	@Produce	json
//	@Param		gameID	path	string	true	"Game id"
//	@Success	200		{array}	dto.DrawResultDTO
//	@Failure	404		{object}	utils.Response	"Unknown game"
//	@Router		/api/games/{gameID}/draws [get]
func (h *LotteryHandler) GetDrawHistory(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")
	history, err := h.drawService.GetDrawHistory(r.Context(), gameID, drawHistoryLimit)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Unknown game")
		return
	}

	response := make([]dto.DrawResultDTO, len(history))
	for i, wn := range history {
		response[i] = dto.DrawResultDTO{
			GameID:   wn.GameID,
			DrawDate: wn.DrawDate,
			Numbers:  wn.Numbers,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Purchase godoc
//
//	@Summary		Buy a ticket
//	@Description	Validate the selections, debit the ticket cost and record a pending purchase
//	@Tags			Lottery
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PurchaseRequestDTO	true	"Purchase request payload"
//	@Success		200		{object}	dto.PurchaseResponseDTO
//	@Failure		401		{object}	utils.Response	"Account not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		404		{object}	utils.Response	"Unknown game"
//	@Failure		422		{object}	utils.Response	"Invalid selection"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/purchases [post]
func (h *LotteryHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(string)

	var req dto.PurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	purchase, cost, err := h.purchaseService.Purchase(r.Context(), accountID, req.GameID, req.Selections)
	if err != nil {
		switch {
		case errors.Is(err, purchaseservice.ErrGameNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, purchaseservice.ErrInvalidSelection):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, purchaseservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.PurchaseResponseDTO{
		ID:         purchase.ID,
		GameID:     purchase.GameID,
		Selections: purchase.Selections,
		Cost:       cost,
		Status:     purchase.Status,
		CreatedAt:  purchase.CreatedAt.Format(time.RFC3339),
	})
}

// GetPurchases godoc
//
//	@Summary	Ticket history for the authenticated account
//	@Tags		Lottery
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.GetPurchasesResponseDTO
//	@Success	204	{object}	utils.Response	"No purchases"
//	@Failure	401	{object}	utils.Response	"Account not authorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/user/purchases [get]
func (h *LotteryHandler) GetPurchases(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(string)

	purchases, err := h.purchaseService.GetPurchases(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch purchases")
		return
	}
	if len(purchases) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Purchases not found")
		return
	}

	response := make([]dto.GetPurchasesResponseDTO, len(purchases))
	for i, p := range purchases {
		response[i] = dto.GetPurchasesResponseDTO{
			ID:         p.ID,
			GameID:     p.GameID,
			Selections: p.Selections,
			Status:     p.Status,
			WinAmount:  p.WinAmount,
			CreatedAt:  p.CreatedAt.Format(time.RFC3339),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
