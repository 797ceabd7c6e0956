package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avolkov/lotomart/internal/domain"
	"github.com/avolkov/lotomart/internal/dto"
	"github.com/avolkov/lotomart/internal/service/drawservice"
	"github.com/avolkov/lotomart/internal/service/walletservice"
	"github.com/avolkov/lotomart/pkg/utils"
	"github.com/avolkov/lotomart/pkg/validate"
)

const purchaseListLimit = 200

type DrawService interface {
	ExecuteDraw(ctx context.Context, gameID, date string) (*domain.WinningNumbers, error)
	PresetWinningNumbers(ctx context.Context, gameID, date string, numbers []int) (*domain.WinningNumbers, error)
	SetForcedWinTier(ctx context.Context, accountID, purchaseID string, tier int) error
	GetPrizeTables(ctx context.Context) ([]domain.PrizeTable, error)
	UpdatePrizeTable(ctx context.Context, pt domain.PrizeTable) error
	GetAllPurchases(ctx context.Context, limit int) ([]domain.Purchase, error)
}

type WalletService interface {
	Approve(ctx context.Context, transactionID string) error
	Reject(ctx context.Context, transactionID string) error
	GetAllTransactions(ctx context.Context) ([]domain.Transaction, error)
	GetAccounts(ctx context.Context) ([]domain.Account, error)
}

type AdminHandler struct {
	drawService   DrawService
	walletService WalletService
}

func New(drawService DrawService, walletService WalletService) *AdminHandler {
	return &AdminHandler{
		drawService:   drawService,
		walletService: walletService,
	}
}

// ExecuteDraw godoc
//
//	@Summary		Execute a draw and settle tickets
//	@Description	Resolves winning numbers for (game, date) and settles every unprocessed ticket
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ExecuteDrawRequestDTO	true	"Draw to execute"
//	@Success		200		{object}	dto.DrawResultDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Game not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/draws/execute [post]
func (h *AdminHandler) ExecuteDraw(w http.ResponseWriter, r *http.Request) {
	var req dto.ExecuteDrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	winning, err := h.drawService.ExecuteDraw(r.Context(), req.GameID, req.Date)
	if err != nil {
		if errors.Is(err, drawservice.ErrGameNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DrawResultDTO{
		GameID:   winning.GameID,
		DrawDate: winning.DrawDate,
		Numbers:  winning.Numbers,
	})
}

// PresetNumbers godoc
//
//	@Summary		Preset winning numbers for a future draw
//	@Description	Pins the winning numbers for (game, date) before the draw runs
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PresetNumbersRequestDTO	true	"Numbers to preset"
//	@Success		200		{object}	dto.DrawResultDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Game not found"
//	@Failure		409		{object}	utils.Response	"Draw already resolved with different numbers"
//	@Failure		422		{object}	utils.Response	"Numbers not valid for the game"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/draws/preset [post]
func (h *AdminHandler) PresetNumbers(w http.ResponseWriter, r *http.Request) {
	var req dto.PresetNumbersRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	winning, err := h.drawService.PresetWinningNumbers(r.Context(), req.GameID, req.Date, req.Numbers)
	if err != nil {
		switch {
		case errors.Is(err, drawservice.ErrGameNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, drawservice.ErrInvalidNumbers):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, drawservice.ErrAlreadyProcessed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DrawResultDTO{
		GameID:   winning.GameID,
		DrawDate: winning.DrawDate,
		Numbers:  winning.Numbers,
	})
}

// SetForcedTier godoc
//
//	@Summary		Force a win tier on an unprocessed ticket
//	@Description	The ticket settles at the given tier regardless of matches; tier 0 forces a loss
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Param			purchaseID	path		string					true	"Purchase number"
//	@Param			request		body		dto.ForcedTierRequestDTO	true	"Owner account and tier"
//	@Success		200			{object}	utils.Response
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		404			{object}	utils.Response	"Purchase not found"
//	@Failure		409			{object}	utils.Response	"Purchase already settled"
//	@Failure		422			{object}	utils.Response	"Invalid tier"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/purchases/{purchaseID}/forced-tier [post]
func (h *AdminHandler) SetForcedTier(w http.ResponseWriter, r *http.Request) {
	purchaseID := chi.URLParam(r, "purchaseID")
	if !validate.IsTicketNumber(purchaseID) {
		utils.RespondWithError(w, http.StatusNotFound, "purchase not found")
		return
	}

	var req dto.ForcedTierRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.drawService.SetForcedWinTier(r.Context(), req.AccountID, purchaseID, req.Tier)
	if err != nil {
		switch {
		case errors.Is(err, drawservice.ErrPurchaseNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, drawservice.ErrInvalidTier):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, drawservice.ErrAlreadyProcessed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "forced tier set"})
}

// GetPrizeTables godoc
//
//	@Summary	Prize tables for all games
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.PrizeTableDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/prizes [get]
func (h *AdminHandler) GetPrizeTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.drawService.GetPrizeTables(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch prize tables")
		return
	}

	response := make([]dto.PrizeTableDTO, len(tables))
	for i, t := range tables {
		response[i] = dto.PrizeTableDTO{
			GameID: t.GameID,
			Tier1:  t.Tier1,
			Tier2:  t.Tier2,
			Tier3:  t.Tier3,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdatePrizeTable godoc
//
//	@Summary		Replace the prize table for a game
//	@Description	New amounts apply to draws settled after the update
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		404	{object}	utils.Response	"Game not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/prizes [put]
func (h *AdminHandler) UpdatePrizeTable(w http.ResponseWriter, r *http.Request) {
	var req dto.PrizeTableDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.drawService.UpdatePrizeTable(r.Context(), domain.PrizeTable{
		GameID: req.GameID,
		Tier1:  req.Tier1,
		Tier2:  req.Tier2,
		Tier3:  req.Tier3,
	})
	if err != nil {
		if errors.Is(err, drawservice.ErrGameNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "prize table updated"})
}

// GetTransactions godoc
//
//	@Summary	All deposit and withdraw requests
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.AdminTransactionDTO
//	@Success	204	{object}	utils.Response	"Transactions not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/transactions [get]
func (h *AdminHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.walletService.GetAllTransactions(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.AdminTransactionDTO, len(transactions))
	for i, t := range transactions {
		response[i] = dto.AdminTransactionDTO{
			ID:        t.ID,
			AccountID: t.AccountID,
			Type:      t.Type,
			Amount:    t.Amount,
			Status:    t.Status,
			CreatedAt: t.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ApproveTransaction godoc
//
//	@Summary		Approve a pending transaction
//	@Description	Moves the balance; approving twice is a no-op conflict
//	@Tags			Admin
//	@Security		BearerAuth
//	@Param			transactionID	path		string	true	"Transaction number"
//	@Success		200				{object}	utils.Response
//	@Failure		402				{object}	utils.Response	"Insufficient balance for withdraw"
//	@Failure		404				{object}	utils.Response	"Transaction not found"
//	@Failure		409				{object}	utils.Response	"Transaction already resolved"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/transactions/{transactionID}/approve [post]
func (h *AdminHandler) ApproveTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionID")
	if !validate.IsTicketNumber(transactionID) {
		utils.RespondWithError(w, http.StatusNotFound, "transaction not found")
		return
	}

	err := h.walletService.Approve(r.Context(), transactionID)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrTransactionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, walletservice.ErrAlreadyProcessed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, walletservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "transaction approved"})
}

// RejectTransaction godoc
//
//	@Summary	Reject a pending transaction
//	@Tags		Admin
//	@Security	BearerAuth
//	@Param		transactionID	path		string	true	"Transaction number"
//	@Success	200				{object}	utils.Response
//	@Failure	404				{object}	utils.Response	"Transaction not found"
//	@Failure	409				{object}	utils.Response	"Transaction already resolved"
//	@Failure	500				{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/transactions/{transactionID}/reject [post]
func (h *AdminHandler) RejectTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionID")
	if !validate.IsTicketNumber(transactionID) {
		utils.RespondWithError(w, http.StatusNotFound, "transaction not found")
		return
	}

	err := h.walletService.Reject(r.Context(), transactionID)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrTransactionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, walletservice.ErrAlreadyProcessed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "transaction rejected"})
}

// GetPurchases godoc
//
//	@Summary	Recent purchases across all accounts
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.AdminPurchaseDTO
//	@Success	204	{object}	utils.Response	"Purchases not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/purchases [get]
func (h *AdminHandler) GetPurchases(w http.ResponseWriter, r *http.Request) {
	purchases, err := h.drawService.GetAllPurchases(r.Context(), purchaseListLimit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch purchases")
		return
	}
	if len(purchases) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Purchases not found")
		return
	}

	response := make([]dto.AdminPurchaseDTO, len(purchases))
	for i, p := range purchases {
		response[i] = dto.AdminPurchaseDTO{
			ID:            p.ID,
			AccountID:     p.AccountID,
			GameID:        p.GameID,
			Selections:    p.Selections,
			Status:        p.Status,
			WinAmount:     p.WinAmount,
			IsProcessed:   p.IsProcessed,
			ForcedWinTier: p.ForcedWinTier,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetAccounts godoc
//
//	@Summary	All registered accounts
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.AdminAccountDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/accounts [get]
func (h *AdminHandler) GetAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.walletService.GetAccounts(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch accounts")
		return
	}

	response := make([]dto.AdminAccountDTO, len(accounts))
	for i, a := range accounts {
		response[i] = dto.AdminAccountDTO{
			ID:       a.ID,
			Username: a.Username,
			Email:    a.Email,
			Balance:  a.Balance,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
