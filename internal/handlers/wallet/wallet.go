package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avolkov/lotomart/internal/domain"
	"github.com/avolkov/lotomart/internal/dto"
	"github.com/avolkov/lotomart/internal/service/walletservice"
	"github.com/avolkov/lotomart/pkg/auth"
	"github.com/avolkov/lotomart/pkg/utils"
)

type Service interface {
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
	RequestDeposit(ctx context.Context, accountID string, amount int64) (*domain.Transaction, error)
	RequestWithdraw(ctx context.Context, accountID string, amount int64, bank domain.BankDetails) (*domain.Transaction, error)
	GetTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error)
	UpdateBankDetails(ctx context.Context, accountID string, bank domain.BankDetails) error
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetBalance godoc
//
//	@Summary	Current balance of the authenticated account
//	@Tags		Wallet
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.BalanceResponseDTO
//	@Failure	401	{object}	utils.Response	"Account not authorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/user/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(string)

	account, err := h.walletService.GetAccount(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Balance: account.Balance,
	})
}

// Deposit godoc
//
//	@Summary		Request a deposit
//	@Description	Record a pending deposit request; the balance moves on operator approval
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositRequestDTO	true	"Deposit request payload"
//	@Success		200		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		401		{object}	utils.Response	"Account not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/balance/deposit [post]
func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(string)

	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	transaction, err := h.walletService.RequestDeposit(r.Context(), accountID, req.Amount)
	if err != nil {
		if errors.Is(err, walletservice.ErrInvalidAmount) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, transactionResponse(transaction))
}

// Withdraw godoc
//
//	@Summary		Request a withdrawal
//	@Description	Record a pending withdraw request for the given bank details
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Withdraw request payload"
//	@Success		200		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		401		{object}	utils.Response	"Account not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/balance/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(string)

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	transaction, err := h.walletService.RequestWithdraw(r.Context(), accountID, req.Amount, req.Bank)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, walletservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, transactionResponse(transaction))
}

// GetTransactions godoc
//
//	@Summary	Deposit and withdraw history for the authenticated account
//	@Tags		Wallet
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.TransactionResponseDTO
//	@Success	204	{object}	utils.Response	"Transactions not found"
//	@Failure	401	{object}	utils.Response	"Account not authorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/user/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(string)

	transactions, err := h.walletService.GetTransactions(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, t := range transactions {
		response[i] = *transactionResponse(&t)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateBankDetails godoc
//
//	@Summary	Update payout bank details
//	@Tags		Wallet
//	@Security	BearerAuth
//	@Accept		json
//	@Success	200	{object}	utils.Response
//	@Failure	401	{object}	utils.Response	"Account not authorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/user/bank [put]
func (h *WalletHandler) UpdateBankDetails(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(string)

	var req dto.BankDetailsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.walletService.UpdateBankDetails(r.Context(), accountID, req.Bank); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "bank details updated"})
}

func transactionResponse(t *domain.Transaction) *dto.TransactionResponseDTO {
	return &dto.TransactionResponseDTO{
		ID:        t.ID,
		Type:      t.Type,
		Amount:    t.Amount,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
	}
}
