package walletservice

import (
	"context"
	"errors"
	"time"

	"github.com/avolkov/lotomart/internal/domain"
	"github.com/avolkov/lotomart/internal/metrics"
	"github.com/avolkov/lotomart/internal/pg"
	"github.com/avolkov/lotomart/pkg/validate"
	"go.uber.org/zap"
)

type AccountRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindAll(ctx context.Context) ([]domain.Account, error)
	CreditBalance(ctx context.Context, id string, amount int64) error
	DebitBalance(ctx context.Context, id string, amount int64) (bool, error)
	UpdateBankDetails(ctx context.Context, id string, bank domain.BankDetails) error
}

type TransactionRepo interface {
	Create(ctx context.Context, transaction *domain.Transaction) error
	FindByID(ctx context.Context, id string) (*domain.Transaction, error)
	FindByAccountID(ctx context.Context, accountID string) ([]domain.Transaction, error)
	FindAll(ctx context.Context) ([]domain.Transaction, error)
	MarkResolved(ctx context.Context, id, status string, processedAt time.Time) (bool, error)
}

type Service struct {
	accountRepo     AccountRepo
	transactionRepo TransactionRepo
	txManager       pg.TXManager
}

func New(accountRepo AccountRepo, transactionRepo TransactionRepo, txManager pg.TXManager) *Service {
	return &Service{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
	}
}

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrAlreadyProcessed    = errors.New("transaction already processed")
)

func (s *Service) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

// RequestDeposit records a pending deposit. The balance moves only when an
// operator approves it.
func (s *Service) RequestDeposit(ctx context.Context, accountID string, amount int64) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if _, err := s.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}
	return s.createTransaction(ctx, &domain.Transaction{
		AccountID: accountID,
		Type:      domain.TransactionTypeDeposit,
		Amount:    amount,
		Status:    domain.TransactionStatusPending,
	})
}

// RequestWithdraw records a pending withdrawal after checking the balance
// covers it. Funds stay on the account until approval.
func (s *Service) RequestWithdraw(ctx context.Context, accountID string, amount int64, bank domain.BankDetails) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	account, err := s.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.Balance < amount {
		return nil, ErrInsufficientBalance
	}
	return s.createTransaction(ctx, &domain.Transaction{
		AccountID: accountID,
		Type:      domain.TransactionTypeWithdraw,
		Amount:    amount,
		Status:    domain.TransactionStatusPending,
		Bank:      &bank,
	})
}

func (s *Service) createTransaction(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	id, err := validate.NewTicketNumber()
	if err != nil {
		zap.L().Error("can't issue transaction id: ", zap.Error(err))
		return nil, err
	}
	transaction.ID = id
	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		zap.L().Error("failed to create transaction record", zap.Error(err))
		return nil, err
	}
	zap.L().Info("transaction requested",
		zap.String("transactionID", transaction.ID),
		zap.String("type", transaction.Type),
		zap.Int64("amount", transaction.Amount),
	)
	return transaction, nil
}

// Approve resolves a pending transaction and applies its balance effect.
// The pending-status guard in the repository keeps the mutation
// exactly-once: re-approving a resolved transaction returns
// ErrAlreadyProcessed and moves no money. A withdrawal is re-checked
// against the current balance; when the funds were spent since the request
// the whole approval rolls back and the transaction stays pending.
func (s *Service) Approve(ctx context.Context, transactionID string) error {
	var transaction *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		transaction, err = s.transactionRepo.FindByID(ctx, transactionID)
		if err != nil {
			return err
		}
		if transaction == nil {
			return ErrTransactionNotFound
		}

		resolved, err := s.transactionRepo.MarkResolved(ctx, transactionID, domain.TransactionStatusApproved, time.Now())
		if err != nil {
			return err
		}
		if !resolved {
			return ErrAlreadyProcessed
		}

		if transaction.Type == domain.TransactionTypeDeposit {
			return s.accountRepo.CreditBalance(ctx, transaction.AccountID, transaction.Amount)
		}

		debited, err := s.accountRepo.DebitBalance(ctx, transaction.AccountID, transaction.Amount)
		if err != nil {
			return err
		}
		if !debited {
			return ErrInsufficientBalance
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrAlreadyProcessed) && !errors.Is(err, ErrTransactionNotFound) && !errors.Is(err, ErrInsufficientBalance) {
			zap.L().Error("failed to approve transaction", zap.Error(err))
		}
		return err
	}

	metrics.TransactionsResolved.WithLabelValues(transaction.Type, domain.TransactionStatusApproved).Inc()
	zap.L().Info("transaction approved",
		zap.String("transactionID", transactionID),
		zap.String("type", transaction.Type),
		zap.Int64("amount", transaction.Amount),
	)
	return nil
}

// Reject resolves a pending transaction with no balance effect.
func (s *Service) Reject(ctx context.Context, transactionID string) error {
	transaction, err := s.transactionRepo.FindByID(ctx, transactionID)
	if err != nil {
		return err
	}
	if transaction == nil {
		return ErrTransactionNotFound
	}

	resolved, err := s.transactionRepo.MarkResolved(ctx, transactionID, domain.TransactionStatusRejected, time.Now())
	if err != nil {
		zap.L().Error("failed to reject transaction", zap.Error(err))
		return err
	}
	if !resolved {
		return ErrAlreadyProcessed
	}

	metrics.TransactionsResolved.WithLabelValues(transaction.Type, domain.TransactionStatusRejected).Inc()
	zap.L().Info("transaction rejected", zap.String("transactionID", transactionID))
	return nil
}

func (s *Service) GetTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

func (s *Service) GetAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

func (s *Service) GetAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to fetch accounts", zap.Error(err))
		return nil, err
	}
	return accounts, nil
}

func (s *Service) UpdateBankDetails(ctx context.Context, accountID string, bank domain.BankDetails) error {
	if _, err := s.GetAccount(ctx, accountID); err != nil {
		return err
	}
	if err := s.accountRepo.UpdateBankDetails(ctx, accountID, bank); err != nil {
		zap.L().Error("failed to update bank details", zap.Error(err))
		return err
	}
	return nil
}
