package dto

import (
	"time"

	"github.com/avolkov/lotomart/internal/domain"
)

type BalanceResponseDTO struct {
	Balance int64 `json:"balance" example:"5000"`
}

type DepositRequestDTO struct {
	Amount int64 `json:"amount" example:"10000"`
}

type WithdrawRequestDTO struct {
	Amount int64              `json:"amount" example:"5000"`
	Bank   domain.BankDetails `json:"bank"`
}

type TransactionResponseDTO struct {
	ID        string    `json:"id" example:"847291056384"`
	Type      string    `json:"type" example:"deposit"`
	Amount    int64     `json:"amount" example:"10000"`
	Status    string    `json:"status" example:"pending"`
	CreatedAt time.Time `json:"createdAt" example:"2024-12-09T16:09:57+03:00"`
}

type BankDetailsRequestDTO struct {
	Bank domain.BankDetails `json:"bank"`
}
