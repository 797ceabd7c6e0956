package dto

import "time"

type ExecuteDrawRequestDTO struct {
	GameID string `json:"gameId" example:"loto7"`
	Date   string `json:"date" example:"2024-12-09"`
}

type PresetNumbersRequestDTO struct {
	GameID  string `json:"gameId" example:"loto7"`
	Date    string `json:"date" example:"2024-12-10"`
	Numbers []int  `json:"numbers" example:"1,2,3,4,5,6,7"`
}

type ForcedTierRequestDTO struct {
	AccountID string `json:"accountId" example:"736450192837"`
	Tier      int    `json:"tier" example:"2"`
}

type PrizeTableDTO struct {
	GameID string `json:"gameId" example:"loto7"`
	Tier1  int64  `json:"tier1" example:"600000000"`
	Tier2  int64  `json:"tier2" example:"10000000"`
	Tier3  int64  `json:"tier3" example:"500000"`
}

type AdminTransactionDTO struct {
	ID        string    `json:"id" example:"847291056384"`
	AccountID string    `json:"accountId" example:"736450192837"`
	Type      string    `json:"type" example:"withdraw"`
	Amount    int64     `json:"amount" example:"5000"`
	Status    string    `json:"status" example:"pending"`
	CreatedAt time.Time `json:"createdAt"`
}

type AdminPurchaseDTO struct {
	ID            string  `json:"id" example:"924856741350"`
	AccountID     string  `json:"accountId" example:"736450192837"`
	GameID        string  `json:"gameId" example:"loto7"`
	Selections    [][]int `json:"selections"`
	Status        string  `json:"status" example:"pending"`
	WinAmount     int64   `json:"winAmount" example:"0"`
	IsProcessed   bool    `json:"isProcessed" example:"false"`
	ForcedWinTier *int    `json:"forcedWinTier,omitempty"`
}

type AdminAccountDTO struct {
	ID       string `json:"id" example:"736450192837"`
	Username string `json:"username" example:"taro"`
	Email    string `json:"email" example:"taro@example.com"`
	Balance  int64  `json:"balance" example:"5000"`
}
