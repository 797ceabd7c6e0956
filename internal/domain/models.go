package domain

import "time"

const (
	PurchaseStatusPending = "pending"
	PurchaseStatusWon     = "won"
	PurchaseStatusLost    = "lost"
)

const (
	TransactionTypeDeposit  = "deposit"
	TransactionTypeWithdraw = "withdraw"
)

const (
	TransactionStatusPending  = "pending"
	TransactionStatusApproved = "approved"
	TransactionStatusRejected = "rejected"
)

type BankDetails struct {
	BankName      string `db:"bank_name" json:"bankName"`
	BranchName    string `db:"branch_name" json:"branchName"`
	AccountNumber string `db:"account_number" json:"accountNumber"`
	AccountName   string `db:"account_name" json:"accountName"`
}

type Account struct {
	ID           string      `db:"id"`
	Username     string      `db:"username"`
	Email        string      `db:"email"`
	PasswordHash string      `db:"password_hash"`
	Balance      int64       `db:"balance"`
	IsAdmin      bool        `db:"is_admin"`
	Bank         BankDetails `db:"bank"`
	CreatedAt    time.Time   `db:"created_at"`
}

// Purchase is one multi-line ticket. Selections holds the non-empty lines,
// each a sorted set of PickCount distinct numbers. Once IsProcessed is set
// the outcome fields never change again.
type Purchase struct {
	ID            string    `db:"id"`
	AccountID     string    `db:"account_id"`
	GameID        string    `db:"game_id"`
	Selections    [][]int   `db:"selections"`
	Status        string    `db:"status"`
	WinAmount     int64     `db:"win_amount"`
	IsProcessed   bool      `db:"is_processed"`
	ForcedWinTier *int      `db:"forced_win_tier"`
	CreatedAt     time.Time `db:"created_at"`
}

type Transaction struct {
	ID          string       `db:"id"`
	AccountID   string       `db:"account_id"`
	Type        string       `db:"type"`
	Amount      int64        `db:"amount"`
	Status      string       `db:"status"`
	Bank        *BankDetails `db:"bank"`
	CreatedAt   time.Time    `db:"created_at"`
	ProcessedAt *time.Time   `db:"processed_at"`
}

// WinningNumbers is immutable once stored: the first write for a
// (game, draw date) pair wins and later draws reuse it.
type WinningNumbers struct {
	GameID   string    `db:"game_id"`
	DrawDate string    `db:"draw_date"`
	Numbers  []int     `db:"numbers"`
	DrawnAt  time.Time `db:"drawn_at"`
}

type PrizeTable struct {
	GameID string `db:"game_id"`
	Tier1  int64  `db:"tier1"`
	Tier2  int64  `db:"tier2"`
	Tier3  int64  `db:"tier3"`
}

type Game struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	MaxNumber int    `json:"maxNumber"`
	PickCount int    `json:"pickCount"`
}
