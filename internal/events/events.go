package events

// PurchaseSettled is emitted once per purchase a draw settles.
type PurchaseSettled struct {
	PurchaseID string `json:"purchase_id"`
	AccountID  string `json:"account_id"`
	GameID     string `json:"game_id"`
	DrawDate   string `json:"draw_date"`
	Status     string `json:"status"`
	WinAmount  int64  `json:"win_amount"`
	TsUnixMs   int64  `json:"ts_unix_ms"`
}

// ForcedTierSet is the audit record for an operator overriding the outcome
// of a purchase before its draw.
type ForcedTierSet struct {
	PurchaseID string `json:"purchase_id"`
	AccountID  string `json:"account_id"`
	Tier       int    `json:"tier"`
	TsUnixMs   int64  `json:"ts_unix_ms"`
}
