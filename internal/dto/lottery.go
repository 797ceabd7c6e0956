package dto

type PurchaseRequestDTO struct {
	GameID     string  `json:"gameId" example:"loto7"`
	Selections [][]int `json:"selections"`
}

type PurchaseResponseDTO struct {
	ID         string  `json:"id" example:"924856741350"`
	GameID     string  `json:"gameId" example:"loto7"`
	Selections [][]int `json:"selections"`
	Cost       int64   `json:"cost" example:"600"`
	Status     string  `json:"status" example:"pending"`
	CreatedAt  string  `json:"createdAt" example:"2024-12-09T16:09:57+03:00"`
}

type GetPurchasesResponseDTO struct {
	ID         string  `json:"id" example:"924856741350"`
	GameID     string  `json:"gameId" example:"loto7"`
	Selections [][]int `json:"selections"`
	Status     string  `json:"status" example:"won"`
	WinAmount  int64   `json:"winAmount" example:"500000"`
	CreatedAt  string  `json:"createdAt" example:"2024-12-09T16:09:57+03:00"`
}

type QuickPickResponseDTO struct {
	GameID  string `json:"gameId" example:"loto7"`
	Numbers []int  `json:"numbers" example:"3,8,14,21,25,30,36"`
}

type DrawResultDTO struct {
	GameID   string `json:"gameId" example:"loto7"`
	DrawDate string `json:"drawDate" example:"2024-12-09"`
	Numbers  []int  `json:"numbers" example:"1,2,3,4,5,6,7"`
}
