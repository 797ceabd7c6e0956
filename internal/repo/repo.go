package repo

import (
	"github.com/avolkov/lotomart/internal/pg"
	accountrepo "github.com/avolkov/lotomart/internal/repo/account-repo"
	drawrepo "github.com/avolkov/lotomart/internal/repo/draw-repo"
	purchaserepo "github.com/avolkov/lotomart/internal/repo/purchase-repo"
	transactionrepo "github.com/avolkov/lotomart/internal/repo/transaction-repo"
)

type Repositories struct {
	AccountRepo     *accountrepo.Repository
	PurchaseRepo    *purchaserepo.Repository
	TransactionRepo *transactionrepo.Repository
	DrawRepo        *drawrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		AccountRepo:     accountrepo.New(conn),
		PurchaseRepo:    purchaserepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		DrawRepo:        drawrepo.New(conn),
	}
}
