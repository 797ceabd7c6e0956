package service

import (
	"github.com/avolkov/lotomart/internal/catalog"
	"github.com/avolkov/lotomart/internal/pg"
	"github.com/avolkov/lotomart/internal/repo"
	"github.com/avolkov/lotomart/internal/service/authservice"
	"github.com/avolkov/lotomart/internal/service/drawservice"
	"github.com/avolkov/lotomart/internal/service/purchaseservice"
	"github.com/avolkov/lotomart/internal/service/walletservice"
	pkgauth "github.com/avolkov/lotomart/pkg/auth"
)

type Services struct {
	AuthService     *authservice.Service
	PurchaseService *purchaseservice.Service
	WalletService   *walletservice.Service
	DrawService     *drawservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, cat *catalog.Catalog, cache drawservice.Cache, publisher drawservice.Publisher) *Services {
	authService := authservice.New(repo.AccountRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	purchaseService := purchaseservice.New(repo.AccountRepo, repo.PurchaseRepo, cat, txManager)
	walletService := walletservice.New(repo.AccountRepo, repo.TransactionRepo, txManager)
	drawService := drawservice.New(repo.DrawRepo, repo.PurchaseRepo, repo.AccountRepo, cat, txManager, cache, publisher)

	return &Services{
		AuthService:     authService,
		PurchaseService: purchaseService,
		WalletService:   walletService,
		DrawService:     drawService,
	}
}
