package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/avolkov/lotomart/docs"
	"github.com/avolkov/lotomart/internal/catalog"
	adminhandlers "github.com/avolkov/lotomart/internal/handlers/admin"
	authhandlers "github.com/avolkov/lotomart/internal/handlers/auth"
	lotteryhandlers "github.com/avolkov/lotomart/internal/handlers/lottery"
	wallethandlers "github.com/avolkov/lotomart/internal/handlers/wallet"
	"github.com/avolkov/lotomart/internal/service"
	"github.com/avolkov/lotomart/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type LotteryHandler interface {
	GetGames(w http.ResponseWriter, r *http.Request)
	QuickPick(w http.ResponseWriter, r *http.Request)
	GetDrawHistory(w http.ResponseWriter, r *http.Request)
	Purchase(w http.ResponseWriter, r *http.Request)
	GetPurchases(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	UpdateBankDetails(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ExecuteDraw(w http.ResponseWriter, r *http.Request)
	PresetNumbers(w http.ResponseWriter, r *http.Request)
	SetForcedTier(w http.ResponseWriter, r *http.Request)
	GetPrizeTables(w http.ResponseWriter, r *http.Request)
	UpdatePrizeTable(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	ApproveTransaction(w http.ResponseWriter, r *http.Request)
	RejectTransaction(w http.ResponseWriter, r *http.Request)
	GetPurchases(w http.ResponseWriter, r *http.Request)
	GetAccounts(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	LotteryHandler LotteryHandler
	WalletHandler  WalletHandler
	AdminHandler   AdminHandler
}

func New(s *service.Services, cat *catalog.Catalog) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		LotteryHandler: lotteryhandlers.New(s.PurchaseService, s.DrawService, cat),
		WalletHandler:  wallethandlers.New(s.WalletService),
		AdminHandler:   adminhandlers.New(s.DrawService, s.WalletService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/games", func(r chi.Router) {
		r.Get("/", h.LotteryHandler.GetGames)
		r.Get("/{gameID}/quickpick", h.LotteryHandler.QuickPick)
		r.Get("/{gameID}/draws", h.LotteryHandler.GetDrawHistory)
	})
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/purchases", func(r chi.Router) {
				r.Post("/", h.LotteryHandler.Purchase)
				r.Get("/", h.LotteryHandler.GetPurchases)
			})
			r.Route("/balance", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetBalance)
				r.Post("/deposit", h.WalletHandler.Deposit)
				r.Post("/withdraw", h.WalletHandler.Withdraw)
			})
			r.Get("/transactions", h.WalletHandler.GetTransactions)
			r.Put("/bank", h.WalletHandler.UpdateBankDetails)
		})
	})
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.AuthMiddleware, auth.AdminMiddleware)
		r.Post("/draws/execute", h.AdminHandler.ExecuteDraw)
		r.Post("/draws/preset", h.AdminHandler.PresetNumbers)
		r.Route("/prizes", func(r chi.Router) {
			r.Get("/", h.AdminHandler.GetPrizeTables)
			r.Put("/", h.AdminHandler.UpdatePrizeTable)
		})
		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", h.AdminHandler.GetTransactions)
			r.Post("/{transactionID}/approve", h.AdminHandler.ApproveTransaction)
			r.Post("/{transactionID}/reject", h.AdminHandler.RejectTransaction)
		})
		r.Route("/purchases", func(r chi.Router) {
			r.Get("/", h.AdminHandler.GetPurchases)
			r.Post("/{purchaseID}/forced-tier", h.AdminHandler.SetForcedTier)
		})
		r.Get("/accounts", h.AdminHandler.GetAccounts)
	})

	return r
}
