package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/panelmart/docs"
	authhandlers "github.com/GlebRadaev/panelmart/internal/handlers/auth"
	synchandlers "github.com/GlebRadaev/panelmart/internal/handlers/sync"
	usershandlers "github.com/GlebRadaev/panelmart/internal/handlers/users"
	wallethandlers "github.com/GlebRadaev/panelmart/internal/handlers/wallet"
	"github.com/GlebRadaev/panelmart/internal/service"
	"github.com/GlebRadaev/panelmart/pkg/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	CreateUser(w http.ResponseWriter, r *http.Request)
	ModifyUser(w http.ResponseWriter, r *http.Request)
	ListUsers(w http.ResponseWriter, r *http.Request)
	GetUsage(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	SubmitReceipt(w http.ResponseWriter, r *http.Request)
	GetReceipts(w http.ResponseWriter, r *http.Request)
	ListPendingReceipts(w http.ResponseWriter, r *http.Request)
	ApproveReceipt(w http.ResponseWriter, r *http.Request)
	RejectReceipt(w http.ResponseWriter, r *http.Request)
}

type SyncHandler interface {
	SyncPanel(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	UserHandler   UserHandler
	WalletHandler WalletHandler
	SyncHandler   SyncHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		UserHandler:   usershandlers.New(s.ProvisionService),
		WalletHandler: wallethandlers.New(s.WalletService, s.ReceiptService),
		SyncHandler:   synchandlers.New(s.SyncService),
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
	r.Route("/api/reseller", func(r chi.Router) {
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/users", func(r chi.Router) {
				r.Post("/", h.UserHandler.CreateUser)
				r.Get("/", h.UserHandler.ListUsers)
				r.Patch("/{id}", h.UserHandler.ModifyUser)
				r.Get("/{id}/usage", h.UserHandler.GetUsage)
			})
			r.Route("/wallet", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetBalance)
				r.Get("/transactions", h.WalletHandler.GetTransactions)
				r.Post("/receipts", h.WalletHandler.SubmitReceipt)
				r.Get("/receipts", h.WalletHandler.GetReceipts)
			})
			r.Post("/panels/{id}/sync", h.SyncHandler.SyncPanel)
		})
	})
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.AuthMiddleware, auth.AdminOnly)
		r.Get("/receipts", h.WalletHandler.ListPendingReceipts)
		r.Post("/receipts/{id}/approve", h.WalletHandler.ApproveReceipt)
		r.Post("/receipts/{id}/reject", h.WalletHandler.RejectReceipt)
	})

	return r
}
