package service

import (
	"github.com/GlebRadaev/panelmart/internal/handlers/auth"
	"github.com/GlebRadaev/panelmart/internal/handlers/sync"
	"github.com/GlebRadaev/panelmart/internal/handlers/wallet"

	pkgauth "github.com/GlebRadaev/panelmart/pkg/auth"
	"github.com/GlebRadaev/panelmart/pkg/secrets"

	"github.com/GlebRadaev/panelmart/internal/panelapi"
	"github.com/GlebRadaev/panelmart/internal/pg"
	"github.com/GlebRadaev/panelmart/internal/repo"
	authservice "github.com/GlebRadaev/panelmart/internal/service/authservice"
	pricingservice "github.com/GlebRadaev/panelmart/internal/service/pricingservice"
	provisionservice "github.com/GlebRadaev/panelmart/internal/service/provisionservice"
	receiptservice "github.com/GlebRadaev/panelmart/internal/service/receiptservice"
	syncservice "github.com/GlebRadaev/panelmart/internal/service/syncservice"
	walletservice "github.com/GlebRadaev/panelmart/internal/service/walletservice"
)

type Services struct {
	AuthService    auth.Service
	WalletService  wallet.Service
	ReceiptService wallet.ReceiptService
	SyncService    sync.Service

	// Concrete so the reconciler can reach CommitIntent.
	ProvisionService *provisionservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, gateway panelapi.GatewayI, cipher secrets.CipherI) *Services {
	walletService := walletservice.New(repo.Reseller, repo.Ledger, txManager)
	pricingService := pricingservice.New(repo.Pricing)
	provisionService := provisionservice.New(
		repo.Reseller, repo.Panel, repo.Mirror, repo.Intent,
		pricingService, walletService, gateway, cipher, txManager,
	)
	syncService := syncservice.New(repo.Reseller, repo.Panel, repo.Mirror, gateway, cipher)
	receiptService := receiptservice.New(repo.Receipt, walletService, txManager)
	authService := authservice.New(repo.Reseller, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:      authService,
		WalletService:    walletService,
		ReceiptService:   receiptService,
		SyncService:      syncService,
		ProvisionService: provisionService,
	}
}
