package service

import (
	"github.com/velvetbox/settlecore/internal/config"
	"github.com/velvetbox/settlecore/internal/payments"
	"github.com/velvetbox/settlecore/internal/repo"
	lifecycleservice "github.com/velvetbox/settlecore/internal/service/lifecycleservice"
	settlementservice "github.com/velvetbox/settlecore/internal/service/settlementservice"
	walletservice "github.com/velvetbox/settlecore/internal/service/walletservice"
)

type Services struct {
	Lifecycle  *lifecycleservice.Service
	Settlement *settlementservice.Service
	Wallet     *walletservice.Service
}

func New(cfg *config.Config, repo *repo.Repositories, gateway payments.Gateway, events lifecycleservice.Events) *Services {
	walletService := walletservice.New(repo.WalletRepo)
	settlementService := settlementservice.New(cfg, repo.SettlementRepo, walletService, gateway)
	lifecycleService := lifecycleservice.New(repo.OrderRepo, settlementService, gateway, walletService, events, cfg)

	return &Services{
		Lifecycle:  lifecycleService,
		Settlement: settlementService,
		Wallet:     walletService,
	}
}
