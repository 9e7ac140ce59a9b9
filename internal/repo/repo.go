package repo

import (
	"github.com/velvetbox/settlecore/internal/pg"
	orderrepo "github.com/velvetbox/settlecore/internal/repo/order-repo"
	settlementrepo "github.com/velvetbox/settlecore/internal/repo/settlement-repo"
	walletrepo "github.com/velvetbox/settlecore/internal/repo/wallet-repo"
	"github.com/velvetbox/settlecore/internal/service/lifecycleservice"
	"github.com/velvetbox/settlecore/internal/service/settlementservice"
	"github.com/velvetbox/settlecore/internal/service/walletservice"
)

type Repositories struct {
	OrderRepo      lifecycleservice.Repo
	WalletRepo     walletservice.Repo
	SettlementRepo settlementservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	orderRepo := orderrepo.New(conn, txManager)
	walletRepo := walletrepo.New(conn, txManager)
	settlementRepo := settlementrepo.New(conn)

	return &Repositories{
		OrderRepo:      orderRepo,
		WalletRepo:     walletRepo,
		SettlementRepo: settlementRepo,
	}
}
