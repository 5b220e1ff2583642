package repo

import (
	"github.com/GlebRadaev/betledger/internal/pg"
	betrepo "github.com/GlebRadaev/betledger/internal/repo/bet-repo"
	statsrepo "github.com/GlebRadaev/betledger/internal/repo/stats-repo"
	transactionrepo "github.com/GlebRadaev/betledger/internal/repo/transaction-repo"
	userrepo "github.com/GlebRadaev/betledger/internal/repo/user-repo"
	"github.com/GlebRadaev/betledger/internal/service/authservice"
	"github.com/GlebRadaev/betledger/internal/service/betservice"
	"github.com/GlebRadaev/betledger/internal/service/statsservice"
	"github.com/GlebRadaev/betledger/internal/service/transactionservice"
)

type Repositories struct {
	UserRepo        authservice.Repo
	BetRepo         betservice.Repo
	TransactionRepo transactionservice.Repo
	StatsRepo       statsservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	betRepo := betrepo.New(conn, txManager)
	transactionRepo := transactionrepo.New(conn)
	statsRepo := statsrepo.New(conn)

	return &Repositories{
		UserRepo:        userRepo,
		BetRepo:         betRepo,
		TransactionRepo: transactionRepo,
		StatsRepo:       statsRepo,
	}
}
