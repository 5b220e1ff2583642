package service

import (
	"github.com/GlebRadaev/betledger/internal/config"
	"github.com/GlebRadaev/betledger/internal/events"
	"github.com/GlebRadaev/betledger/internal/handlers/auth"
	"github.com/GlebRadaev/betledger/internal/handlers/bets"
	"github.com/GlebRadaev/betledger/internal/handlers/stats"
	"github.com/GlebRadaev/betledger/internal/handlers/transactions"
	"golang.org/x/crypto/bcrypt"

	pkgauth "github.com/GlebRadaev/betledger/pkg/auth"

	"github.com/GlebRadaev/betledger/internal/repo"
	authservice "github.com/GlebRadaev/betledger/internal/service/authservice"
	betservice "github.com/GlebRadaev/betledger/internal/service/betservice"
	statsservice "github.com/GlebRadaev/betledger/internal/service/statsservice"
	transactionservice "github.com/GlebRadaev/betledger/internal/service/transactionservice"
)

type Services struct {
	AuthService        auth.Service
	BetService         bets.Service
	TransactionService transactions.Service
	StatsService       stats.Service

	JWT         pkgauth.JWTServiceInterface
	Revocations pkgauth.RevocationStore
}

func New(repo *repo.Repositories, cfg *config.Config, revocations pkgauth.RevocationStore, publisher events.Publisher) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	hashService := pkgauth.NewHashService(bcrypt.DefaultCost)

	return &Services{
		AuthService:        authservice.New(repo.UserRepo, hashService, jwtService, revocations),
		BetService:         betservice.New(repo.BetRepo, publisher),
		TransactionService: transactionservice.New(repo.TransactionRepo, publisher),
		StatsService:       statsservice.New(repo.StatsRepo),
		JWT:                jwtService,
		Revocations:        revocations,
	}
}
