package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/betledger/docs"
	authhandlers "github.com/GlebRadaev/betledger/internal/handlers/auth"
	betshandlers "github.com/GlebRadaev/betledger/internal/handlers/bets"
	calculatorhandlers "github.com/GlebRadaev/betledger/internal/handlers/calculator"
	statshandlers "github.com/GlebRadaev/betledger/internal/handlers/stats"
	transactionshandlers "github.com/GlebRadaev/betledger/internal/handlers/transactions"
	"github.com/GlebRadaev/betledger/internal/metrics"
	"github.com/GlebRadaev/betledger/internal/service"
	"github.com/GlebRadaev/betledger/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	GetUser(w http.ResponseWriter, r *http.Request)
	UpdateUser(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type BetHandler interface {
	GetBets(w http.ResponseWriter, r *http.Request)
	CreateBet(w http.ResponseWriter, r *http.Request)
	GetBet(w http.ResponseWriter, r *http.Request)
	UpdateBet(w http.ResponseWriter, r *http.Request)
	DeleteBet(w http.ResponseWriter, r *http.Request)
}

type TransactionHandler interface {
	GetTransactions(w http.ResponseWriter, r *http.Request)
	CreateTransaction(w http.ResponseWriter, r *http.Request)
	GetTransaction(w http.ResponseWriter, r *http.Request)
}

type StatsHandler interface {
	GetBetStats(w http.ResponseWriter, r *http.Request)
	GetBankroll(w http.ResponseWriter, r *http.Request)
	GetBreakdown(w http.ResponseWriter, r *http.Request)
}

type CalculatorHandler interface {
	Single(w http.ResponseWriter, r *http.Request)
	Accumulator(w http.ResponseWriter, r *http.Request)
	Arbitrage(w http.ResponseWriter, r *http.Request)
	Dutching(w http.ResponseWriter, r *http.Request)
	EachWay(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	BetHandler         BetHandler
	TransactionHandler TransactionHandler
	StatsHandler       StatsHandler
	CalculatorHandler  CalculatorHandler

	Authenticator func(http.Handler) http.Handler
	Metrics       *metrics.Metrics
	CORSOrigins   []string
}

func New(s *service.Services, m *metrics.Metrics, corsOrigins []string) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		BetHandler:         betshandlers.New(s.BetService),
		TransactionHandler: transactionshandlers.New(s.TransactionService),
		StatsHandler:       statshandlers.New(s.StatsService),
		CalculatorHandler:  calculatorhandlers.New(),
		Authenticator:      auth.AuthMiddleware(s.JWT, s.Revocations),
		Metrics:            m,
		CORSOrigins:        corsOrigins,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins:   h.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Authorization"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	)
	if h.Metrics != nil {
		r.Use(h.Metrics.Middleware)
	}
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(h.Authenticator)
				r.Get("/user", h.AuthHandler.GetUser)
				r.Put("/user", h.AuthHandler.UpdateUser)
				r.Post("/logout", h.AuthHandler.Logout)
			})
		})

		r.Route("/calculator", func(r chi.Router) {
			r.Post("/single", h.CalculatorHandler.Single)
			r.Post("/accumulator", h.CalculatorHandler.Accumulator)
			r.Post("/arbitrage", h.CalculatorHandler.Arbitrage)
			r.Post("/dutching", h.CalculatorHandler.Dutching)
			r.Post("/each-way", h.CalculatorHandler.EachWay)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.Authenticator)
			r.Route("/bets", func(r chi.Router) {
				r.Get("/", h.BetHandler.GetBets)
				r.Post("/", h.BetHandler.CreateBet)
				r.Get("/{id}", h.BetHandler.GetBet)
				r.Put("/{id}", h.BetHandler.UpdateBet)
				r.Delete("/{id}", h.BetHandler.DeleteBet)
			})
			r.Route("/transactions", func(r chi.Router) {
				r.Get("/", h.TransactionHandler.GetTransactions)
				r.Post("/", h.TransactionHandler.CreateTransaction)
				r.Get("/{id}", h.TransactionHandler.GetTransaction)
			})
			r.Route("/stats", func(r chi.Router) {
				r.Get("/bets", h.StatsHandler.GetBetStats)
				r.Get("/bankroll", h.StatsHandler.GetBankroll)
				r.Get("/breakdown", h.StatsHandler.GetBreakdown)
			})
		})
	})

	return r
}
