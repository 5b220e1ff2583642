package repo

import (
	"testing"

	"github.com/GlebRadaev/betledger/internal/pg"
	betrepo "github.com/GlebRadaev/betledger/internal/repo/bet-repo"
	statsrepo "github.com/GlebRadaev/betledger/internal/repo/stats-repo"
	transactionrepo "github.com/GlebRadaev/betledger/internal/repo/transaction-repo"
	userrepo "github.com/GlebRadaev/betledger/internal/repo/user-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	repos := New(mockDB, pg.NewMockTXManager(gomock.NewController(t)))

	tests := []struct {
		name string
		want interface{}
		got  interface{}
	}{
		{"users", &userrepo.Repository{}, repos.UserRepo},
		{"bets", &betrepo.Repository{}, repos.BetRepo},
		{"transactions", &transactionrepo.Repository{}, repos.TransactionRepo},
		{"stats", &statsrepo.Repository{}, repos.StatsRepo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.got)
			assert.IsType(t, tt.want, tt.got)
		})
	}

	// constructing repositories must not touch the database
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
