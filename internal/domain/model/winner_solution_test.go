package model_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rdinit/hackathonService/internal/domain/model"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=hackathon dbname=hackathon sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func TestWinnerSolution_CreateKeepsCanShare(t *testing.T) {
	db := dryRunDB(t)

	for _, canShare := range []bool{false, true} {
		solution := &model.WinnerSolution{
			HackathonID:        uuid.New(),
			TeamID:             uuid.New(),
			WinMoney:           decimal.RequireFromString("2500.00"),
			LinkToSolution:     "https://github.com/rockets/solution",
			LinkToPresentation: "https://slides.com/rockets/deck",
			CanShare:           canShare,
		}

		stmt := db.Omit(clause.Associations).Create(solution).Statement
		require.NoError(t, stmt.Error)

		assert.Contains(t, stmt.SQL.String(), `"can_share"`)
		assert.Contains(t, stmt.Vars, canShare)
		assert.Equal(t, canShare, solution.CanShare)
	}
}
