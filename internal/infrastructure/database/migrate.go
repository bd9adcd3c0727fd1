package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rdinit/hackathonService/internal/domain/model"
)

// Migrate runs database migrations
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	if err := createExtensions(db); err != nil {
		logger.Error("Failed to create extensions", zap.Error(err))
		return err
	}

	// Custom join tables must be registered before AutoMigrate sees the many2many fields
	if err := setupJoinTables(db); err != nil {
		logger.Error("Failed to set up join tables", zap.Error(err))
		return err
	}

	logger.Info("Running GORM auto-migrations...")
	err := db.AutoMigrate(
		&model.Role{},
		&model.Hacker{},
		&model.Team{},
		&model.Hackathon{},
		&model.WinnerSolution{},
		&model.HackerRole{},
		&model.HackerTeam{},
		&model.WinnerSolutionTeamHackathon{},
	)
	if err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return err
	}

	logger.Info("Creating foreign key constraints...")
	if err := createForeignKeys(db); err != nil {
		logger.Error("Failed to create foreign key constraints", zap.Error(err))
		return err
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

func setupJoinTables(db *gorm.DB) error {
	joins := []struct {
		model interface{}
		field string
		join  interface{}
	}{
		{&model.Hacker{}, "Roles", &model.HackerRole{}},
		{&model.Hacker{}, "Teams", &model.HackerTeam{}},
		{&model.Team{}, "Members", &model.HackerTeam{}},
	}
	for _, j := range joins {
		if err := db.SetupJoinTable(j.model, j.field, j.join); err != nil {
			return fmt.Errorf("failed to set up join table for %s: %w", j.field, err)
		}
	}
	return nil
}

// createExtensions creates required PostgreSQL extensions
func createExtensions(db *gorm.DB) error {
	// gen_random_uuid() is built in from PostgreSQL 13; pgcrypto covers older servers
	return db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error
}

type foreignKey struct {
	name     string
	table    string
	column   string
	refTable string
	onDelete string
}

// Association rows follow their parents; entity references are restricted.
var foreignKeys = []foreignKey{
	{"fk_team_owner", "team", "owner_id", "hacker", "RESTRICT"},
	{"fk_hacker_role_hacker", "hacker_role_association", "hacker_id", "hacker", "CASCADE"},
	{"fk_hacker_role_role", "hacker_role_association", "role_id", "role", "CASCADE"},
	{"fk_hacker_team_hacker", "hacker_team_association", "hacker_id", "hacker", "CASCADE"},
	{"fk_hacker_team_team", "hacker_team_association", "team_id", "team", "CASCADE"},
	{"fk_winner_solution_hackathon", "winner_solution", "hackathon_id", "hackathon", "RESTRICT"},
	{"fk_winner_solution_team", "winner_solution", "team_id", "team", "RESTRICT"},
	{"fk_wsth_winner_solution", "winner_solution_team_hackathon_association", "winner_solution_id", "winner_solution", "CASCADE"},
	{"fk_wsth_team", "winner_solution_team_hackathon_association", "team_id", "team", "CASCADE"},
	{"fk_wsth_hackathon", "winner_solution_team_hackathon_association", "hackathon_id", "hackathon", "CASCADE"},
}

// createForeignKeys adds the constraints GORM skips when
// DisableForeignKeyConstraintWhenMigrating is set. PostgreSQL has no
// ADD CONSTRAINT IF NOT EXISTS, so each one is guarded by a pg_constraint lookup.
func createForeignKeys(db *gorm.DB) error {
	for _, fk := range foreignKeys {
		stmt := fmt.Sprintf(`
DO $$
BEGIN
    IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%s') THEN
        ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (id) ON DELETE %s;
    END IF;
END
$$;`, fk.name, fk.table, fk.name, fk.column, fk.refTable, fk.onDelete)

		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create constraint %s: %w", fk.name, err)
		}
	}
	return nil
}
