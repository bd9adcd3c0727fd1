package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rdinit/hackathonService/internal/adapter/repository"
	domainRepo "github.com/rdinit/hackathonService/internal/domain/repository"
)

// Repositories holds all repository instances
type Repositories struct {
	Tx             domainRepo.Transactor
	Hacker         domainRepo.HackerRepository
	Role           domainRepo.RoleRepository
	Team           domainRepo.TeamRepository
	Hackathon      domainRepo.HackathonRepository
	WinnerSolution domainRepo.WinnerSolutionRepository
}

// NewRepositories creates new repository instances with database connection
func NewRepositories(db *gorm.DB, logger *zap.Logger) *Repositories {
	return &Repositories{
		Tx:             repository.NewTransactor(db),
		Hacker:         repository.NewHackerRepository(db, logger),
		Role:           repository.NewRoleRepository(db, logger),
		Team:           repository.NewTeamRepository(db, logger),
		Hackathon:      repository.NewHackathonRepository(db, logger),
		WinnerSolution: repository.NewWinnerSolutionRepository(db, logger),
	}
}
