package usecase

import (
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	domainRepo "github.com/rdinit/hackathonService/internal/domain/repository"
	"github.com/rdinit/hackathonService/internal/infrastructure/metrics"
)

// Dependencies are the collaborators shared by all services
type Dependencies struct {
	Tx              domainRepo.Transactor
	Hackers         domainRepo.HackerRepository
	Roles           domainRepo.RoleRepository
	Teams           domainRepo.TeamRepository
	Hackathons      domainRepo.HackathonRepository
	WinnerSolutions domainRepo.WinnerSolutionRepository

	Clock   clockwork.Clock
	Metrics *metrics.Metrics
	Logger  *zap.Logger

	// ValidateWindows enables OrderedWindows for hackathon upserts
	ValidateWindows bool
}

// Services holds one instance of every domain service
type Services struct {
	Role           *RoleService
	Hacker         *HackerService
	Team           *TeamService
	Hackathon      *HackathonService
	WinnerSolution *WinnerSolutionService
}

func NewServices(d Dependencies) *Services {
	var windows WindowValidator
	if d.ValidateWindows {
		windows = OrderedWindows{}
	}

	return &Services{
		Role:           NewRoleService(d.Roles, d.Clock, d.Metrics, d.Logger),
		Hacker:         NewHackerService(d.Hackers, d.Roles, d.Clock, d.Metrics, d.Logger),
		Team:           NewTeamService(d.Tx, d.Teams, d.Hackers, d.Clock, d.Metrics, d.Logger),
		Hackathon:      NewHackathonService(d.Hackathons, windows, d.Clock, d.Metrics, d.Logger),
		WinnerSolution: NewWinnerSolutionService(d.Tx, d.WinnerSolutions, d.Hackathons, d.Teams, d.Clock, d.Metrics, d.Logger),
	}
}

// NewDemoData builds a demo loader on top of these services
func (s *Services) NewDemoData(seed int64, logger *zap.Logger) *DemoDataService {
	return NewDemoDataService(s.Role, s.Hacker, s.Team, s.Hackathon, s.WinnerSolution, seed, logger)
}
