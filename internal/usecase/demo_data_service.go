package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	domainErrors "github.com/rdinit/hackathonService/internal/domain/errors"
	"github.com/rdinit/hackathonService/internal/domain/model"
	"github.com/rdinit/hackathonService/internal/infrastructure/fixtures"
)

// The demo loader drives the domain services through these narrow views so
// it goes through the same validation and locking as API calls.
type (
	DemoRoles interface {
		Seed(ctx context.Context) error
		ListAll(ctx context.Context) ([]*model.Role, error)
	}
	DemoHackers interface {
		Count(ctx context.Context) (int64, error)
		Upsert(ctx context.Context, userID uuid.UUID, name string) (uuid.UUID, error)
		SetRoles(ctx context.Context, hackerID uuid.UUID, roleIDs []uuid.UUID) (*RoleAssignment, error)
	}
	DemoTeams interface {
		Create(ctx context.Context, ownerID uuid.UUID, name string, maxSize int) (uuid.UUID, error)
		AddMember(ctx context.Context, teamID, hackerID uuid.UUID) error
	}
	DemoHackathons interface {
		Upsert(ctx context.Context, in HackathonInput) (uuid.UUID, error)
	}
	DemoWinners interface {
		Create(ctx context.Context, in WinnerSolutionInput) (uuid.UUID, error)
	}
)

// DemoSummary reports what Initialize wrote.
type DemoSummary struct {
	Skipped         bool `json:"skipped"`
	Hackers         int  `json:"hackers"`
	Teams           int  `json:"teams"`
	Memberships     int  `json:"memberships"`
	Hackathons      int  `json:"hackathons"`
	WinnerSolutions int  `json:"winner_solutions"`
}

// DemoDataService fills an empty database with random but reproducible data.
type DemoDataService struct {
	roles      DemoRoles
	hackers    DemoHackers
	teams      DemoTeams
	hackathons DemoHackathons
	winners    DemoWinners
	rnd        *rand.Rand
	logger     *zap.Logger
}

// NewDemoDataService creates a demo loader; the same seed yields the same data set.
func NewDemoDataService(
	roles DemoRoles,
	hackers DemoHackers,
	teams DemoTeams,
	hackathons DemoHackathons,
	winners DemoWinners,
	seed int64,
	logger *zap.Logger,
) *DemoDataService {
	return &DemoDataService{
		roles:      roles,
		hackers:    hackers,
		teams:      teams,
		hackathons: hackathons,
		winners:    winners,
		rnd:        rand.New(rand.NewSource(seed)),
		logger:     logger,
	}
}

// Initialize writes the demo data set unless hackers already exist.
func (s *DemoDataService) Initialize(ctx context.Context, demo *fixtures.Demo) (*DemoSummary, error) {
	if err := demo.Validate(); err != nil {
		return nil, fmt.Errorf("invalid demo fixtures: %w", err)
	}

	if err := s.roles.Seed(ctx); err != nil {
		return nil, err
	}

	count, err := s.hackers.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count hackers: %w", err)
	}
	if count > 0 {
		s.logger.Info("Database already populated, skipping demo data", zap.Int64("hackers", count))
		return &DemoSummary{Skipped: true}, nil
	}

	summary := &DemoSummary{}

	hackerIDs, err := s.createHackers(ctx, demo)
	if err != nil {
		return nil, err
	}
	summary.Hackers = len(hackerIDs)

	teamIDs, members, err := s.createTeams(ctx, demo, hackerIDs)
	if err != nil {
		return nil, err
	}
	summary.Teams = len(teamIDs)
	summary.Memberships = members

	for _, h := range demo.Hackathons {
		hackathonID, err := s.createHackathon(ctx, h)
		if err != nil {
			return nil, err
		}
		summary.Hackathons++

		n, err := s.createWinners(ctx, demo.WinnersPerHackathon, hackathonID, h.AmountMoney, teamIDs)
		if err != nil {
			return nil, err
		}
		summary.WinnerSolutions += n
	}

	s.logger.Info("Demo data initialized",
		zap.Int("hackers", summary.Hackers),
		zap.Int("teams", summary.Teams),
		zap.Int("memberships", summary.Memberships),
		zap.Int("hackathons", summary.Hackathons),
		zap.Int("winner_solutions", summary.WinnerSolutions))
	return summary, nil
}

func (s *DemoDataService) createHackers(ctx context.Context, demo *fixtures.Demo) ([]uuid.UUID, error) {
	roles, err := s.roles.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(demo.HackerNames))
	for _, name := range demo.HackerNames {
		userID, err := uuid.NewRandomFromReader(s.rnd)
		if err != nil {
			return nil, fmt.Errorf("failed to generate user id: %w", err)
		}
		id, err := s.hackers.Upsert(ctx, userID, name)
		if err != nil {
			return nil, fmt.Errorf("failed to create hacker %q: %w", name, err)
		}

		n := s.between(demo.RolesPerHacker.Min, demo.RolesPerHacker.Max)
		picked := make([]uuid.UUID, 0, n)
		for _, i := range s.rnd.Perm(len(roles)) {
			if len(picked) == n {
				break
			}
			picked = append(picked, roles[i].ID)
		}
		if _, err := s.hackers.SetRoles(ctx, id, picked); err != nil {
			return nil, fmt.Errorf("failed to assign roles to %q: %w", name, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *DemoDataService) createTeams(ctx context.Context, demo *fixtures.Demo, hackerIDs []uuid.UUID) ([]uuid.UUID, int, error) {
	if len(hackerIDs) == 0 {
		return nil, 0, nil
	}

	teamIDs := make([]uuid.UUID, 0, len(demo.TeamNames))
	memberships := 0
	for _, name := range demo.TeamNames {
		owner := hackerIDs[s.rnd.Intn(len(hackerIDs))]
		maxSize := s.between(demo.TeamMaxSize.Min, demo.TeamMaxSize.Max)

		teamID, err := s.teams.Create(ctx, owner, name, maxSize)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to create team %q: %w", name, err)
		}
		teamIDs = append(teamIDs, teamID)
		memberships++

		size := s.between(min(2, maxSize), maxSize)
		for _, i := range s.rnd.Perm(len(hackerIDs)) {
			if size <= 1 {
				break
			}
			if hackerIDs[i] == owner {
				continue
			}
			err := s.teams.AddMember(ctx, teamID, hackerIDs[i])
			switch {
			case err == nil:
				memberships++
				size--
			case errors.Is(err, domainErrors.ErrAlreadyMember):
			case errors.Is(err, domainErrors.ErrTeamFull):
				size = 0
			default:
				return nil, 0, fmt.Errorf("failed to add member to %q: %w", name, err)
			}
		}
	}
	return teamIDs, memberships, nil
}

func (s *DemoDataService) createHackathon(ctx context.Context, h fixtures.Hackathon) (uuid.UUID, error) {
	regStart, regEnd, hackStart, hackEnd, err := h.Windows()
	if err != nil {
		return uuid.Nil, err
	}
	id, err := s.hackathons.Upsert(ctx, HackathonInput{
		Name:                h.Name,
		TaskDescription:     h.TaskDescription,
		StartOfRegistration: regStart,
		EndOfRegistration:   regEnd,
		StartOfHack:         hackStart,
		EndOfHack:           hackEnd,
		AmountMoney:         h.AmountMoney,
		Type:                h.Type,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create hackathon %q: %w", h.Name, err)
	}
	return id, nil
}

// createWinners awards the first places to randomly picked teams. Place p
// receives amount/p and only the first place shares its solution.
func (s *DemoDataService) createWinners(ctx context.Context, places int, hackathonID uuid.UUID, amount decimal.Decimal, teamIDs []uuid.UUID) (int, error) {
	places = min(places, len(teamIDs))
	order := s.rnd.Perm(len(teamIDs))[:places]

	for i, idx := range order {
		place := i + 1
		teamID := teamIDs[idx]
		canShare := place == 1
		_, err := s.winners.Create(ctx, WinnerSolutionInput{
			HackathonID:        hackathonID,
			TeamID:             teamID,
			WinMoney:           amount.Div(decimal.NewFromInt(int64(place))).Round(2),
			LinkToSolution:     fmt.Sprintf("https://github.com/team%s/solution%s", teamID, hackathonID),
			LinkToPresentation: fmt.Sprintf("https://slides.com/team%s/presentation%s", teamID, hackathonID),
			CanShare:           &canShare,
		})
		if err != nil {
			return i, fmt.Errorf("failed to create winner solution: %w", err)
		}
	}
	return places, nil
}

// between returns a uniform int in [lo, hi].
func (s *DemoDataService) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rnd.Intn(hi-lo+1)
}
