package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	domainErrors "github.com/rdinit/hackathonService/internal/domain/errors"
	"github.com/rdinit/hackathonService/internal/domain/model"
	domainRepo "github.com/rdinit/hackathonService/internal/domain/repository"
	"github.com/rdinit/hackathonService/internal/infrastructure/metrics"
)

// HackathonInput carries the fields of a hackathon upsert.
type HackathonInput struct {
	Name                string
	TaskDescription     string
	StartOfRegistration time.Time
	EndOfRegistration   time.Time
	StartOfHack         time.Time
	EndOfHack           time.Time
	AmountMoney         decimal.Decimal
	Type                string
}

// WindowValidator checks the registration and hack windows of an input.
type WindowValidator interface {
	Validate(input HackathonInput) error
}

// OrderedWindows requires each window to start before it ends and
// registration to close no later than the hack does.
type OrderedWindows struct{}

func (OrderedWindows) Validate(in HackathonInput) error {
	switch {
	case in.StartOfRegistration.After(in.EndOfRegistration):
		return domainErrors.ErrInvalidHackathonWindow
	case in.StartOfHack.After(in.EndOfHack):
		return domainErrors.ErrInvalidHackathonWindow
	case in.EndOfRegistration.After(in.EndOfHack):
		return domainErrors.ErrInvalidHackathonWindow
	}
	return nil
}

// HackathonService handles hackathon business logic
type HackathonService struct {
	hackathonRepo domainRepo.HackathonRepository
	windows       WindowValidator
	clock         clockwork.Clock
	metrics       *metrics.Metrics
	logger        *zap.Logger
}

// NewHackathonService creates a new hackathon service instance.
// A nil validator disables window checks.
func NewHackathonService(
	hackathonRepo domainRepo.HackathonRepository,
	windows WindowValidator,
	clock clockwork.Clock,
	m *metrics.Metrics,
	logger *zap.Logger,
) *HackathonService {
	return &HackathonService{
		hackathonRepo: hackathonRepo,
		windows:       windows,
		clock:         clock,
		metrics:       m,
		logger:        logger,
	}
}

// Upsert stores the hackathon keyed by (name, start_of_hack). An existing row
// gets every other field overwritten. Returns the stored id.
func (s *HackathonService) Upsert(ctx context.Context, in HackathonInput) (uuid.UUID, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Type = strings.TrimSpace(in.Type)
	if err := validateName(in.Name); err != nil {
		return uuid.Nil, err
	}
	if in.Type == "" {
		return uuid.Nil, domainErrors.NewInvalidInputError("type", "must not be empty")
	}
	if in.AmountMoney.IsNegative() {
		return uuid.Nil, domainErrors.NewInvalidInputError("amount_money", "must not be negative")
	}
	if s.windows != nil {
		if err := s.windows.Validate(in); err != nil {
			return uuid.Nil, err
		}
	}

	now := s.clock.Now()
	hackathon := &model.Hackathon{
		Name:                in.Name,
		TaskDescription:     in.TaskDescription,
		StartOfRegistration: in.StartOfRegistration,
		EndOfRegistration:   in.EndOfRegistration,
		StartOfHack:         in.StartOfHack,
		EndOfHack:           in.EndOfHack,
		AmountMoney:         in.AmountMoney,
		Type:                in.Type,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.hackathonRepo.Upsert(ctx, hackathon); err != nil {
		s.logger.Error("Failed to upsert hackathon",
			zap.String("name", in.Name),
			zap.Time("start_of_hack", in.StartOfHack),
			zap.Error(err))
		return uuid.Nil, err
	}

	s.metrics.HackathonUpserted()
	s.logger.Info("Hackathon upserted",
		zap.String("hackathon_id", hackathon.ID.String()),
		zap.String("name", hackathon.Name))
	return hackathon.ID, nil
}

func (s *HackathonService) GetByID(ctx context.Context, id uuid.UUID) (*model.Hackathon, error) {
	return s.hackathonRepo.GetByID(ctx, id)
}

func (s *HackathonService) ListAll(ctx context.Context) ([]*model.Hackathon, error) {
	return s.hackathonRepo.List(ctx)
}
