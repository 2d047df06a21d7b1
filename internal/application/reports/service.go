package reports

import (
	"context"

	"github.com/google/uuid"

	"github.com/veiligonline/scamcheck/internal/application"
	domain "github.com/veiligonline/scamcheck/internal/domain/reports"
)

// Service forwards user-submitted scam reports to the configured intake.
type Service struct {
	Intake domain.Intake
	Clock  application.Clock
}

func NewService(intake domain.Intake, clock application.Clock) *Service {
	return &Service{Intake: intake, Clock: clock}
}

// Submit builds a report from a finished check and hands it to the intake.
func (s *Service) Submit(ctx context.Context, score int, riskLevel, summary string) (domain.Receipt, error) {
	r := domain.Report{
		ID:        uuid.New().String(),
		Score:     score,
		RiskLevel: riskLevel,
		Summary:   summary,
		CreatedAt: s.Clock.Now(),
	}
	return s.Intake.Submit(ctx, r)
}
