package reportintake

import (
	"context"
	"time"

	"github.com/veiligonline/scamcheck/internal/application"
	domain "github.com/veiligonline/scamcheck/internal/domain/reports"
)

const defaultDelay = 1200 * time.Millisecond

// ConfirmationMessage is shown to the user after a report is accepted.
const ConfirmationMessage = "Melding succesvol ontvangen!"

// Stub simulates a report intake: it waits the configured delay and then
// confirms receipt. There is no real submission target yet.
// TODO: replace with the fraudehelpdesk intake once their API is available.
type Stub struct {
	Delay time.Duration
	Clock application.Clock
}

func NewStub(clock application.Clock) *Stub {
	return &Stub{Delay: defaultDelay, Clock: clock}
}

func (s *Stub) Submit(ctx context.Context, r domain.Report) (domain.Receipt, error) {
	delay := s.Delay
	if delay > 0 {
		select {
		case <-ctx.Done():
			return domain.Receipt{}, ctx.Err()
		case <-time.After(delay):
		}
	}
	return domain.Receipt{
		ID:         r.ID,
		Message:    ConfirmationMessage,
		ReceivedAt: s.Clock.Now(),
	}, nil
}
