package checks

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/veiligonline/scamcheck/internal/application/dashboard"
	apphistory "github.com/veiligonline/scamcheck/internal/application/history"
	"github.com/veiligonline/scamcheck/internal/domain/analysis"
	domainhistory "github.com/veiligonline/scamcheck/internal/domain/history"
)

var (
	// ErrEmptyInput means the submission was a no-op: empty or
	// whitespace-only input never reaches the classifier.
	ErrEmptyInput = errors.New("input is empty")

	// ErrCheckInFlight enforces one check at a time.
	ErrCheckInFlight = errors.New("a check is already in flight")
)

// Archive receives raw classifier output for diagnostics. Implementations
// must never affect the check outcome.
type Archive interface {
	Put(ctx context.Context, key string, body string) (string, error)
}

// Outcome bundles everything a successful check produces.
type Outcome struct {
	Result      analysis.AnalysisResult `json:"result"`
	Dashboard   dashboard.View          `json:"dashboard"`
	HistoryItem domainhistory.Item      `json:"historyItem"`
}

// Service implements the check use case: guard input, classify, normalize,
// append history, present. One check may be in flight at a time.
type Service struct {
	Classifier analysis.Classifier
	History    *apphistory.Service
	Archive    Archive // optional
	Log        *zap.Logger

	inFlight atomic.Bool
}

// Check runs one classification round trip. On any failure no history is
// written and the caller gets a typed error; the raw response, when
// received, is archived best-effort before validation so failed checks can
// be diagnosed.
func (s *Service) Check(ctx context.Context, input string) (Outcome, error) {
	if strings.TrimSpace(input) == "" {
		return Outcome{}, ErrEmptyInput
	}
	if !s.inFlight.CompareAndSwap(false, true) {
		return Outcome{}, ErrCheckInFlight
	}
	defer s.inFlight.Store(false)

	raw, err := s.Classifier.Classify(ctx, input)
	if err != nil {
		s.Log.Error("classification failed", zap.Error(err))
		return Outcome{}, err
	}

	s.archive(ctx, raw)

	result, err := analysis.Normalize(raw)
	if err != nil {
		s.Log.Error("classifier response rejected", zap.Error(err))
		return Outcome{}, err
	}

	item, err := s.History.Append(ctx, result, input)
	if err != nil {
		// History is non-critical; the check itself succeeded.
		s.Log.Warn("history append failed", zap.Error(err))
	}

	return Outcome{
		Result:      result,
		Dashboard:   dashboard.Present(result),
		HistoryItem: item,
	}, nil
}

func (s *Service) archive(ctx context.Context, raw string) {
	if s.Archive == nil {
		return
	}
	key := "checks/" + uuid.New().String() + ".json"
	loc, err := s.Archive.Put(ctx, key, raw)
	if err != nil {
		s.Log.Warn("raw response archive failed", zap.Error(err))
		return
	}
	s.Log.Debug("raw response archived", zap.String("location", loc))
}
