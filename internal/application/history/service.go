package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/veiligonline/scamcheck/internal/application"
	"github.com/veiligonline/scamcheck/internal/domain/analysis"
	domain "github.com/veiligonline/scamcheck/internal/domain/history"
)

// slotKey is the single storage slot holding the serialized history.
const slotKey = "scamCheckHistory"

// snippetLength is the number of leading characters kept from the
// original input; longer inputs get a truncation marker.
const snippetLength = 50

// Service owns the persisted recent-checks log. It is the sole writer of
// the slot; readers only ever see a fully written sequence.
type Service struct {
	store domain.SlotStore
	clock application.Clock
	log   *zap.Logger
}

func NewService(store domain.SlotStore, clock application.Clock, log *zap.Logger) *Service {
	return &Service{store: store, clock: clock, log: log}
}

// Load reads the persisted history, most-recent-first. History is
// non-critical: a missing slot or a corrupt blob yields empty history,
// never an error for the caller.
func (s *Service) Load(ctx context.Context) []domain.Item {
	b, found, err := s.store.Load(ctx, slotKey)
	if err != nil {
		s.log.Warn("history load failed, treating as empty", zap.Error(err))
		return []domain.Item{}
	}
	if !found {
		return []domain.Item{}
	}

	var items []domain.Item
	if err := json.Unmarshal(b, &items); err != nil {
		s.log.Warn("history blob corrupt, treating as empty", zap.Error(err))
		return []domain.Item{}
	}
	if items == nil {
		return []domain.Item{}
	}
	if len(items) > domain.Capacity {
		items = items[:domain.Capacity]
	}
	return items
}

// Append derives a new entry from a successful check, prepends it, evicts
// anything beyond the capacity and persists the result as one write.
func (s *Service) Append(ctx context.Context, result analysis.AnalysisResult, originalInput string) (domain.Item, error) {
	item := domain.Item{
		ID:           uuid.New().String(),
		Date:         formatDate(s.clock.Now()),
		InputSnippet: snippet(originalInput),
		Score:        result.Score,
		RiskLevel:    result.RiskLevel,
	}

	updated := append([]domain.Item{item}, s.Load(ctx)...)
	if len(updated) > domain.Capacity {
		updated = updated[:domain.Capacity]
	}

	b, err := json.Marshal(updated)
	if err != nil {
		return domain.Item{}, fmt.Errorf("marshal history: %w", err)
	}
	if err := s.store.Save(ctx, slotKey, b); err != nil {
		return domain.Item{}, fmt.Errorf("persist history: %w", err)
	}
	return item, nil
}

// Clear empties the history by removing the slot entirely, leaving the
// store in a fresh-install state.
func (s *Service) Clear(ctx context.Context) error {
	return s.store.Clear(ctx, slotKey)
}

func snippet(input string) string {
	runes := []rune(input)
	if len(runes) <= snippetLength {
		return input
	}
	return string(runes[:snippetLength]) + "..."
}

// Dutch short month names, matching the locale the product has always used.
var months = [...]string{"jan", "feb", "mrt", "apr", "mei", "jun", "jul", "aug", "sep", "okt", "nov", "dec"}

func formatDate(t time.Time) string {
	return fmt.Sprintf("%d %s %02d:%02d", t.Day(), months[t.Month()-1], t.Hour(), t.Minute())
}
