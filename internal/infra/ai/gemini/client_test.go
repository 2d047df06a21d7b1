package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veiligonline/scamcheck/internal/domain/analysis"
)

func TestNewClientRequiresAPIKey(t *testing.T) {
	for _, key := range []string{"", "   "} {
		_, err := NewClient(context.Background(), key, "")
		assert.ErrorIs(t, err, analysis.ErrMissingAPIKey, "key %q", key)
	}
}
