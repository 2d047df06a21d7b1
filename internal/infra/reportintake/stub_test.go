package reportintake

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veiligonline/scamcheck/internal/application"
	domain "github.com/veiligonline/scamcheck/internal/domain/reports"
)

func TestStubConfirmsReceipt(t *testing.T) {
	stub := NewStub(application.SystemClock{})
	stub.Delay = time.Millisecond

	receipt, err := stub.Submit(context.Background(), domain.Report{ID: "r-1", Score: 85, RiskLevel: "HOOG"})
	require.NoError(t, err)

	assert.Equal(t, "r-1", receipt.ID)
	assert.Equal(t, ConfirmationMessage, receipt.Message)
	assert.False(t, receipt.ReceivedAt.IsZero())
}

func TestStubHonorsCancellation(t *testing.T) {
	stub := NewStub(application.SystemClock{})
	stub.Delay = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stub.Submit(ctx, domain.Report{ID: "r-2"})
	assert.ErrorIs(t, err, context.Canceled)
}
