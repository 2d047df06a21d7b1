package reports

import "context"

// Intake accepts scam reports. There is no real submission target yet;
// the shipped implementation is a stub that simulates the round trip.
type Intake interface {
	Submit(ctx context.Context, r Report) (Receipt, error)
}
