package reports

import "time"

// Report is a user-submitted scam report derived from a finished check.
type Report struct {
	ID        string    `json:"id"`
	Score     int       `json:"score"`
	RiskLevel string    `json:"riskLevel"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

// Receipt confirms that an intake accepted a report.
type Receipt struct {
	ID         string    `json:"id"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}
