package analysis

// Check status enum as delivered by the classifier
const (
	StatusSafe    = "safe"
	StatusWarning = "warning"
	StatusDanger  = "danger"
)

// CheckItem is one named sub-finding within an analysis (link legitimacy,
// tone/urgency, sender imitation, ...). Order is presentation order.
type CheckItem struct {
	Category string `json:"category"`
	Status   string `json:"status"`
	Detail   string `json:"detail"`
}

// AnalysisResult is the validated output of one classification call.
// Score and Summary are guaranteed by the normalizer; the remaining fields
// are best-effort and default to empty values when the classifier omits or
// mangles them.
type AnalysisResult struct {
	Score       int         `json:"score"`
	RiskLevel   string      `json:"riskLevel"`
	Summary     string      `json:"summary"`
	Checks      []CheckItem `json:"checks"`
	BrokenLinks []string    `json:"brokenLinks"`
	Tips        []string    `json:"tips"`
}

// RiskTier is derived from the score for presentation purposes only.
// The classifier-supplied RiskLevel is never cross-validated against it.
type RiskTier string

const (
	TierSafe    RiskTier = "safe"
	TierWarning RiskTier = "warning"
	TierDanger  RiskTier = "danger"
)

// TierForScore maps a 0-100 risk score onto a presentation tier:
// <30 safe, 30-70 warning, >70 danger.
func TierForScore(score int) RiskTier {
	switch {
	case score > 70:
		return TierDanger
	case score >= 30:
		return TierWarning
	default:
		return TierSafe
	}
}
