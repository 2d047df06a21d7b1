package dashboard

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/veiligonline/scamcheck/internal/domain/analysis"
)

const shareSubject = "AI Scam Checker Resultaat"

// CheckView is one analysis point ready for rendering.
type CheckView struct {
	Category    string `json:"category"`
	Status      string `json:"status"`
	StatusClass string `json:"statusClass"`
	Detail      string `json:"detail"`
}

// BrokenLinksBlock is the critical warning block. It is only present when
// the classifier flagged at least one link.
type BrokenLinksBlock struct {
	Title string   `json:"title"`
	Links []string `json:"links"`
}

// View is the fully derived visual state for one analysis result. It holds
// no independent state: every field is computed from the result.
type View struct {
	Score        int               `json:"score"`
	RingFraction float64           `json:"ringFraction"`
	RiskTier     analysis.RiskTier `json:"riskTier"`
	RiskBadge    string            `json:"riskBadge"`
	BadgeClass   string            `json:"badgeClass"`
	GlowClass    string            `json:"glowClass"`
	Summary      string            `json:"summary"`
	Checks       []CheckView       `json:"checks"`
	Tips         []string          `json:"tips"`
	BrokenLinks  *BrokenLinksBlock `json:"brokenLinks,omitempty"`
	CopyText     string            `json:"copyText"`
	ShareText    string            `json:"shareText"`
	MailtoURL    string            `json:"mailtoUrl"`
}

// Present maps a validated result onto visual state. Pure function; the
// presenter never owns the result, it only derives from it.
func Present(res analysis.AnalysisResult) View {
	tier := analysis.TierForScore(res.Score)

	v := View{
		Score:        res.Score,
		RingFraction: ringFraction(res.Score),
		RiskTier:     tier,
		RiskBadge:    riskBadge(res.RiskLevel),
		BadgeClass:   "bg-" + string(tier),
		GlowClass:    "glow-" + string(tier),
		Summary:      res.Summary,
		Checks:       make([]CheckView, 0, len(res.Checks)),
		Tips:         res.Tips,
		CopyText:     CopyText(res),
		ShareText:    ShareText(res),
	}
	if v.Tips == nil {
		v.Tips = []string{}
	}
	v.MailtoURL = MailtoURL(res)

	for _, c := range res.Checks {
		v.Checks = append(v.Checks, CheckView{
			Category:    c.Category,
			Status:      c.Status,
			StatusClass: statusClass(c.Status),
			Detail:      c.Detail,
		})
	}

	if len(res.BrokenLinks) > 0 {
		v.BrokenLinks = &BrokenLinksBlock{
			Title: "Kritiek: Kapotte Links",
			Links: res.BrokenLinks,
		}
	}
	return v
}

// ringFraction clamps defensively: out-of-range scores are a contract
// violation upstream but must not break rendering.
func ringFraction(score int) float64 {
	f := float64(score) / 100
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func statusClass(status string) string {
	switch status {
	case analysis.StatusSafe:
		return "status-safe"
	case analysis.StatusWarning:
		return "status-warning"
	case analysis.StatusDanger:
		return "status-danger"
	default:
		return ""
	}
}

func riskBadge(riskLevel string) string {
	level := strings.TrimSpace(riskLevel)
	if level == "" {
		level = "Onbekend"
	}
	return level + " Risico"
}

// CopyText composes the plain-text clipboard payload: score, summary, tips.
func CopyText(res analysis.AnalysisResult) string {
	return fmt.Sprintf("Scam Score: %d%%\nConclusie: %s\n\nTips:\n%s",
		res.Score, res.Summary, strings.Join(res.Tips, "\n"))
}

// ShareText composes the plain-text share payload: risk level, score, summary.
func ShareText(res analysis.AnalysisResult) string {
	return fmt.Sprintf("Ik heb deze tekst gecheckt op scams.\nRisico: %s (%d%%)\nConclusie: %s",
		res.RiskLevel, res.Score, res.Summary)
}

// MailtoURL is the pre-filled email compose fallback for clients without a
// native share facility.
func MailtoURL(res analysis.AnalysisResult) string {
	return "mailto:?subject=" + encodeComponent(shareSubject) + "&body=" + encodeComponent(ShareText(res))
}

// encodeComponent escapes like encodeURIComponent: spaces become %20, not +.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
