package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veiligonline/scamcheck/internal/domain/analysis"
)

func phishingResult() analysis.AnalysisResult {
	return analysis.AnalysisResult{
		Score:     85,
		RiskLevel: "HOOG",
		Summary:   "Dit lijkt phishing.",
		Checks: []analysis.CheckItem{
			{Category: "URL", Status: "danger", Detail: "Verkorte link."},
		},
		BrokenLinks: []string{},
		Tips:        []string{"Klik niet op onbekende links."},
	}
}

func TestPresentPhishingScenario(t *testing.T) {
	v := Present(phishingResult())

	assert.Equal(t, analysis.TierDanger, v.RiskTier)
	assert.InDelta(t, 0.85, v.RingFraction, 1e-9)
	assert.Equal(t, "HOOG Risico", v.RiskBadge)
	assert.Equal(t, "bg-danger", v.BadgeClass)
	assert.Equal(t, "glow-danger", v.GlowClass)
	require.Len(t, v.Checks, 1)
	assert.Equal(t, "status-danger", v.Checks[0].StatusClass)
	assert.Nil(t, v.BrokenLinks)
}

func TestPresentBrokenLinksBlock(t *testing.T) {
	res := phishingResult()
	res.BrokenLinks = []string{"bit.ly/xyz"}

	v := Present(res)
	require.NotNil(t, v.BrokenLinks)
	assert.Equal(t, "Kritiek: Kapotte Links", v.BrokenLinks.Title)
	assert.Equal(t, []string{"bit.ly/xyz"}, v.BrokenLinks.Links)
}

func TestRingFractionClampsOutOfRangeScores(t *testing.T) {
	under := phishingResult()
	under.Score = -5
	assert.Equal(t, 0.0, Present(under).RingFraction)

	over := phishingResult()
	over.Score = 150
	assert.Equal(t, 1.0, Present(over).RingFraction)
}

func TestPresentUnknownStatusAndRiskLevel(t *testing.T) {
	res := phishingResult()
	res.RiskLevel = ""
	res.Checks = []analysis.CheckItem{{Category: "X", Status: "weird", Detail: "?"}}

	v := Present(res)
	assert.Equal(t, "Onbekend Risico", v.RiskBadge)
	assert.Equal(t, "", v.Checks[0].StatusClass)
}

func TestCopyText(t *testing.T) {
	got := CopyText(phishingResult())
	assert.Equal(t, "Scam Score: 85%\nConclusie: Dit lijkt phishing.\n\nTips:\nKlik niet op onbekende links.", got)
}

func TestShareText(t *testing.T) {
	got := ShareText(phishingResult())
	assert.Equal(t, "Ik heb deze tekst gecheckt op scams.\nRisico: HOOG (85%)\nConclusie: Dit lijkt phishing.", got)
}

func TestMailtoURL(t *testing.T) {
	got := MailtoURL(phishingResult())
	assert.Contains(t, got, "mailto:?subject=AI%20Scam%20Checker%20Resultaat&body=")
	assert.NotContains(t, got, "+")
	assert.Contains(t, got, "HOOG")
}

func TestPresentNilTipsBecomesEmpty(t *testing.T) {
	res := phishingResult()
	res.Tips = nil
	v := Present(res)
	assert.NotNil(t, v.Tips)
	assert.Empty(t, v.Tips)
}
