package analysis

import (
	"encoding/json"
	"math"
	"regexp"
	"strings"
)

// Matches opening and closing markdown fence tokens with any language tag.
// Best-effort cleanup, not a markdown parser.
var fencePattern = regexp.MustCompile("```[a-zA-Z0-9]*")

// Normalize turns raw classifier output into a validated AnalysisResult.
// It is total over all string inputs: every failure path maps to one of
// the sentinel errors in this package.
//
// Score and summary must be present and well-typed; riskLevel, checks,
// brokenLinks and tips are best-effort and fall back to empty values when
// absent or malformed, so rendering never has to deal with nils.
func Normalize(rawText string) (AnalysisResult, error) {
	trimmed := strings.TrimSpace(rawText)
	if trimmed == "" || trimmed == "{}" {
		return AnalysisResult{}, ErrEmptyResponse
	}

	cleaned := strings.TrimSpace(fencePattern.ReplaceAllString(trimmed, ""))
	if cleaned == "" || cleaned == "{}" {
		return AnalysisResult{}, ErrEmptyResponse
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil {
		return AnalysisResult{}, ErrInvalidJSON
	}

	var score float64
	if raw, ok := fields["score"]; !ok || json.Unmarshal(raw, &score) != nil {
		return AnalysisResult{}, ErrIncompleteResult
	}

	var summary string
	if raw, ok := fields["summary"]; !ok || json.Unmarshal(raw, &summary) != nil || strings.TrimSpace(summary) == "" {
		return AnalysisResult{}, ErrIncompleteResult
	}

	res := AnalysisResult{
		Score:       int(math.Round(score)),
		Summary:     summary,
		Checks:      []CheckItem{},
		BrokenLinks: []string{},
		Tips:        []string{},
	}

	if raw, ok := fields["riskLevel"]; ok {
		_ = json.Unmarshal(raw, &res.RiskLevel)
	}
	if raw, ok := fields["checks"]; ok {
		var checks []CheckItem
		if json.Unmarshal(raw, &checks) == nil && checks != nil {
			res.Checks = checks
		}
	}
	if raw, ok := fields["brokenLinks"]; ok {
		var links []string
		if json.Unmarshal(raw, &links) == nil && links != nil {
			res.BrokenLinks = links
		}
	}
	if raw, ok := fields["tips"]; ok {
		var tips []string
		if json.Unmarshal(raw, &tips) == nil && tips != nil {
			res.Tips = tips
		}
	}

	return res, nil
}
