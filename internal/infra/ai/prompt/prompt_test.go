package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildEmbedsInputVerbatim(t *testing.T) {
	input := "Win €1000 now, click: bit.ly/xyz"
	p := Build(input)
	assert.Contains(t, p, `"`+input+`"`)
}

func TestBuildEnumeratesSchema(t *testing.T) {
	p := Build("iets")

	for _, field := range []string{`"score"`, `"riskLevel"`, `"summary"`, `"checks"`, `"brokenLinks"`, `"tips"`, `"category"`, `"status"`, `"detail"`} {
		assert.Contains(t, p, field)
	}
	for _, enum := range []string{"LAAG", "MIDDEN", "HOOG", `"safe"`, `"warning"`, `"danger"`} {
		assert.Contains(t, p, enum)
	}
	assert.Contains(t, p, "max 5 tips")
}

func TestBuildForbidsMarkdown(t *testing.T) {
	p := Build("iets")
	assert.Contains(t, p, "GEEN markdown")
	assert.Contains(t, p, "ALLEEN een valide JSON object")
}

func TestBuildIsDeterministic(t *testing.T) {
	assert.Equal(t, Build("zelfde input"), Build("zelfde input"))
}
