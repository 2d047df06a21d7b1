package middleware

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateInput(t *testing.T) {
	assert.Error(t, ValidateInput(""))
	assert.Error(t, ValidateInput("   \n\t"))
	assert.NoError(t, ValidateInput("U heeft een prijs gewonnen!"))
	assert.NoError(t, ValidateInput(strings.Repeat("a", MaxInputLength)))
	assert.Error(t, ValidateInput(strings.Repeat("a", MaxInputLength+1)))
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0, ClampScore(-5))
	assert.Equal(t, 0, ClampScore(0))
	assert.Equal(t, 85, ClampScore(85))
	assert.Equal(t, 100, ClampScore(150))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hallo wereld", SanitizeString("hallo\x00 wereld"))
	assert.Equal(t, "regel1\nregel2", SanitizeString("  regel1\nregel2\r  "))
	assert.Equal(t, "tab\tblijft", SanitizeString("tab\tblijft\x07"))
}
