package billing

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var numberPattern = regexp.MustCompile(`^[A-Z]+-[0-9]{9}$`)

func TestNewDocumentNumber_Format(t *testing.T) {
	for _, prefix := range []string{"INV", "QUO", "REC"} {
		n := NewDocumentNumber(prefix)
		assert.True(t, strings.HasPrefix(n, prefix+"-"), "number %q must start with %s-", n, prefix)
		assert.Regexp(t, numberPattern, n)
	}
}

func TestNewDocumentNumber_Varies(t *testing.T) {
	// Not a uniqueness guarantee, but 50 draws colliding wholesale would
	// indicate the random suffix is broken.
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[NewDocumentNumber("INV")] = true
	}
	assert.Greater(t, len(seen), 1)
}
