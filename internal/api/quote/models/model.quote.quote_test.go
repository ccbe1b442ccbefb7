package quotemodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	for _, status := range Statuses {
		assert.True(t, ValidStatus(status))
	}

	for _, status := range []string{"archived", "PENDING", "done", ""} {
		assert.False(t, ValidStatus(status), "status %q must be rejected", status)
	}
}
