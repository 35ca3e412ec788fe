package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundCents(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{name: "exact", input: 800.00, want: 800.00},
		{name: "half rounds up", input: 1.125, want: 1.13},
		{name: "below half rounds down", input: 1.004, want: 1.00},
		{name: "above half rounds up", input: 1.006, want: 1.01},
		{name: "repeating fraction", input: 666.666666, want: 666.67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RoundCents(tt.input), 1e-9)
		})
	}
}

func TestShare(t *testing.T) {
	// 15% gratuity and 9% tax on a common base
	assert.InDelta(t, 120.00, Share(800, 0.15), 1e-9)
	assert.InDelta(t, 72.00, Share(800, 0.09), 1e-9)
	// deposit of an odd-cent total
	assert.InDelta(t, 496.00, Share(992, 0.5), 1e-9)
	assert.InDelta(t, 496.50, Share(993, 0.5), 1e-9)
}
