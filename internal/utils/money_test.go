package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "already exact", in: 15, want: 15},
		{name: "two decimals kept", in: 12.34, want: 12.34},
		{name: "third decimal rounds up", in: 9.999, want: 10},
		{name: "third decimal rounds down", in: 3.333, want: 3.33},
		{name: "zero", in: 0, want: 0},
		{name: "negative", in: -2.718, want: -2.72},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Round2(tt.in), 1e-9)
		})
	}
}
