package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinesFor(t *testing.T) {
	tests := []struct {
		name          string
		length, width int
		want          int
	}{
		{"empty", 0, 80, 1},
		{"fits", 40, 80, 1},
		{"exact", 80, 80, 1},
		{"wraps", 81, 80, 2},
		{"narrow", 100, 30, 4},
		{"unknown width", 120, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LinesFor(tt.length, tt.width))
		})
	}
}
