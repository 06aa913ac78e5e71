package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloat(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		wantErr bool
	}{
		{"dot", "259584.448", 259584.448, false},
		{"decimal comma", " 1200,5 ", 1200.5, false},
		{"negative", "-7.5", -7.5, false},
		{"empty", "  ", 0, true},
		{"text", "abc", 0, true},
		{"nan", "NaN", 0, true},
		{"inf", "Inf", 0, true},
		{"lower inf", "inf", 0, true},
		{"negative infinity", "-Infinity", 0, true},
		{"overflow", "1e400", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFloat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}
