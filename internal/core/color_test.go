package core

import "testing"

func TestHealthColor(t *testing.T) {
	tests := []struct {
		ratio    float64
		expected Color
	}{
		{1.0, ColorGreen},
		{0.51, ColorGreen},
		{0.5, ColorYellow},
		{0.3, ColorYellow},
		{0.25, ColorRed},
		{0, ColorRed},
	}

	for _, tc := range tests {
		if got := HealthColor(tc.ratio); got != tc.expected {
			t.Errorf("HealthColor(%v) = %d, expected %d", tc.ratio, got, tc.expected)
		}
	}
}
