package config

import (
	"testing"
	"time"
)

func TestScaleDelay(t *testing.T) {
	cases := []struct {
		name  string
		scale int
		in    time.Duration
		want  time.Duration
	}{
		{"zero keeps default", 0, 500 * time.Millisecond, 500 * time.Millisecond},
		{"one keeps default", 1, 500 * time.Millisecond, 500 * time.Millisecond},
		{"ten divides", 10, 500 * time.Millisecond, 50 * time.Millisecond},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{LatencyScale: tc.scale}
			if got := cfg.ScaleDelay(tc.in); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
