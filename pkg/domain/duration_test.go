package domain

import (
	"testing"
	"time"
)

func TestParseTimedelta(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"3600", 3600 * time.Second},
		{"15:15:15", 15*time.Hour + 15*time.Minute + 15*time.Second},
		{"15D15:15:15", 15*24*time.Hour + 15*time.Hour + 15*time.Minute + 15*time.Second},
		{"15d15:15:15", 15*24*time.Hour + 15*time.Hour + 15*time.Minute + 15*time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimedelta(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.D != tt.want {
				t.Errorf("ParseTimedelta(%q) = %v, want %v", tt.input, got.D, tt.want)
			}
		})
	}
}

func TestParseTimedeltaInvalid(t *testing.T) {
	if _, err := ParseTimedelta("not-a-duration"); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}
