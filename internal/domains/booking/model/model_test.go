package model_test

import (
	"testing"

	"frontdesk/internal/domains/booking/model"
)

func TestGRCNumber(t *testing.T) {
	tests := []struct {
		name     string
		seq      int64
		expected string
	}{
		{
			name:     "first number is zero padded",
			seq:      1,
			expected: "GRC-001",
		},
		{
			name:     "two digits are zero padded",
			seq:      42,
			expected: "GRC-042",
		},
		{
			name:     "three digits print as is",
			seq:      100,
			expected: "GRC-100",
		},
		{
			name:     "boundary before four digits",
			seq:      999,
			expected: "GRC-999",
		},
		{
			name:     "four digits print in full",
			seq:      1000,
			expected: "GRC-1000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := model.GRCNumber(tt.seq)
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}
