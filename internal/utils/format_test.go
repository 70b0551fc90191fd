package utils

import "testing"

func TestToDollar(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "$0.00"},
		{1.5, "$1.50"},
		{999.99, "$999.99"},
		{1000, "$1,000.00"},
		{36010, "$36,010.00"},
		{3601000, "$3,601,000.00"},
		{-1234.5, "$-1,234.50"},
	}
	for _, tt := range tests {
		got := ToDollar(tt.input)
		if got != tt.want {
			t.Errorf("ToDollar(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestToFixed(t *testing.T) {
	tests := []struct {
		value  float64
		digits int
		want   string
	}{
		{36.101083, 4, "36.1011"},
		{0.694252, 4, "0.6943"},
		{1, 4, "1.0000"},
		{2.5, 2, "2.50"},
	}
	for _, tt := range tests {
		got := ToFixed(tt.value, tt.digits)
		if got != tt.want {
			t.Errorf("ToFixed(%v, %d) = %q, want %q", tt.value, tt.digits, got, tt.want)
		}
	}
}

func TestToPercent(t *testing.T) {
	got := ToPercent(0.6943)
	if got != "0.6943%" {
		t.Errorf("ToPercent(0.6943) = %q, want %q", got, "0.6943%")
	}
}
