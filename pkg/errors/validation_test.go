package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateElementID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "header", false},
		{"valid with dash", "row-1", false},
		{"valid with slash", "section/para.2", false},
		{"valid uuid", "5f0e8d52-8d3c-4f6e-9c0a-2b1f1e3c4d5a", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", MaxElementIDLength+1), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
		{"leading space", " foo", true},
		{"trailing space", "foo ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateElementID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateElementID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidLayout) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidLayout)
			}
		})
	}
}

func TestValidateBox(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h float64
		wantErr    bool
	}{
		{"valid", 0, 0, 10, 10, false},
		{"negative origin", -20, -5, 10, 10, false},
		{"zero size", 5, 5, 0, 0, false},

		{"negative width", 0, 0, -1, 10, true},
		{"negative height", 0, 0, 10, -1, true},
		{"NaN x", math.NaN(), 0, 10, 10, true},
		{"infinite height", 0, 0, 10, math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBox("el", tt.x, tt.y, tt.w, tt.h)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBox() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDirection(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"up", false},
		{"Down", false},
		{"before", false},
		{"l", false},

		{"", true},
		{"north", true},
		{"upward", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateDirection(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDirection(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidDirection) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidDirection)
			}
		})
	}
}
