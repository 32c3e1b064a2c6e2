package calpdf

import (
	"math"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Parallel()

	got := Config()
	want := PDFConfig{
		Scale:      2,
		PageWidth:  297,
		PageHeight: 210,
		Filename:   "NewsWise_2026_Calendar.pdf",
		Quality:    0.95,
	}
	if got != want {
		t.Errorf("Config() = %+v, want %+v", got, want)
	}
}

func TestConfig_ReturnsCopy(t *testing.T) {
	t.Parallel()

	c := Config()
	c.PageWidth = 1
	c.Filename = "other.pdf"

	if fresh := Config(); fresh.PageWidth != PageWidthMM || fresh.Filename != OutputFilename {
		t.Errorf("mutating a returned config leaked: %+v", fresh)
	}
}

func TestFilename(t *testing.T) {
	t.Parallel()

	if got := Filename(); got != "NewsWise_2026_Calendar.pdf" {
		t.Errorf("Filename() = %q", got)
	}
}

func TestPDFConfig_JPEGQuality(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		quality float64
		want    int
	}{
		{"default", DefaultQuality, 95},
		{"full", 1, 100},
		{"half", 0.5, 50},
		{"clamps above", 1.7, 100},
		{"clamps below", -0.2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := PDFConfig{Quality: tt.quality}
			if got := c.JPEGQuality(); got != tt.want {
				t.Errorf("JPEGQuality() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValidatePageDimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		width, height float64
		want          bool
	}{
		{"exact A4 landscape", 297, 210, true},
		{"portrait", 210, 297, false},
		{"width off by a fraction", 297.0001, 210, false},
		{"height off by a fraction", 297, 209.9999, false},
		{"zero", 0, 0, false},
		{"negative", -297, -210, false},
		{"NaN width", math.NaN(), 210, false},
		{"infinite height", 297, math.Inf(1), false},
		{"letter", 279.4, 215.9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ValidatePageDimensions(tt.width, tt.height); got != tt.want {
				t.Errorf("ValidatePageDimensions(%v, %v) = %v, want %v", tt.width, tt.height, got, tt.want)
			}
		})
	}
}
