package calpdf

import "math"

// Output geometry and encoding. Changing any of these values breaks consumers
// that expect A4 landscape output at the documented filename.
const (
	DefaultScale   = 2                            // rasterization multiplier
	PageWidthMM    = 297                          // A4 landscape width
	PageHeightMM   = 210                          // A4 landscape height
	OutputFilename = "NewsWise_2026_Calendar.pdf" // fixed download name
	DefaultQuality = 0.95                         // 0.0-1.0, lossy encoding fidelity
)

// CalendarYear is the year the fixed output filename refers to.
const CalendarYear = 2026

// PDFConfig describes the target page geometry and output encoding.
type PDFConfig struct {
	Scale      float64
	PageWidth  float64 // millimetres
	PageHeight float64 // millimetres
	Filename   string
	Quality    float64
}

// Config returns the output configuration.
// The record is returned by value; there is no way to modify it.
func Config() PDFConfig {
	return PDFConfig{
		Scale:      DefaultScale,
		PageWidth:  PageWidthMM,
		PageHeight: PageHeightMM,
		Filename:   OutputFilename,
		Quality:    DefaultQuality,
	}
}

// Filename returns the name the generated PDF is saved under.
func Filename() string {
	return OutputFilename
}

// JPEGQuality maps Quality onto the 0-100 scale used by image encoders.
func (c PDFConfig) JPEGQuality() int {
	q := int(math.Round(c.Quality * 100))
	return min(max(q, 0), 100)
}

// ValidatePageDimensions reports whether width and height (in millimetres)
// match the configured page exactly. No tolerance is applied.
func ValidatePageDimensions(width, height float64) bool {
	return width == PageWidthMM && height == PageHeightMM
}
