// Package calpdf renders the NewsWise 2026 wall calendar as an A4 landscape
// PDF using headless Chrome.
//
// # Quick Start
//
// Create a generator, run it, and close it when done:
//
//	gen, err := calpdf.NewGenerator()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer gen.Close()
//
//	res, err := gen.Generate(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if s, ok := res.(calpdf.Success); ok {
//	    os.WriteFile(calpdf.Filename(), s.Bytes(), 0644)
//	}
//
// # Output Contract
//
// Every document has twelve pages, one per month, each exactly 297mm × 210mm.
// Pages are rasterized at DefaultScale and stored as JPEG at DefaultQuality.
// Config returns these values; they are fixed.
//
// # Generation Pipeline
//
//  1. Build the month grids (week rows padded to whole weeks)
//  2. Render each month to HTML, with its optional Markdown note
//  3. Capture each page as an image in headless Chrome (go-rod)
//  4. Print the images into one PDF, one image per page
//  5. Read the PDF back and check its page count and page size
//
// # Progress and State
//
// A StateManager tracks one run at a time (idle, generating, completed,
// failed) and notifies subscribers synchronously after each page:
//
//	gen.OnProgress(func(page, total int, msg string) error {
//	    fmt.Printf("[%d/%d] %s\n", page, total, msg)
//	    return nil
//	})
//
// A subscriber error aborts the run and is returned from Generate.
//
// # Results
//
// Generate returns a Result, which is either Success or Failure. Use
// IsValidPDFResult before handing a result to code that saves it.
//
// # Configuration
//
// Use functional options to customize the generator:
//
//	gen, err := calpdf.NewGenerator(
//	    calpdf.WithTimeout(2 * time.Minute),
//	    calpdf.WithWeekStart(time.Sunday),
//	    calpdf.WithNotes(map[time.Month]string{time.March: "**Launch** week"}),
//	    calpdf.WithLogger(logger),
//	)
//
// # Styles and Themes
//
// Pages use a built-in stylesheet ("default" or "newsroom") chosen with
// WithStyle. WithAssetPath points at a theme directory whose
// styles/<name>.css and templates/month.html replace the built-ins; anything
// the directory lacks falls back to the embedded copy. The page size rules
// of the built-in template are what keep every sheet at 297mm × 210mm, so a
// custom month template must keep them.
//
// WithFooter prints a line under every grid. {date} and {date:FORMAT}
// expand to the generation date, e.g. "Printed {date:long}".
//
// # Error Handling
//
// Browser and verification failures wrap sentinel errors such as
// ErrBrowserConnect, ErrPageCapture and ErrPageCount; check them with
// errors.Is.
//
// # Requirements
//
// Chrome or Chromium is downloaded automatically by go-rod on first use.
// Set ROD_BROWSER_BIN to use an installed browser.
package calpdf
