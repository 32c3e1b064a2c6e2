package calpdf

import (
	"errors"

	"github.com/newswise/calpdf/internal/assets"
	"github.com/newswise/calpdf/internal/dateutil"
	"github.com/newswise/calpdf/internal/inspect"
	"github.com/newswise/calpdf/internal/render"
)

// Sentinel errors for library operations.
var (
	// Browser errors, shared with the renderer so errors.Is works across the
	// package boundary.
	ErrBrowserConnect = render.ErrBrowserConnect
	ErrPageCreate     = render.ErrPageCreate
	ErrPageLoad       = render.ErrPageLoad
	ErrPageCapture    = render.ErrPageCapture
	ErrPDFGeneration  = render.ErrPDFGeneration

	// Output verification errors.
	ErrMalformedPDF = inspect.ErrMalformed
	ErrPageCount    = errors.New("unexpected PDF page count")
	ErrPageSize     = errors.New("unexpected PDF page size")

	// Option validation errors.
	ErrInvalidWeekStart = errors.New("invalid week start")
	ErrTitleTooLong     = errors.New("title too long")
	ErrInvalidFooter    = dateutil.ErrInvalidDateFormat

	// Theme errors.
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrTemplateNotFound = assets.ErrTemplateNotFound
	ErrInvalidAssetPath = assets.ErrInvalidBasePath
	ErrInvalidAssetName = assets.ErrInvalidAssetName

	// ErrInternal wraps a panic recovered from the rendering pipeline.
	ErrInternal = errors.New("internal error")
)
