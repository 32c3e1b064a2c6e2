// Package calendar builds the month grids of a wall calendar and renders each
// month as a standalone HTML page sized for one PDF sheet.
//
// Pages are self-contained: the template and stylesheet come from
// internal/assets and are inlined, so a headless browser can rasterize a page
// from a local file without fetching anything.
package calendar
