package main

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/newswise/calpdf"
	"github.com/newswise/calpdf/internal/inspect/inspecttest"
)

// fakeGenerator implements Generator for testing. Generate reports twelve
// progress steps and then returns result and err.
type fakeGenerator struct {
	result   calpdf.Result
	err      error
	progress []calpdf.ProgressFunc
	options  int
	closed   bool
}

func (f *fakeGenerator) Generate(ctx context.Context) (calpdf.Result, error) {
	for page := 1; page <= 12; page++ {
		for _, fn := range f.progress {
			if err := fn(page, 12, fmt.Sprintf("Rendered page %d", page)); err != nil {
				return calpdf.NewFailure(err.Error()), err
			}
		}
	}
	return f.result, f.err
}

func (f *fakeGenerator) OnProgress(fn calpdf.ProgressFunc) {
	f.progress = append(f.progress, fn)
}

func (f *fakeGenerator) Close() error {
	f.closed = true
	return nil
}

// successGenerator returns a fake that produces a valid twelve page PDF.
func successGenerator() *fakeGenerator {
	pdf := inspecttest.MinimalPDF(12, inspecttest.A4LandscapeWidthPt, inspecttest.A4LandscapeHeightPt)
	return &fakeGenerator{result: calpdf.NewSuccess(pdf)}
}

// testEnv wires gen into an Environment with captured output.
func testEnv(t *testing.T, gen *fakeGenerator) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	fixed := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	env := &Environment{
		Now:    func() time.Time { return fixed },
		Stdout: stdout,
		Stderr: stderr,
		NewGenerator: func(opts ...calpdf.Option) (Generator, error) {
			gen.options = len(opts)
			return gen, nil
		},
	}
	return env, stdout, stderr
}
