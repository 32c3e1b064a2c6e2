package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/newswise/calpdf"
)

// Generator is the part of calpdf.Generator the CLI drives.
type Generator interface {
	Generate(ctx context.Context) (calpdf.Result, error)
	OnProgress(fn calpdf.ProgressFunc)
	Close() error
}

// Compile-time interface implementation check.
var _ Generator = (*calpdf.Generator)(nil)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now          func() time.Time
	Stdout       io.Writer
	Stderr       io.Writer
	NewGenerator func(opts ...calpdf.Option) (Generator, error)
}

// DefaultEnv returns the production environment backed by headless Chrome.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewGenerator: func(opts ...calpdf.Option) (Generator, error) {
			return calpdf.NewGenerator(opts...)
		},
	}
}
