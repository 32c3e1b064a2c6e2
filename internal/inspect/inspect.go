// Package inspect reads back a produced PDF to confirm its page count and
// page geometry.
package inspect

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/ledongthuc/pdf"
)

// Sentinel errors for PDF inspection.
var (
	ErrEmptyDocument = errors.New("empty PDF document")
	ErrMalformed     = errors.New("malformed PDF document")
	ErrNoSuchPage    = errors.New("page out of range")
	ErrNoMediaBox    = errors.New("page has no MediaBox")
)

const pointsPerMM = 72 / 25.4

// Document is a parsed PDF held in memory.
type Document struct {
	reader *pdf.Reader
}

// Open parses data. The underlying reader panics on some corrupt inputs;
// those panics are returned as ErrMalformed.
func Open(data []byte) (doc *Document, err error) {
	if len(data) == 0 {
		return nil, ErrEmptyDocument
	}
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("%w: %v", ErrMalformed, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &Document{reader: r}, nil
}

// PageCount returns the number of pages declared by the page tree.
func (d *Document) PageCount() (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			n, err = 0, fmt.Errorf("%w: %v", ErrMalformed, r)
		}
	}()
	return d.reader.NumPage(), nil
}

// PageSizeMM returns the MediaBox of page (1-based) in whole millimetres.
// The box may be inherited from an ancestor page tree node.
func (d *Document) PageSizeMM(page int) (width, height float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			width, height, err = 0, 0, fmt.Errorf("%w: %v", ErrMalformed, r)
		}
	}()

	p := d.reader.Page(page)
	if p.V.IsNull() {
		return 0, 0, fmt.Errorf("%w: %d", ErrNoSuchPage, page)
	}

	box, err := inheritedKey(p.V, "MediaBox")
	if err != nil {
		return 0, 0, fmt.Errorf("page %d: %w", page, err)
	}
	if box.IsNull() || box.Len() != 4 {
		return 0, 0, fmt.Errorf("%w: page %d", ErrNoMediaBox, page)
	}

	w := box.Index(2).Float64() - box.Index(0).Float64()
	h := box.Index(3).Float64() - box.Index(1).Float64()
	return toMM(w), toMM(h), nil
}

// maxTreeDepth bounds the Parent walk; deeper chains are treated as cycles.
const maxTreeDepth = 32

// inheritedKey walks up the Parent chain until key is found. A null value
// with a nil error means no ancestor defines key.
func inheritedKey(v pdf.Value, key string) (pdf.Value, error) {
	for depth := 0; !v.IsNull(); depth++ {
		if depth == maxTreeDepth {
			return pdf.Value{}, fmt.Errorf("%w: page tree deeper than %d levels or cyclic", ErrMalformed, maxTreeDepth)
		}
		if r := v.Key(key); !r.IsNull() {
			return r, nil
		}
		v = v.Key("Parent")
	}
	return pdf.Value{}, nil
}

func toMM(points float64) float64 {
	return math.Round(math.Abs(points) / pointsPerMM)
}

// PageCount is a shortcut for Open followed by PageCount.
func PageCount(data []byte) (int, error) {
	doc, err := Open(data)
	if err != nil {
		return 0, err
	}
	return doc.PageCount()
}
