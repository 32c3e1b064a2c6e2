// Package inspecttest builds tiny but structurally valid PDF files for tests.
package inspecttest

import (
	"bytes"
	"fmt"
	"strings"
)

// A4LandscapeWidthPt and A4LandscapeHeightPt are 297mm and 210mm in points.
const (
	A4LandscapeWidthPt  = 841.89
	A4LandscapeHeightPt = 595.28
)

// MinimalPDF returns a PDF with the given number of empty pages. The MediaBox
// is declared once on the page tree root and inherited by every page.
func MinimalPDF(pages int, widthPt, heightPt float64) []byte {
	var objs []string

	kids := make([]string, pages)
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", i+3)
	}

	objs = append(objs, "<< /Type /Catalog /Pages 2 0 R >>")
	objs = append(objs, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d /MediaBox [0 0 %.2f %.2f] >>",
		strings.Join(kids, " "), pages, widthPt, heightPt))
	for range pages {
		objs = append(objs, "<< /Type /Page /Parent 2 0 R >>")
	}
	return FromObjects(objs...)
}

// FromObjects writes objs as objects 1..n with a valid xref table. Object 1
// must be the catalog.
func FromObjects(objs ...string) []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objs))
	for i, body := range objs {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	xrefAt := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objs)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xrefAt)

	return buf.Bytes()
}
