package calpdf_test

import (
	"errors"
	"fmt"

	"github.com/newswise/calpdf"
)

// Example walks a three-page run through the state manager.
func Example() {
	mgr := calpdf.NewStateManager()
	mgr.OnProgress(func(page, total int, msg string) error {
		fmt.Printf("%d/%d %s\n", page, total, msg)
		return nil
	})

	mgr.Start(3)
	for i, msg := range []string{"p1", "p2", "p3"} {
		_ = mgr.UpdateProgress(i+1, msg)
	}
	mgr.Complete()

	s := mgr.State()
	fmt.Println(s.IsGenerating, s.CurrentPage, s.StatusMessage, s.HasError())
	// Output:
	// 1/3 p1
	// 2/3 p2
	// 3/3 p3
	// false 3 p3 false
}

// ExampleStateManager_OnProgress shows that a subscriber error stops the run
// of notifications and reaches the caller.
func ExampleStateManager_OnProgress() {
	mgr := calpdf.NewStateManager()
	mgr.OnProgress(func(page, _ int, _ string) error {
		if page == 2 {
			return errors.New("viewer closed")
		}
		return nil
	})

	mgr.Start(3)
	fmt.Println(mgr.UpdateProgress(1, "p1"))
	fmt.Println(mgr.UpdateProgress(2, "p2"))
	// Output:
	// <nil>
	// viewer closed
}

// ExampleCreatePDFResult shows the failure fallback message.
func ExampleCreatePDFResult() {
	r := calpdf.CreatePDFResult(false, "")
	if f, ok := r.(calpdf.Failure); ok {
		fmt.Println(f.Message)
	}
	fmt.Println(calpdf.IsValidPDFResult(r))
	// Output:
	// PDF generation failed
	// true
}

// ExampleValidatePageDimensions checks geometry read back from a PDF.
func ExampleValidatePageDimensions() {
	fmt.Println(calpdf.ValidatePageDimensions(297, 210))
	fmt.Println(calpdf.ValidatePageDimensions(210, 297))
	// Output:
	// true
	// false
}

// ExampleResult switches over a generation outcome.
func ExampleResult() {
	describe := func(r calpdf.Result) string {
		switch v := r.(type) {
		case calpdf.Success:
			return fmt.Sprintf("saved %d bytes as %s", len(v.Bytes()), calpdf.Filename())
		case calpdf.Failure:
			return "failed: " + v.Message
		default:
			return "invalid"
		}
	}

	fmt.Println(describe(calpdf.NewSuccess([]byte("%PDF-1.7"))))
	fmt.Println(describe(calpdf.NewFailure("browser crashed")))
	// Output:
	// saved 8 bytes as NewsWise_2026_Calendar.pdf
	// failed: browser crashed
}
