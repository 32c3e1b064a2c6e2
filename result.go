package calpdf

// ContentTypePDF is the media type carried by every successful payload.
const ContentTypePDF = "application/pdf"

// DefaultResultError is used when a failure result is built without a message.
const DefaultResultError = "PDF generation failed"

// placeholderPDF stands in for rendered bytes in CreatePDFResult.
const placeholderPDF = "mock pdf"

// Payload is an opaque handle to produced PDF bytes.
type Payload struct {
	Data        []byte
	ContentType string
}

// Result is the outcome of one rendering attempt: either Success or Failure.
// The set of implementations is closed.
type Result interface {
	result()
}

// Success carries the produced document.
type Success struct {
	Payload *Payload
}

// Failure carries a human-readable reason. Message is never empty when built
// through NewFailure or CreatePDFResult.
type Failure struct {
	Message string
}

func (Success) result() {}
func (Failure) result() {}

// Bytes returns the PDF bytes, or nil when no payload is attached.
func (s Success) Bytes() []byte {
	if s.Payload == nil {
		return nil
	}
	return s.Payload.Data
}

// Error returns the failure message.
func (f Failure) Error() string {
	return f.Message
}

// NewSuccess wraps pdf in a successful result.
func NewSuccess(pdf []byte) Result {
	return Success{Payload: &Payload{Data: pdf, ContentType: ContentTypePDF}}
}

// NewFailure builds a failed result. An empty message is replaced with
// DefaultResultError.
func NewFailure(message string) Result {
	if message == "" {
		message = DefaultResultError
	}
	return Failure{Message: message}
}

// CreatePDFResult shapes a result envelope without rendering anything.
// A successful result wraps a placeholder payload; callers holding real
// bytes use NewSuccess.
func CreatePDFResult(success bool, errMsg string) Result {
	if success {
		return NewSuccess([]byte(placeholderPDF))
	}
	return NewFailure(errMsg)
}

// IsValidPDFResult reports whether r is well formed: a Success holding a PDF
// payload, or a Failure with a non-empty message.
func IsValidPDFResult(r Result) bool {
	switch v := r.(type) {
	case Success:
		return v.Payload != nil && v.Payload.ContentType == ContentTypePDF
	case *Success:
		return v != nil && IsValidPDFResult(*v)
	case Failure:
		return v.Message != ""
	case *Failure:
		return v != nil && IsValidPDFResult(*v)
	default:
		return false
	}
}
