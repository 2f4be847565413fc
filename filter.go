package htmlfilter

import (
	"golang.org/x/net/html"
)

// Tag describes an element as delivered by the tokenizer: the tag name
// plus the raw attribute list as written in the source. Filters decide
// on the tag as a whole here; individual attributes are decided
// separately through FilterAttribute.
type Tag struct {
	Name string
	Attr []html.Attribute
}

// Filter is the decision contract applied while walking a stream of
// HTML constructs. The tokenizer driving a sanitization pass calls each
// method exactly once per construct it encounters, in document order.
//
// Every method is a pure function of its arguments and the filter's
// construction-time configuration; nothing is remembered between
// calls and no call blocks or performs I/O. A single Filter value is
// therefore safe to share across any number of concurrent
// sanitization passes.
//
// All methods are total over well-formed input. Empty strings,
// zero-length spans, and unknown tag or attribute names are valid and
// yield a decision, never an error. Span indices passed to
// RewriteLiteral must satisfy 0 <= start <= end <= len(src); violating
// that is a caller bug, not a reported condition.
type Filter interface {
	// KeepTag reports whether the element's tag markers are emitted.
	// Returning false suppresses only the markers; whether contained
	// content is still emitted is the caller's decision.
	KeepTag(t Tag) bool

	// FilterAttribute decides one attribute on the named tag. The
	// returned value replaces the input value when keep is true,
	// letting a filter rewrite and accept in a single call.
	FilterAttribute(tag, name, value string) (newValue string, keep bool)

	// FilterStyle decides one inline CSS declaration on the named tag,
	// with the same rewrite-then-decide contract as FilterAttribute.
	FilterStyle(tag, property, value string) (newValue string, keep bool)

	// RewriteLiteral is offered the half-open span src[start:end] of a
	// text run and reports whether to emit replacement in its place.
	// When it returns false the caller emits the original span, so
	// implementations must not build a replacement string on that path.
	RewriteLiteral(src string, start, end int) (replacement string, rewrite bool)
}

// RejectAll is a Filter that strips every tag, attribute, and style
// while leaving text literals untouched. Driving a sanitization pass
// with it yields text-only output.
type RejectAll struct{}

var _ Filter = RejectAll{}

func (RejectAll) KeepTag(Tag) bool { return false }

func (RejectAll) FilterAttribute(tag, name, value string) (string, bool) {
	return value, false
}

func (RejectAll) FilterStyle(tag, property, value string) (string, bool) {
	return value, false
}

func (RejectAll) RewriteLiteral(src string, start, end int) (string, bool) {
	return "", false
}

// AcceptAll is a Filter that passes every construct through unchanged.
// It exists for content the application itself authored and already
// trusts; using it on third-party input defeats the engine entirely.
type AcceptAll struct{}

var _ Filter = AcceptAll{}

func (AcceptAll) KeepTag(Tag) bool { return true }

func (AcceptAll) FilterAttribute(tag, name, value string) (string, bool) {
	return value, true
}

func (AcceptAll) FilterStyle(tag, property, value string) (string, bool) {
	return value, true
}

func (AcceptAll) RewriteLiteral(src string, start, end int) (string, bool) {
	return "", false
}
