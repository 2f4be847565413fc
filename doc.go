// Package htmlfilter provides a fast, policy-driven HTML sanitization
// engine for Go applications.
//
// # Overview
//
// htmlfilter tokenizes an HTML string (or io.Reader) using the
// standard golang.org/x/net/html tokenizer and re-assembles the output
// from the decisions of a [Filter], which is consulted once per tag,
// attribute, inline style declaration, and text literal encountered,
// in document order.
//
// # Filters
//
// A [Filter] answers four questions:
//   - Is this tag emitted? ([Filter.KeepTag])
//   - Is this attribute kept, and with what value? ([Filter.FilterAttribute])
//   - Is this inline style declaration kept? ([Filter.FilterStyle])
//   - Is this text literal rewritten? ([Filter.RewriteLiteral])
//
// Four built-in filters are provided:
//   - [RejectAll] — strips every tag, attribute, and style, yielding
//     text-only output.
//   - [Basic] — a minimal set of inline formatting tags with almost no
//     attributes. Good for comment sections.
//   - [Permissive] — a broad set of text, table, and list markup with
//     per-tag attribute whitelists, built by [NewPermissive]. Good for
//     rich user-generated content. Optionally inserts soft breaks into
//     over-long words.
//   - [AcceptAll] — passes everything through. Only for content the
//     application itself produced; never use it on third-party input.
//
// # Security
//
// The built-in whitelist filters defend against common XSS vectors:
//   - Script injection via <script>, <object>, <embed>, <iframe>
//   - Event handler attributes (onclick, onerror, etc.) and id
//   - CSS expression(...) script execution in style attributes
//   - Layout hijacking via display/position/z-index styles
//   - Conditional-comment exploits (comments are never emitted)
//
// The posture is deny-by-default: an over-aggressive filter produces
// stripped-down but well-formed output, never an error and never
// unsanitized markup.
//
// # Thread Safety
//
// Filters are stateless with respect to call history: every decision
// depends only on its arguments and configuration fixed at
// construction. A single Filter value may therefore be shared across
// any number of concurrent sanitization passes without locking.
//
// # Example
//
//	f := htmlfilter.NewPermissive(30)
//	clean, err := htmlfilter.Sanitize(userInput, f)
package htmlfilter
